package zpl

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	zplLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Command", Pattern: `[\^~][A-Za-z0-9]{2}`},
		// a separator not starting a two-letter opcode is malformed author
		// input; it folds into the surrounding text instead of failing the
		// whole parse
		{Name: "Stray", Pattern: `[\^~]`},
		{Name: "Text", Pattern: `[^\^~]+`},
	})

	streamParser = participle.MustBuild[stream](
		participle.Lexer(zplLexer),
	)
)

// Command is a single source-markup command: a two-letter opcode, its raw
// parameter text, and the byte offset where the command starts. The offset is
// kept so that forward lookups (eg. a barcode resolving its payload from a
// later field-data command) can reason about source order.
type Command struct {
	Code   string
	Param  string
	Offset int
}

// stream is the grammar root: optional leading text, then commands each
// followed by the raw text up to the next field separator. The lazy scan the
// source markup requires falls out of the token split itself.
type stream struct {
	Leading  string        `parser:"( @Text | @Stray )*"`
	Commands []*rawCommand `parser:"@@*"`
}

type rawCommand struct {
	Pos   lexer.Position `parser:""`
	Code  string         `parser:"@Command"`
	Param string         `parser:"( @Text | @Stray )*"`
}

// Parse tokenizes source markup into its ordered command stream. Commands
// with unrecognized opcodes are retained so later index-based lookups still
// see correct positions; they simply produce no output downstream.
func Parse(input string) ([]Command, error) {
	st, err := streamParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	cmds := make([]Command, 0, len(st.Commands))
	for _, rc := range st.Commands {
		cmds = append(cmds, Command{
			Code:   strings.ToUpper(rc.Code[1:]),
			Param:  rc.Param,
			Offset: rc.Pos.Offset,
		})
	}
	return cmds, nil
}

// LabelBlock slices the commands between the first start-of-label marker and
// its matching end marker, exclusive of both. A stream without a complete
// delimiter pair yields an empty block; download-graphic records outside the
// block are unaffected.
func LabelBlock(cmds []Command) []Command {
	start := -1
	for i, c := range cmds {
		if c.Code == "XA" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}
	for i := start; i < len(cmds); i++ {
		if cmds[i].Code == "XZ" {
			return cmds[start:i]
		}
	}
	return nil
}

// NormalizeGraphicName strips the device prefix and extension from a graphic
// name, eg. "R:LOGO.GRF" -> "LOGO". Both the download command and the recall
// command go through this so their names agree.
func NormalizeGraphicName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ':'); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return strings.ToUpper(name)
}
