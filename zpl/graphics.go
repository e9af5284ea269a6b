package zpl

import (
	"fmt"
	"strings"
)

// Graphic is a downloaded image: a normalized logical name plus its expanded
// monochrome hex payload, ready to be stored by the target script.
type Graphic struct {
	Name string
	Hex  string
}

// Graphics extracts download-graphic records from a command stream and
// expands their compressed payloads. Records may appear anywhere in the
// stream, including outside the label block. A malformed payload fails only
// its own record: the record is dropped, an error describing it is collected,
// and the remaining records continue.
func Graphics(cmds []Command) ([]Graphic, []error) {
	var graphics []Graphic
	var errs []error
	for _, c := range cmds {
		if c.Code != "DG" {
			continue
		}
		parts := strings.SplitN(c.Param, ",", 4)
		name := NormalizeGraphicName(parts[0])
		if len(parts) < 4 {
			errs = append(errs, fmt.Errorf("zpl: download graphic %q: missing data field", name))
			continue
		}
		data := stripBreaks(parts[3])
		var expanded string
		var err error
		if strings.HasPrefix(data, z64Prefix) {
			expanded, err = decodeZ64(data)
		} else {
			expanded, err = Decompress(data)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("zpl: download graphic %q: %w", name, err))
			continue
		}
		graphics = append(graphics, Graphic{Name: name, Hex: expanded})
	}
	return graphics, errs
}

// stripBreaks removes the line breaks and indentation that authoring tools
// fold into long graphic payloads.
func stripBreaks(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', ' ':
			return -1
		}
		return r
	}, s)
}
