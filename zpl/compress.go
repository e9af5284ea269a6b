package zpl

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Run-length token table for compressed graphic data. The upper range G..Y
// repeats the next literal 1..19 times; the disjoint lower range g..y repeats
// it 20, 40, .. 380 times. Every token consumes exactly one following
// literal; tokens never combine.
var repeatCounts = buildRepeatCounts()

func buildRepeatCounts() map[byte]int {
	m := make(map[byte]int, 38)
	for i := 0; i < 19; i++ {
		m['G'+byte(i)] = i + 1
		m['g'+byte(i)] = (i + 1) * 20
	}
	return m
}

// Decompress expands a run-length compressed hex payload. Embedded line
// breaks must already be stripped by the caller. Characters outside the token
// table pass through unchanged; the result is canonicalized to uppercase. A
// repeat token in the final position is malformed: there is no literal left
// to repeat.
func Decompress(payload string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(payload))
	for i := 0; i < len(payload); {
		ch := payload[i]
		count, ok := repeatCounts[ch]
		if !ok {
			sb.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(payload) {
			return "", fmt.Errorf("zpl: repeat token %q at end of payload has no literal to repeat", ch)
		}
		for n := 0; n < count; n++ {
			sb.WriteByte(payload[i+1])
		}
		i += 2
	}
	return strings.ToUpper(sb.String()), nil
}

const z64Prefix = ":Z64:"

// decodeZ64 expands a :Z64:<base64(deflate)>:<crc> graphic payload into
// uppercase hex. The trailing CRC is stripped but not verified; validating
// checksums belongs to full grammar validation, which this engine does not do.
func decodeZ64(payload string) (string, error) {
	body := strings.TrimPrefix(payload, z64Prefix)
	if i := strings.LastIndexByte(body, ':'); i >= 0 {
		body = body[:i]
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("zpl: Z64 base64 payload: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("zpl: Z64 inflate: %w", err)
	}
	defer zr.Close()
	expanded, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("zpl: Z64 inflate: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(expanded)), nil
}
