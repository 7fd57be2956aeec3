package markup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DecodeSource turns the authoring format into the flat delimited string.
// Authors write one field per line, each line ending in a backslash
// continuation. Escapes follow string-literal rules: "\\" is a literal
// backslash, `\"` a double quote, \n \t \r control characters, and any
// other escaped character stands for itself.
// Lines without a trailing continuation keep their newline.
func DecodeSource(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	joined := true
	for sc.Scan() {
		if !joined {
			b.WriteByte('\n')
		}
		joined = unescapeLine(&b, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return b.String(), nil
}

// unescapeLine writes line to b with escapes resolved and reports whether the
// line ended with a continuation backslash.
func unescapeLine(b *strings.Builder, line string) bool {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == len(line)-1 {
			return true
		}
		i++
		switch line[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(line[i])
		}
	}
	return false
}
