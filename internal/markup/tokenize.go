// Tokenizer for the tag-delimited manual source
package markup

import "strings"

// Delimiter separates fields in the manual source.
const Delimiter = "__"

// Field is one unit of the source between two delimiters.
type Field struct {
	Text  string
	Index int
}

// Tokenize splits src on Delimiter. For well-formed input the first field is
// always empty; Parse discards it. No escapes are interpreted here.
func Tokenize(src string) []Field {
	parts := strings.Split(src, Delimiter)
	fields := make([]Field, len(parts))
	for i, p := range parts {
		fields[i] = Field{Text: p, Index: i}
	}
	return fields
}

// Join is the inverse of Tokenize.
func Join(fields []Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		b.WriteString(f.Text)
	}
	return b.String()
}
