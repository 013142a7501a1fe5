package runeio

import (
	"strings"
	"unicode/utf8"
)

// CaretForm computes the ^-escaped printable form of a C0 control rune, or
// the ^[-escaped form of a C1 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Quote returns s in double quotes with any control runes replaced by their
// caret form, so that text values can be shown on one dump line.
// Invalid utf8 bytes are shown as \xNN.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			const hex = "0123456789abcdef"
			sb.WriteString(`\x`)
			sb.WriteByte(hex[s[i]>>4])
			sb.WriteByte(hex[s[i]&0xf])
		} else if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
		i += n
	}
	sb.WriteByte('"')
	return sb.String()
}
