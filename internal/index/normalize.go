package index

import "strings"

// NormalizeWords canonicalizes free text for comparison: uppercase,
// every character outside A-Z, 0-9, space and hyphen becomes a space,
// runs of whitespace collapse to a single space, and the result is
// trimmed. Idempotent: normalizing twice gives the same string.
func NormalizeWords(s string) string {
	s = strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LettersOnly strips every character outside A-Z from an already
// normalized string.
func LettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
