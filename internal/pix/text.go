package pix

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks, and recomposes.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritics: "São Paulo" -> "Sao Paulo".
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripNonDigits removes every non-digit rune.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitize uppercases an accent-stripped s, keeps only runes accepted by
// keep, and truncates to max runes. Disallowed runes are silently dropped;
// validation must run before anything sanitized here reaches a payload.
func sanitize(s string, max int, keep func(rune) bool) string {
	s = strings.ToUpper(StripAccents(s))
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if !keep(r) {
			continue
		}
		b.WriteRune(r)
		n++
		if n == max {
			break
		}
	}
	return b.String()
}

func isUpperAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isUpperAlnumOrSpace(r rune) bool {
	return isUpperAlnum(r) || r == ' '
}
