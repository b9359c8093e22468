package pix

import "strings"

// ApplyMask renders rawDigits through a display mask like "0000-0" or
// "00.000-0". '0' and '#' consume one input digit; every other mask rune
// passes through literally. Rendering stops when input digits run out, so a
// partial input renders partially and is never padded.
func ApplyMask(rawDigits, mask string) string {
	digits := StripNonDigits(rawDigits)
	var b strings.Builder
	b.Grow(len(mask))

	di := 0
	for _, m := range mask {
		if di >= len(digits) {
			break
		}
		if m == '0' || m == '#' {
			b.WriteByte(digits[di])
			di++
		} else {
			b.WriteRune(m)
		}
	}
	return b.String()
}

// FormatCNPJ renders a CNPJ as "00.000.000/0001-00". Partial inputs render
// partially, like ApplyMask.
func FormatCNPJ(value string) string {
	return ApplyMask(value, "00.000.000/0000-00")
}
