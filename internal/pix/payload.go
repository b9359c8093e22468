package pix

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// GUI is the global unique identifier of the Brazilian instant-payment
// scheme, embedded in the merchant account information field.
const GUI = "br.gov.bcb.pix"

// emv encodes one tag-length-value field. The length is the byte length of
// the value as a two-digit decimal; values longer than 99 bytes are
// unrepresentable and must be prevented upstream by the normalizer's
// max-length truncation.
func emv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// GeneratePayload serializes a validated field set into the complete
// scannable BR Code string, checksum included. It performs no validation of
// its own; sanitization here is best-effort and silently drops disallowed
// characters, so callers must only invoke it when Validate returned an empty
// map. Given validated input the function is pure and total.
func GeneratePayload(d CardData) string {
	// Amount is present only when it parses to a value greater than zero;
	// presence switches the point-of-initiation method.
	amount := ""
	if d.Amount != "" {
		if v, err := strconv.ParseFloat(d.Amount, 64); err == nil && v > 0 {
			amount = strconv.FormatFloat(v, 'f', 2, 64)
		}
	}

	name := sanitize(d.Name, 25, isUpperAlnumOrSpace)
	city := sanitize(d.City, 15, isUpperAlnumOrSpace)
	txid := sanitize(d.TxID, 25, isUpperAlnum)
	if txid == "" {
		txid = "***"
	}
	message := ""
	if d.Message != "" {
		message = truncateBytes(strings.ToUpper(StripAccents(d.Message)), 72)
	}

	// The key is embedded digits-only regardless of how it is displayed.
	key := StripNonDigits(d.Key)

	initiation := "11"
	if amount != "" {
		initiation = "12"
	}

	account := emv("00", GUI) + emv("01", key)
	if message != "" {
		account += emv("02", message)
	}

	var b strings.Builder
	b.WriteString(emv("00", "01"))       // payload format indicator
	b.WriteString(emv("01", initiation)) // point of initiation method
	b.WriteString(emv("26", account))    // merchant account information
	b.WriteString(emv("52", "0000"))     // merchant category code
	b.WriteString(emv("53", "986"))      // transaction currency (BRL)
	if amount != "" {
		// The amount field must precede the country code; some decoders
		// depend on this ordering.
		b.WriteString(emv("54", amount))
	}
	b.WriteString(emv("58", "BR"))            // country code
	b.WriteString(emv("59", name))            // merchant name
	b.WriteString(emv("60", city))            // merchant city
	b.WriteString(emv("62", emv("05", txid))) // additional data: reference label
	b.WriteString("6304")                     // CRC tag + length placeholder

	body := b.String()
	return body + CRC16(body)
}

// truncateBytes cuts s to at most max bytes without splitting a rune. TLV
// lengths count bytes, so the message cap must be enforced in bytes or a
// multibyte message could overflow the two-digit length prefix.
func truncateBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
