package pix

import "regexp"

var (
	txidPattern   = regexp.MustCompile(`^[A-Za-z0-9]{1,25}$`)
	amountPattern = regexp.MustCompile(`^\d+(\.\d{2})?$`)
)

// Validate checks a fully normalized field set against the payload's
// structural rules. It returns a field-name -> message map; an empty map
// means the data is ready for GeneratePayload. Every rule is evaluated, none
// short-circuits the others, and nothing here ever panics: all failures are
// entries in the map.
func Validate(d CardData) map[string]string {
	errs := make(map[string]string)

	if len(d.Name) < 3 {
		errs["name"] = "Nome é obrigatório."
	}

	if len(d.Key) < 11 {
		errs["key"] = "Chave PIX inválida."
	} else {
		digits := StripNonDigits(d.Key)
		if len(digits) == 14 && !ValidCNPJ(digits) {
			errs["key"] = "CNPJ inválido. Verifique os dígitos."
		}
	}

	if len(d.City) < 3 {
		errs["city"] = "Cidade é obrigatória."
	}

	if !txidPattern.MatchString(d.TxID) {
		errs["txid"] = "TXID inválido (1-25 chars, A-Z, 0-9)."
	}

	if d.Amount != "" && !amountPattern.MatchString(d.Amount) {
		errs["amount"] = "Valor inválido."
	}

	return errs
}

// ValidCNPJ runs the modulus-11 check-digit algorithm over a 14-digit CNPJ.
// Anything that is not exactly 14 digits, or that repeats a single digit 14
// times, fails.
func ValidCNPJ(cnpj string) bool {
	digits := StripNonDigits(cnpj)
	if len(digits) != 14 {
		return false
	}

	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cnpjCheckDigit(digits, 12, 5) == int(digits[12]-'0') &&
		cnpjCheckDigit(digits, 13, 6) == int(digits[13]-'0')
}

// cnpjCheckDigit computes one check digit over the first n digits with a
// weight starting at startWeight, decrementing to 2 and wrapping back to 9.
func cnpjCheckDigit(digits string, n, startWeight int) int {
	sum := 0
	weight := startWeight
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * weight
		if weight == 2 {
			weight = 9
		} else {
			weight--
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}
