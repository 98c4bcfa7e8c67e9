package contact

import "strings"

// phoneGroups are the digit group sizes of the display form "+212 X XX XX XX XX".
var phoneGroups = []int{1, 2, 2, 2, 2}

// FormatPhone rewrites raw input into the display form. The country prefix is
// always present in the result, including when the input was cut into it.
func FormatPhone(raw string) string {
	rest := raw
	switch {
	case strings.HasPrefix(rest, PhonePrefix):
		rest = strings.TrimPrefix(rest, PhonePrefix)
	case strings.HasPrefix(rest, CountryCode):
		rest = strings.TrimPrefix(rest, CountryCode)
	case strings.HasPrefix(PhonePrefix, rest):
		rest = ""
	}

	digits := make([]byte, 0, PhoneDigits)
	for i := 0; i < len(rest) && len(digits) < PhoneDigits; i++ {
		if c := rest[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}

	var b strings.Builder
	b.WriteString(PhonePrefix)
	pos := 0
	for i, size := range phoneGroups {
		if pos >= len(digits) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(pos+size, len(digits))
		b.Write(digits[pos:end])
		pos = end
	}
	return b.String()
}

// NormalizePhone returns the nine local digits of a valid phone number.
func NormalizePhone(phone string) (string, bool) {
	if !ValidatePhone(phone).OK() {
		return "", false
	}
	trimmed := strings.TrimSpace(phone)
	return strings.ReplaceAll(strings.TrimPrefix(trimmed, PhonePrefix), " ", ""), true
}
