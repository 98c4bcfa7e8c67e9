package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength = 2
	CountryCode   = "+212"
	PhonePrefix   = CountryCode + " "
	PhoneDigits   = 9
	CodeLength    = 6
)

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	localPhoneRegex = regexp.MustCompile(`^[5-7][0-9]{8}$`)
	codeRegex       = regexp.MustCompile(`^[0-9]{6}$`)
)

func ValidateName(name string) Failure {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return FailureRequired
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return FailureTooShort
	}
	return FailureNone
}

func ValidateEmail(email string) Failure {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return FailureRequired
	}
	if !emailRegex.MatchString(trimmed) {
		return FailureInvalidFormat
	}
	return FailureNone
}

// ValidatePhone accepts Moroccan mobile numbers written as "+212 " followed by
// nine digits, spaces allowed between them.
func ValidatePhone(phone string) Failure {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return FailureRequired
	}
	if !strings.HasPrefix(trimmed, PhonePrefix) {
		return FailureInvalidPrefix
	}
	local := strings.ReplaceAll(strings.TrimPrefix(trimmed, PhonePrefix), " ", "")
	if utf8.RuneCountInString(local) != PhoneDigits {
		return FailureInvalidLength
	}
	if !localPhoneRegex.MatchString(local) {
		return FailureInvalidFormat
	}
	return FailureNone
}

func ValidateVerificationCode(code string) Failure {
	if code == "" {
		return FailureRequired
	}
	if utf8.RuneCountInString(code) != CodeLength {
		return FailureInvalidLength
	}
	if !codeRegex.MatchString(code) {
		return FailureInvalidFormat
	}
	return FailureNone
}

func ValidateContact(name, email, phone string) FieldErrors {
	errs := FieldErrors{}
	errs.add(FieldName, ValidateName(name))
	errs.add(FieldEmail, ValidateEmail(email))
	errs.add(FieldPhone, ValidatePhone(phone))
	return errs
}
