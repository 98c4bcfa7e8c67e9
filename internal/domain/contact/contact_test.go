//go:build unit

package contact_test

import (
	"strings"
	"testing"

	"homeservice-booking/internal/domain/contact"

	"github.com/stretchr/testify/assert"
)

type validateCase struct {
	name  string
	input string
	want  contact.Failure
}

func runValidateCases(t *testing.T, fn func(string) contact.Failure, cases []validateCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fn(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, fn(tc.input), "validator must be idempotent")
		})
	}
}

func TestValidateName(t *testing.T) {
	runValidateCases(t, contact.ValidateName, []validateCase{
		{name: "full name", input: "Jane Doe"},
		{name: "two characters", input: "Jo"},
		{name: "empty", input: "", want: contact.FailureRequired},
		{name: "whitespace only", input: "   ", want: contact.FailureRequired},
		{name: "single character after trim", input: "  J ", want: contact.FailureTooShort},
		{name: "multibyte two characters", input: "Éa"},
	})
}

func TestValidateEmail(t *testing.T) {
	runValidateCases(t, contact.ValidateEmail, []validateCase{
		{name: "short valid", input: "a@b.co"},
		{name: "regular", input: "jane@x.com"},
		{name: "missing tld", input: "a@b", want: contact.FailureInvalidFormat},
		{name: "missing at", input: "ab.co", want: contact.FailureInvalidFormat},
		{name: "empty", input: "", want: contact.FailureRequired},
		{name: "inner whitespace", input: "a b@c.co", want: contact.FailureInvalidFormat},
		{name: "double at", input: "a@@b.co", want: contact.FailureInvalidFormat},
	})
}

func TestValidatePhone(t *testing.T) {
	runValidateCases(t, contact.ValidatePhone, []validateCase{
		{name: "formatted mobile", input: "+212 6 12 34 56 78"},
		{name: "without inner spaces", input: "+212 612345678"},
		{name: "leading 5", input: "+212 5 00 00 00 01"},
		{name: "leading 7", input: "+212 7 00 00 00 01"},
		{name: "invalid leading digit", input: "+212 4 12 34 56 78", want: contact.FailureInvalidFormat},
		{name: "too short", input: "+212 6 12 34 56", want: contact.FailureInvalidLength},
		{name: "too long", input: "+212 6 12 34 56 789", want: contact.FailureInvalidLength},
		{name: "letters", input: "+212 6 12 34 56 7a", want: contact.FailureInvalidFormat},
		{name: "missing prefix", input: "0612345678", want: contact.FailureInvalidPrefix},
		{name: "prefix without space", input: "+212612345678", want: contact.FailureInvalidPrefix},
		{name: "empty", input: "", want: contact.FailureRequired},
	})
}

func TestValidateVerificationCode(t *testing.T) {
	runValidateCases(t, contact.ValidateVerificationCode, []validateCase{
		{name: "six digits", input: "123456"},
		{name: "empty", input: "", want: contact.FailureRequired},
		{name: "five digits", input: "12345", want: contact.FailureInvalidLength},
		{name: "seven digits", input: "1234567", want: contact.FailureInvalidLength},
		{name: "letters", input: "12a456", want: contact.FailureInvalidFormat},
	})
}

func TestValidateContact(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		errs := contact.ValidateContact("Jane Doe", "jane@x.com", "+212 6 00 00 00 01")
		assert.True(t, errs.OK())
	})

	t.Run("collects every failure", func(t *testing.T) {
		errs := contact.ValidateContact("", "jane", "+212 4 00 00 00 01")
		assert.False(t, errs.OK())
		assert.Equal(t, contact.FieldErrors{
			contact.FieldName:  contact.FailureRequired,
			contact.FieldEmail: contact.FailureInvalidFormat,
			contact.FieldPhone: contact.FailureInvalidFormat,
		}, errs)

		msgs := errs.Messages()
		assert.Equal(t, "Name is required", msgs["name"])
		assert.Equal(t, "Please enter a valid email address", msgs["email"])
		assert.NotEmpty(t, msgs["phone"])
	})
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty restores prefix", input: "", want: "+212 "},
		{name: "partial prefix restores prefix", input: "+21", want: "+212 "},
		{name: "prefix without space", input: "+2126", want: "+212 6"},
		{name: "first group", input: "+212 6", want: "+212 6"},
		{name: "second group", input: "+212 612", want: "+212 6 12"},
		{name: "full number", input: "+212 612345678", want: "+212 6 12 34 56 78"},
		{name: "already formatted", input: "+212 6 12 34 56 78", want: "+212 6 12 34 56 78"},
		{name: "truncates extra digits", input: "+212 6123456789", want: "+212 6 12 34 56 78"},
		{name: "strips non digits", input: "+212 6-12.34/56 78", want: "+212 6 12 34 56 78"},
		{name: "raw local digits", input: "612345678", want: "+212 6 12 34 56 78"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contact.FormatPhone(tc.input))
		})
	}
}

func TestFormatPhoneProperties(t *testing.T) {
	inputs := []string{
		"", "+", "+2", "+212", "+212 ", "+212 6", "abc", "00212 6 12",
		"+212 6 12 34 56 78", "612345678901", "  7 00 ", "+33 6 12 34 56 78",
		"+212 +212 6", "٦١٢", "+212 6 12 34 56 78 99",
	}
	for _, in := range inputs {
		once := contact.FormatPhone(in)
		assert.True(t, strings.HasPrefix(once, contact.PhonePrefix), "input %q", in)
		assert.Equal(t, once, contact.FormatPhone(once), "input %q", in)
	}
}

func TestNormalizePhone(t *testing.T) {
	local, ok := contact.NormalizePhone(" +212 6 12 34 56 78 ")
	assert.True(t, ok)
	assert.Equal(t, "612345678", local)

	_, ok = contact.NormalizePhone("+212 4 12 34 56 78")
	assert.False(t, ok)
}

func TestFieldErrorsErr(t *testing.T) {
	assert.NoError(t, contact.FieldErrors{}.Err())

	err := contact.ValidateContact("", "a@b.co", "").Err()
	var verr *contact.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid contact fields: name, phone", err.Error())
	assert.Len(t, verr.Errors, 2)
}
