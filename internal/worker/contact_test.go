package worker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/entity"
)

func TestValidateContactForm_AllValid(t *testing.T) {
	v := validateContactForm(entity.ContactForm{
		Name:    "Al",
		Email:   "a@b.co",
		Subject: "Hi!",
		Message: "0123456789",
	})

	require.True(t, v.IsFormValid)
	for field, ok := range v.Fields {
		assert.True(t, ok, "field %s", field)
	}
}

func TestValidateContactForm_ShortMessageFlipsOnlyMessage(t *testing.T) {
	v := validateContactForm(entity.ContactForm{
		Name:    "Al",
		Email:   "a@b.co",
		Subject: "Hi!",
		Message: "012345678",
	})

	assert.False(t, v.IsFormValid)
	assert.False(t, v.Fields["message"])
	assert.True(t, v.Fields["name"])
	assert.True(t, v.Fields["email"])
	assert.True(t, v.Fields["subject"])
}

func TestValidateContactForm_TrimmedLengths(t *testing.T) {
	v := validateContactForm(entity.ContactForm{
		Name:    "  A  ",
		Email:   "a@b.co",
		Message: "         padded out",
	})
	assert.False(t, v.Fields["name"], "whitespace does not count toward name length")
	assert.False(t, v.Fields["message"])
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"first.last@example.com",
		"user+tag@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, validEmail(e), e)
	}

	invalid := []string{
		"",
		"plain",
		"@no-local.com",
		"no-domain@",
		"no-dot@domain",
		"spaces in@local.com",
		strings.Repeat("x", 65) + "@example.com",            // local part over 64
		"a@" + strings.Repeat("b", 250) + ".com",            // over 254 total
		"a@" + strings.Repeat("l", 64) + ".com",             // label over 63
	}
	for _, e := range invalid {
		assert.False(t, validEmail(e), e)
	}
}
