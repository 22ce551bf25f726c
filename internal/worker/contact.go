package worker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio/internal/domain/entity"
)

const (
	minNameLen    = 2
	minMessageLen = 10
	maxEmailLen   = 254
)

// Bounded quantifiers keep the pattern backtracking-safe: local part up to
// 64 chars, each domain label up to 63, at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]{1,64}@(?:[A-Za-z0-9\-]{1,63}\.)+[A-Za-z]{2,63}$`)

// validateContactForm applies the field-specific rules. Fields without a
// rule (subject) are always valid.
func validateContactForm(form entity.ContactForm) entity.ContactValidation {
	fields := map[string]bool{
		"name":    utf8.RuneCountInString(strings.TrimSpace(form.Name)) >= minNameLen,
		"email":   validEmail(form.Email),
		"subject": true,
		"message": utf8.RuneCountInString(strings.TrimSpace(form.Message)) >= minMessageLen,
	}

	valid := true
	for _, ok := range fields {
		valid = valid && ok
	}
	return entity.ContactValidation{Fields: fields, IsFormValid: valid}
}

func validEmail(email string) bool {
	return len(email) <= maxEmailLen && emailPattern.MatchString(email)
}
