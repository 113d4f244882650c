// Package validator provides the email validation capability consumed by
// the signup controller.
package validator

import "regexp"

// EmailValidator reports whether an email address is acceptable. The boolean
// verdict and the error are distinct channels: false means the address was
// inspected and rejected, a non-nil error means the check itself failed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegexEmailValidator validates email format with a conservative regex. It
// never fails; remote validators (MX lookup, mailbox probing) may.
type RegexEmailValidator struct{}

// NewRegexEmailValidator creates the default email validator.
func NewRegexEmailValidator() *RegexEmailValidator {
	return &RegexEmailValidator{}
}

// IsValid reports whether the address matches the email format.
func (v *RegexEmailValidator) IsValid(email string) (bool, error) {
	return emailRegex.MatchString(email), nil
}
