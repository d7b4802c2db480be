// Package validate checks untrusted form payloads against the accepted
// shape of each submission type. Validation is pure: it never touches
// storage and aggregates every failing field into a single error so the
// caller can surface one readable message.
package validate

import (
	"regexp"
	"strings"

	"github.com/halland-longevity/backend/internal/model"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

// emailPattern accepts anything of the form local@domain.tld with no
// whitespace. Deliberately loose; real verification happens when mail
// to the address bounces or not.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every failed constraint of one payload. It implements
// error; the message lists all failures, not just the first.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// ContactMessage validates a contact form payload. Phone is optional
// free-form text; the privacy-consent checkbox is a client-side concern
// and is not part of the server shape.
func ContactMessage(in *model.ContactMessageInput) error {
	var errs Errors
	if len([]rune(in.FirstName)) < minNameLength {
		errs = append(errs, FieldError{"firstName", "first name must be at least 2 characters"})
	}
	if len([]rune(in.LastName)) < minNameLength {
		errs = append(errs, FieldError{"lastName", "last name must be at least 2 characters"})
	}
	if !Email(in.Email) {
		errs = append(errs, FieldError{"email", "must be a valid email address"})
	}
	if in.Interest == "" {
		errs = append(errs, FieldError{"interest", "an area of interest is required"})
	}
	if len([]rune(in.Message)) < minMessageLength {
		errs = append(errs, FieldError{"message", "message must be at least 10 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewsletterSubscription validates a newsletter signup payload.
func NewsletterSubscription(in *model.NewsletterSubscriptionInput) error {
	if !Email(in.Email) {
		return Errors{{Field: "email", Message: "must be a valid email address"}}
	}
	return nil
}
