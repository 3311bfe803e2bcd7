package contact

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	MessageNameRequired    = "Name is required."
	MessageInvalidEmail    = "Please enter a valid email address."
	MessageMessageRequired = "Message is required."
)

// Form holds a contact form submission.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Errors maps form field names to the message shown next to the field.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Validate checks every field and collects all failures.
func Validate(f Form) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = MessageNameRequired
	}
	if !emailPattern.MatchString(f.Email) {
		errs["email"] = MessageInvalidEmail
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = MessageMessageRequired
	}
	return errs
}
