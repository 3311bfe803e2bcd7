package site

import "errors"

var (
	// ErrNotFound signals that no page exists for the requested route.
	ErrNotFound = errors.New("page not found")
	// ErrContactDisabled is returned when the contact form is switched off.
	ErrContactDisabled = errors.New("contact form disabled")
)
