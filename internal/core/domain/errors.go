package domain

import "errors"

// Error strings double as wire-facing messages, so they keep their casing.
var (
	ErrUserNotFound  = errors.New("User not found")
	ErrEventNotFound = errors.New("Event not found")
	ErrEmailNotFound = errors.New("Email not found")
	ErrTeamNotFound  = errors.New("Team not found")
	ErrFileNotFound  = errors.New("File not found")
)
