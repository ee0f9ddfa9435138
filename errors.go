package ezmenulib

import "errors"

// Common errors
var (
	// ErrInvalidDefault is returned when a configured default value cannot be
	// parsed as the target type. Defaults bypass validation, so a broken one
	// is a configuration mistake and is never retried.
	ErrInvalidDefault = errors.New("invalid default value")
	// ErrNoChoices is returned when a selectable prompt or a menu level has
	// an empty choice list.
	ErrNoChoices = errors.New("no choices to select from")
	// ErrDefaultOutOfRange is returned when the default index of a selectable
	// prompt does not point into its choice list.
	ErrDefaultOutOfRange = errors.New("default choice index out of range")
	// ErrUnsupportedType is returned when a prompted type has no built-in
	// parser and does not implement encoding.TextUnmarshaler.
	ErrUnsupportedType = errors.New("unsupported prompt value type")
	// ErrInterrupted is returned when the user presses Ctrl+C in an
	// interactive picker.
	ErrInterrupted = errors.New("interrupted")
)
