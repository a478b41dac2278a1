package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failure kinds. Every error returned by this package is a
// *ParseError wrapping exactly one of these.
var (
	ErrInvalidCommandFormat = errors.New("invalid command format")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrArgumentParse        = errors.New("invalid command arguments")
)

// User-facing messages.
const (
	MessageInvalidCommandFormat = "Invalid command format!"
	MessageUnknownCommand       = "Unknown command"
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageNoCriteria           = "At least one search criterion must be provided."
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
)

// ParseError describes why a line could not be turned into a command.
type ParseError struct {
	Message string // what went wrong
	Usage   string // usage of the command the user tried, if known
	Kind    error  // one of the Err* values above
	Cause   error  // field validation error, if any
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

// Unwrap exposes both the failure kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// formatError reports structurally invalid arguments.
func formatError(usage string) error {
	return &ParseError{Message: MessageInvalidCommandFormat, Usage: usage, Kind: ErrArgumentParse}
}

// messageError reports invalid arguments with a specific message.
func messageError(usage, msg string) error {
	return &ParseError{Message: MessageInvalidCommandFormat + " " + msg, Usage: usage, Kind: ErrArgumentParse}
}

// fieldError reports a value that failed validation.
func fieldError(usage string, cause error) error {
	return &ParseError{
		Message: MessageInvalidCommandFormat + " " + capitalize(cause.Error()) + ".",
		Usage:   usage,
		Kind:    ErrArgumentParse,
		Cause:   cause,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func duplicatePrefixError(usage string, dups []Prefix) error {
	return messageError(usage, fmt.Sprintf("Multiple values specified for single-valued field(s): %v.", dups))
}
