package types

import "errors"

var (
	// ErrParse marks malformed version text or dependency table input. Items
	// failing with ErrParse are always excluded from approval.
	ErrParse = errors.New("parse error")

	// ErrTransport marks a failed call to GitHub (API or gh CLI), including
	// a payload that could not be decoded.
	ErrTransport = errors.New("transport error")

	// ErrInvalidArgument marks bad user input such as a malformed repository name.
	ErrInvalidArgument = errors.New("invalid argument")
)
