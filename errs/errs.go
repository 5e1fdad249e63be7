// Package errs defines the sentinel error kinds shared by the chtype, value,
// proto, column, and row packages.
package errs

import "errors"

var (
	// ErrBadType indicates a textual type failed to parse: bad identifier,
	// wrong arity, missing quote, or mismatched nested parentheses.
	ErrBadType = errors.New("chwire: bad type")

	// ErrInvalidType indicates a structurally valid type violates a
	// composability rule (precision bounds, illegal nesting, illegal
	// key/value type).
	ErrInvalidType = errors.New("chwire: invalid type")

	// ErrTypeMismatch indicates a value does not conform to its declared type.
	ErrTypeMismatch = errors.New("chwire: type mismatch")

	// ErrProtocolError indicates invalid wire state: unexpected LowCardinality
	// version tag, truncated varint, dictionary index out of range, or a mask
	// byte not followed by a full body.
	ErrProtocolError = errors.New("chwire: protocol error")

	// ErrUnsupported indicates a constructor this module deliberately does not
	// implement (Enum* textual parsing, Nested, ...).
	ErrUnsupported = errors.New("chwire: unsupported")
)
