package lookup

import (
	"errors"
)

// DefaultDecimalFloor is the smallest value an all-digit query must have to
// be read as a decimal code point: the space character.
const DefaultDecimalFloor = ' '

// Sentinel errors wrapped by the resolvers.
var (
	// ErrInvalidHex is returned when the text after "U+" is not a hex number.
	ErrInvalidHex = errors.New("invalid hex code point")

	// ErrInvalidDecimal is returned when a numeric query is not a decimal integer.
	ErrInvalidDecimal = errors.New("invalid decimal code point")

	// ErrOutOfRange is returned for values outside 0..0x10FFFF.
	ErrOutOfRange = errors.New("code point out of range")

	// ErrInvalidChar is returned when a one-character query is not valid UTF-8.
	ErrInvalidChar = errors.New("invalid character")
)

// Option configures an [Engine].
type Option func(*Engine)

// WithDecimalFloor sets the minimum value for the decimal code point branch.
// All-digit queries below it fall through to the character or name branches.
func WithDecimalFloor(floor int64) Option {
	return func(e *Engine) {
		e.decimalFloor = floor
	}
}
