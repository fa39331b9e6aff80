package multicrc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when the start and end indexes do not
	// describe a usable range of the input.
	ErrInvalidRange = errors.New("invalid range")
	// ErrUnsupportedWidth is returned for widths other than 8, 16 and 32.
	ErrUnsupportedWidth = errors.New("unsupported width")
)

// ValidationError is a parameter validation failure. Its message is meant
// to be shown to the user as is; errors.Is matches the wrapped kind.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func errEndBeforeStart() error {
	return &ValidationError{Kind: ErrInvalidRange, Msg: "end index must not precede start index"}
}

func errRangeTooShort() error {
	return &ValidationError{Kind: ErrInvalidRange, Msg: "length of data to compute CRC over must be greater than 0"}
}

func errOutOfBounds(start, end, n int) error {
	return &ValidationError{
		Kind: ErrInvalidRange,
		Msg:  fmt.Sprintf("range [%d, %d] is out of bounds for input of length %d", start, end, n),
	}
}

func errUnsupportedWidth() error {
	return &ValidationError{Kind: ErrUnsupportedWidth, Msg: "CRC size must be 8, 16, or 32 bits"}
}
