package nas

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when Decode is handed a nil or empty buffer.
	ErrEmptyInput = errors.New("nas: empty input buffer")
	// ErrShortInput is returned when the buffer ends before the envelope
	// header is complete.
	ErrShortInput = errors.New("nas: input shorter than message header")
	// ErrBadPolicy is returned for a policy with out-of-range settings.
	ErrBadPolicy = errors.New("nas: invalid decode policy")
)
