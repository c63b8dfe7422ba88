package fragment

import (
	"errors"
	"fmt"
)

// Errors returned by table and cursor operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the logical text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrTruncatedSequence indicates the input ended in the middle of a
	// multi-byte UTF-8 sequence.
	ErrTruncatedSequence = errors.New("truncated utf-8 sequence")

	// ErrInvalidSequence indicates bytes that do not form a valid UTF-8 rune.
	ErrInvalidSequence = errors.New("invalid utf-8 sequence")
)

// OffsetError reports a logical offset that could not be resolved.
type OffsetError struct {
	Offset int
	Len    int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset %d: %v (length %d)", e.Offset, ErrOffsetOutOfRange, e.Len)
}

// Unwrap returns ErrOffsetOutOfRange.
func (e *OffsetError) Unwrap() error {
	return ErrOffsetOutOfRange
}

// DecodeError reports a rune that could not be decoded.
type DecodeError struct {
	// Offset is the logical byte offset where the bad sequence starts.
	Offset int
	// Bytes holds the offending bytes, possibly gathered from several fragments.
	Bytes []byte
	// Err is ErrTruncatedSequence or ErrInvalidSequence.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("offset %d: %v % x", e.Offset, e.Err, e.Bytes)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
