package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrStreamTruncated is returned when the input ends in the middle of a primitive.
	ErrStreamTruncated = errors.New("unexpected end of stream")
	// ErrUnrecognizedFileType is returned for a header discriminator other than 0x10 or 0x11.
	ErrUnrecognizedFileType = errors.New("unrecognized file type")
	// ErrNegativeLength is returned when a length prefix or count is negative.
	ErrNegativeLength = errors.New("negative length or count")
	// ErrIncompleteFile is returned when encoding a tree decoded with a record limit.
	ErrIncompleteFile = errors.New("mod file was decoded partially")
	// ErrMissingHeader is returned when encoding a ModFile without a header.
	ErrMissingHeader = errors.New("mod file has no header")
	// ErrValueTooLarge is returned when a string or blob does not fit a 32-bit length prefix.
	ErrValueTooLarge = errors.New("value too large for length prefix")
)

// FileTypeError reports the discriminator of a header that could not be decoded
type FileTypeError struct {
	Code int32
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("%v: 0x%x", ErrUnrecognizedFileType, e.Code)
}

func (e *FileTypeError) Unwrap() error {
	return ErrUnrecognizedFileType
}

// DecodeError describes where in the stream decoding failed
type DecodeError struct {
	Section string // "header", "record 3", "leftover"
	Offset  int64  // stream offset at the time of failure
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.Section, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
