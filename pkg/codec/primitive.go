package codec

import (
	"errors"
	"io"
	"math"
	"unicode/utf8"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Reader decodes the primitive types of the mod format from a seekable stream.
// All multi-byte values are little-endian.
type Reader struct {
	stream *kaitai.Stream
	size   int64
	text   *encoding.Decoder
}

// NewReader creates a reader positioned at the current offset of rs
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	stream := kaitai.NewStream(rs)
	size, err := stream.Size()
	if err != nil {
		return nil, err
	}
	return &Reader{
		stream: stream,
		size:   size,
		text:   xunicode.UTF8.NewDecoder(),
	}, nil
}

// Offset returns the current read position.
func (r *Reader) Offset() int64 {
	pos, err := r.stream.Pos()
	if err != nil {
		return -1
	}
	return pos
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int64 {
	pos := r.Offset()
	if pos < 0 || pos > r.size {
		return 0
	}
	return r.size - pos
}

// ReadInt32 reads a signed 32-bit integer
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.stream.ReadS4le()
	if err != nil {
		return 0, truncated(err)
	}
	return v, nil
}

// ReadFloat32 reads an IEEE 754 single precision float
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.stream.ReadF4le()
	if err != nil {
		return 0, truncated(err)
	}
	return v, nil
}

// ReadBool reads a one byte boolean; any non-zero byte is true
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.stream.ReadU1()
	if err != nil {
		return false, truncated(err)
	}
	return v != 0, nil
}

// ReadBytes reads exactly n raw bytes
func (r *Reader) ReadBytes(n int32) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	// Refuse before allocating: the length comes straight from the file.
	if int64(n) > r.Remaining() {
		return nil, ErrStreamTruncated
	}
	b, err := r.stream.ReadBytes(int(n))
	if err != nil {
		return nil, truncated(err)
	}
	return b, nil
}

// ReadString reads a length-prefixed UTF-8 string. Malformed sequences are
// replaced with U+FFFD instead of failing.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	fixed, err := r.text.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(fixed), nil
}

// ReadRest reads every byte up to the end of the stream
func (r *Reader) ReadRest() ([]byte, error) {
	return r.stream.ReadBytesFull()
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrStreamTruncated
	}
	return err
}

// Writer encodes the primitive types of the mod format
type Writer struct {
	w *kaitai.Writer
}

// NewWriter creates a writer over w. Errors from w are returned unchanged.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: kaitai.NewWriter(w)}
}

// WriteInt32 writes a signed 32-bit integer
func (w *Writer) WriteInt32(v int32) error {
	return w.w.WriteS4le(v)
}

// WriteFloat32 writes an IEEE 754 single precision float
func (w *Writer) WriteFloat32(v float32) error {
	return w.w.WriteF4le(v)
}

// WriteBool writes a boolean as a single 0 or 1 byte
func (w *Writer) WriteBool(v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return w.w.WriteU1(b)
}

// WriteBytes writes raw bytes without a length prefix
func (w *Writer) WriteBytes(b []byte) error {
	return w.w.WriteBytes(b)
}

// WriteString writes the UTF-8 byte length followed by the bytes
func (w *Writer) WriteString(s string) error {
	if len(s) > math.MaxInt32 {
		return ErrValueTooLarge
	}
	if err := w.WriteInt32(int32(len(s))); err != nil {
		return err
	}
	return w.w.WriteBytes([]byte(s))
}
