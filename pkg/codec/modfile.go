package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// NoLimit decodes every record the header declares
const NoLimit = -1

// ModFile is a decoded mod file
type ModFile struct {
	Header  Header    `yaml:"header" json:"header"`
	Records []*Record `yaml:"records" json:"records"`
	// Leftover holds bytes after the last record, kept for lossless write-back.
	// It is only captured when every declared record was decoded.
	Leftover []byte `yaml:"leftover,omitempty" json:"leftover,omitempty"`

	partial bool
}

// Partial reports whether the file was decoded with a record limit that cut
// off declared records. A partial file cannot be encoded.
func (m *ModFile) Partial() bool {
	return m.partial
}

// Info is the header metadata of a mod file
type Info struct {
	FileType     FileType `yaml:"file_type" json:"file_type"`
	Version      int32    `yaml:"version" json:"version"`
	Author       string   `yaml:"author,omitempty" json:"author,omitempty"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Dependencies string   `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	References   string   `yaml:"references,omitempty" json:"references,omitempty"`
	RecordCount  int32    `yaml:"record_count" json:"record_count"`
	DetailsSize  int      `yaml:"details_size,omitempty" json:"details_size,omitempty"`
}

// Info returns the header metadata
func (m *ModFile) Info() Info {
	if m.Header == nil {
		return Info{}
	}
	info := Info{
		FileType:    m.Header.FileType(),
		Version:     m.Header.Version(),
		RecordCount: m.Header.DeclaredRecords(),
	}
	switch h := m.Header.(type) {
	case *StandardHeader:
		info.Author = h.Author
		info.Description = h.Description
		info.Dependencies = h.Dependencies
		info.References = h.References
	case *DetailsHeader:
		info.DetailsSize = len(h.Details)
	}
	return info
}

// Option configures a ModCodec
type Option func(*ModCodec)

// WithLogger sets the logger that receives decode diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *ModCodec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ModCodec decodes and encodes whole mod files
type ModCodec struct {
	logger *slog.Logger
}

// NewModCodec creates a codec. Without WithLogger diagnostics are discarded.
func NewModCodec(opts ...Option) *ModCodec {
	c := &ModCodec{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode reads a complete mod file
func (c *ModCodec) Decode(rs io.ReadSeeker) (*ModFile, error) {
	return c.DecodeLimit(rs, NoLimit)
}

// DecodeLimit reads the header and at most maxRecords records. A negative
// maxRecords means no limit. Trailing bytes are captured only when no
// declared record was skipped.
func (c *ModCodec) DecodeLimit(rs io.ReadSeeker, maxRecords int) (*ModFile, error) {
	r, err := NewReader(rs)
	if err != nil {
		return nil, err
	}

	header, err := ReadHeader(r)
	if err != nil {
		return nil, &DecodeError{Section: "header", Offset: r.Offset(), Err: err}
	}

	declared := int(header.DeclaredRecords())
	if declared < 0 {
		return nil, &DecodeError{Section: "header", Offset: r.Offset(), Err: ErrNegativeLength}
	}
	n := declared
	if maxRecords >= 0 && maxRecords < n {
		n = maxRecords
	}

	mf := &ModFile{
		Header:  header,
		Records: make([]*Record, 0, min(max(n, 0), 1024)),
		partial: n < declared,
	}
	for i := 0; i < n; i++ {
		rec, err := ReadRecord(r)
		if err != nil {
			return nil, &DecodeError{Section: fmt.Sprintf("record %d", i), Offset: r.Offset(), Err: err}
		}
		mf.Records = append(mf.Records, rec)
	}

	if mf.partial {
		return mf, nil
	}
	if remaining := r.Remaining(); remaining > 0 {
		leftover, err := r.ReadRest()
		if err != nil {
			return nil, &DecodeError{Section: "leftover", Offset: r.Offset(), Err: err}
		}
		mf.Leftover = leftover
		c.logger.Warn("leftover bytes after last record", "bytes", len(leftover), "records", len(mf.Records))
	}
	return mf, nil
}

// DecodeBytes decodes a complete mod file held in memory
func (c *ModCodec) DecodeBytes(data []byte) (*ModFile, error) {
	return c.Decode(bytes.NewReader(data))
}

// Encode writes mf to w: header, records in order, then Leftover verbatim.
// The header record count is written as len(mf.Records).
func (c *ModCodec) Encode(w io.Writer, mf *ModFile) error {
	if mf.partial {
		return ErrIncompleteFile
	}
	if mf.Header == nil {
		return ErrMissingHeader
	}
	if len(mf.Records) > math.MaxInt32 {
		return ErrValueTooLarge
	}

	bw := bufio.NewWriter(w)
	pw := NewWriter(bw)
	if err := WriteHeader(pw, mf.Header, int32(len(mf.Records))); err != nil {
		return err
	}
	for _, rec := range mf.Records {
		if err := WriteRecord(pw, rec); err != nil {
			return err
		}
	}
	if mf.Leftover != nil {
		if err := pw.WriteBytes(mf.Leftover); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeBytes encodes mf into a new byte slice
func (c *ModCodec) EncodeBytes(mf *ModFile) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, mf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
