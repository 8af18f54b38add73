package store

import (
	"bytes"
	"os"

	"github.com/ssargent/kenshimod/pkg/codec"
)

// ModReader decodes one mod file. The file is opened, read and closed
// within a single Read call.
type ModReader struct {
	codec  *codec.ModCodec
	config ModReaderConfig
}

// NewModReader creates a new mod reader for the specified file
func NewModReader(config ModReaderConfig, c *codec.ModCodec) *ModReader {
	if c == nil {
		c = codec.NewModCodec()
	}
	return &ModReader{codec: c, config: config}
}

// Read decodes the file, up to the configured record limit
func (r *ModReader) Read() (*codec.ModFile, error) {
	// A full decode touches every byte, so load it in one read instead of
	// issuing a syscall per primitive.
	if r.config.MaxRecords < 0 {
		_, mf, err := r.ReadRaw()
		return mf, err
	}

	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, &FileError{Op: "read", Path: r.config.FilePath, Err: err}
	}
	defer file.Close()

	mf, err := r.codec.DecodeLimit(file, r.config.MaxRecords)
	if err != nil {
		return nil, &FileError{Op: "decode", Path: r.config.FilePath, Err: err}
	}
	return mf, nil
}

// ReadRaw loads the whole file and decodes it, returning the bytes that
// were decoded alongside the tree
func (r *ModReader) ReadRaw() ([]byte, *codec.ModFile, error) {
	data, err := os.ReadFile(r.config.FilePath)
	if err != nil {
		return nil, nil, &FileError{Op: "read", Path: r.config.FilePath, Err: err}
	}
	mf, err := r.codec.DecodeLimit(bytes.NewReader(data), r.config.MaxRecords)
	if err != nil {
		return nil, nil, &FileError{Op: "decode", Path: r.config.FilePath, Err: err}
	}
	return data, mf, nil
}

// Path returns the file path
func (r *ModReader) Path() string {
	return r.config.FilePath
}
