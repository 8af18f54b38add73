package store

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// ModReaderConfig holds configuration for the mod reader
type ModReaderConfig struct {
	FilePath   string // Path to the mod file
	MaxRecords int    // Records to decode (negative = all)
}

// ModWriterConfig holds configuration for the mod writer
type ModWriterConfig struct {
	FilePath   string // Path of the mod file to replace
	BufferSize int    // Write buffer size
	Fsync      bool   // Fsync the temp file before renaming it into place
	Backup     bool   // Copy the existing file to BackupPath once before replacing it
}

// ModStoreConfig holds configuration for the mod store
type ModStoreConfig struct {
	Backup        bool                  // Keep a .backup copy of the first version overwritten
	Fsync         bool                  // Fsync on save
	SummaryChars  int                   // Character budget for Summarize
	SampleRecords int                   // Records decoded for Summarize
	Logger        *slog.Logger          // Destination for diagnostics (nil = discard)
	Registerer    prometheus.Registerer // Where metrics are registered (nil = unregistered)
}

// FileError records the operation and path of a failed load or save
type FileError struct {
	Op   string // "read", "decode", "encode", "write", "backup"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
