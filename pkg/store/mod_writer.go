package store

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/kenshimod/pkg/codec"
)

const defaultBufferSize = 64 * 1024

// ModWriter replaces a mod file with an encoded ModFile. The new content is
// written to a temp file in the same directory and renamed over the target,
// so readers never see a half written file.
type ModWriter struct {
	codec  *codec.ModCodec
	config ModWriterConfig
}

// NewModWriter creates a new mod writer with the given configuration
func NewModWriter(config ModWriterConfig, c *codec.ModCodec) *ModWriter {
	if c == nil {
		c = codec.NewModCodec()
	}
	if config.BufferSize <= 0 {
		config.BufferSize = defaultBufferSize
	}
	return &ModWriter{codec: c, config: config}
}

// BackupPath returns where the backup of a mod file is kept: the file name
// without its extension plus ".backup", in the same directory
func BackupPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), stem+".backup")
}

// Write encodes mf and atomically replaces the target file. It reports
// whether a backup was created.
func (w *ModWriter) Write(mf *codec.ModFile) (backedUp bool, err error) {
	path := w.config.FilePath
	if mf.Partial() {
		return false, &FileError{Op: "encode", Path: path, Err: codec.ErrIncompleteFile}
	}

	perm := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
		if w.config.Backup {
			if backedUp, err = backup(path, BackupPath(path), perm); err != nil {
				return false, &FileError{Op: "backup", Path: path, Err: err}
			}
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return backedUp, &FileError{Op: "write", Path: path, Err: err}
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+ksuid.New().String()+".tmp")
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return backedUp, &FileError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriterSize(file, w.config.BufferSize)
	if err = w.codec.Encode(writer, mf); err != nil {
		return backedUp, &FileError{Op: "encode", Path: path, Err: err}
	}
	if err = writer.Flush(); err != nil {
		return backedUp, &FileError{Op: "write", Path: path, Err: err}
	}
	if w.config.Fsync {
		if err = file.Sync(); err != nil {
			return backedUp, &FileError{Op: "write", Path: path, Err: err}
		}
	}
	if err = file.Close(); err != nil {
		return backedUp, &FileError{Op: "write", Path: path, Err: err}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return backedUp, &FileError{Op: "write", Path: path, Err: err}
	}
	return backedUp, nil
}

// Path returns the file path
func (w *ModWriter) Path() string {
	return w.config.FilePath
}

// backup copies src to dst unless dst already exists
func backup(src, dst string, perm os.FileMode) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return false, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return false, err
	}
	return true, nil
}
