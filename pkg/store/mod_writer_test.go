package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/kenshimod/pkg/codec"
)

func TestBackupPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("mods", "weapons.mod"), filepath.Join("mods", "weapons.backup")},
		{filepath.Join("mods", "noext"), filepath.Join("mods", "noext.backup")},
		{filepath.Join("mods", "a.b.mod"), filepath.Join("mods", "a.b.backup")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, BackupPath(tt.path))
		})
	}
}

func TestModWriter_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "new.mod")

	writer := NewModWriter(ModWriterConfig{FilePath: path, Fsync: true, Backup: true}, nil)
	backedUp, err := writer.Write(sampleModFile(2))
	require.NoError(t, err)

	assert.False(t, backedUp)
	assert.FileExists(t, path)
	assert.NoFileExists(t, BackupPath(path))

	mf, err := NewModReader(ModReaderConfig{FilePath: path, MaxRecords: codec.NoLimit}, nil).Read()
	require.NoError(t, err)
	assert.Len(t, mf.Records, 2)
}

func TestModWriter_BackupOnce(t *testing.T) {
	dir := t.TempDir()
	path, original := writeModFile(t, dir, "mod.mod", sampleModFile(1))

	writer := NewModWriter(ModWriterConfig{FilePath: path, Backup: true}, nil)

	backedUp, err := writer.Write(sampleModFile(2))
	require.NoError(t, err)
	assert.True(t, backedUp)

	backedUp, err = writer.Write(sampleModFile(3))
	require.NoError(t, err)
	assert.False(t, backedUp)

	backup, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	mf, err := NewModReader(ModReaderConfig{FilePath: path, MaxRecords: codec.NoLimit}, nil).Read()
	require.NoError(t, err)
	assert.Len(t, mf.Records, 3)
}

func TestModWriter_NoBackup(t *testing.T) {
	path, _ := writeModFile(t, t.TempDir(), "mod.mod", sampleModFile(1))

	backedUp, err := NewModWriter(ModWriterConfig{FilePath: path}, nil).Write(sampleModFile(2))
	require.NoError(t, err)
	assert.False(t, backedUp)
	assert.NoFileExists(t, BackupPath(path))
}

func TestModWriter_RefusesPartial(t *testing.T) {
	dir := t.TempDir()
	path, original := writeModFile(t, dir, "mod.mod", sampleModFile(4))

	partial, err := NewModReader(ModReaderConfig{FilePath: path, MaxRecords: 1}, nil).Read()
	require.NoError(t, err)
	require.True(t, partial.Partial())

	_, err = NewModWriter(ModWriterConfig{FilePath: path}, nil).Write(partial)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrIncompleteFile))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, current)
}

func TestModWriter_FailedEncodeLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path, original := writeModFile(t, dir, "mod.mod", sampleModFile(1))

	_, err := NewModWriter(ModWriterConfig{FilePath: path}, nil).Write(&codec.ModFile{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrMissingHeader))

	temps, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, temps)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, current)
}

func TestModWriter_KeepsPermissions(t *testing.T) {
	path, _ := writeModFile(t, t.TempDir(), "mod.mod", sampleModFile(1))
	require.NoError(t, os.Chmod(path, 0600))

	_, err := NewModWriter(ModWriterConfig{FilePath: path}, nil).Write(sampleModFile(2))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
