package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader_Standard(t *testing.T) {
	data := (&fixture{}).standardHeader(12).bytes()

	h, err := ReadHeader(newTestReader(t, data))
	require.NoError(t, err)

	sh, ok := h.(*StandardHeader)
	require.True(t, ok)
	assert.Equal(t, FileTypeStandard, sh.FileType())
	assert.Equal(t, int32(3), sh.Version())
	assert.Equal(t, "author", sh.Author)
	assert.Equal(t, "a description", sh.Description)
	assert.Equal(t, "dep.mod", sh.Dependencies)
	assert.Equal(t, "ref.mod", sh.References)
	assert.Equal(t, int32(0), sh.Reserved)
	assert.Equal(t, int32(12), sh.DeclaredRecords())
}

func TestReadHeader_Details(t *testing.T) {
	details := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}
	data := (&fixture{}).i32(0x11, int32(len(details)), 7).raw(details).i32(2).bytes()

	h, err := ReadHeader(newTestReader(t, data))
	require.NoError(t, err)

	dh, ok := h.(*DetailsHeader)
	require.True(t, ok)
	assert.Equal(t, FileTypeDetails, dh.FileType())
	assert.Equal(t, int32(7), dh.Version())
	assert.Equal(t, details, dh.Details)
	assert.Equal(t, int32(2), dh.DeclaredRecords())

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(NewWriter(&buf), dh, 2))
	assert.Equal(t, data, buf.Bytes())
}

func TestReadHeader_UnknownFileType(t *testing.T) {
	data := (&fixture{}).i32(0x12, 1, 2, 3).bytes()

	_, err := ReadHeader(newTestReader(t, data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedFileType)

	var fte *FileTypeError
	require.ErrorAs(t, err, &fte)
	assert.Equal(t, int32(0x12), fte.Code)
}

func TestReadHeader_DetailsTooLong(t *testing.T) {
	data := (&fixture{}).i32(0x11, 100, 1).raw([]byte{1, 2}).bytes()
	_, err := ReadHeader(newTestReader(t, data))
	assert.ErrorIs(t, err, ErrStreamTruncated)
}

func TestWriteHeader_RecordCountFromArgument(t *testing.T) {
	h := &StandardHeader{ModVersion: 3, Author: "author", Description: "a description",
		Dependencies: "dep.mod", References: "ref.mod", RecordCount: 99}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(NewWriter(&buf), h, 12))
	assert.Equal(t, (&fixture{}).standardHeader(12).bytes(), buf.Bytes())
}

func TestWriteHeader_Nil(t *testing.T) {
	err := WriteHeader(NewWriter(&bytes.Buffer{}), nil, 0)
	assert.ErrorIs(t, err, ErrMissingHeader)
}
