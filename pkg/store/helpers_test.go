package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/kenshimod/pkg/codec"
)

// sampleModFile builds a standard mod file with n records named "Item <i>"
func sampleModFile(n int) *codec.ModFile {
	records := make([]*codec.Record, 0, n)
	for i := 0; i < n; i++ {
		rec := codec.NewRecord()
		rec.TypeCode = 0
		rec.ID = int32(i)
		rec.Name = fmt.Sprintf("Item %d", i)
		rec.StringID = fmt.Sprintf("%d-mod.mod", i)
		rec.DataType = -0x7ffffffe
		rec.StringFields.Set("desc", "A plain item")
		rec.IntFields.Set("count", 0)
		records = append(records, rec)
	}
	return &codec.ModFile{
		Header: &codec.StandardHeader{
			ModVersion:  1,
			Author:      "tester",
			Description: "test mod",
			RecordCount: int32(n),
		},
		Records: records,
	}
}

// writeModFile encodes mf into dir/name and returns the path and bytes
func writeModFile(t *testing.T, dir, name string, mf *codec.ModFile) (string, []byte) {
	t.Helper()
	data, err := codec.NewModCodec().EncodeBytes(mf)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}
