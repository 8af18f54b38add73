package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/kenshimod/pkg/codec"
	"github.com/ssargent/kenshimod/pkg/di"
)

// executeCommand runs kmod with args against a fresh container and returns
// what it wrote to stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep a config file in the real user config dir from leaking in.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	SetContainer(di.NewContainer())
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

// writeTestMod writes a two record weapon mod and returns its path
func writeTestMod(t *testing.T, dir string) string {
	t.Helper()

	katana := codec.NewRecord()
	katana.TypeCode = 2
	katana.ID = 10
	katana.Name = "Katana"
	katana.StringID = "10-weapons.mod"
	katana.DataType = -0x7ffffffe
	katana.StringFields.Set("description", "A curved blade")
	katana.FilenameFields.Set("mesh", "katana.mesh")
	katana.FloatFields.Set("weight", 2.5)

	sabre := codec.NewRecord()
	sabre.TypeCode = 2
	sabre.ID = 11
	sabre.Name = "Sabre"
	sabre.StringID = "11-weapons.mod"
	sabre.DataType = -0x7fffffff
	sabre.BoolFields.Set("REMOVED", true)

	mf := &codec.ModFile{
		Header: &codec.StandardHeader{
			ModVersion:  16,
			Author:      "smith",
			Description: "Better blades",
		},
		Records: []*codec.Record{katana, sabre},
	}
	data, err := codec.NewModCodec().EncodeBytes(mf)
	require.NoError(t, err)

	path := filepath.Join(dir, "weapons.mod")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
