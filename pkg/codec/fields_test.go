package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFields_InsertionOrder(t *testing.T) {
	f := NewFields[int32]()
	f.Set("zeta", 1)
	f.Set("alpha", 2)
	f.Set("mid", 3)
	f.Set("zeta", 4)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, f.Keys())
	v, ok := f.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, int32(4), v)
	assert.Equal(t, 3, f.Len())

	assert.True(t, f.Delete("alpha"))
	assert.False(t, f.Delete("alpha"))
	assert.Equal(t, []string{"zeta", "mid"}, f.Keys())
}

func TestFields_NilIsEmpty(t *testing.T) {
	var f *Fields[string]

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Keys())
	_, ok := f.Get("x")
	assert.False(t, ok)
	assert.False(t, f.Delete("x"))

	var zero Fields[string]
	zero.Set("x", "y")
	assert.Equal(t, 1, zero.Len())
}

func TestReadFields_DuplicateKeyLastWins(t *testing.T) {
	data := (&fixture{}).i32(3).
		str("a").i32(1).
		str("b").i32(2).
		str("a").i32(3).
		bytes()

	f, err := ReadFields(newTestReader(t, data), readInt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Keys())
	v, _ := f.Get("a")
	assert.Equal(t, int32(3), v)
}

func TestWriteFields_OrderAndCount(t *testing.T) {
	f := NewFields[bool]()
	f.Set("second", true)
	f.Set("first", false)

	var buf bytes.Buffer
	require.NoError(t, WriteFields(NewWriter(&buf), f, writeBool))

	want := (&fixture{}).i32(2).str("second").u8(1).str("first").u8(0).bytes()
	assert.Equal(t, want, buf.Bytes())
}

func TestWriteFields_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFields[string](NewWriter(&buf), nil, writeString))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())
}

func TestReadFields_Truncated(t *testing.T) {
	data := (&fixture{}).i32(2).str("a").f32(1, 2, 3).str("b").f32(1).bytes()
	_, err := ReadFields(newTestReader(t, data), readVec3)
	assert.ErrorIs(t, err, ErrStreamTruncated)
}

func TestReadFields_NegativeCount(t *testing.T) {
	data := (&fixture{}).i32(-1).bytes()
	f, err := ReadFields(newTestReader(t, data), readInt)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestFields_MarshalYAML(t *testing.T) {
	f := NewFields[string]()
	f.Set("z", "last letter")
	f.Set("a", "first letter")

	out, err := yaml.Marshal(struct {
		Strings *Fields[string] `yaml:"strings"`
	}{f})
	require.NoError(t, err)
	assert.Equal(t, "strings:\n    z: last letter\n    a: first letter\n", string(out))
}

func TestFields_MarshalJSON(t *testing.T) {
	f := NewFields[int32]()
	f.Set("z", 1)
	f.Set("a", 2)

	out, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":2}`, string(out))
	assert.Less(t, bytes.Index(out, []byte(`"z"`)), bytes.Index(out, []byte(`"a"`)))

	var empty *Fields[int32]
	out, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
