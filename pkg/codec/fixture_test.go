package codec

import (
	"bytes"
	"encoding/binary"
)

// fixture assembles mod file bytes by hand so tests do not depend on Writer.
type fixture struct {
	buf bytes.Buffer
}

func (f *fixture) i32(vs ...int32) *fixture {
	for _, v := range vs {
		_ = binary.Write(&f.buf, binary.LittleEndian, v)
	}
	return f
}

func (f *fixture) f32(vs ...float32) *fixture {
	for _, v := range vs {
		_ = binary.Write(&f.buf, binary.LittleEndian, v)
	}
	return f
}

func (f *fixture) u8(v byte) *fixture {
	f.buf.WriteByte(v)
	return f
}

func (f *fixture) str(s string) *fixture {
	f.i32(int32(len(s)))
	f.buf.WriteString(s)
	return f
}

func (f *fixture) raw(b []byte) *fixture {
	f.buf.Write(b)
	return f
}

func (f *fixture) bytes() []byte {
	return bytes.Clone(f.buf.Bytes())
}

// standardHeader writes a 0x10 header declaring count records.
func (f *fixture) standardHeader(count int32) *fixture {
	return f.i32(0x10, 3).
		str("author").str("a description").str("dep.mod").str("ref.mod").
		i32(0, count)
}

// swordRecord writes a WEAPON record with one string field and nothing else.
func (f *fixture) swordRecord(id int32) *fixture {
	f.i32(0, 2, id).str("Iron Sword").str("7-sword.mod").i32(-0x7ffffffe)
	// bools, floats, ints, vec3s, vec4s
	f.i32(0, 0, 0, 0, 0)
	f.i32(1).str("desc").str("Iron Sword")
	// filenames, extra data, instances
	return f.i32(0, 0, 0)
}

// fullRecord writes a record that populates every section.
func (f *fixture) fullRecord() *fixture {
	f.i32(1, 0, 42).str("Shack").str("42-town.mod").i32(-0x7fffffff)
	f.i32(2).str("REMOVED").u8(0).str("walls").u8(1)
	f.i32(1).str("scale").f32(1.5)
	f.i32(1).str("floors").i32(3)
	f.i32(1).str("offset").f32(1, 2, 3)
	f.i32(1).str("tint").f32(0.25, 0.5, 0.75, 1)
	f.i32(2).str("desc").str("Small shack").str("note").str("¿Qué?")
	f.i32(1).str("mesh").str("shack.mesh")
	f.i32(1).str("parts")
	f.i32(2).str("door").i32(1, 2, 3).str("roof").i32(-1, 0, 7)
	f.i32(1).str("inst-1").str("43-town.mod")
	f.f32(10, 20, 30)
	f.f32(1, 0, 0.5, 0)
	f.i32(2).str("open").str("lit")
	return f
}
