package codec

import (
	"fmt"
	"math"
)

// Vec3 is a three component float vector
type Vec3 [3]float32

// Vec4 is a four component float vector
type Vec4 [4]float32

// Triple is the fixed three integer value of an extra data entry
type Triple [3]int32

// Quaternion is an instance rotation, stored on disk as w, x, y, z
type Quaternion struct {
	W float32 `yaml:"w" json:"w"`
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
}

// Instance is a placed occurrence of an object inside a record
type Instance struct {
	ID       string     `yaml:"id" json:"id"`
	Target   string     `yaml:"target" json:"target"`
	Position Vec3       `yaml:"position,flow" json:"position"`
	Rotation Quaternion `yaml:"rotation,flow" json:"rotation"`
	// The state count is not kept; it is always len(States) on encode.
	States []string `yaml:"states" json:"states"`
}

// Record is one typed entry of a mod file
type Record struct {
	InstanceCount int32  `yaml:"instance_count" json:"instance_count"`
	TypeCode      int32  `yaml:"type_code" json:"type_code"`
	ID            int32  `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	StringID      string `yaml:"string_id" json:"string_id"`
	DataType      int32  `yaml:"data_type" json:"data_type"`

	BoolFields     *Fields[bool]    `yaml:"bools" json:"bools"`
	FloatFields    *Fields[float32] `yaml:"floats" json:"floats"`
	IntFields      *Fields[int32]   `yaml:"ints" json:"ints"`
	Vec3Fields     *Fields[Vec3]    `yaml:"vec3s" json:"vec3s"`
	Vec4Fields     *Fields[Vec4]    `yaml:"vec4s" json:"vec4s"`
	StringFields   *Fields[string]  `yaml:"strings" json:"strings"`
	FilenameFields *Fields[string]  `yaml:"filenames" json:"filenames"`

	// ExtraData maps a group name to its named integer triples
	ExtraData *Fields[*Fields[Triple]] `yaml:"extra_data" json:"extra_data"`
	Instances []Instance               `yaml:"instances" json:"instances"`
}

// NewRecord creates a record with every field group empty and non-nil
func NewRecord() *Record {
	return &Record{
		BoolFields:     NewFields[bool](),
		FloatFields:    NewFields[float32](),
		IntFields:      NewFields[int32](),
		Vec3Fields:     NewFields[Vec3](),
		Vec4Fields:     NewFields[Vec4](),
		StringFields:   NewFields[string](),
		FilenameFields: NewFields[string](),
		ExtraData:      NewFields[*Fields[Triple]](),
		Instances:      []Instance{},
	}
}

// ModType returns the category name of the record's type code, or
// "UNKNOWN:<code>" when the code is not in the table
func (r *Record) ModType() string {
	return TypeName(r.TypeCode)
}

// ChangeType returns "REMOVED" when the bool field REMOVED is true, otherwise
// the change kind of the record's data type
func (r *Record) ChangeType() string {
	if removed, ok := r.BoolFields.Get(removedField); ok && removed {
		return ChangeRemoved
	}
	return ChangeName(r.DataType)
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %d %q (%s)", r.ModType(), r.ID, r.Name, r.ChangeType())
}

// Primitive value codecs shared by the keyed field groups.

func readBool(r *Reader) (bool, error) { return r.ReadBool() }
func readFloat(r *Reader) (float32, error) { return r.ReadFloat32() }
func readInt(r *Reader) (int32, error) { return r.ReadInt32() }
func readString(r *Reader) (string, error) { return r.ReadString() }
func writeBool(w *Writer, v bool) error { return w.WriteBool(v) }
func writeFloat(w *Writer, v float32) error { return w.WriteFloat32(v) }
func writeInt(w *Writer, v int32) error { return w.WriteInt32(v) }
func writeString(w *Writer, v string) error { return w.WriteString(v) }

func readVec3(r *Reader) (Vec3, error) {
	var v Vec3
	for i := range v {
		f, err := r.ReadFloat32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func readVec4(r *Reader) (Vec4, error) {
	var v Vec4
	for i := range v {
		f, err := r.ReadFloat32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func writeVec3(w *Writer, v Vec3) error {
	for _, f := range v {
		if err := w.WriteFloat32(f); err != nil {
			return err
		}
	}
	return nil
}

func writeVec4(w *Writer, v Vec4) error {
	for _, f := range v {
		if err := w.WriteFloat32(f); err != nil {
			return err
		}
	}
	return nil
}

func readTriple(r *Reader) (Triple, error) {
	var t Triple
	for i := range t {
		n, err := r.ReadInt32()
		if err != nil {
			return t, err
		}
		t[i] = n
	}
	return t, nil
}

func writeTriple(w *Writer, t Triple) error {
	for _, n := range t {
		if err := w.WriteInt32(n); err != nil {
			return err
		}
	}
	return nil
}

func readExtraGroup(r *Reader) (*Fields[Triple], error) {
	return ReadFields(r, readTriple)
}

func writeExtraGroup(w *Writer, g *Fields[Triple]) error {
	return WriteFields(w, g, writeTriple)
}

// ReadRecord decodes one record. The record is returned only when every
// part of it decoded.
func ReadRecord(r *Reader) (*Record, error) {
	rec := &Record{}
	var err error

	if rec.InstanceCount, err = r.ReadInt32(); err != nil {
		return nil, err
	}
	if rec.TypeCode, err = r.ReadInt32(); err != nil {
		return nil, err
	}
	if rec.ID, err = r.ReadInt32(); err != nil {
		return nil, err
	}
	if rec.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	if rec.StringID, err = r.ReadString(); err != nil {
		return nil, err
	}
	if rec.DataType, err = r.ReadInt32(); err != nil {
		return nil, err
	}

	if rec.BoolFields, err = ReadFields(r, readBool); err != nil {
		return nil, err
	}
	if rec.FloatFields, err = ReadFields(r, readFloat); err != nil {
		return nil, err
	}
	if rec.IntFields, err = ReadFields(r, readInt); err != nil {
		return nil, err
	}
	if rec.Vec3Fields, err = ReadFields(r, readVec3); err != nil {
		return nil, err
	}
	if rec.Vec4Fields, err = ReadFields(r, readVec4); err != nil {
		return nil, err
	}
	if rec.StringFields, err = ReadFields(r, readString); err != nil {
		return nil, err
	}
	if rec.FilenameFields, err = ReadFields(r, readString); err != nil {
		return nil, err
	}
	if rec.ExtraData, err = ReadFields(r, readExtraGroup); err != nil {
		return nil, err
	}
	if rec.Instances, err = readInstances(r); err != nil {
		return nil, err
	}
	return rec, nil
}

func readInstances(r *Reader) ([]Instance, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	instances := []Instance{}
	for i := int32(0); i < n; i++ {
		inst, err := readInstance(r)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

func readInstance(r *Reader) (Instance, error) {
	var inst Instance
	var err error

	if inst.ID, err = r.ReadString(); err != nil {
		return inst, err
	}
	if inst.Target, err = r.ReadString(); err != nil {
		return inst, err
	}
	if inst.Position, err = readVec3(r); err != nil {
		return inst, err
	}
	rot, err := readVec4(r)
	if err != nil {
		return inst, err
	}
	inst.Rotation = Quaternion{W: rot[0], X: rot[1], Y: rot[2], Z: rot[3]}

	count, err := r.ReadInt32()
	if err != nil {
		return inst, err
	}
	if count < 0 {
		return inst, ErrNegativeLength
	}
	inst.States = []string{}
	for i := int32(0); i < count; i++ {
		s, err := r.ReadString()
		if err != nil {
			return inst, err
		}
		inst.States = append(inst.States, s)
	}
	return inst, nil
}

// WriteRecord encodes rec in the same field order ReadRecord decodes it.
// Nil field groups are written as empty.
func WriteRecord(w *Writer, rec *Record) error {
	for _, v := range []int32{rec.InstanceCount, rec.TypeCode, rec.ID} {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	if err := w.WriteString(rec.Name); err != nil {
		return err
	}
	if err := w.WriteString(rec.StringID); err != nil {
		return err
	}
	if err := w.WriteInt32(rec.DataType); err != nil {
		return err
	}

	if err := WriteFields(w, rec.BoolFields, writeBool); err != nil {
		return err
	}
	if err := WriteFields(w, rec.FloatFields, writeFloat); err != nil {
		return err
	}
	if err := WriteFields(w, rec.IntFields, writeInt); err != nil {
		return err
	}
	if err := WriteFields(w, rec.Vec3Fields, writeVec3); err != nil {
		return err
	}
	if err := WriteFields(w, rec.Vec4Fields, writeVec4); err != nil {
		return err
	}
	if err := WriteFields(w, rec.StringFields, writeString); err != nil {
		return err
	}
	if err := WriteFields(w, rec.FilenameFields, writeString); err != nil {
		return err
	}
	if err := WriteFields(w, rec.ExtraData, writeExtraGroup); err != nil {
		return err
	}
	return writeInstances(w, rec.Instances)
}

func writeInstances(w *Writer, instances []Instance) error {
	if len(instances) > math.MaxInt32 {
		return ErrValueTooLarge
	}
	if err := w.WriteInt32(int32(len(instances))); err != nil {
		return err
	}
	for i := range instances {
		if err := writeInstance(w, &instances[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeInstance(w *Writer, inst *Instance) error {
	if err := w.WriteString(inst.ID); err != nil {
		return err
	}
	if err := w.WriteString(inst.Target); err != nil {
		return err
	}
	if err := writeVec3(w, inst.Position); err != nil {
		return err
	}
	rot := inst.Rotation
	if err := writeVec4(w, Vec4{rot.W, rot.X, rot.Y, rot.Z}); err != nil {
		return err
	}
	if len(inst.States) > math.MaxInt32 {
		return ErrValueTooLarge
	}
	if err := w.WriteInt32(int32(len(inst.States))); err != nil {
		return err
	}
	for _, s := range inst.States {
		if err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
