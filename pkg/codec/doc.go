// Package codec reads and writes the binary mod file format used by Kenshi.
//
// A mod file is a header followed by a declared number of records, optionally
// followed by trailing bytes the format does not describe. The codec decodes
// this into a tree of Go values and encodes the tree back into the same bytes.
// It preserves structure and raw values only; it does not interpret what a
// record means to the game.
//
// # File Format
//
// All integers are 32-bit signed little-endian, floats are IEEE 754 single
// precision little-endian, booleans are one byte and strings are a 32-bit
// byte length followed by UTF-8 bytes:
//
//	ModFile   := Header Record* Leftover?
//	Header    := fileType:i32 (Standard | Details)
//	Standard  := version:i32 author:Str desc:Str deps:Str refs:Str reserved:i32 count:i32   // 0x10
//	Details   := detailsLen:i32 version:i32 details:byte[detailsLen] count:i32              // 0x11
//	Record    := instCount:i32 typeCode:i32 id:i32 name:Str stringId:Str dataType:i32
//	             Bools Floats Ints Vec3s Vec4s Strings Filenames ExtraData Instances
//	Fields    := count:i32 (key:Str value)*
//	ExtraData := groups:i32 (group:Str count:i32 (name:Str i32 i32 i32)*)*
//	Instances := count:i32 (id:Str target:Str tx ty tz:f32 rw rx ry rz:f32 states:i32 Str*)*
//
// # Usage
//
// Decoding and re-encoding a file:
//
//	c := codec.NewModCodec(codec.WithLogger(logger))
//
//	mf, err := c.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	mf.Records[0].StringFields.Set("desc", "Iron Sword")
//
//	if err := c.Encode(out, mf); err != nil {
//	    return err
//	}
//
// Callers that only need header metadata or a text sample can bound the
// number of records decoded with DecodeLimit. A tree produced that way is
// partial and Encode refuses it, since writing it back would drop records and
// trailing bytes.
//
// # Field Order
//
// The keyed field groups of a record (Fields) keep keys in the order they
// were read and write them back in that order, which is what makes
// encode(decode(b)) reproduce b byte for byte. Duplicate keys on disk collapse
// into one entry holding the last value.
//
// # Error Handling
//
// Running out of input in the middle of a primitive is fatal for the whole
// file and reported as ErrStreamTruncated. A header with an unknown file type
// is reported as ErrUnrecognizedFileType. Both arrive wrapped in a
// *DecodeError carrying the stream offset and the section being decoded.
// Invalid UTF-8 inside a string is not an error; malformed bytes are replaced
// with U+FFFD.
//
// Trailing bytes after the last record are kept in ModFile.Leftover and
// reported through the configured slog.Logger as a warning.
//
// # Thread Safety
//
// ModCodec holds no mutable state and is safe for concurrent use. A ModFile
// is a plain tree of values; callers that decode and encode the same file
// from several goroutines must serialise access themselves (see package store).
package codec
