package codec

import "math"

// FileType is the leading discriminator of a mod file header
type FileType int32

const (
	// FileTypeStandard carries author, description, dependency and reference text.
	FileTypeStandard FileType = 0x10
	// FileTypeDetails carries an opaque details blob.
	FileTypeDetails FileType = 0x11
)

func (t FileType) String() string {
	switch t {
	case FileTypeStandard:
		return "standard"
	case FileTypeDetails:
		return "details"
	default:
		return "unknown"
	}
}

// Header is one of *StandardHeader or *DetailsHeader
type Header interface {
	FileType() FileType
	Version() int32
	// DeclaredRecords is the record count stored in the file, which a
	// limited decode does not change.
	DeclaredRecords() int32
	isHeader()
}

// StandardHeader is the 0x10 header layout
type StandardHeader struct {
	ModVersion   int32  `yaml:"version" json:"version"`
	Author       string `yaml:"author" json:"author"`
	Description  string `yaml:"description" json:"description"`
	Dependencies string `yaml:"dependencies" json:"dependencies"`
	References   string `yaml:"references" json:"references"`
	Reserved     int32  `yaml:"reserved" json:"reserved"`
	RecordCount  int32  `yaml:"record_count" json:"record_count"`
}

func (h *StandardHeader) FileType() FileType     { return FileTypeStandard }
func (h *StandardHeader) Version() int32         { return h.ModVersion }
func (h *StandardHeader) DeclaredRecords() int32 { return h.RecordCount }
func (h *StandardHeader) isHeader()              {}

// DetailsHeader is the 0x11 header layout. Details is copied verbatim; its
// length prefix is always len(Details) on encode.
type DetailsHeader struct {
	ModVersion  int32  `yaml:"version" json:"version"`
	Details     []byte `yaml:"details" json:"details"`
	RecordCount int32  `yaml:"record_count" json:"record_count"`
}

func (h *DetailsHeader) FileType() FileType     { return FileTypeDetails }
func (h *DetailsHeader) Version() int32         { return h.ModVersion }
func (h *DetailsHeader) DeclaredRecords() int32 { return h.RecordCount }
func (h *DetailsHeader) isHeader()              {}

// ReadHeader decodes the file type and the matching header layout
func ReadHeader(r *Reader) (Header, error) {
	code, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}

	switch FileType(code) {
	case FileTypeStandard:
		h := &StandardHeader{}
		if h.ModVersion, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		for _, s := range []*string{&h.Author, &h.Description, &h.Dependencies, &h.References} {
			if *s, err = r.ReadString(); err != nil {
				return nil, err
			}
		}
		if h.Reserved, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		if h.RecordCount, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		return h, nil

	case FileTypeDetails:
		h := &DetailsHeader{}
		length, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		if h.ModVersion, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		if h.Details, err = r.ReadBytes(length); err != nil {
			return nil, err
		}
		if h.RecordCount, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		return h, nil

	default:
		return nil, &FileTypeError{Code: code}
	}
}

// WriteHeader encodes h with records as its record count
func WriteHeader(w *Writer, h Header, records int32) error {
	switch h := h.(type) {
	case *StandardHeader:
		if err := w.WriteInt32(int32(FileTypeStandard)); err != nil {
			return err
		}
		if err := w.WriteInt32(h.ModVersion); err != nil {
			return err
		}
		for _, s := range []string{h.Author, h.Description, h.Dependencies, h.References} {
			if err := w.WriteString(s); err != nil {
				return err
			}
		}
		if err := w.WriteInt32(h.Reserved); err != nil {
			return err
		}
		return w.WriteInt32(records)

	case *DetailsHeader:
		if len(h.Details) > math.MaxInt32 {
			return ErrValueTooLarge
		}
		for _, v := range []int32{int32(FileTypeDetails), int32(len(h.Details)), h.ModVersion} {
			if err := w.WriteInt32(v); err != nil {
				return err
			}
		}
		if err := w.WriteBytes(h.Details); err != nil {
			return err
		}
		return w.WriteInt32(records)

	case nil:
		return ErrMissingHeader

	default:
		return &FileTypeError{Code: int32(h.FileType())}
	}
}
