package codec

import "strconv"

const filenameSuffix = "_filename"

// ApplyToStrings replaces the standard header description, every record name
// and every string field value with fn applied to it. Keys and order are kept.
func (m *ModFile) ApplyToStrings(fn func(string) string) {
	if h, ok := m.Header.(*StandardHeader); ok {
		h.Description = fn(h.Description)
	}
	for _, rec := range m.Records {
		rec.Name = fn(rec.Name)
		for k, v := range rec.StringFields.All() {
			rec.StringFields.Set(k, fn(v))
		}
	}
}

// StringKey is the string table key of a string field
func StringKey(recordID int32, field string) string {
	return strconv.FormatInt(int64(recordID), 10) + "_" + field
}

// FilenameKey is the string table key of a filename field
func FilenameKey(recordID int32, field string) string {
	return StringKey(recordID, field) + filenameSuffix
}

// StringTable collects every string and filename field value keyed by
// StringKey and FilenameKey, in record order. Records sharing an id
// overwrite each other's entries.
func (m *ModFile) StringTable() *Fields[string] {
	table := NewFields[string]()
	for _, rec := range m.Records {
		for k, v := range rec.StringFields.All() {
			table.Set(StringKey(rec.ID, k), v)
		}
		for k, v := range rec.FilenameFields.All() {
			table.Set(FilenameKey(rec.ID, k), v)
		}
	}
	return table
}

// ApplyStringTable overwrites string and filename field values whose key is
// present in table and returns the number of values replaced
func (m *ModFile) ApplyStringTable(table map[string]string) int {
	applied := 0
	for _, rec := range m.Records {
		for k := range rec.StringFields.All() {
			if v, ok := table[StringKey(rec.ID, k)]; ok {
				rec.StringFields.Set(k, v)
				applied++
			}
		}
		for k := range rec.FilenameFields.All() {
			if v, ok := table[FilenameKey(rec.ID, k)]; ok {
				rec.FilenameFields.Set(k, v)
				applied++
			}
		}
	}
	return applied
}
