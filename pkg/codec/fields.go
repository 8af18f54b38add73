package codec

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Fields maps string keys to values of one type, iterating in insertion order.
// A nil *Fields behaves as an empty mapping for reads.
type Fields[T any] struct {
	m *orderedmap.OrderedMap[string, T]
}

// NewFields creates an empty mapping
func NewFields[T any]() *Fields[T] {
	return &Fields[T]{m: orderedmap.New[string, T]()}
}

// Get returns the value stored under key
func (f *Fields[T]) Get(key string) (T, bool) {
	if f == nil || f.m == nil {
		var zero T
		return zero, false
	}
	return f.m.Get(key)
}

// Set stores v under key. An existing key keeps its position.
func (f *Fields[T]) Set(key string, v T) {
	if f.m == nil {
		f.m = orderedmap.New[string, T]()
	}
	f.m.Set(key, v)
}

// Delete removes key and reports whether it was present
func (f *Fields[T]) Delete(key string) bool {
	if f == nil || f.m == nil {
		return false
	}
	_, ok := f.m.Delete(key)
	return ok
}

// Len returns the number of entries
func (f *Fields[T]) Len() int {
	if f == nil || f.m == nil {
		return 0
	}
	return f.m.Len()
}

// Keys returns the keys in iteration order
func (f *Fields[T]) Keys() []string {
	keys := make([]string, 0, f.Len())
	for k := range f.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the entries in insertion order
func (f *Fields[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if f == nil || f.m == nil {
			return
		}
		for p := f.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MarshalYAML emits the entries as a mapping in insertion order
func (f *Fields[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range f.All() {
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}
	return node, nil
}

// MarshalJSON emits the entries as an object in insertion order
func (f *Fields[T]) MarshalJSON() ([]byte, error) {
	if f == nil || f.m == nil {
		return []byte("{}"), nil
	}
	return f.m.MarshalJSON()
}

// ValueReader decodes one value of a keyed field group
type ValueReader[T any] func(*Reader) (T, error)

// ValueWriter encodes one value of a keyed field group
type ValueWriter[T any] func(*Writer, T) error

// ReadFields decodes a count followed by that many (key, value) pairs.
// Later duplicates of a key overwrite earlier ones. A negative count is
// rejected with ErrNegativeLength.
func ReadFields[T any](r *Reader, read ValueReader[T]) (*Fields[T], error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	f := NewFields[T]()
	for i := int32(0); i < n; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		f.Set(key, v)
	}
	return f, nil
}

// WriteFields encodes the current size of f followed by every entry in
// iteration order
func WriteFields[T any](w *Writer, f *Fields[T], write ValueWriter[T]) error {
	if err := w.WriteInt32(int32(f.Len())); err != nil {
		return err
	}
	for k, v := range f.All() {
		if err := w.WriteString(k); err != nil {
			return err
		}
		if err := write(w, v); err != nil {
			return err
		}
	}
	return nil
}
