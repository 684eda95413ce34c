package document

import (
	"slices"

	"github.com/pkg/errors"
)

// Kind enumerates the variants a Document value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Document type is used to describe one tree-structured reference data value.
// Documents are immutable after construction; the zero value is the null document.
type Document struct {
	kind   Kind
	boolV  bool
	numV   float64
	strV   string
	seq    []Document
	fields map[string]Document
}

// Null function creates the null Document.
func Null() Document {
	return Document{kind: KindNull}
}

// Bool function creates a boolean Document.
func Bool(v bool) Document {
	return Document{kind: KindBool, boolV: v}
}

// Number function creates a numeric Document.
func Number(v float64) Document {
	return Document{kind: KindNumber, numV: v}
}

// String function creates a string Document.
func String(v string) Document {
	return Document{kind: KindString, strV: v}
}

// Sequence function creates a sequence Document. The items are copied.
func Sequence(items ...Document) Document {
	return Document{kind: KindSequence, seq: slices.Clone(items)}
}

// Mapping function creates a mapping Document. The fields are copied.
func Mapping(fields map[string]Document) Document {
	copied := make(map[string]Document, len(fields))
	for key, value := range fields {
		copied[key] = value
	}

	return Document{kind: KindMapping, fields: copied}
}

// Kind returns the variant held by the document.
func (d Document) Kind() Kind {
	return d.kind
}

// IsNull reports whether the document is the null document.
func (d Document) IsNull() bool {
	return d.kind == KindNull
}

// BoolVal returns the boolean value; false for any other variant.
func (d Document) BoolVal() bool {
	return d.boolV
}

// NumberVal returns the numeric value; zero for any other variant.
func (d Document) NumberVal() float64 {
	return d.numV
}

// StringVal returns the string value; empty for any other variant.
func (d Document) StringVal() string {
	return d.strV
}

// Len returns the number of items of a sequence or fields of a mapping.
func (d Document) Len() int {
	switch d.kind {
	case KindSequence:
		return len(d.seq)
	case KindMapping:
		return len(d.fields)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence document.
func (d Document) Index(i int) (Document, error) {
	if d.kind != KindSequence {
		return Document{}, errors.Errorf("cannot index %s document", d.kind)
	}

	if i < 0 || i >= len(d.seq) {
		return Document{}, errors.Errorf("sequence index %d out of range [0, %d)", i, len(d.seq))
	}

	return d.seq[i], nil
}

// Get returns the field value of a mapping document.
func (d Document) Get(key string) (Document, bool) {
	value, ok := d.fields[key]

	return value, ok
}

// Keys returns the sorted field names of a mapping document.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.fields))
	for key := range d.fields {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Clone returns a deep copy sharing no mutable structure with the document.
func (d Document) Clone() Document {
	switch d.kind {
	case KindSequence:
		items := make([]Document, len(d.seq))
		for i, item := range d.seq {
			items[i] = item.Clone()
		}

		return Document{kind: KindSequence, seq: items}
	case KindMapping:
		fields := make(map[string]Document, len(d.fields))
		for key, value := range d.fields {
			fields[key] = value.Clone()
		}

		return Document{kind: KindMapping, fields: fields}
	default:
		return d
	}
}

// Equal reports whether two documents hold deeply equal values.
func (d Document) Equal(other Document) bool {
	if d.kind != other.kind {
		return false
	}

	switch d.kind {
	case KindNull:
		return true
	case KindBool:
		return d.boolV == other.boolV
	case KindNumber:
		return d.numV == other.numV
	case KindString:
		return d.strV == other.strV
	case KindSequence:
		if len(d.seq) != len(other.seq) {
			return false
		}

		for i, item := range d.seq {
			if !item.Equal(other.seq[i]) {
				return false
			}
		}

		return true
	case KindMapping:
		if len(d.fields) != len(other.fields) {
			return false
		}

		for key, value := range d.fields {
			otherValue, ok := other.fields[key]
			if !ok || !value.Equal(otherValue) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Interface converts the document back to plain Go values:
// nil, bool, float64, string, []any or map[string]any.
func (d Document) Interface() any {
	switch d.kind {
	case KindBool:
		return d.boolV
	case KindNumber:
		return d.numV
	case KindString:
		return d.strV
	case KindSequence:
		items := make([]any, len(d.seq))
		for i, item := range d.seq {
			items[i] = item.Interface()
		}

		return items
	case KindMapping:
		fields := make(map[string]any, len(d.fields))
		for key, value := range d.fields {
			fields[key] = value.Interface()
		}

		return fields
	default:
		return nil
	}
}

// FromAny converts a value tree produced by the yaml or json decoders
// into a Document.
func FromAny(v any) (Document, error) {
	switch value := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(value), nil
	case int:
		return Number(float64(value)), nil
	case int64:
		return Number(float64(value)), nil
	case uint64:
		return Number(float64(value)), nil
	case float32:
		return Number(float64(value)), nil
	case float64:
		return Number(value), nil
	case string:
		return String(value), nil
	case []any:
		items := make([]Document, len(value))

		for i, item := range value {
			doc, err := FromAny(item)
			if err != nil {
				return Document{}, err
			}

			items[i] = doc
		}

		return Document{kind: KindSequence, seq: items}, nil
	case map[string]any:
		fields := make(map[string]Document, len(value))

		for key, item := range value {
			doc, err := FromAny(item)
			if err != nil {
				return Document{}, err
			}

			fields[key] = doc
		}

		return Document{kind: KindMapping, fields: fields}, nil
	default:
		return Document{}, errors.Errorf("unsupported document value type %T", v)
	}
}
