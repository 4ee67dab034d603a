package schema

import (
	"math"

	"github.com/mathldbt/mathldbt/errs"
)

// Field names and types a single column within a ColumnarSchema.
type Field struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// ColumnarSchema orders and names the columns of a batch. It carries no
// data; batch.ColumnarBatch pairs a ColumnarSchema with per-column storage.
type ColumnarSchema struct {
	fields []Field
}

// New validates fields and returns a ColumnarSchema.
//
// A schema is invalid if any field name is empty, if two fields share a
// name, if any field carries an unrecognized ColumnType, or if the field
// count does not fit in a uint32 (the envelope's column_count width).
func New(fields []Field) (*ColumnarSchema, error) {
	if len(fields) > math.MaxUint32 {
		return nil, errs.New(errs.BadSchema, "field count %d exceeds uint32 range", len(fields))
	}

	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, errs.New(errs.BadSchema, "field %d has empty name", i).WithColumn(i)
		}

		if !f.Type.IsValid() {
			return nil, errs.New(errs.BadSchema, "field %q has unrecognized type %d", f.Name, uint8(f.Type)).WithColumn(i)
		}

		if _, dup := seen[f.Name]; dup {
			return nil, errs.New(errs.BadSchema, "duplicate field name %q", f.Name).WithColumn(i)
		}

		seen[f.Name] = struct{}{}
	}

	cp := make([]Field, len(fields))
	copy(cp, fields)

	return &ColumnarSchema{fields: cp}, nil
}

// Len returns the number of fields in the schema.
func (s *ColumnarSchema) Len() int {
	return len(s.fields)
}

// Field returns the field at index i.
func (s *ColumnarSchema) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the schema's fields, in order.
func (s *ColumnarSchema) Fields() []Field {
	cp := make([]Field, len(s.fields))
	copy(cp, s.fields)

	return cp
}

// IndexOf returns the index of the field named name, or -1 if no such field exists.
func (s *ColumnarSchema) IndexOf(name string) int {
	for i, f := range s.fields {
		if f.Name == name {
			return i
		}
	}

	return -1
}
