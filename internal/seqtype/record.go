package seqtype

import "slices"

// Field is one record field. Type is nil when the field has no declared type.
type Field struct {
	Name     string
	Type     *SequenceType
	Optional bool
}

// Record is record(f1, f2, ...), with Extensible adding the trailing *.
type Record struct {
	fields     []Field
	extensible bool
}

// NewRecord builds a record from fields. Fields whose type is a
// self-reference placeholder are patched to point at the returned record.
// Nested records keep their own self-references.
func NewRecord(fields []Field, extensible bool) *Record {
	r := &Record{fields: slices.Clone(fields), extensible: extensible}
	for _, f := range r.fields {
		if f.Type == nil {
			continue
		}
		if self, ok := f.Type.Item.(*SelfReference); ok && self.record == nil {
			self.record = r
		}
	}
	return r
}

// Fields returns the declared fields.
func (r *Record) Fields() []Field { return r.fields }

// Extensible reports whether undeclared fields are allowed.
func (r *Record) Extensible() bool { return r.extensible }

// Field returns the field with the given name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsUnconstrained reports whether the record has no fields. Such a record is
// treated as map(*), whether or not it is extensible.
func (r *Record) IsUnconstrained() bool { return len(r.fields) == 0 }

func (*Record) Kind() Kind { return KindRecord }
func (*Record) itemType()  {}

// SelfReference is the .. field type that refers to the enclosing record.
type SelfReference struct {
	record *Record
}

// Self returns an unresolved self-reference placeholder for use in a field
// passed to NewRecord.
func Self() *SelfReference { return &SelfReference{} }

// Record returns the enclosing record, or nil before NewRecord patched it.
func (s *SelfReference) Record() *Record {
	if s == nil {
		return nil
	}
	return s.record
}

// ItemType returns the enclosing record as an item type.
func (s *SelfReference) ItemType() ItemType {
	if r := s.Record(); r != nil {
		return r
	}
	return nil
}

func (*SelfReference) Kind() Kind { return KindSelfReference }
func (*SelfReference) itemType()  {}
