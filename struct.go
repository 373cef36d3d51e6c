package gff

// Field is one labeled field within a Struct, as yielded by Fields.
type Field struct {
	Label string
	Value Value
}

// Struct is a GFF struct: an application-defined type tag plus an
// ordered collection of labeled fields.
//
// The wire format does not fix a field order within a struct, but
// byte-exact packing requires the packer to hold to one; Struct's
// insertion order is that choice (see Pack). Labels are unique
// within a struct: Set on an existing label replaces its value without
// moving it.
type Struct struct {
	// Type is the struct's application-defined type tag.
	Type uint32

	labels []string
	values []Value
	index  map[string]int
}

// NewStruct creates an empty struct with the given type tag.
func NewStruct(typeTag uint32) *Struct {
	return &Struct{Type: typeTag, index: make(map[string]int)}
}

// Set adds or replaces the field named label and returns s, so calls
// can be chained.
func (s *Struct) Set(label string, v Value) *Struct {
	if i, ok := s.index[label]; ok {
		s.values[i] = v
		return s
	}

	s.index[label] = len(s.labels)
	s.labels = append(s.labels, label)
	s.values = append(s.values, v)

	return s
}

// Get returns the field named label, if present.
func (s *Struct) Get(label string) (Value, bool) {
	i, ok := s.index[label]
	if !ok {
		return nil, false
	}

	return s.values[i], true
}

// Len returns the number of fields in s.
func (s *Struct) Len() int { return len(s.labels) }

// Fields returns the struct's fields in insertion order.
func (s *Struct) Fields() []Field {
	out := make([]Field, len(s.labels))
	for i, label := range s.labels {
		out[i] = Field{Label: label, Value: s.values[i]}
	}

	return out
}

// Equal reports whether s and other share the same type tag and the
// same set of (label, value) pairs. Field order is not significant.
func (s *Struct) Equal(other *Struct) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Type != other.Type || len(s.labels) != len(other.labels) {
		return false
	}

	for label, i := range s.index {
		j, ok := other.index[label]
		if !ok {
			return false
		}
		if !Equal(s.values[i], other.values[j]) {
			return false
		}
	}

	return true
}
