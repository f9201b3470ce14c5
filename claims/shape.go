package claims

import (
	"fmt"

	"github.com/kbukum/idprovider/errors"
)

// Shape is an ordered set of known claim fields plus an open rule typing
// every other claim name. The zero value and nil are both the empty shape
// without an open rule.
//
// A Shape is immutable once built; WithOpen and Override return new values.
type Shape struct {
	fields  []Field
	index   map[string]int
	open    FieldType
	hasOpen bool
}

// NewShape builds a shape from fields in declaration order.
// Duplicate names are kept so that Validate can report them; lookups
// resolve to the first declaration.
func NewShape(fields ...Field) *Shape {
	s := &Shape{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if _, seen := s.index[f.Name]; !seen {
			s.index[f.Name] = i
		}
	}
	return s
}

// WithOpen returns a copy of s whose open rule types undeclared claims as t.
func (s *Shape) WithOpen(t FieldType) *Shape {
	out := NewShape(s.Fields()...)
	out.open = t
	out.hasOpen = true
	return out
}

// Open returns the declared open rule. ok is false when the shape does not
// declare one, in which case undeclared claims are Unknown.
func (s *Shape) Open() (t FieldType, ok bool) {
	if s == nil {
		return Unknown, false
	}
	return s.open, s.hasOpen
}

// OpenType returns the type applied to undeclared claims.
func (s *Shape) OpenType() FieldType {
	t, _ := s.Open()
	return t
}

// Lookup returns the known field with the given name.
func (s *Shape) Lookup(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// IsKnown reports whether name is declared as a known field.
func (s *Shape) IsKnown(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// TypeOf returns the declared type of a known claim, or the open rule's
// type for any other name. Known declarations take precedence.
func (s *Shape) TypeOf(name string) FieldType {
	if f, ok := s.Lookup(name); ok {
		return f.Type
	}
	return s.OpenType()
}

// Fields returns a copy of the known fields in declaration order.
func (s *Shape) Fields() []Field {
	if s == nil {
		return nil
	}
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the known field names in declaration order.
func (s *Shape) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of known fields.
func (s *Shape) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Equal reports whether s and o declare the same fields, in the same order,
// with the same open rule.
func (s *Shape) Equal(o *Shape) bool {
	if s.Len() != o.Len() {
		return false
	}
	st, sok := s.Open()
	ot, ook := o.Open()
	if sok != ook || st != ot {
		return false
	}
	if s == nil || o == nil {
		return true
	}
	for i := range s.fields {
		if !s.fields[i].equal(o.fields[i]) {
			return false
		}
	}
	return true
}

// Validate checks that the declaration is internally consistent: every
// field has a unique non-empty name and a valid type, Object fields carry a
// nested shape and no other field does. Nested shapes are checked
// recursively. Claim values are never inspected.
func (s *Shape) Validate() error {
	if s == nil {
		return errors.InvalidShape("", "shape is nil")
	}
	return s.validate("")
}

func (s *Shape) validate(prefix string) error {
	if t, ok := s.Open(); ok {
		if !t.Valid() {
			return errors.InvalidShape(prefix, fmt.Sprintf("open rule has invalid type %s", t))
		}
		if t == Object {
			return errors.InvalidShape(prefix, "open rule cannot be an object")
		}
	}

	seen := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		path := prefix + f.Name
		if f.Name == "" {
			return errors.InvalidShape(prefix, "field name is empty")
		}
		if seen[f.Name] {
			return errors.InvalidShape(path, "duplicate field name")
		}
		seen[f.Name] = true

		if !f.Type.Valid() {
			return errors.InvalidShape(path, fmt.Sprintf("invalid type %s", f.Type))
		}
		if f.Type == Object {
			if f.Shape == nil {
				return errors.InvalidShape(path, "object field needs a nested shape")
			}
			if err := f.Shape.validate(path + "."); err != nil {
				return err
			}
		} else if f.Shape != nil {
			return errors.InvalidShape(path, fmt.Sprintf("%s field cannot carry a nested shape", f.Type))
		}
	}
	return nil
}

// MustShape returns s, panicking if it fails Validate. It is meant for
// package-level declarations so a bad shape fails at load time.
func MustShape(s *Shape) *Shape {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("claims: %v", err))
	}
	return s
}
