package claims

import "fmt"

// FieldType is the declared value type of a claim.
type FieldType int

const (
	// Unknown is the default open-field type: the claim may be present with
	// a value of any shape, and consumers must inspect it before use.
	Unknown FieldType = iota
	String
	Number
	Boolean
	// StringOrList accepts a single string or a list of strings, as "aud" does.
	StringOrList
	StringList
	// Object is a nested claim record described by Field.Shape.
	Object
	// Any switches off open-field typing altogether. It is the escape hatch
	// for providers whose custom profile accepts arbitrary extra claims and
	// makes no promise about them, not even that consumers will check them.
	Any
)

var fieldTypeNames = [...]string{
	Unknown:      "unknown",
	String:       "string",
	Number:       "number",
	Boolean:      "boolean",
	StringOrList: "string_or_list",
	StringList:   "string_list",
	Object:       "object",
	Any:          "any",
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	return t >= Unknown && t <= Any
}

func (t FieldType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return fieldTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t FieldType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("claims: invalid field type %d", int(t))
	}
	return []byte(fieldTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(text []byte) error {
	ft, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*t = ft
	return nil
}

// ParseFieldType returns the FieldType with the given name.
func ParseFieldType(name string) (FieldType, error) {
	for i, n := range fieldTypeNames {
		if n == name {
			return FieldType(i), nil
		}
	}
	return Unknown, fmt.Errorf("claims: unknown field type %q", name)
}

// Field is one known claim of a Shape.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Shape describes the nested record of an Object field. It is nil for
	// every other type.
	Shape *Shape
}

// Required declares a claim that is always present.
func Required(name string, t FieldType) Field {
	return Field{Name: name, Type: t, Required: true}
}

// Optional declares a claim that may be absent.
func Optional(name string, t FieldType) Field {
	return Field{Name: name, Type: t}
}

// Nested declares an optional Object claim described by s.
func Nested(name string, s *Shape) Field {
	return Field{Name: name, Type: Object, Shape: s}
}

func (f Field) equal(o Field) bool {
	if f.Name != o.Name || f.Type != o.Type || f.Required != o.Required {
		return false
	}
	return f.Shape.Equal(o.Shape)
}
