package claims

import "encoding/json"

type shapeJSON struct {
	Fields []fieldJSON `json:"fields"`
	Open   *FieldType  `json:"open,omitempty"`
}

type fieldJSON struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Shape    *Shape    `json:"shape,omitempty"`
}

// MarshalJSON renders the shape as a list of fields and an optional open
// rule. The output is descriptive and round-trips through UnmarshalJSON.
func (s *Shape) MarshalJSON() ([]byte, error) {
	out := shapeJSON{Fields: make([]fieldJSON, 0, s.Len())}
	for _, f := range s.Fields() {
		out.Fields = append(out.Fields, fieldJSON{
			Name:     f.Name,
			Type:     f.Type,
			Required: f.Required,
			Shape:    f.Shape,
		})
	}
	if t, ok := s.Open(); ok {
		out.Open = &t
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a shape written by MarshalJSON. The result is not
// validated; call Validate before using a shape read from configuration.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var in shapeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	fields := make([]Field, len(in.Fields))
	for i, f := range in.Fields {
		fields[i] = Field{Name: f.Name, Type: f.Type, Required: f.Required, Shape: f.Shape}
	}
	*s = *NewShape(fields...)
	if in.Open != nil {
		s.open, s.hasOpen = *in.Open, true
	}
	return nil
}
