package claims

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Audience is the value of a StringOrList claim such as "aud". It decodes
// from either a JSON string or a JSON array of strings.
type Audience []string

// UnmarshalJSON implements json.Unmarshaler.
// A JSON null leaves the audience empty.
func (a *Audience) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*a = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Audience{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("claims: audience must be a string or a list of strings: %w", err)
	}
	*a = list
	return nil
}

// MarshalJSON writes a single audience as a string, several as a list and
// none as null.
func (a Audience) MarshalJSON() ([]byte, error) {
	switch len(a) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Contains reports whether id is one of the audiences.
func (a Audience) Contains(id string) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}
