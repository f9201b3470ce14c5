package claims

import (
	"encoding/json"
	"sort"
)

// Record is a decoded claim set split by a Shape into known claims and
// extra claims. Extra claims are opaque: they are only reachable by explicit
// key and carry no type promise beyond the shape's open rule.
type Record struct {
	shape *Shape
	known map[string]any
	extra map[string]any
}

// Partition splits raw claims into the known claims of shape and the extra
// ones. Values are stored as given; a known Object claim whose value is a
// JSON object is partitioned recursively with the field's nested shape and
// is reachable through Nested. raw is not modified.
func Partition(shape *Shape, raw map[string]any) *Record {
	r := &Record{
		shape: shape,
		known: make(map[string]any),
		extra: make(map[string]any),
	}
	for k, v := range raw {
		f, ok := shape.Lookup(k)
		if !ok {
			r.extra[k] = v
			continue
		}
		if f.Type == Object {
			if m, isMap := v.(map[string]any); isMap {
				r.known[k] = Partition(f.Shape, m)
				continue
			}
		}
		r.known[k] = v
	}
	return r
}

// Shape returns the shape the record was partitioned with.
func (r *Record) Shape() *Shape { return r.shape }

// Value returns a known claim.
func (r *Record) Value(name string) (any, bool) {
	v, ok := r.known[name]
	return v, ok
}

// Nested returns a known Object claim as a partitioned record.
func (r *Record) Nested(name string) (*Record, bool) {
	v, ok := r.known[name].(*Record)
	return v, ok
}

// Extra returns an undeclared claim by key.
func (r *Record) Extra(key string) (any, bool) {
	v, ok := r.extra[key]
	return v, ok
}

// KnownNames returns the names of the known claims present, in shape order.
func (r *Record) KnownNames() []string {
	names := make([]string, 0, len(r.known))
	for _, n := range r.shape.Names() {
		if _, ok := r.known[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// ExtraKeys returns the keys of the extra claims, sorted.
func (r *Record) ExtraKeys() []string {
	keys := make([]string, 0, len(r.extra))
	for k := range r.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing returns the required known claims that are absent, in shape order.
func (r *Record) Missing() []string {
	var missing []string
	for _, f := range r.shape.Fields() {
		if _, ok := r.known[f.Name]; f.Required && !ok {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// MarshalJSON renders the record as {"known": {...}, "extra": {...}}.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Known map[string]any `json:"known"`
		Extra map[string]any `json:"extra"`
	}{r.known, r.extra})
}

// ValueAs returns a known claim converted to T.
// ok is false when the claim is absent or holds another type.
func ValueAs[T any](r *Record, name string) (T, bool) {
	v, ok := r.known[name].(T)
	return v, ok
}

// ExtraAs returns an extra claim converted to T.
// ok is false when the claim is absent or holds another type.
func ExtraAs[T any](r *Record, key string) (T, bool) {
	v, ok := r.extra[key].(T)
	return v, ok
}
