package claims

// Override returns the effective shape of def extended by ext.
//
// Every known field of ext replaces the field of def with the same name,
// keeping def's position; names def does not know are appended in ext's
// order. Fields ext does not mention are inherited unchanged. The open rule
// is ext's when ext declares one and def's otherwise, so an extension made
// only of an open rule loosens or tightens the catch-all without touching
// any known field.
//
// No type compatibility is checked: an extension may redeclare "email" as a
// Number and the result will say so. Override never fails and never
// modifies its arguments. A nil ext yields def and a nil def yields ext.
func Override(def, ext *Shape) *Shape {
	if ext == nil {
		return def
	}
	if def == nil {
		return ext
	}

	fields := make([]Field, 0, def.Len()+ext.Len())
	for _, f := range def.fields {
		if ef, ok := ext.Lookup(f.Name); ok {
			fields = append(fields, ef)
			continue
		}
		fields = append(fields, f)
	}
	appended := make(map[string]bool)
	for _, f := range ext.fields {
		if def.IsKnown(f.Name) || appended[f.Name] {
			continue
		}
		appended[f.Name] = true
		fields = append(fields, f)
	}

	out := NewShape(fields...)
	if t, ok := ext.Open(); ok {
		out.open, out.hasOpen = t, true
	} else {
		out.open, out.hasOpen = def.Open()
	}
	return out
}

// OverrideField returns a copy of def whose Object field name has its nested
// shape overridden by ext. It is how a provider lets callers extend a
// sub-record such as the address claim without redeclaring the parent.
// def is returned unchanged when it has no Object field of that name.
func OverrideField(def *Shape, name string, ext *Shape) *Shape {
	f, ok := def.Lookup(name)
	if !ok || f.Type != Object || ext == nil {
		return def
	}
	f.Shape = Override(f.Shape, ext)
	return Override(def, NewShape(f))
}
