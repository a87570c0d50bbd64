package formats

// Map holds the decoded tags of one directory keyed by tag name.
// Names are unique; tags without a name in the table never appear.
type Map map[string]Value

// newMap allocates a map sized for a directory of n entries.
func newMap(n int) Map {
	if n > 64 {
		n = 64
	}
	return make(Map, n)
}

// Get returns the value stored under name.
func (m Map) Get(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

// Has reports whether name is present.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Present reports whether name is stored with a non-zero value.
func (m Map) Present(name string) bool {
	v, ok := m[name]
	return ok && !v.IsZero()
}

// Clone returns a shallow copy. Values are immutable so this is a full copy.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Strings flattens the map into display strings.
func (m Map) Strings() map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}
