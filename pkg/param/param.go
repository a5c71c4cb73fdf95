// Package param provides the parameter identity and value types shared by
// the proxy's snapshot and any AudioProcessor it wraps.
package param

// ID uniquely identifies a processor parameter. It is comparable and usable
// as a map key.
type ID uint32

// Value is a tagged processor parameter value. Currently a single variant
// carrying a 32-bit float, kept as a struct (rather than a bare float32) so
// a second variant can be added later without changing call sites.
type Value struct {
	Float float32
}

// FloatValue builds a Value carrying a float32.
func FloatValue(v float32) Value {
	return Value{Float: v}
}

// Parameter is process parameter metadata: an identifier and a
// human-readable name.
type Parameter struct {
	ID   ID
	Name string
}

// New creates a new Parameter.
func New(id ID, name string) Parameter {
	return Parameter{ID: id, Name: name}
}
