// Package schema validates loosely typed payloads against declarative
// descriptors.
//
// A Descriptor lists the fields a payload may carry. Validate keeps only those
// fields, coerces each one to its declared type and reports the outcome as a
// Result. A Result is either valid, in which case it may still hold an empty
// map or list, or rejected. Callers must check Valid instead of inspecting the
// value for emptiness.
package schema

// FieldType is the declared type of a field.
type FieldType int

const (
	String FieldType = iota
	Int
	Float
	Bool
	// StringList accepts any list whose items coerce to strings.
	StringList
	// List accepts any list and keeps the items untouched.
	List
	// Map accepts an object (or its JSON encoding) and keeps the values untouched.
	Map
	// Object validates a single nested object against Field.Nested.
	Object
	// ObjectList validates every item of a list against Field.Nested.
	ObjectList
)

var fieldTypeNames = map[FieldType]string{
	String:     "string",
	Int:        "int",
	Float:      "float",
	Bool:       "bool",
	StringList: "string list",
	List:       "list",
	Map:        "map",
	Object:     "object",
	ObjectList: "object list",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Field describes one key of a payload.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// OneOf restricts String fields to a closed set of values.
	OneOf []string

	// Nested is the descriptor used by Object and ObjectList fields.
	Nested *Descriptor

	// Encode replaces the validated value with its JSON encoding.
	Encode bool

	// Flatten merges the keys of a validated Object into the parent instead of
	// keeping them under Name.
	Flatten bool
}

// Descriptor is the expected shape of a payload.
type Descriptor struct {
	Name   string
	Fields []Field

	// Many makes Validate expect a list of objects instead of a single one.
	Many bool

	// Inject is merged into every object before it is validated, overriding
	// keys already present.
	Inject map[string]any
}

// WithInject returns a copy of d whose objects receive the given values.
func (d *Descriptor) WithInject(values map[string]any) *Descriptor {
	inject := make(map[string]any, len(d.Inject)+len(values))
	for k, v := range d.Inject {
		inject[k] = v
	}
	for k, v := range values {
		inject[k] = v
	}

	return &Descriptor{
		Name:   d.Name,
		Fields: d.Fields,
		Many:   d.Many,
		Inject: inject,
	}
}

// Field returns the field called name, if declared.
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Result is the outcome of Validate.
type Result struct {
	value  any
	valid  bool
	reason string
}

func accepted(value any) Result {
	return Result{value: value, valid: true}
}

func rejected(reason string) Result {
	return Result{reason: reason}
}

// Valid reports whether the payload matched its descriptor.
func (r Result) Valid() bool {
	return r.valid
}

// Reason explains why the payload was rejected. It is empty for valid results.
func (r Result) Reason() string {
	return r.reason
}

// Value returns the validated payload: a map[string]any for single
// descriptors and a []map[string]any for Many descriptors.
func (r Result) Value() any {
	return r.value
}

// Map returns the validated object, or nil when the result is rejected or
// holds a list.
func (r Result) Map() map[string]any {
	m, _ := r.value.(map[string]any)
	return m
}

// List returns the validated objects, or nil when the result is rejected or
// holds a single object.
func (r Result) List() []map[string]any {
	l, _ := r.value.([]map[string]any)
	return l
}
