// Package schema is the static registry of request payload shapes.
//
// Each resource+verb pair maps to the exact, ordered list of fields its JSON
// body must carry and the kind each field's value must have.
package schema

// Kind is the expected JSON value kind of a payload field.
type Kind int

const (
	String Kind = iota
	Integer
	// Real accepts integer literals too (numeric widening).
	Real
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Real:
		return "number"
	default:
		return "unknown"
	}
}

// Resource names one of the three stored resources.
type Resource string

const (
	Country     Resource = "country"
	City        Resource = "city"
	Temperature Resource = "temperature"
)

// Verb is a mutating operation that carries a body.
type Verb string

const (
	Create Verb = "create"
	Update Verb = "update"
)

// Field is one required payload field.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the exact field set of a payload, in declared order.
type Schema []Field

// Names returns the field names in declared order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Has reports whether name is part of the schema.
func (s Schema) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

type key struct {
	resource Resource
	verb     Verb
}

var registry = map[key]Schema{
	{Country, Create}: {
		{Name: "name", Kind: String},
		{Name: "lat", Kind: Real},
		{Name: "lon", Kind: Real},
	},
	{Country, Update}: {
		{Name: "id", Kind: Integer},
		{Name: "name", Kind: String},
		{Name: "lat", Kind: Real},
		{Name: "lon", Kind: Real},
	},
	{City, Create}: {
		{Name: "country_id", Kind: Integer},
		{Name: "name", Kind: String},
		{Name: "lat", Kind: Real},
		{Name: "lon", Kind: Real},
	},
	{City, Update}: {
		{Name: "id", Kind: Integer},
		{Name: "country_id", Kind: Integer},
		{Name: "name", Kind: String},
		{Name: "lat", Kind: Real},
		{Name: "lon", Kind: Real},
	},
	{Temperature, Create}: {
		{Name: "city_id", Kind: Integer},
		{Name: "value", Kind: Real},
	},
	{Temperature, Update}: {
		{Name: "id", Kind: Integer},
		{Name: "city_id", Kind: Integer},
		{Name: "value", Kind: Real},
	},
}

// Lookup returns the schema registered for resource and verb.
func Lookup(resource Resource, verb Verb) (Schema, bool) {
	s, ok := registry[key{resource, verb}]
	return s, ok
}

// MustLookup is Lookup for registrations known at compile time.
func MustLookup(resource Resource, verb Verb) Schema {
	s, ok := Lookup(resource, verb)
	if !ok {
		panic("schema: no entry for " + string(resource) + "/" + string(verb))
	}
	return s
}
