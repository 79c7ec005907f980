package eager

import (
	"reflect"
	"strings"
)

// Property identifies a single struct field: the struct type that
// declares it and the field's name. Two Property values are the same
// identity when their declaring type and name match, regardless of how
// they were resolved.
type Property struct {
	// Declaring is the struct type the field belongs to.
	Declaring reflect.Type
	// Name is the field's name on the declaring type.
	Name string
	// Type is the field's own type. It becomes the parent type when
	// an include traversal recurses through this property.
	Type reflect.Type
}

// IsZero reports whether p carries no identity.
func (p Property) IsZero() bool {
	return p.Declaring == nil && p.Name == ""
}

// Is reports whether p and other are the same property identity.
// The field type does not participate: identity is declaring type
// plus name.
func (p Property) Is(other Property) bool {
	return p.Declaring == other.Declaring && p.Name == other.Name
}

func (p Property) String() string {
	if p.Declaring == nil {
		return p.Name
	}

	name := p.Declaring.Name()
	if name == "" {
		name = p.Declaring.String()
	}

	return name + "." + p.Name
}

// PropertyOf resolves the named field on T into a [Property]. T may be
// a struct or a pointer to one. The name must refer directly to a
// single exported field. Anything else, a dotted path included, fails
// with [*InvalidSelectorError].
func PropertyOf[T any](name string) (Property, error) {
	return PropertyOfType(reflect.TypeOf((*T)(nil)).Elem(), name)
}

// MustPropertyOf is like [PropertyOf] but panics on error. It is meant
// for package-level registration blocks where the field name is a
// literal.
func MustPropertyOf[T any](name string) Property {
	p, err := PropertyOf[T](name)
	if err != nil {
		panic(err)
	}

	return p
}

// PropertyOfType is the non-generic form of [PropertyOf], for callers
// that only hold a [reflect.Type], such as config loaders.
func PropertyOfType(typ reflect.Type, name string) (Property, error) {
	orig := typ
	if typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ == nil || typ.Kind() != reflect.Struct {
		return Property{}, &InvalidSelectorError{
			Type: orig, Name: name, Reason: "not a struct type",
		}
	}

	if name == "" {
		return Property{}, &InvalidSelectorError{
			Type: typ, Name: name, Reason: "empty field name",
		}
	}

	if strings.ContainsAny(name, ".()") {
		return Property{}, &InvalidSelectorError{
			Type: typ, Name: name, Reason: "not a direct field access",
		}
	}

	field, ok := typ.FieldByName(name)
	if !ok {
		return Property{}, &InvalidSelectorError{
			Type: typ, Name: name, Reason: "no such field",
		}
	}

	if !field.IsExported() {
		return Property{}, &InvalidSelectorError{
			Type: typ, Name: name, Reason: "field is not exported",
		}
	}

	return Property{Declaring: typ, Name: field.Name, Type: field.Type}, nil
}
