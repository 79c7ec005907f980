package eager

import (
	"fmt"
	"reflect"
)

// InvalidSelectorError is returned when a selector does not resolve to
// a direct, exported struct field.
type InvalidSelectorError struct {
	Type   reflect.Type
	Name   string
	Reason string
}

func (e *InvalidSelectorError) Error() string {
	typ := "<nil>"
	if e.Type != nil {
		typ = e.Type.String()
	}

	return fmt.Sprintf("invalid selector %s.%s: %s", typ, e.Name, e.Reason)
}

// DuplicateMappingError is returned by [Registry.AddMapping] when the
// property on either side of the new mapping already participates in a
// mapping within the target profile. The registry is left unmodified.
type DuplicateMappingError struct {
	Profile  string
	Property Property
	Existing Mapping
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf(
		"duplicate mapping in profile %q: %s already mapped as %s <> %s",
		e.Profile, e.Property, e.Existing.A, e.Existing.B,
	)
}
