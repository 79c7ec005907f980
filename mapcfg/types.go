package mapcfg

import (
	"fmt"
	"reflect"
)

// Types is a set of Go struct types addressable by name from
// configuration references. Like a mapping registry, it is meant to be
// populated during startup.
type Types struct {
	byName map[string]reflect.Type
}

// NewTypes returns an empty type set.
func NewTypes() *Types {
	return &Types{byName: map[string]reflect.Type{}}
}

// Register adds the type of every value (pointers are dereferenced)
// under its Go type name. Unnamed or non-struct types, and names
// already registered with a different type, are rejected.
func (t *Types) Register(values ...any) error {
	for _, v := range values {
		typ := reflect.TypeOf(v)
		if typ != nil && typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}

		if typ == nil || typ.Kind() != reflect.Struct {
			return fmt.Errorf("cannot register %T: not a struct type", v)
		}
		if typ.Name() == "" {
			return fmt.Errorf("cannot register %s: unnamed type", typ)
		}

		if existing, ok := t.byName[typ.Name()]; ok && existing != typ {
			return fmt.Errorf(
				"cannot register %s: name %q already taken by %s",
				typ, typ.Name(), existing,
			)
		}
		t.byName[typ.Name()] = typ
	}

	return nil
}

// Lookup returns the type registered under name.
func (t *Types) Lookup(name string) (reflect.Type, bool) {
	typ, ok := t.byName[name]
	return typ, ok
}
