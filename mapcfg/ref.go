package mapcfg

import (
	"fmt"
	"strings"

	"github.com/go-eager/eager"
)

// Ref names a property in configuration as "Type.Field".
type Ref string

// RefError reports a reference that cannot be parsed or resolved.
type RefError struct {
	Ref    Ref
	Reason string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("bad property reference %q: %s", string(e.Ref), e.Reason)
}

// Parse splits r into its type and field names.
func (r Ref) Parse() (typeName, fieldName string, err error) {
	parts := strings.Split(string(r), ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &RefError{Ref: r, Reason: "want the form Type.Field"}
	}

	return parts[0], parts[1], nil
}

// Resolve turns r into a property identity using the registered types.
func (r Ref) Resolve(types *Types) (eager.Property, error) {
	typeName, fieldName, err := r.Parse()
	if err != nil {
		return eager.Property{}, err
	}

	typ, ok := types.Lookup(typeName)
	if !ok {
		return eager.Property{}, &RefError{Ref: r, Reason: "unknown type"}
	}

	p, err := eager.PropertyOfType(typ, fieldName)
	if err != nil {
		return eager.Property{}, fmt.Errorf("resolving %q: %w", string(r), err)
	}

	return p, nil
}
