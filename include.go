package eager

import "reflect"

// Includable is the narrow capability a query must expose for eager
// loading: accepting a dot-separated include path such as
// "Invoices.InvoiceLines". How the path is honored is up to the query
// implementation.
type Includable interface {
	AppendInclude(path string)
}

// IncludeBuilder walks a flat list of property selectors against a
// [Registry] and applies one include directive to a query per matched
// selector path.
//
// The walk keeps a parent type, starting at the query's root element
// type. Every selector in the list is looked up in the profile; an
// unmapped selector is skipped silently. A mapped selector whose
// declaring type is the current parent type (or the element type of a
// slice, array or pointer parent) has its counterpart's name appended
// to the accumulated dotted chain, the chain is applied to the query,
// and the walk recurses one level deeper with the selector's own field
// type as the new parent. The same flat list is re-scanned at every
// depth, so a multi-level path is described by a flat selector list
// and depth falls out of the declaring types.
type IncludeBuilder struct {
	Registry *Registry

	// Profile to resolve counterparts in. Empty means [DefaultProfile].
	Profile string

	// MaxDepth caps the recursion. Zero or negative means the package
	// level [MaxRecursionLevel].
	MaxDepth int
}

// Build applies include directives to q for every selector path that
// resolves against the builder's profile, rooted at the given element
// type. The query is only augmented, never executed.
func (b IncludeBuilder) Build(root reflect.Type, q Includable, selectors ...Property) {
	if b.Registry == nil || root == nil {
		return
	}

	max := b.MaxDepth
	if max <= 0 {
		max = MaxRecursionLevel
	}

	profile := b.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	b.walk(q, root, selectors, profile, max, 0, "")
}

func (b IncludeBuilder) walk(
	q Includable, parent reflect.Type, selectors []Property,
	profile string, max, depth int, chain string,
) {
	if depth >= max {
		return
	}

	for _, sel := range selectors {
		counterpart, ok := b.Registry.Counterpart(sel, profile)
		if !ok {
			continue
		}

		path := counterpart.Name
		if chain != "" {
			path = chain + "." + path
		}

		if !declaredOn(parent, sel) {
			continue
		}

		q.AppendInclude(path)
		b.walk(q, sel.Type, selectors, profile, max, depth+1, path)
	}
}

// declaredOn reports whether sel is declared on parent, unwrapping
// slices, arrays and pointers so that a []Invoice parent matches
// selectors declared on Invoice.
func declaredOn(parent reflect.Type, sel Property) bool {
	for parent != nil {
		if parent == sel.Declaring {
			return true
		}

		switch parent.Kind() {
		case reflect.Slice, reflect.Array, reflect.Pointer:
			parent = parent.Elem()
		default:
			return false
		}
	}

	return false
}
