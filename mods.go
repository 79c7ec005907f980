package eager

import "reflect"

// Mod is a generic interface for modifying a query.
type Mod[T any] interface {
	Apply(T)
}

// ModFunc wraps a plain function as a [Mod].
type ModFunc[T any] func(T)

func (m ModFunc[T]) Apply(query T) {
	m(query)
}

// Loads returns a mod that applies eager-load include directives for
// the given selectors, resolved in the profile against reg and rooted
// at T. An empty profile means [DefaultProfile].
func Loads[T any, Q Includable](reg *Registry, profile string, selectors ...Property) Mod[Q] {
	return ModFunc[Q](func(q Q) {
		IncludeBuilder{Registry: reg, Profile: profile}.Build(
			reflect.TypeOf((*T)(nil)).Elem(), q, selectors...,
		)
	})
}
