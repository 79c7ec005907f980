package eager

import (
	"context"
	"reflect"
)

// Queryer is a query over elements of type T that supports include
// directives and can materialize its full result set. Materialization
// is where the external fetch happens; this package never triggers it
// except through [SelectWithEager].
type Queryer[T any] interface {
	Includable
	All(ctx context.Context) ([]T, error)
}

// SelectWithEager augments q with include directives for the given
// selectors resolved in [DefaultProfile], materializes it, and hands
// the result to mapper. The mapper is called exactly once, after
// materialization, and its result is returned unchanged. Fetch errors
// propagate unchanged and the mapper is not called.
func SelectWithEager[T, R any](
	ctx context.Context, q Queryer[T], reg *Registry,
	mapper func([]T) R, selectors ...Property,
) (R, error) {
	return SelectWithEagerIn(ctx, q, reg, DefaultProfile, mapper, selectors...)
}

// SelectWithEagerIn is [SelectWithEager] with an explicit profile.
func SelectWithEagerIn[T, R any](
	ctx context.Context, q Queryer[T], reg *Registry, profile string,
	mapper func([]T) R, selectors ...Property,
) (R, error) {
	var mapped R

	IncludeBuilder{Registry: reg, Profile: profile}.Build(
		reflect.TypeOf((*T)(nil)).Elem(), q, selectors...,
	)

	items, err := q.All(ctx)
	if err != nil {
		return mapped, err
	}

	return mapper(items), nil
}
