// Package sqlquery provides a SQL-backed query source for the eager
// package. A Query holds a SQL statement, materializes its rows into
// structs with github.com/stephenafamo/scan, and records eager-load
// include paths; each recorded path is handed to caller-registered
// include loaders after the main query runs.
package sqlquery

import (
	"context"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/stephenafamo/scan"
	"github.com/stephenafamo/scan/stdscan"

	"github.com/go-eager/eager"
)

// IncludeLoader loads the related data described by one dotted include
// path, after the main result set has been materialized. The loader
// runs against the same executor as the main query. Errors abort the
// remaining loaders and propagate to the caller of [Query.All].
type IncludeLoader[T any] func(ctx context.Context, exec stdscan.Queryer, path string, items []T) error

// Query is a SQL query over rows mapped to T.
//
// It implements [eager.Queryer]: include paths appended via
// AppendInclude are recorded in order, once each, and replayed against
// the registered include loaders when All runs.
type Query[T any] struct {
	// Exec runs the SQL. *sql.DB, *sql.Tx and *sql.Conn all qualify.
	Exec stdscan.Queryer
	// SQL is the statement to execute.
	SQL string
	// Args are the statement's placeholder arguments.
	Args []any

	includes []string
	loaders  []IncludeLoader[T]
}

// New builds a query over rows mapped to T.
func New[T any](exec stdscan.Queryer, sql string, args ...any) *Query[T] {
	return &Query[T]{Exec: exec, SQL: sql, Args: args}
}

// Apply applies query mods to q and returns it.
func (q *Query[T]) Apply(mods ...eager.Mod[*Query[T]]) *Query[T] {
	for _, mod := range mods {
		mod.Apply(q)
	}

	return q
}

// AppendInclude records a dotted include path. Empty paths and paths
// already recorded are ignored; otherwise order of first appearance is
// kept.
func (q *Query[T]) AppendInclude(path string) {
	if path == "" || slices.Contains(q.includes, path) {
		return
	}

	q.includes = append(q.includes, path)
}

// Includes returns the recorded include paths in order.
func (q *Query[T]) Includes() []string {
	return slices.Clone(q.includes)
}

// OnInclude registers loaders to run for every recorded include path
// after materialization.
func (q *Query[T]) OnInclude(loaders ...IncludeLoader[T]) {
	q.loaders = append(q.loaders, loaders...)
}

// Clone returns an independent copy of q. Args are deep-copied so the
// clone can be modified and re-run without disturbing the original.
func (q *Query[T]) Clone() *Query[T] {
	q2 := &Query[T]{
		Exec:     q.Exec,
		SQL:      q.SQL,
		includes: slices.Clone(q.includes),
		loaders:  slices.Clone(q.loaders),
	}

	copier.CopyWithOption(&q2.Args, &q.Args, copier.Option{DeepCopy: true})

	return q2
}

// All executes the query, maps every row to T, then runs each
// registered include loader once per recorded include path, in
// recording order. A loader error aborts the rest and is returned
// unchanged.
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	items, err := stdscan.All(ctx, q.Exec, scan.StructMapper[T](), q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}

	for _, path := range q.includes {
		for _, load := range q.loaders {
			if err := load(ctx, q.Exec, path, items); err != nil {
				return nil, err
			}
		}
	}

	return items, nil
}
