package eager

import (
	"context"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// cmpReflectType lets cmp.Diff compare the reflect.Type fields of
// Property, which it cannot walk on its own.
var cmpReflectType = cmp.Comparer(func(a, b reflect.Type) bool { return a == b })

// Source-side entities used across the package tests.
type User struct {
	ID       int64
	Invoices []Invoice
}

type Invoice struct {
	ID           int64
	InvoiceLines []InvoiceLine
}

type InvoiceLine struct {
	ID    int64
	Taxes []Tax
}

type Tax struct {
	ID    int64
	Rules []TaxRule
}

type TaxRule struct {
	ID int64
}

// Destination-side entities, standing in for persistence models.
type DbUser struct {
	Invoices []DbInvoice
}

type DbInvoice struct {
	InvoiceLines []DbInvoiceLine
}

type DbInvoiceLine struct {
	Taxes []DbTax
}

type DbTax struct {
	Rules []DbTaxRule
}

type DbTaxRule struct{}

type ArchivedUser struct {
	ArchivedInvoices []DbInvoice
}

// fakeQuery records include paths and returns canned results.
type fakeQuery[T any] struct {
	includes []string
	items    []T
	err      error
	allCalls int
}

func (q *fakeQuery[T]) AppendInclude(path string) {
	q.includes = append(q.includes, path)
}

func (q *fakeQuery[T]) All(context.Context) ([]T, error) {
	q.allCalls++
	return q.items, q.err
}

// invoiceRegistry builds the registry used by the include and select
// tests: a fully chained Default profile and a partial Archives
// profile.
func invoiceRegistry() *Registry {
	reg := NewRegistry()

	pairs := [][2]Property{
		{MustPropertyOf[User]("Invoices"), MustPropertyOf[DbUser]("Invoices")},
		{MustPropertyOf[Invoice]("InvoiceLines"), MustPropertyOf[DbInvoice]("InvoiceLines")},
		{MustPropertyOf[InvoiceLine]("Taxes"), MustPropertyOf[DbInvoiceLine]("Taxes")},
		{MustPropertyOf[Tax]("Rules"), MustPropertyOf[DbTax]("Rules")},
	}
	for _, pair := range pairs {
		if err := reg.AddMapping(pair[0], pair[1]); err != nil {
			panic(err)
		}
	}

	err := reg.AddMapping(
		MustPropertyOf[User]("Invoices"),
		MustPropertyOf[ArchivedUser]("ArchivedInvoices"),
		"Archives",
	)
	if err != nil {
		panic(err)
	}

	return reg
}
