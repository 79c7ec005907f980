package mapcfg

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-eager/eager"
)

type User struct {
	Invoices []Invoice
}

type Invoice struct {
	InvoiceLines []InvoiceLine
}

type InvoiceLine struct {
	Amount int64
}

type DbUser struct {
	Invoices []Invoice
}

type DbInvoice struct {
	InvoiceLines []InvoiceLine
}

type ArchivedUser struct {
	ArchivedInvoices []Invoice
}

func testTypes(t *testing.T) *Types {
	t.Helper()

	types := NewTypes()
	err := types.Register(
		User{}, Invoice{}, InvoiceLine{},
		DbUser{}, DbInvoice{}, ArchivedUser{},
	)
	if err != nil {
		t.Fatal(err)
	}

	return types
}

func TestLoad(t *testing.T) {
	got, err := Load("testdata/eager.yaml")
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		MaxRecursionLevel: 3,
		Profiles: map[string][]MappingDef{
			"Default": {
				{From: "User.Invoices", To: "DbUser.Invoices"},
				{From: "Invoice.InvoiceLines", To: "DbInvoice.InvoiceLines"},
			},
			"Archives": {
				{From: "User.Invoices", To: "ArchivedUser.ArchivedInvoices"},
			},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("diff: %s", diff)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("EAGER_MAX_RECURSION_LEVEL", "5")

	got, err := Load("testdata/eager.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if got.MaxRecursionLevel != 5 {
		t.Fatalf("expected env override to win, got %d", got.MaxRecursionLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/no-such-file.yaml"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestConfigApply(t *testing.T) {
	cfg, err := Load("testdata/eager.yaml")
	if err != nil {
		t.Fatal(err)
	}

	oldMax := eager.MaxRecursionLevel
	defer func() { eager.MaxRecursionLevel = oldMax }()

	reg := eager.NewRegistry()
	if err := cfg.Apply(reg, testTypes(t)); err != nil {
		t.Fatal(err)
	}

	userInvoices := eager.MustPropertyOf[User]("Invoices")

	got, ok := reg.Counterpart(userInvoices)
	if !ok {
		t.Fatal("expected User.Invoices to be mapped in Default")
	}
	expected := eager.MustPropertyOf[DbUser]("Invoices")
	cmpReflectType := cmp.Comparer(func(a, b reflect.Type) bool { return a == b })
	if diff := cmp.Diff(expected, got, cmpReflectType); diff != "" {
		t.Fatalf("diff: %s", diff)
	}

	got, ok = reg.Counterpart(userInvoices, "Archives")
	if !ok {
		t.Fatal("expected User.Invoices to be mapped in Archives")
	}
	if got.Name != "ArchivedInvoices" {
		t.Fatalf("expected ArchivedInvoices, got %s", got)
	}

	if eager.MaxRecursionLevel != 3 {
		t.Fatalf("expected max recursion level 3, got %d", eager.MaxRecursionLevel)
	}
}

func TestConfigApplyErrors(t *testing.T) {
	types := testTypes(t)

	tests := map[string]struct {
		cfg Config
	}{
		"unknown type": {
			cfg: Config{Profiles: map[string][]MappingDef{
				"Default": {{From: "Order.Items", To: "DbUser.Invoices"}},
			}},
		},
		"unknown field": {
			cfg: Config{Profiles: map[string][]MappingDef{
				"Default": {{From: "User.Orders", To: "DbUser.Invoices"}},
			}},
		},
		"malformed ref": {
			cfg: Config{Profiles: map[string][]MappingDef{
				"Default": {{From: "Invoices", To: "DbUser.Invoices"}},
			}},
		},
		"duplicate property": {
			cfg: Config{Profiles: map[string][]MappingDef{
				"Default": {
					{From: "User.Invoices", To: "DbUser.Invoices"},
					{From: "User.Invoices", To: "ArchivedUser.ArchivedInvoices"},
				},
			}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if err := tc.cfg.Apply(eager.NewRegistry(), types); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRefParse(t *testing.T) {
	tests := map[string]struct {
		ref       Ref
		typeName  string
		fieldName string
		bad       bool
	}{
		"well formed":    {ref: "User.Invoices", typeName: "User", fieldName: "Invoices"},
		"no separator":   {ref: "Invoices", bad: true},
		"empty type":     {ref: ".Invoices", bad: true},
		"empty field":    {ref: "User.", bad: true},
		"too many parts": {ref: "Db.User.Invoices", bad: true},
		"empty ref":      {ref: "", bad: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			typeName, fieldName, err := tc.ref.Parse()

			if tc.bad {
				var refErr *RefError
				if !errors.As(err, &refErr) {
					t.Fatalf("expected *RefError, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if typeName != tc.typeName || fieldName != tc.fieldName {
				t.Fatalf("got (%q, %q)", typeName, fieldName)
			}
		})
	}
}

func TestTypesRegister(t *testing.T) {
	types := NewTypes()

	if err := types.Register(User{}, &Invoice{}); err != nil {
		t.Fatal(err)
	}

	if _, ok := types.Lookup("User"); !ok {
		t.Error("User should be registered")
	}
	if _, ok := types.Lookup("Invoice"); !ok {
		t.Error("pointer registration should store the element type")
	}

	// re-registering the same type is fine
	if err := types.Register(User{}); err != nil {
		t.Fatal(err)
	}

	if err := types.Register(42); err == nil {
		t.Error("non-struct registration should fail")
	}
}

func TestLint(t *testing.T) {
	cfg := Config{Profiles: map[string][]MappingDef{
		"Default": {
			{From: "User.Invoices", To: "DbUser.Invoices"},
			{From: "User.Invoices", To: "ArchivedUser.ArchivedInvoices"},
		},
		"Empty": {},
		"Weird": {
			{From: "Invoices", To: "DbUser.Invoices"},
		},
	}}

	expected := []string{
		`profile "Default": User.Invoices appears in more than one mapping`,
		`profile "Empty" has no mappings`,
		`profile "Weird": bad property reference "Invoices": want the form Type.Field`,
	}
	if diff := cmp.Diff(expected, cfg.Lint()); diff != "" {
		t.Fatalf("diff: %s", diff)
	}
}

func TestLintClean(t *testing.T) {
	cfg, err := Load("testdata/eager.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if findings := cfg.Lint(); len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}
