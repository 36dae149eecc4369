//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Fungrim authors
//
// This file is part of Fungrim.
//
// Fungrim is licensed under the MIT license. Please see file LICENSE.txt for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package symtab provides the process-wide symbol registry: canonical
// symbol terms plus per-symbol rendering metadata and documentation.
//
// The table is fully populated before any rendering starts and read-only
// afterwards. Renderers receive it by injection, never through package
// globals.
package symtab

import (
	"t73f.de/r/zero/set"

	"github.com/mhogrefe/fungrim/internal/expr"
)

// Description bundles the documentation metadata of a symbol.
type Description struct {
	Example     *expr.Expr   // a typical call, e.g. GammaFunction(z)
	Domain      []*expr.Expr // domain statements, may be nil
	Codomain    *expr.Expr   // may be nil
	Text        string       // short description
	Long        *expr.Expr   // optional long Description(...) term
	DomainTable string       // optional id of the entry holding the domain table
}

// Table is the symbol registry.
type Table struct {
	syms      map[string]*expr.Expr
	variables *set.Set[string]
	infix     map[string]string // head name -> infix spelling
	subCall   map[string]string // head name -> subscript-call glyph
	symbolTeX map[string]string // symbol name -> whole-symbol spelling
	descr     map[string]*Description
	descOrder []string
}

// New returns an empty table. Use Builtin for the fully populated
// standard table.
func New() *Table {
	return &Table{
		syms:      make(map[string]*expr.Expr),
		infix:     make(map[string]string),
		subCall:   make(map[string]string),
		symbolTeX: make(map[string]string),
		descr:     make(map[string]*Description),
	}
}

// RegisterBuiltins creates a canonical symbol for each name. Registering
// a name twice is allowed and yields the same symbol.
func (t *Table) RegisterBuiltins(names ...string) {
	for _, name := range names {
		if _, ok := t.syms[name]; !ok {
			t.syms[name] = expr.Symbol(name)
		}
	}
}

// RegisterVariables registers the names as bindable variables, which
// changes their LaTeX spelling (Greek names print as the typeset letter).
func (t *Table) RegisterVariables(names ...string) {
	t.RegisterBuiltins(names...)
	for _, name := range names {
		t.variables = t.variables.Add(name)
	}
}

// Symbol returns the canonical symbol for name. An unregistered name is
// registered on the fly; unknown symbols degrade to the generic operator
// spelling instead of failing a render.
func (t *Table) Symbol(name string) *expr.Expr {
	if s, ok := t.syms[name]; ok {
		return s
	}
	s := expr.Symbol(name)
	t.syms[name] = s
	return s
}

// IsVariable reports whether name was registered as a bindable variable.
func (t *Table) IsVariable(name string) bool { return t.variables.Contains(name) }

// InfixSpelling returns the infix operator spelling of a head symbol.
func (t *Table) InfixSpelling(name string) (string, bool) {
	s, ok := t.infix[name]
	return s, ok
}

// SubscriptCallSpelling returns the glyph of a subscript-call head, the
// family F in F_n(x).
func (t *Table) SubscriptCallSpelling(name string) (string, bool) {
	s, ok := t.subCall[name]
	return s, ok
}

// SymbolSpelling returns the whole-symbol spelling override, e.g.
// "\Gamma" for GammaFunction.
func (t *Table) SymbolSpelling(name string) (string, bool) {
	s, ok := t.symbolTeX[name]
	return s, ok
}

// SetInfix registers an infix spelling for a head symbol.
func (t *Table) SetInfix(name, spelling string) { t.infix[name] = spelling }

// SetSubscriptCall registers a subscript-call glyph for a head symbol.
func (t *Table) SetSubscriptCall(name, glyph string) { t.subCall[name] = glyph }

// SetSymbolSpelling registers a whole-symbol spelling override.
func (t *Table) SetSymbolSpelling(name, spelling string) { t.symbolTeX[name] = spelling }

// SpellSymbol returns the LaTeX spelling of a symbol atom: the override
// table first, then the variable rule (single letter verbatim, Greek
// names as the typeset letter), then the generic operator-name wrapping.
func (t *Table) SpellSymbol(name string) string {
	if s, ok := t.symbolTeX[name]; ok {
		return s
	}
	if t.variables.Contains(name) {
		if len(name) == 1 {
			return name
		}
		if name == "epsilon" {
			return "\\varepsilon"
		}
		return "\\" + name
	}
	return "\\operatorname{" + name + "}"
}

// Describe attaches full documentation metadata to a symbol.
func (t *Table) Describe(sym *expr.Expr, example *expr.Expr, domain []*expr.Expr, codomain *expr.Expr, description string) {
	t.putDescription(sym.Name(), &Description{
		Example: example, Domain: domain, Codomain: codomain, Text: description,
	})
}

// Describe2 attaches the simplified two-column documentation metadata,
// optionally with a domain table entry id and a long description term.
func (t *Table) Describe2(sym *expr.Expr, example *expr.Expr, description, domainTable string, long *expr.Expr) {
	t.putDescription(sym.Name(), &Description{
		Example: example, Text: description, DomainTable: domainTable, Long: long,
	})
}

func (t *Table) putDescription(name string, d *Description) {
	if _, ok := t.descr[name]; !ok {
		t.descOrder = append(t.descOrder, name)
	}
	t.descr[name] = d
}

// DescriptionOf returns the documentation metadata of a symbol, or nil.
func (t *Table) DescriptionOf(sym *expr.Expr) *Description { return t.descr[sym.Name()] }

// DescribedSymbols returns all described symbols in registration order.
func (t *Table) DescribedSymbols() []*expr.Expr {
	result := make([]*expr.Expr, 0, len(t.descOrder))
	for _, name := range t.descOrder {
		result = append(result, t.Symbol(name))
	}
	return result
}

// ExcludeFromListings reports whether a symbol is part of the logical and
// set-theoretic core that definition listings leave out.
func (t *Table) ExcludeFromListings(sym *expr.Expr) bool {
	return excludedSymbols.Contains(sym.Name())
}

var excludedSymbols = set.New(
	"Set", "List", "Tuple",
	"And", "Or", "Implies", "Equivalent", "Not",
	"Element", "NotElement", "Union", "Intersection", "SetMinus",
	"Subset", "SubsetEqual",
)
