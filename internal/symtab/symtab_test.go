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

package symtab_test

import (
	"testing"

	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

func TestSpellSymbol(t *testing.T) {
	tab := symtab.Builtin()
	var testcases = []struct {
		name string
		exp  string
	}{
		{name: "GammaFunction", exp: "\\Gamma"},
		{name: "ConstPi", exp: "\\pi"},
		{name: "z", exp: "z"},
		{name: "N", exp: "N"},
		{name: "alpha", exp: "\\alpha"},
		{name: "epsilon", exp: "\\varepsilon"},
		{name: "Factorial", exp: "\\operatorname{Factorial}"},
		{name: "NoSuchOperator", exp: "\\operatorname{NoSuchOperator}"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tab.SpellSymbol(tc.name); got != tc.exp {
				t.Errorf("\nexpected: %q\n but got: %q", tc.exp, got)
			}
		})
	}
}

func TestSpellingTables(t *testing.T) {
	tab := symtab.Builtin()
	if got, ok := tab.InfixSpelling("Equal"); !ok || got != "=" {
		t.Errorf("InfixSpelling(Equal) = %q, %v", got, ok)
	}
	if _, ok := tab.InfixSpelling("GammaFunction"); ok {
		t.Error("GammaFunction must not have an infix spelling")
	}
	if got, ok := tab.SubscriptCallSpelling("ChebyshevT"); !ok || got != "T" {
		t.Errorf("SubscriptCallSpelling(ChebyshevT) = %q, %v", got, ok)
	}
	if !tab.IsVariable("z") || !tab.IsVariable("omega") {
		t.Error("variable alphabet incomplete")
	}
	if tab.IsVariable("GammaFunction") {
		t.Error("GammaFunction must not be a variable")
	}
}

func TestSymbolCanonical(t *testing.T) {
	tab := symtab.Builtin()
	if tab.Symbol("GammaFunction") != tab.Symbol("GammaFunction") {
		t.Error("repeated lookup must yield the same symbol term")
	}
	// Unregistered names are registered on the fly.
	s := tab.Symbol("BrandNewOperator")
	if s == nil || s.Name() != "BrandNewOperator" {
		t.Errorf("on-the-fly symbol = %v", s)
	}
	if tab.Symbol("BrandNewOperator") != s {
		t.Error("on-the-fly symbol must be canonical afterwards")
	}
}

func TestDescriptions(t *testing.T) {
	tab := symtab.New()
	tab.RegisterBuiltins("GammaFunction", "Factorial")
	tab.RegisterVariables("z", "n")
	z := tab.Symbol("z")
	gamma := tab.Symbol("GammaFunction")
	fac := tab.Symbol("Factorial")

	tab.Describe2(gamma, expr.Call(gamma, z), "Gamma function", "09e2ed", nil)
	tab.Describe2(fac, expr.Call(fac, tab.Symbol("n")), "Factorial", "27bc34", nil)

	d := tab.DescriptionOf(gamma)
	if d == nil {
		t.Fatal("GammaFunction has no description")
	}
	if d.Text != "Gamma function" || d.DomainTable != "09e2ed" {
		t.Errorf("unexpected description: %+v", d)
	}
	if tab.DescriptionOf(z) != nil {
		t.Error("z must not have a description")
	}

	var names []string
	for _, sym := range tab.DescribedSymbols() {
		names = append(names, sym.Name())
	}
	if len(names) != 2 || names[0] != "GammaFunction" || names[1] != "Factorial" {
		t.Errorf("DescribedSymbols order: %v", names)
	}

	// A repeated description replaces, it does not duplicate.
	tab.Describe2(gamma, expr.Call(gamma, z), "updated", "", nil)
	if got := len(tab.DescribedSymbols()); got != 2 {
		t.Errorf("DescribedSymbols after update: %d symbols", got)
	}
	if got := tab.DescriptionOf(gamma).Text; got != "updated" {
		t.Errorf("description not replaced: %q", got)
	}
}

func TestExcludeFromListings(t *testing.T) {
	tab := symtab.Builtin()
	for _, name := range []string{"Tuple", "Set", "Element", "And"} {
		if !tab.ExcludeFromListings(tab.Symbol(name)) {
			t.Errorf("%s must be excluded from listings", name)
		}
	}
	for _, name := range []string{"GammaFunction", "Factorial", "z"} {
		if tab.ExcludeFromListings(tab.Symbol(name)) {
			t.Errorf("%s must not be excluded from listings", name)
		}
	}
}
