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

package expr_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/mhogrefe/fungrim/internal/expr"
)

func TestSourceString(t *testing.T) {
	z := expr.Symbol("z")
	var testcases = []struct {
		name string
		e    *expr.Expr
		exp  string
	}{
		{name: "symbol", e: z, exp: "z"},
		{name: "integer", e: expr.Int(42), exp: "42"},
		{name: "negative integer", e: expr.Int(-7), exp: "-7"},
		{name: "text", e: expr.Text("gamma"), exp: `"gamma"`},
		{name: "text with quote", e: expr.Text(`a "b"`), exp: `"a \"b\""`},
		{name: "call", e: expr.Call(expr.Symbol("GammaFunction"), z), exp: "GammaFunction(z)"},
		{name: "nested call",
			e:   expr.Call(expr.Symbol("Equal"), expr.Call(expr.Symbol("GammaFunction"), 1), 1),
			exp: "Equal(GammaFunction(1), 1)"},
		{name: "sugar", e: z.Add(1).Mul(2), exp: "Mul(Add(z, 1), 2)"},
		{name: "neg sugar", e: z.Neg(), exp: "Neg(z)"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.e.SourceString(); got != tc.exp {
				t.Errorf("\nexpected: %q\n but got: %q", tc.exp, got)
			}
		})
	}
}

func TestEntrySourceString(t *testing.T) {
	entry := expr.Call(expr.Symbol(expr.SymEntry),
		expr.Call(expr.Symbol("ID"), "f1d31a"),
		expr.Call(expr.Symbol("Variables"), expr.Symbol("z")))
	exp := "Entry(ID(\"f1d31a\"),\n    Variables(z))"
	if got := entry.SourceString(); got != exp {
		t.Errorf("\nexpected: %q\n but got: %q", exp, got)
	}
}

func TestEqualAndHash(t *testing.T) {
	z := expr.Symbol("z")
	var testcases = []struct {
		name  string
		a, b  *expr.Expr
		equal bool
	}{
		{name: "same symbol", a: expr.Symbol("z"), b: expr.Symbol("z"), equal: true},
		{name: "different symbol", a: expr.Symbol("z"), b: expr.Symbol("w"), equal: false},
		{name: "same integer", a: expr.Int(3), b: expr.Integer(big.NewInt(3)), equal: true},
		{name: "different sign", a: expr.Int(3), b: expr.Int(-3), equal: false},
		{name: "symbol vs text", a: expr.Symbol("z"), b: expr.Text("z"), equal: false},
		{name: "same call", a: z.Add(1), b: expr.Symbol("z").Add(1), equal: true},
		{name: "argument order", a: z.Add(1), b: expr.Int(1).Add(z), equal: false},
		{name: "arity", a: expr.Call(z, 1), b: expr.Call(z, 1, 1), equal: false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Errorf("Equal = %v, expected %v", got, tc.equal)
			}
			if tc.equal && tc.a.Hash() != tc.b.Hash() {
				t.Errorf("equal terms with different hashes: %d vs %d", tc.a.Hash(), tc.b.Hash())
			}
			if tc.equal && tc.a.Key() != tc.b.Key() {
				t.Errorf("equal terms with different keys: %q vs %q", tc.a.Key(), tc.b.Key())
			}
		})
	}
}

func TestIntegerIsCopied(t *testing.T) {
	n := big.NewInt(5)
	e := expr.Integer(n)
	n.SetInt64(99)
	if got := e.IntValue().Int64(); got != 5 {
		t.Errorf("integer atom changed after construction: got %d", got)
	}
}

func TestFromCoercion(t *testing.T) {
	if got := expr.From(7).SourceString(); got != "7" {
		t.Errorf("From(int) = %q", got)
	}
	if got := expr.From("abc").SourceString(); got != `"abc"` {
		t.Errorf("From(string) = %q", got)
	}
	z := expr.Symbol("z")
	if expr.From(z) != z {
		t.Error("From(*Expr) must pass through unchanged")
	}
	// A string head is coerced to a text atom, not a symbol.
	if got := expr.Call("f", 1).Head().IsText(); !got {
		t.Error("string head must become a text atom")
	}
}

func TestCallAccessors(t *testing.T) {
	z := expr.Symbol("z")
	e := expr.Call(expr.Symbol("GammaFunction"), z, 2)
	if !e.HeadIs("GammaFunction") {
		t.Error("HeadIs failed on matching head")
	}
	if e.HeadIs("Gamma") {
		t.Error("HeadIs matched a wrong head")
	}
	if got := e.Arity(); got != 2 {
		t.Errorf("Arity = %d, expected 2", got)
	}
	if z.Arity() != 0 || z.Head() != nil || z.Args() != nil {
		t.Error("atom must report no head, args or arity")
	}
	entry := expr.Call(expr.Symbol("Entry"),
		expr.Call(expr.Symbol("ID"), "abc123"),
		expr.Call(expr.Symbol("Variables"), z))
	if got := entry.ArgWithHead("ID"); got == nil || got.Args()[0].TextValue() != "abc123" {
		t.Errorf("ArgWithHead(ID) = %v", got)
	}
	if got := entry.ArgWithHead("Assumptions"); got != nil {
		t.Errorf("ArgWithHead on missing head = %v, expected nil", got)
	}
}

func TestAllSymbols(t *testing.T) {
	z, n := expr.Symbol("z"), expr.Symbol("n")
	e := expr.Call(expr.Symbol("Equal"),
		expr.Call(expr.Symbol("GammaFunction"), z.Add(n)),
		expr.Call(expr.Symbol("GammaFunction"), z).Mul(n))
	var names []string
	for _, sym := range e.AllSymbols() {
		names = append(names, sym.Name())
	}
	exp := "Equal GammaFunction Add z n Mul"
	if got := strings.Join(names, " "); got != exp {
		t.Errorf("\nexpected: %q\n but got: %q", exp, got)
	}
}
