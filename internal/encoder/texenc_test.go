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

package encoder_test

import (
	"strings"
	"testing"

	"github.com/mhogrefe/fungrim/internal/encoder"
	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

func call(head string, args ...any) *expr.Expr {
	return expr.Call(expr.Symbol(head), args...)
}

func TestTeX(t *testing.T) {
	var (
		k = expr.Symbol("k")
		n = expr.Symbol("n")
		x = expr.Symbol("x")
		y = expr.Symbol("y")
		z = expr.Symbol("z")
	)
	var testcases = []struct {
		name  string
		e     *expr.Expr
		small bool
		exp   string
	}{
		{name: "integer", e: expr.Int(42), exp: `42`},
		{name: "variable", e: z, exp: `z`},
		{name: "greek variable", e: expr.Symbol("alpha"), exp: `\alpha`},
		{name: "text", e: expr.Text("hello"), exp: "\\text{``hello''}"},

		{name: "generic call", e: call("GammaFunction", 1), exp: `\Gamma\!\left(1\right)`},
		{name: "equation",
			e:   call("Equal", call("GammaFunction", 1), 1),
			exp: `\Gamma\!\left(1\right) = 1`},
		{name: "membership",
			e:   call("Element", z, expr.Symbol("CC")),
			exp: `z \in \mathbb{C}`},

		{name: "symbol power", e: z.Pow(2), exp: `{z}^{2}`},
		{name: "sum power", e: z.Add(1).Pow(2), exp: `{\left(z + 1\right)}^{2}`},
		{name: "power on function symbol",
			e:   call("Sin", z).Pow(2),
			exp: `\sin^{2}\!\left(z\right)`},
		{name: "fraction", e: expr.Int(1).Div(2), exp: `\frac{1}{2}`},
		{name: "small division", e: expr.Int(1).Div(2), small: true, exp: `1 / 2`},
		{name: "small division negative numerator",
			e: expr.Int(-1).Div(2), small: true,
			exp: `\left( -1 \right) / 2`},
		{name: "negative factor",
			e:   expr.Int(-3).Mul(z),
			exp: `\left(-3\right) z`},
		{name: "subtraction of negation",
			e:   x.Sub(y.Neg()),
			exp: `x - \left(-y\right)`},

		{name: "exponential as power", e: call("Exp", z), exp: `{e}^{z}`},
		{name: "exponential as operator",
			e:   call("Exp", call("GammaFunction", z)),
			exp: `\exp\!\left(\Gamma\!\left(z\right)\right)`},

		{name: "factorial", e: call("Factorial", n), exp: `n !`},
		{name: "factorial of sum",
			e:   call("Factorial", n.Add(1)),
			exp: `\left(n + 1\right)!`},
		{name: "absolute value", e: z.Abs(), exp: `\left|z\right|`},
		{name: "sqrt", e: z.Sqrt(), exp: `\sqrt{z}`},
		{name: "tuple", e: call("Tuple", 1, 2), exp: `\left(1, 2\right)`},
		{name: "set", e: call("Set", 1, 2), exp: `\left\{1, 2\right\}`},
		{name: "closed interval",
			e:   call("ClosedInterval", 0, 1),
			exp: `\left[0, 1\right]`},
		{name: "binomial", e: call("Binomial", n, k), exp: `{n \choose k}`},
		{name: "bessel", e: call("BesselJ", n, x), exp: `J_{n}\!\left(x\right)`},
		{name: "subscript call",
			e:   call("ChebyshevT", n, x),
			exp: `T_{n}\!\left(x\right)`},

		{name: "sum with range",
			e:   call("Sum", k.Pow(2), call("Tuple", k, 1, n)),
			exp: `\sum_{k=1}^{n} {k}^{2}`},
		{name: "sum over bare variable",
			e:   call("Sum", k.Pow(2), k),
			exp: `\sum_{k} {k}^{2}`},
		{name: "sum with condition",
			e:   call("Sum", k, k, call("Element", k, expr.Symbol("ZZ"))),
			exp: `\sum_{k \in \mathbb{Z}} k`},
		{name: "integral",
			e: call("Integral", call("Exp", expr.Symbol("t").Neg()),
				call("Tuple", expr.Symbol("t"), 0, expr.Symbol("Infinity"))),
			exp: `\int_{0}^{\infty} {e}^{-t} \, dt`},

		{name: "derivative primes",
			e:   call("Derivative", call("GammaFunction", z), z, z),
			exp: `\Gamma'(z)`},
		{name: "limit to atom",
			e:   call("Limit", expr.Int(1).Div(x), x, expr.Symbol("Infinity")),
			exp: `\lim_{x \to \infty} \frac{1}{x}`},
		{name: "limit to compound point brackets the formula",
			e:   call("Limit", x, x, z.Add(1)),
			exp: `\lim_{x \to z + 1} \left[ x \right]`},
		{name: "limit with predicate",
			e:   call("Limit", x, x, 0, call("Element", x, expr.Symbol("RR"))),
			exp: `\lim_{x \to 0, x \in \mathbb{R}} x`},
		{name: "right limit",
			e:   call("RightLimit", call("GammaFunction", x), x, 0),
			exp: `\lim_{x \to {0}^{+}} \Gamma\!\left(x\right)`},

		{name: "decimal plain", e: call("Decimal", "3.14"), exp: `3.14`},
		{name: "decimal scientific",
			e:   call("Decimal", "1.25e7"),
			exp: `1.25 \cdot 10^{7}`},
		{name: "decimal negative exponent",
			e:   call("Decimal", "2.3e-5"),
			exp: `2.3 \cdot 10^{-5}`},

		{name: "conjunction display",
			e:   call("And", call("Element", z, expr.Symbol("CC")), call("Unequal", z, 0)),
			exp: `z \in \mathbb{C} \,\mathbin{\operatorname{and}}\, z \ne 0`},
		{name: "conjunction compact",
			e:     call("And", call("Element", z, expr.Symbol("CC")), call("Unequal", z, 0)),
			small: true,
			exp:   `z \in \mathbb{C},\,z \ne 0`},

		{name: "cases",
			e: call("Cases",
				call("Tuple", 1, call("Equal", n, 0)),
				call("Tuple", 0, expr.Symbol("Otherwise"))),
			exp: `\begin{cases} 1, & n = 0\\0, & \text{otherwise}\\ \end{cases}`},
	}
	enc := encoder.NewTeX(symtab.Builtin())
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := enc.TeX(tc.e, tc.small); got != tc.exp {
				t.Errorf("\nexpected: %q\n but got: %q", tc.exp, got)
			}
		})
	}
}

func TestNeedsParensInMul(t *testing.T) {
	z := expr.Symbol("z")
	var testcases = []struct {
		name string
		e    *expr.Expr
		exp  bool
	}{
		{name: "negative integer", e: expr.Int(-3), exp: true},
		{name: "positive integer", e: expr.Int(3), exp: false},
		{name: "symbol", e: z, exp: false},
		{name: "sum", e: z.Add(1), exp: true},
		{name: "difference", e: z.Sub(1), exp: true},
		{name: "negation", e: z.Neg(), exp: false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := encoder.NeedsParensInMul(tc.e); got != tc.exp {
				t.Errorf("NeedsParensInMul = %v, expected %v", got, tc.exp)
			}
		})
	}
}

func TestShowExponentialAsPower(t *testing.T) {
	n, x, y, z := expr.Symbol("n"), expr.Symbol("x"), expr.Symbol("y"), expr.Symbol("z")
	var testcases = []struct {
		name string
		e    *expr.Expr
		exp  bool
	}{
		{name: "atom", e: z, exp: true},
		{name: "sum", e: z.Add(1), exp: true},
		{name: "abs", e: z.Abs(), exp: true},
		{name: "function call", e: call("GammaFunction", z), exp: false},
		{name: "atomic denominator", e: z.Div(n), exp: true},
		{name: "compound denominator", e: z.Div(n.Add(1)), exp: false},
		{name: "nested division", e: x.Div(y).Div(z), exp: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := encoder.ShowExponentialAsPower(tc.e); got != tc.exp {
				t.Errorf("ShowExponentialAsPower = %v, expected %v", got, tc.exp)
			}
		})
	}
}

func TestEntryTeX(t *testing.T) {
	z := expr.Symbol("z")
	entry := call("Entry",
		call("ID", "abc123"),
		call("Formula", call("Equal", call("GammaFunction", 1), 1)),
		call("Variables", z),
		call("Assumptions", call("Element", z, expr.Symbol("CC"))))
	enc := encoder.NewTeX(symtab.Builtin())
	got := enc.EntryTeX(entry)
	exp := []string{`\Gamma\!\left(1\right) = 1`, `z \in \mathbb{C}`}
	if len(got) != len(exp) {
		t.Fatalf("EntryTeX returned %d parts, expected %d", len(got), len(exp))
	}
	for i, s := range exp {
		if got[i] != s {
			t.Errorf("part %d:\nexpected: %q\n but got: %q", i, s, got[i])
		}
	}

	var sb strings.Builder
	if err := enc.WriteEntry(&sb, entry); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), strings.Join(exp, "\n\n"); got != want {
		t.Errorf("\nexpected: %q\n but got: %q", want, got)
	}
}

func TestTeXMemoization(t *testing.T) {
	enc := encoder.NewTeX(symtab.Builtin())
	e := call("GammaFunction", expr.Symbol("z").Add(1))
	first := enc.TeX(e, false)
	same := call("GammaFunction", expr.Symbol("z").Add(1))
	if got := enc.TeX(same, false); got != first {
		t.Errorf("memoized render differs: %q vs %q", first, got)
	}
	if got := enc.TeX(e, true); got == "" {
		t.Error("small variant must render")
	}
}
