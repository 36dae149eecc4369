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

package corpus

// The gamma function topic.

import "github.com/mhogrefe/fungrim/internal/expr"

func (c *Collection) loadGamma() {
	z := expr.Symbol("z")
	n := expr.Symbol("n")
	k := expr.Symbol("k")
	m := expr.Symbol("m")
	t := expr.Symbol("t")
	x := expr.Symbol("x")
	pi := expr.Symbol("pi")
	pred := expr.Symbol("P")
	conc := expr.Symbol("Q")
	constPi := expr.Symbol("ConstPi")
	constI := expr.Symbol("ConstI")
	infinity := expr.Symbol("Infinity")
	unsInfinity := expr.Symbol("UnsignedInfinity")
	zz := expr.Symbol("ZZ")
	rr := expr.Symbol("RR")
	cc := expr.Symbol("CC")
	gamma := func(arg any) *expr.Expr { return call("GammaFunction", arg) }

	c.DefTopic(
		call("Title", "Gamma function"),
		call("Section", "Definitions"),
		call("Entries",
			"27bc34",
		),
		call("Section", "Illustrations"),
		call("Entries",
			"b0422d",
		),
		call("Section", "Domain"),
		call("Entries",
			"09e2ed",
		),
		call("Section", "Particular values"),
		call("Entries",
			"f1d31a",
			"e68d11",
			"19d480",
			"f826a6",
			"48ac55",
		),
		call("Section", "Functional equations"),
		call("Entries",
			"78f1f4",
			"639d91",
			"14af98",
			"56d710",
			"b510b6",
			"a787eb",
			"90a1e1",
		),
		call("Section", "Integral representations"),
		call("Entries",
			"4e4e0f",
		),
		call("Section", "Analytic properties"),
		call("Entries",
			"798c5d",
			"2870f0",
			"34d6ae",
			"d086bd",
			"9a44c5",
			"a76328",
		),
		call("Section", "Complex parts"),
		call("Entries",
			"d7d2a0",
		),
	)

	c.tab.Describe2(expr.Symbol("GammaFunction"), gamma(z), "Gamma function", "09e2ed",
		call("Description", "The gamma function is a function of one variable.",
			"It is a meromorphic function on the complex plane with simple poles at the nonpositive integers and no zeros.",
			"It can be defined in the right half-plane by the integral representation", call("EntryReference", "4e4e0f"),
			"together with the functional equation", call("EntryReference", "78f1f4"), "for analytic continuation."))

	c.tab.Describe2(expr.Symbol("Zeros"),
		call("Zeros", expr.Call(expr.Symbol("f"), z), z, call("Element", z, cc)),
		"Zeros (roots) of a function", "", DescriptionXPredicate())

	c.MakeEntry(call("ID", "27bc34"),
		call("SymbolDefinition", expr.Symbol("Factorial"), call("Factorial", n), "Factorial"),
		call("Description", "The factorial", call("Factorial", n),
			"of a nonnegative integer", n, "is the product of the integers from 1 to", n, "."))

	c.MakeEntry(call("ID", "b0422d"),
		call("Image",
			call("Description", "X-ray of", gamma(z), "on",
				call("Element", z,
					call("ClosedInterval", -5, 5).Add(call("ClosedInterval", -5, 5).Mul(constI)))),
			call("ImageSource", "xray_gamma")),
		DescriptionXRay())

	c.MakeEntry(call("ID", "09e2ed"),
		call("Description", "Domain and codomain definitions for", gamma(z)),
		call("Table",
			call("TableRelation", call("Tuple", pred, conc), call("Implies", pred, conc)),
			call("TableHeadings", call("Description", "Domain"), call("Description", "Codomain")),
			call("TableSplit", 1),
			call("List",
				call("TableSection", "Numbers"),
				call("Tuple",
					call("Element", z, call("ZZGreaterEqual", 1)),
					call("Element", gamma(z), call("ZZGreaterEqual", 1))),
				call("Tuple",
					call("Element", z, call("OpenInterval", 0, infinity)),
					call("Element", gamma(z), call("OpenInterval", call("Decimal", "0.8856"), infinity))),
				call("Tuple",
					call("Element", z, call("SetMinus", rr, call("ZZLessEqual", 0))),
					call("Element", gamma(z), call("SetMinus", rr, call("Set", 0)))),
				call("Tuple",
					call("Element", z, call("SetMinus", cc, call("ZZLessEqual", 0))),
					call("Element", gamma(z), call("SetMinus", cc, call("Set", 0)))),
				call("TableSection", "Infinities"),
				call("Tuple",
					call("Element", z, call("ZZLessEqual", 0)),
					call("Element", gamma(z), call("Set", unsInfinity))),
				call("Tuple",
					call("Element", z, call("Set", infinity)),
					call("Element", gamma(z), call("Set", infinity))),
				call("Tuple",
					call("Element", z, call("Set", constI.Mul(infinity), constI.Mul(infinity).Neg())),
					call("Element", gamma(z), call("Set", 0))),
				call("TableSection", "Formal power and Laurent series"),
				call("Tuple",
					call("And",
						call("Element", z, call("FormalPowerSeries", rr, x)),
						call("NotElement", call("SeriesCoefficient", z, x, 0), call("ZZLessEqual", 0))),
					call("And",
						call("Element", gamma(z), call("FormalPowerSeries", rr, x)),
						call("Unequal", call("SeriesCoefficient", gamma(z), x, 0), 0))),
				call("Tuple",
					call("And",
						call("Element", z, call("FormalPowerSeries", cc, x)),
						call("NotElement", call("SeriesCoefficient", z, x, 0), call("ZZLessEqual", 0))),
					call("And",
						call("Element", gamma(z), call("FormalPowerSeries", cc, x)),
						call("Unequal", call("SeriesCoefficient", gamma(z), x, 0), 0))),
				call("Tuple",
					call("And",
						call("Element", z, call("FormalLaurentSeries", rr, x)),
						call("NotElement", z, call("ZZLessEqual", 0))),
					call("Element", gamma(z), call("FormalLaurentSeries", rr, x))),
				call("Tuple",
					call("And",
						call("Element", z, call("FormalLaurentSeries", cc, x)),
						call("NotElement", z, call("ZZLessEqual", 0))),
					call("Element", gamma(z), call("FormalLaurentSeries", cc, x))),
			)),
	)

	gammaDomain := call("SetMinus", cc, call("ZZLessEqual", 0))
	gammaSub1Domain := call("SetMinus", cc, call("ZZLessEqual", 1))

	c.MakeEntry(call("ID", "f1d31a"),
		call("Formula", call("Equal", gamma(n), call("Factorial", n.Sub(1)))),
		call("Variables", n),
		call("Assumptions", call("Element", n, gammaDomain)))

	c.MakeEntry(call("ID", "e68d11"),
		call("Formula", call("Equal", gamma(1), 1)))

	c.MakeEntry(call("ID", "19d480"),
		call("Formula", call("Equal", gamma(2), 1)))

	c.MakeEntry(call("ID", "f826a6"),
		call("Formula", call("Equal", gamma(expr.Int(1).Div(2)), constPi.Sqrt())))

	c.MakeEntry(call("ID", "48ac55"),
		call("Formula", call("Equal", gamma(expr.Int(3).Div(2)), constPi.Sqrt().Div(2))))

	c.MakeEntry(call("ID", "78f1f4"),
		call("Formula", call("Equal", gamma(z.Add(1)), z.Mul(gamma(z)))),
		call("Variables", z),
		call("Assumptions", call("Element", z, gammaDomain)))

	c.MakeEntry(call("ID", "639d91"),
		call("Formula", call("Equal", gamma(z), z.Sub(1).Mul(gamma(z.Sub(1))))),
		call("Variables", z),
		call("Assumptions", call("Element", z, gammaSub1Domain)))

	c.MakeEntry(call("ID", "14af98"),
		call("Formula", call("Equal", gamma(z.Sub(1)), gamma(z).Div(z.Sub(1)))),
		call("Variables", z),
		call("Assumptions", call("Element", z, gammaSub1Domain)))

	c.MakeEntry(call("ID", "56d710"),
		call("Formula", call("Equal", gamma(z.Add(n)),
			call("RisingFactorial", z, n).Mul(gamma(z)))),
		call("Variables", z, n),
		call("Assumptions", call("And",
			call("Element", z, gammaDomain),
			call("Element", n, call("ZZGreaterEqual", 0)))))

	c.MakeEntry(call("ID", "b510b6"),
		call("Formula", call("Equal", gamma(z),
			constPi.Div(call("Sin", constPi.Mul(z))).Mul(expr.Int(1).Div(gamma(expr.Int(1).Sub(z)))))),
		call("Variables", z),
		call("Assumptions", call("Element", z, call("SetMinus", cc, zz))))

	c.MakeEntry(call("ID", "a787eb"),
		call("Formula", call("Equal",
			gamma(z).Mul(gamma(z.Add(expr.Int(1).Div(2)))),
			expr.Int(2).Pow(expr.Int(1).Sub(expr.Int(2).Mul(z))).
				Mul(constPi.Sqrt()).Mul(gamma(expr.Int(2).Mul(z))))),
		call("Variables", z),
		call("Assumptions", call("And",
			call("Element", z, cc),
			call("NotElement", expr.Int(2).Mul(z), call("ZZLessEqual", 0)))))

	c.MakeEntry(call("ID", "90a1e1"),
		call("Formula", call("Equal",
			call("Product", gamma(z.Add(k.Div(m))), call("Tuple", k, 0, m.Sub(1))),
			expr.Int(2).Mul(pi).Pow(m.Sub(1).Div(2)).
				Mul(m.Pow(expr.Int(1).Div(2).Sub(m.Mul(z)))).
				Mul(gamma(m.Mul(z))))),
		call("Variables", z),
		call("Assumptions", call("And",
			call("Element", z, cc),
			call("Element", m, call("ZZGreaterEqual", 1)),
			call("NotElement", m.Mul(z), call("ZZLessEqual", 0)))))

	c.MakeEntry(call("ID", "4e4e0f"),
		call("Formula", call("Equal", gamma(z),
			call("Integral",
				t.Pow(z.Sub(1)).Mul(call("Exp", t.Neg())),
				call("Tuple", t, 0, infinity)))),
		call("Variables", z),
		call("Assumptions", call("And",
			call("Element", z, cc),
			call("Greater", call("Re", z), 0))))

	extendedCC := call("Union", cc, call("Set", unsInfinity))

	c.MakeEntry(call("ID", "798c5d"),
		call("Formula", call("Equal",
			call("HolomorphicDomain", gamma(z), z, extendedCC), gammaDomain)))

	c.MakeEntry(call("ID", "2870f0"),
		call("Formula", call("Equal",
			call("Poles", gamma(z), z, extendedCC), call("ZZLessEqual", 0))))

	c.MakeEntry(call("ID", "34d6ae"),
		call("Formula", call("Equal",
			call("EssentialSingularities", gamma(z), z, extendedCC), call("Set", unsInfinity))))

	c.MakeEntry(call("ID", "d086bd"),
		call("Formula", call("Equal",
			call("BranchPoints", gamma(z), z, extendedCC), call("Set"))))

	c.MakeEntry(call("ID", "9a44c5"),
		call("Formula", call("Equal",
			call("BranchCuts", gamma(z), z, cc), call("Set"))))

	c.MakeEntry(call("ID", "a76328"),
		call("Formula", call("Equal",
			call("Zeros", gamma(z), z, cc), call("Set"))))

	c.MakeEntry(call("ID", "d7d2a0"),
		call("Formula", call("Equal", gamma(call("Conjugate", z)), call("Conjugate", gamma(z)))),
		call("Variables", z),
		call("Assumptions", call("Element", z, gammaDomain)))
}
