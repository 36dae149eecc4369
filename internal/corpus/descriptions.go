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

// Standard description fragments shared by several symbol definitions.

import "github.com/mhogrefe/fungrim/internal/expr"

// DescriptionXPredicate explains operators taking a locally bound
// variable together with its domain predicate.
func DescriptionXPredicate() *expr.Expr {
	x := expr.Symbol("x")
	y := expr.Symbol("y")
	P := expr.Symbol("P")
	S := expr.Symbol("S")
	ellipsis := expr.Symbol("Ellipsis")
	return call("Description",
		"The argument", call("SourceForm", x), "to this operator defines a locally bound variable.",
		"The corresponding predicate", expr.Call(P, x), "must define the domain of", x,
		"unambiguously; that is, it must include a statement such as",
		call("Element", x, S), "where", S, "is a known set.",
		"More generally,", call("SourceForm", x), "can be a collection of variables",
		call("Tuple", x, y, ellipsis),
		"all of which become locally bound, with a corresponding predicate",
		expr.Call(P, x, y, ellipsis), ".")
}

// DescriptionXRay explains the X-ray plots used in function images.
func DescriptionXRay() *expr.Expr {
	f := expr.Symbol("f")
	z := expr.Symbol("z")
	C := expr.Symbol("C")
	fz := expr.Call(f, z)
	return call("Description",
		"An X-ray plot illustrates the geometry of a complex analytic function", fz, ".",
		"Thick black curves show where", call("Equal", call("Im", fz), 0), "(the function is pure real).",
		"Thick red curves show where", call("Equal", call("Re", fz), 0), "(the function is pure imaginary).",
		"Points where black and red curves intersect are zeros or poles.",
		"Magnitude level curves", call("Equal", fz.Abs(), C),
		"are rendered as thin gray curves, with brighter shades corresponding to larger", C, ".",
		"Blue lines show branch cuts.",
		"The value of the function is continuous with the branch cut on the side indicated with a solid line, and discontinuous on the side indicated with a dashed line.",
		"Yellow is used to highlight important regions.")
}
