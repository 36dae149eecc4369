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

package encoder

// texenc encodes a term into LaTeX. Operator heads are resolved to an
// opKind once per head name; the rendering templates dispatch on that
// kind. The inSmall flag means "inside a subscript, superscript or other
// tight position" and selects denser formatting.

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

// TeXEncoder contains all data needed for encoding, including the
// process-wide memoization cache.
type TeXEncoder struct {
	tab   *symtab.Table
	cache texCache
}

// NewTeX creates a LaTeX encoder using the given symbol table.
func NewTeX(tab *symtab.Table) *TeXEncoder {
	return &TeXEncoder{tab: tab}
}

// texCache memoizes rendered terms per (term, inSmall) pair. Terms are
// immutable, so entries stay valid for the life of the process.
type texCache struct {
	mu sync.Mutex
	m  map[texKey]string
}

type texKey struct {
	key   string
	small bool
}

func (c *texCache) get(k texKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.m[k]
	return s, ok
}

func (c *texCache) put(k texKey, tex string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[texKey]string)
	}
	c.m[k] = tex
}

// WriteExpr encodes a single term as LaTeX.
func (enc *TeXEncoder) WriteExpr(w io.Writer, e *expr.Expr) error {
	_, err := io.WriteString(w, enc.TeX(e, false))
	return err
}

// WriteEntry writes the LaTeX of every Formula and Assumptions part of
// an entry, one per paragraph. This is the listing shown in the "TeX"
// section of an entry page.
func (enc *TeXEncoder) WriteEntry(w io.Writer, entry *expr.Expr) error {
	ew := newEncWriter(w)
	first := true
	for _, tex := range enc.EntryTeX(entry) {
		if !first {
			ew.WriteLn()
			ew.WriteLn()
		}
		first = false
		ew.WriteString(tex)
	}
	return ew.Flush()
}

// EntryTeX returns the LaTeX of every Formula and Assumptions part of an
// entry, in corpus order.
func (enc *TeXEncoder) EntryTeX(entry *expr.Expr) []string {
	var result []string
	for _, arg := range entry.Args() {
		if arg.HeadIs("Formula") || arg.HeadIs("Assumptions") {
			for _, sub := range arg.Args() {
				result = append(result, enc.TeX(sub, false))
			}
		}
	}
	return result
}

// TeX renders a term to LaTeX. inSmall requests compact formatting as
// used inside subscripts and superscripts.
func (enc *TeXEncoder) TeX(e *expr.Expr, inSmall bool) string {
	k := texKey{key: e.Key(), small: inSmall}
	if tex, ok := enc.cache.get(k); ok {
		return tex
	}
	tex := enc.render(e, inSmall)
	enc.cache.put(k, tex)
	return tex
}

func (enc *TeXEncoder) render(e *expr.Expr, inSmall bool) string {
	if e.IsAtom() {
		return enc.renderAtom(e)
	}

	head := e.Head()
	args := e.Args()

	if head.IsSymbol() {
		name := head.Name()
		if op, ok := enc.tab.InfixSpelling(name); ok {
			return strings.Join(enc.texArgs(args, inSmall), " "+op+" ")
		}
		// F(n, x, ...) -> F_n(x, ...)
		if glyph, ok := enc.tab.SubscriptCallSpelling(name); ok {
			rest := strings.Join(enc.texArgs(args[1:], inSmall), ", ")
			return glyph + "_{" + enc.TeX(args[0], true) + "}" + "\\!\\left(" + rest + "\\right)"
		}
		switch opKinds[name] {
		case opExp:
			arity(e, 1)
			if ShowExponentialAsPower(args[0]) {
				return enc.TeX(expr.Call(expr.Symbol(expr.SymPow), expr.Symbol("ConstE"), args[0]), inSmall)
			}
		case opDiv:
			return enc.texDiv(e, inSmall)
		}
		if tex, ok := enc.renderForm(e, name, inSmall); ok {
			return tex
		}
	}

	// Generic call notation.
	argstr := enc.texArgs(args, inSmall)
	spacer := "\\!"
	if inSmall {
		spacer = ""
	}
	return enc.TeX(head, false) + spacer + "\\left(" + strings.Join(argstr, ", ") + "\\right)"
}

func (enc *TeXEncoder) renderAtom(e *expr.Expr) string {
	switch {
	case e.IsSymbol():
		return enc.tab.SpellSymbol(e.Name())
	case e.IsInteger():
		return e.IntValue().String()
	case e.IsText():
		return "\\text{``" + strings.ReplaceAll(e.TextValue(), "_", "\\_") + "''}"
	}
	panic("encoder: term without content")
}

func (enc *TeXEncoder) texArgs(args []*expr.Expr, inSmall bool) []string {
	result := make([]string, len(args))
	for i, a := range args {
		result[i] = enc.TeX(a, inSmall)
	}
	return result
}

// arity panics if the call does not have exactly n arguments. A violated
// arity is a corpus authoring bug, not a runtime error path.
func arity(e *expr.Expr, n int) {
	if e.Arity() != n {
		panic(fmt.Sprintf("encoder: %s expects %d arguments, got %d",
			e.Head().Name(), n, e.Arity()))
	}
}

// NeedsParensInMul reports whether a factor must be parenthesized inside
// a product: negative integer atoms and top-level sums and differences.
// The treatment of unary Pos/Neg operands is a known soft spot.
func NeedsParensInMul(e *expr.Expr) bool {
	if e.IsAtom() {
		return e.IsInteger() && e.IntValue().Sign() < 0
	}
	if h := e.Head(); h.IsSymbol() {
		switch h.Name() {
		case expr.SymAdd, expr.SymSub:
			return true
		}
	}
	return false
}

// ShowExponentialAsPower reports whether Exp(x) should print as e^x
// rather than \exp(x): x must be built purely from arithmetic and
// elementary heads, with division denominators kept atomic. The exact
// boundary behaviour follows the established rule, soft spots included.
func ShowExponentialAsPower(e *expr.Expr) bool {
	return showExponentialAsPower(e, true)
}

func showExponentialAsPower(e *expr.Expr, allowDiv bool) bool {
	if e.IsAtom() {
		return true
	}
	head := e.Head()
	if !head.IsSymbol() {
		return false
	}
	args := e.Args()
	if head.Name() == expr.SymDiv {
		if !args[len(args)-1].IsAtom() {
			return false
		}
		allowDiv = false
	}
	switch head.Name() {
	case expr.SymPos, expr.SymNeg, expr.SymAdd, expr.SymSub, expr.SymMul,
		expr.SymDiv, expr.SymPow, expr.SymAbs, expr.SymSqrt:
	default:
		return false
	}
	for _, a := range args {
		if !showExponentialAsPower(a, allowDiv) {
			return false
		}
	}
	return true
}

func (enc *TeXEncoder) texDiv(e *expr.Expr, inSmall bool) string {
	arity(e, 2)
	num, den := e.Args()[0], e.Args()[1]
	if inSmall {
		numstr := enc.TeX(num, true)
		denstr := enc.TeX(den, true)
		if NeedsParensInMul(num) {
			numstr = "\\left( " + numstr + " \\right)"
		}
		if NeedsParensInMul(den) {
			denstr = "\\left( " + denstr + " \\right)"
		}
		return numstr + " / " + denstr
	}
	return "\\frac{" + enc.TeX(num, false) + "}{" + enc.TeX(den, false) + "}"
}

func (enc *TeXEncoder) texPos(e *expr.Expr, inSmall bool) string {
	arity(e, 1)
	return "+" + enc.TeX(e.Args()[0], inSmall)
}

func (enc *TeXEncoder) texNeg(e *expr.Expr, inSmall bool) string {
	arity(e, 1)
	return "-" + enc.TeX(e.Args()[0], inSmall)
}

func (enc *TeXEncoder) texSub(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	argstr := enc.texArgs(args, inSmall)
	for i := 1; i < len(args); i++ {
		if !args[i].IsAtom() {
			switch args[i].Head().Name() {
			case expr.SymNeg, expr.SymSub:
				argstr[i] = "\\left(" + argstr[i] + "\\right)"
			}
		}
	}
	return strings.Join(argstr, " - ")
}

func (enc *TeXEncoder) texMul(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	argstr := enc.texArgs(args, inSmall)
	for i, a := range args {
		if NeedsParensInMul(a) {
			argstr[i] = "\\left(" + argstr[i] + "\\right)"
		}
	}
	return strings.Join(argstr, " ")
}

// Bases whose power attaches to the function symbol, \sin^2(x)-style.
var powOnSymbolBases = map[string]bool{
	"Sin": true, "Cos": true, "Csc": true, "Tan": true,
	"Sinh": true, "Cosh": true, "Tanh": true, "DedekindEta": true,
}

var jacobiThetaHeads = map[string]bool{
	"JacobiTheta1": true, "JacobiTheta2": true, "JacobiTheta3": true, "JacobiTheta4": true,
}

// Base shapes that need no parenthesization under an exponent.
var powPlainBases = map[string]bool{
	"Abs": true, "Binomial": true, "PrimeNumber": true,
	"Matrix2x2": true, "Parentheses": true, "Braces": true, "Brackets": true,
}

func (enc *TeXEncoder) texPow(e *expr.Expr, inSmall bool) string {
	arity(e, 2)
	base, expo := e.Args()[0], e.Args()[1]
	if !base.IsAtom() && base.Head().IsSymbol() {
		headName := base.Head().Name()
		if powOnSymbolBases[headName] {
			return enc.TeX(base.Head(), false) + "^{" + enc.TeX(expo, true) + "}" +
				"\\!\\left(" + enc.TeX(base.Args()[0], inSmall) + "\\right)"
		}
		if headName == "Fibonacci" {
			return fmt.Sprintf("F_{%s}^{%s}",
				enc.TeX(base.Args()[0], inSmall), enc.TeX(expo, true))
		}
		if jacobiThetaHeads[headName] && base.Arity() == 2 {
			return enc.TeX(base.Head(), false) + fmt.Sprintf("^{%s}\\!\\left(%s, %s\\right)",
				enc.TeX(expo, true), enc.TeX(base.Args()[0], false), enc.TeX(base.Args()[1], false))
		}
		if glyph, ok := enc.tab.SubscriptCallSpelling(headName); ok && base.Arity() == 2 {
			return fmt.Sprintf("%s_{%s}^{%s}\\!\\left(%s\\right)",
				glyph, enc.TeX(base.Args()[0], true), enc.TeX(expo, true),
				enc.TeX(base.Args()[1], inSmall))
		}
	}
	basestr := enc.TeX(base, inSmall)
	expostr := enc.TeX(expo, true)
	plain := base.IsSymbol() ||
		(base.IsInteger() && base.IntValue().Sign() >= 0) ||
		(!base.IsAtom() && base.Head().IsSymbol() && powPlainBases[base.Head().Name()])
	if plain {
		return "{" + basestr + "}^{" + expostr + "}"
	}
	return "{\\left(" + basestr + "\\right)}^{" + expostr + "}"
}

func (enc *TeXEncoder) texAnd(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	argstr := enc.texArgs(args, inSmall)
	for i, a := range args {
		if !a.IsAtom() {
			switch a.Head().Name() {
			case "And", "Or":
				argstr[i] = "\\left(" + argstr[i] + "\\right)"
			}
		}
	}
	if inSmall {
		return strings.Join(argstr, ",\\,")
	}
	return strings.Join(argstr, " \\,\\mathbin{\\operatorname{and}}\\, ")
}

func (enc *TeXEncoder) texOr(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	argstr := enc.texArgs(args, inSmall)
	for i, a := range args {
		if !a.IsAtom() {
			switch a.Head().Name() {
			case "And", "Or", "Not":
				argstr[i] = "\\left(" + argstr[i] + "\\right)"
			}
		}
	}
	return strings.Join(argstr, " \\,\\mathbin{\\operatorname{or}}\\, ")
}

func wrapEach(argstr []string) []string {
	result := make([]string, len(argstr))
	for i, s := range argstr {
		result[i] = "\\left(" + s + "\\right)"
	}
	return result
}
