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

// The named special forms of the LaTeX renderer. Each head name resolves
// to an opKind once; renderForm dispatches on the kind. A form may
// decline (ok == false) to fall back to generic call notation.

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mhogrefe/fungrim/internal/expr"
)

type opKind uint8

const (
	opGeneric opKind = iota
	opWhere
	opPos
	opNeg
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opExp
	opIntegral
	opIndefIntegral
	opSumProd
	opDivisorSumProd
	opPrimeSumProd
	opLimit
	opExtremum
	opZeroMult
	opResidue
	opDerivative
	opSqrt
	opAbs
	opFloor
	opCeil
	opTuple
	opSetEnum
	opListEnum
	opSubscriptGlyph
	opFibonacci
	opPairGlyph
	opBessel
	opBesselDerivative
	opCoulombFG
	opCoulombH
	opCoulombC
	opCoulombSigma
	opFactorial
	opRisingFactorial
	opFallingFactorial
	opBinomial
	opStirlingCycle
	opStirlingS1
	opStirlingS2
	opLambertW
	opAsymptoticTo
	opAnd
	opOr
	opNot
	opImplies
	opEquivalent
	opEqualAndElement
	opKroneckerDelta
	opQuadraticSymbol
	opCongruentMod
	opOdd
	opEven
	opZZGreaterEqual
	opZZLessEqual
	opZZBetween
	opInterval
	opRealBall
	opLattice
	opDomainCodomain
	opConjugate
	opSetBuilder
	opCardinality
	opDecimal
	opMatrix22
	opMatrix21
	opModularGroupAction
	opQStar
	opHypUStarRemainder
	opDirichletCharacter
	opDirichletGroup
	opPrimitiveDirichletCharacters
	opGaussSum
	opStieltjesGamma
	opStirlingRemainder
	opFormalPowerSeries
	opFormalLaurentSeries
	opSeriesCoefficient
	opFormalGenerator
	opParentheses
	opBrackets
	opBraces
	opCallForm
	opSubscriptForm
	opSpectrum
	opDet
	opForAll
	opExists
	opCases
	opDiscreteLog
	opConreyGenerator
	opQSeriesCoefficient
	opEqualQSeriesEllipsis
	opDescriptionForm
)

var opKinds = map[string]opKind{
	"Where": opWhere,
	"Pos":   opPos, "Neg": opNeg, "Add": opAdd, "Sub": opSub, "Mul": opMul,
	"Div": opDiv, "Pow": opPow, "Exp": opExp,
	"Integral": opIntegral,
	"IndefiniteIntegralEqual":        opIndefIntegral,
	"RealIndefiniteIntegralEqual":    opIndefIntegral,
	"ComplexIndefiniteIntegralEqual": opIndefIntegral,
	"Sum": opSumProd, "Product": opSumProd,
	"DivisorSum": opDivisorSumProd, "DivisorProduct": opDivisorSumProd,
	"PrimeSum": opPrimeSumProd, "PrimeProduct": opPrimeSumProd,
	"Limit": opLimit, "SequenceLimit": opLimit, "RealLimit": opLimit,
	"LeftLimit": opLimit, "RightLimit": opLimit, "ComplexLimit": opLimit,
	"MeromorphicLimit": opLimit,
	"Minimum":          opExtremum, "Maximum": opExtremum,
	"ArgMin": opExtremum, "ArgMax": opExtremum,
	"ArgMinUnique": opExtremum, "ArgMaxUnique": opExtremum,
	"Supremum": opExtremum, "Infimum": opExtremum,
	"Zeros": opExtremum, "UniqueZero": opExtremum,
	"Solutions": opExtremum, "UniqueSolution": opExtremum,
	"ComplexZeroMultiplicity": opZeroMult,
	"Residue":                 opResidue,
	"Derivative":              opDerivative, "RealDerivative": opDerivative,
	"ComplexDerivative": opDerivative, "ComplexBranchDerivative": opDerivative,
	"MeromorphicDerivative": opDerivative,
	"Sqrt":                  opSqrt, "Abs": opAbs, "Floor": opFloor, "Ceil": opCeil,
	"Tuple": opTuple, "Set": opSetEnum, "List": opListEnum,
	"BernoulliB": opSubscriptGlyph, "BellNumber": opSubscriptGlyph,
	"HarmonicNumber": opSubscriptGlyph, "PrimeNumber": opSubscriptGlyph,
	"RiemannZetaZero": opSubscriptGlyph, "BernsteinEllipse": opSubscriptGlyph,
	"LambertWPuiseuxCoefficient": opSubscriptGlyph,
	"Fibonacci":                  opFibonacci,
	"DirichletLZero":             opPairGlyph, "LegendrePolynomialZero": opPairGlyph,
	"GaussLegendreWeight": opPairGlyph, "GeneralizedBernoulliB": opPairGlyph,
	"BesselJ": opBessel, "BesselY": opBessel, "BesselI": opBessel,
	"BesselK": opBessel, "HankelH1": opBessel, "HankelH2": opBessel,
	"BesselJDerivative": opBesselDerivative, "BesselYDerivative": opBesselDerivative,
	"BesselIDerivative": opBesselDerivative, "BesselKDerivative": opBesselDerivative,
	"CoulombF": opCoulombFG, "CoulombG": opCoulombFG,
	"CoulombH": opCoulombH, "CoulombC": opCoulombC, "CoulombSigma": opCoulombSigma,
	"Factorial": opFactorial, "DoubleFactorial": opFactorial,
	"RisingFactorial": opRisingFactorial, "FallingFactorial": opFallingFactorial,
	"Binomial":      opBinomial,
	"StirlingCycle": opStirlingCycle, "StirlingS1": opStirlingS1, "StirlingS2": opStirlingS2,
	"LambertW":     opLambertW,
	"AsymptoticTo": opAsymptoticTo,
	"And":          opAnd, "Or": opOr, "Not": opNot,
	"Implies": opImplies, "Equivalent": opEquivalent,
	"EqualAndElement": opEqualAndElement,
	"KroneckerDelta":  opKroneckerDelta,
	"LegendreSymbol":  opQuadraticSymbol, "JacobiSymbol": opQuadraticSymbol,
	"KroneckerSymbol": opQuadraticSymbol,
	"CongruentMod":    opCongruentMod, "Odd": opOdd, "Even": opEven,
	"ZZGreaterEqual": opZZGreaterEqual, "ZZLessEqual": opZZLessEqual,
	"ZZBetween":      opZZBetween,
	"ClosedInterval": opInterval, "OpenInterval": opInterval,
	"ClosedOpenInterval": opInterval, "OpenClosedInterval": opInterval,
	"RealBall":       opRealBall,
	"Lattice":        opLattice,
	"DomainCodomain": opDomainCodomain,
	"Conjugate":      opConjugate,
	"SetBuilder":     opSetBuilder,
	"Cardinality":    opCardinality,
	"Decimal":        opDecimal,
	"Matrix2x2":      opMatrix22, "Matrix2x1": opMatrix21,
	"ModularGroupAction": opModularGroupAction,
	"PrimitiveReducedPositiveIntegralBinaryQuadraticForms": opQStar,
	"HypergeometricUStarRemainder":                         opHypUStarRemainder,
	"DirichletCharacter":                                   opDirichletCharacter,
	"DirichletGroup":                                       opDirichletGroup,
	"PrimitiveDirichletCharacters":                         opPrimitiveDirichletCharacters,
	"GaussSum":                                             opGaussSum,
	"StieltjesGamma":                                       opStieltjesGamma,
	"StirlingSeriesRemainder":                              opStirlingRemainder,
	"FormalPowerSeries":                                    opFormalPowerSeries,
	"FormalLaurentSeries":                                  opFormalLaurentSeries,
	"SeriesCoefficient":                                    opSeriesCoefficient,
	"FormalGenerator":                                      opFormalGenerator,
	"Parentheses":                                          opParentheses,
	"Brackets":                                             opBrackets,
	"Braces":                                               opBraces,
	"Call":                                                 opCallForm,
	"Subscript":                                            opSubscriptForm,
	"Spectrum":                                             opSpectrum,
	"Det":                                                  opDet,
	"ForAll":                                               opForAll,
	"Exists":                                               opExists,
	"Cases":                                                opCases,
	"DiscreteLog":                                          opDiscreteLog,
	"ConreyGenerator":                                      opConreyGenerator,
	"QSeriesCoefficient":                                   opQSeriesCoefficient,
	"EqualQSeriesEllipsis":                                 opEqualQSeriesEllipsis,
	"Description":                                          opDescriptionForm,
}

var subscriptGlyphs = map[string]string{
	"BernoulliB":                 "B",
	"BellNumber":                 "B",
	"HarmonicNumber":             "H",
	"PrimeNumber":                "p",
	"RiemannZetaZero":            "\\rho",
	"BernsteinEllipse":           "\\mathcal{E}",
	"LambertWPuiseuxCoefficient": "{\\mu}",
}

var pairGlyphFormats = map[string]string{
	"DirichletLZero":         "\\rho_{%s, %s}",
	"LegendrePolynomialZero": "x_{%s,%s}",
	"GaussLegendreWeight":    "w_{%s,%s}",
	"GeneralizedBernoulliB":  "B_{%s,%s}",
}

var besselGlyphs = map[string]string{
	"BesselJ": "J", "BesselI": "I", "BesselY": "Y", "BesselK": "K",
	"BesselJDerivative": "J", "BesselIDerivative": "I",
	"BesselYDerivative": "Y", "BesselKDerivative": "K",
	"HankelH1": "H^{(1)}", "HankelH2": "H^{(2)}",
}

var extremumGlyphs = map[string]string{
	"Minimum":        "\\min",
	"Maximum":        "\\max",
	"ArgMin":         "\\operatorname{arg\\,min}",
	"ArgMinUnique":   "\\operatorname{arg\\,min*}",
	"ArgMax":         "\\operatorname{arg\\,max}",
	"ArgMaxUnique":   "\\operatorname{arg\\,max*}",
	"Infimum":        "\\operatorname{inf}",
	"Supremum":       "\\operatorname{sup}",
	"Zeros":          "\\operatorname{zeros}\\,",
	"UniqueZero":     "\\operatorname{zero*}\\,",
	"Solutions":      "\\operatorname{solutions}\\,",
	"UniqueSolution": "\\operatorname{solution*}\\,",
}

func (enc *TeXEncoder) renderForm(e *expr.Expr, name string, inSmall bool) (string, bool) {
	args := e.Args()
	kind, ok := opKinds[name]
	if !ok {
		return "", false
	}
	switch kind {
	case opWhere:
		argstr := enc.texArgs(args, inSmall)
		return argstr[0] + "\\; \\text{ where } " + strings.Join(argstr[1:], ",\\,"), true
	case opPos:
		return enc.texPos(e, inSmall), true
	case opNeg:
		return enc.texNeg(e, inSmall), true
	case opAdd:
		return strings.Join(enc.texArgs(args, inSmall), " + "), true
	case opSub:
		return enc.texSub(e, inSmall), true
	case opMul:
		return enc.texMul(e, inSmall), true
	case opPow:
		return enc.texPow(e, inSmall), true
	case opIntegral:
		return enc.texIntegral(e, inSmall), true
	case opIndefIntegral:
		return enc.texIndefIntegral(e, inSmall), true
	case opSumProd:
		return enc.texSumProd(e, name, inSmall), true
	case opDivisorSumProd:
		return enc.texDivisorSumProd(e, name, inSmall), true
	case opPrimeSumProd:
		return enc.texPrimeSumProd(e, name, inSmall), true
	case opLimit:
		return enc.texLimit(e, name, inSmall), true
	case opExtremum:
		return enc.texExtremum(e, name, inSmall), true
	case opZeroMult:
		return enc.texMultiplicityOp(e, "\\operatorname{ord}", inSmall), true
	case opResidue:
		return enc.texMultiplicityOp(e, "\\operatorname{Res}", inSmall), true
	case opDerivative:
		return enc.texDerivative(e, inSmall), true
	case opSqrt:
		arity(e, 1)
		return "\\sqrt{" + enc.TeX(args[0], inSmall) + "}", true
	case opAbs:
		arity(e, 1)
		return "\\left|" + enc.TeX(args[0], inSmall) + "\\right|", true
	case opFloor:
		arity(e, 1)
		return "\\left\\lfloor " + enc.TeX(args[0], inSmall) + " \\right\\rfloor", true
	case opCeil:
		arity(e, 1)
		return "\\left\\lceil " + enc.TeX(args[0], inSmall) + " \\right\\rceil", true
	case opTuple:
		return "\\left(" + strings.Join(enc.texArgs(args, inSmall), ", ") + "\\right)", true
	case opSetEnum:
		return "\\left\\{" + strings.Join(enc.texArgs(args, inSmall), ", ") + "\\right\\}", true
	case opListEnum:
		return "\\left[" + strings.Join(enc.texArgs(args, inSmall), ", ") + "\\right]", true
	case opSubscriptGlyph:
		arity(e, 1)
		return subscriptGlyphs[name] + "_{" + enc.TeX(args[0], inSmall) + "}", true
	case opFibonacci:
		arity(e, 1)
		return "F_{" + enc.TeX(args[0], true) + "}", true
	case opPairGlyph:
		arity(e, 2)
		return fmt.Sprintf(pairGlyphFormats[name],
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opBessel:
		arity(e, 2)
		return besselGlyphs[name] + "_{" + enc.TeX(args[0], true) + "}" +
			"\\!\\left(" + enc.TeX(args[1], inSmall) + "\\right)", true
	case opBesselDerivative:
		return enc.texBesselDerivative(e, name, inSmall), true
	case opCoulombFG:
		arity(e, 3)
		return fmt.Sprintf("%s_{%s,%s}\\!\\left(%s\\right)",
			name[len(name)-1:],
			enc.TeX(args[0], true), enc.TeX(args[1], true), enc.TeX(args[2], false)), true
	case opCoulombH:
		return enc.texCoulombH(e, inSmall), true
	case opCoulombC:
		return fmt.Sprintf("C_{%s}\\!\\left(%s\\right)",
			enc.TeX(args[0], true), enc.TeX(args[1], false)), true
	case opCoulombSigma:
		return fmt.Sprintf("\\sigma_{%s}\\!\\left(%s\\right)",
			enc.TeX(args[0], true), enc.TeX(args[1], false)), true
	case opFactorial:
		return enc.texFactorial(e, name, inSmall), true
	case opRisingFactorial:
		arity(e, 2)
		return "\\left(" + enc.TeX(args[0], inSmall) + "\\right)_{" + enc.TeX(args[1], inSmall) + "}", true
	case opFallingFactorial:
		arity(e, 2)
		return "\\left(" + enc.TeX(args[0], inSmall) + "\\right)^{\\underline{" + enc.TeX(args[1], inSmall) + "}}", true
	case opBinomial:
		arity(e, 2)
		return "{" + enc.TeX(args[0], inSmall) + " \\choose " + enc.TeX(args[1], inSmall) + "}", true
	case opStirlingCycle:
		arity(e, 2)
		return fmt.Sprintf("\\left[{%s \\atop %s}\\right]",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opStirlingS1:
		arity(e, 2)
		return fmt.Sprintf("s\\!\\left(%s, %s\\right)",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opStirlingS2:
		arity(e, 2)
		return fmt.Sprintf("\\left\\{{%s \\atop %s}\\right\\}",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opLambertW:
		return enc.texLambertW(e, inSmall), true
	case opAsymptoticTo:
		arity(e, 4)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("%s \\sim %s, \\; %s \\to %s",
			argstr[0], argstr[1], argstr[2], argstr[3]), true
	case opAnd:
		return enc.texAnd(e, inSmall), true
	case opOr:
		return enc.texOr(e, inSmall), true
	case opNot:
		arity(e, 1)
		return " \\operatorname{not} \\left(" + enc.TeX(args[0], inSmall) + "\\right)", true
	case opImplies:
		return strings.Join(wrapEach(enc.texArgs(args, inSmall)), " \\implies "), true
	case opEquivalent:
		return strings.Join(wrapEach(enc.texArgs(args, inSmall)), " \\iff "), true
	case opEqualAndElement:
		arity(e, 3)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("%s = %s \\in %s", argstr[0], argstr[1], argstr[2]), true
	case opKroneckerDelta:
		arity(e, 2)
		return fmt.Sprintf("\\delta_{(%s,%s)}",
			enc.TeX(args[0], true), enc.TeX(args[1], true)), true
	case opQuadraticSymbol:
		return fmt.Sprintf("\\left( \\frac{%s}{%s} \\right)",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opCongruentMod:
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("%s \\equiv %s \\pmod {%s}", argstr[0], argstr[1], argstr[2]), true
	case opOdd:
		return enc.TeX(args[0], inSmall) + " \\text{ odd}", true
	case opEven:
		return enc.TeX(args[0], inSmall) + " \\text{ even}", true
	case opZZGreaterEqual:
		arity(e, 1)
		return "\\mathbb{Z}_{\\ge " + enc.TeX(args[0], inSmall) + "}", true
	case opZZLessEqual:
		arity(e, 1)
		if args[0].IsInteger() {
			v := args[0].IntValue()
			next := new(big.Int).Sub(v, big.NewInt(1))
			return fmt.Sprintf("\\{%s, %s, \\ldots\\}", v, next), true
		}
		return "\\mathbb{Z}_{\\le " + enc.TeX(args[0], inSmall) + "}", true
	case opZZBetween:
		arity(e, 2)
		if args[0].IsInteger() {
			next := new(big.Int).Add(args[0].IntValue(), big.NewInt(1))
			return fmt.Sprintf("\\{%s, %s, \\ldots %s\\}",
				enc.TeX(args[0], inSmall), next, enc.TeX(args[1], inSmall)), true
		}
		a := enc.TeX(args[0], inSmall)
		return fmt.Sprintf("\\{%s, %s + 1, \\ldots %s\\}", a, a, enc.TeX(args[1], inSmall)), true
	case opInterval:
		return enc.texInterval(e, name, inSmall), true
	case opRealBall:
		arity(e, 2)
		return fmt.Sprintf("\\left[%s \\pm %s\\right]",
			enc.TeX(args[0], true), enc.TeX(args[1], true)), true
	case opLattice:
		return "\\Lambda_{(" + strings.Join(enc.texArgs(args, inSmall), ", ") + ")}", true
	case opDomainCodomain:
		arity(e, 2)
		return "", false
	case opConjugate:
		arity(e, 1)
		return "\\overline{" + enc.TeX(args[0], inSmall) + "}", true
	case opSetBuilder:
		arity(e, 3)
		return fmt.Sprintf("\\left\\{ %s : %s \\right\\}",
			enc.TeX(args[0], inSmall), enc.TeX(args[2], inSmall)), true
	case opCardinality:
		arity(e, 1)
		return "\\# " + enc.TeX(args[0], inSmall), true
	case opDecimal:
		arity(e, 1)
		return texDecimal(args[0].TextValue()), true
	case opMatrix22:
		arity(e, 4)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("\\begin{pmatrix} %s & %s \\\\ %s & %s \\end{pmatrix}",
			argstr[0], argstr[1], argstr[2], argstr[3]), true
	case opMatrix21:
		arity(e, 2)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("\\begin{pmatrix} %s \\\\ %s \\end{pmatrix}",
			argstr[0], argstr[1]), true
	case opModularGroupAction:
		arity(e, 2)
		return enc.TeX(args[0], inSmall) + " \\circ " + enc.TeX(args[1], inSmall), true
	case opQStar:
		arity(e, 1)
		return "\\mathcal{Q}^{*}_{" + enc.TeX(args[0], inSmall) + "}", true
	case opHypUStarRemainder:
		arity(e, 4)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("R_{%s}\\!\\left(%s,%s,%s\\right)",
			argstr[0], argstr[1], argstr[2], argstr[3]), true
	case opDirichletCharacter:
		argstr := enc.texArgs(args, inSmall)
		switch len(args) {
		case 2:
			return fmt.Sprintf("\\chi_{%s}(%s, \\cdot)", argstr[0], argstr[1]), true
		case 3:
			return fmt.Sprintf("\\chi_{%s}(%s, %s)", argstr[0], argstr[1], argstr[2]), true
		}
		panic("encoder: DirichletCharacter expects 2 or 3 arguments")
	case opDirichletGroup:
		return "G_{" + enc.TeX(args[0], inSmall) + "}", true
	case opPrimitiveDirichletCharacters:
		return "G_{" + enc.TeX(args[0], inSmall) + "}^{\\text{primitive}}", true
	case opGaussSum:
		arity(e, 2)
		return "G_{" + enc.TeX(args[0], inSmall) + "}" +
			"\\!\\left(" + enc.TeX(args[1], inSmall) + "\\right)", true
	case opStieltjesGamma:
		arg0 := enc.TeX(args[0], true)
		switch len(args) {
		case 1:
			return "\\gamma_{" + arg0 + "}", true
		case 2:
			return fmt.Sprintf("\\gamma_{%s}\\!\\left(%s\\right)", arg0, enc.TeX(args[1], inSmall)), true
		}
		return "", false
	case opStirlingRemainder:
		arity(e, 2)
		return fmt.Sprintf("R_{%s}\\!\\left(%s\\right)",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opFormalPowerSeries:
		arity(e, 2)
		return enc.TeX(args[0], inSmall) + "[[" + enc.TeX(args[1], inSmall) + "]]", true
	case opFormalLaurentSeries:
		arity(e, 2)
		return enc.TeX(args[0], inSmall) + "(\\!(" + enc.TeX(args[1], inSmall) + ")\\!)", true
	case opSeriesCoefficient:
		arity(e, 3)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("[{%s}^{%s}] %s", argstr[1], argstr[2], argstr[0]), true
	case opFormalGenerator:
		arity(e, 2)
		return fmt.Sprintf("%s \\text{ is the generator of } %s",
			enc.TeX(args[0], inSmall), enc.TeX(args[1], inSmall)), true
	case opParentheses:
		arity(e, 1)
		return "\\left(" + enc.TeX(args[0], false) + "\\right)", true
	case opBrackets:
		arity(e, 1)
		return "\\left[" + enc.TeX(args[0], false) + "\\right]", true
	case opBraces:
		arity(e, 1)
		return "\\left\\{" + enc.TeX(args[0], false) + "\\right\\}", true
	case opCallForm:
		argstr := enc.texArgs(args, inSmall)
		return argstr[0] + "\\!\\left(" + strings.Join(argstr[1:], ", ") + "\\right)", true
	case opSubscriptForm:
		arity(e, 2)
		return "{" + enc.TeX(args[0], inSmall) + "}_{" + enc.TeX(args[1], true) + "}", true
	case opSpectrum:
		if len(args) > 0 && args[0].HeadIs("Matrix2x2") {
			arity(e, 1)
			return "\\operatorname{spec}" + enc.TeX(args[0], inSmall), true
		}
		return "", false
	case opDet:
		if len(args) > 0 && args[0].HeadIs("Matrix2x2") {
			arity(e, 1)
			return "\\operatorname{det}" + enc.TeX(args[0], inSmall), true
		}
		return "", false
	case opForAll:
		arity(e, 3)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("\\text{for all } %s: %s, %s", argstr[0], argstr[1], argstr[2]), true
	case opExists:
		arity(e, 2)
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("\\text{there exists } %s: %s", argstr[0], argstr[1]), true
	case opCases:
		return enc.texCases(e, inSmall), true
	case opDiscreteLog:
		argstr := enc.texArgs(args, inSmall)
		return fmt.Sprintf("\\log_{%s}\\!\\left(%s\\right) \\bmod %s",
			enc.TeX(args[1], true), argstr[0], argstr[2]), true
	case opConreyGenerator:
		return "g_{" + enc.TeX(args[0], inSmall) + "}", true
	case opQSeriesCoefficient:
		argstr := enc.texArgs(args, inSmall)
		// arguments are (fun, tau, q, n, qdef)
		return fmt.Sprintf("[%s^{%s}] %s \\; \\left(%s\\right)",
			argstr[2], argstr[3], argstr[0], argstr[4]), true
	case opEqualQSeriesEllipsis:
		argstr := enc.texArgs(args, inSmall)
		// arguments are (fun, tau, q, ser, qdef)
		return fmt.Sprintf("%s = %s + \\ldots \\; \\text{ where } %s",
			argstr[0], argstr[3], argstr[4]), true
	case opDescriptionForm:
		var sb strings.Builder
		for _, arg := range args {
			if arg.IsText() {
				sb.WriteString("\\text{ " + arg.TextValue() + " }")
			} else {
				sb.WriteString(enc.TeX(arg, false))
			}
		}
		return sb.String(), true
	}
	return "", false
}

func (enc *TeXEncoder) texIntegral(e *expr.Expr, inSmall bool) string {
	arity(e, 2)
	args := e.Args()
	rng := args[1]
	if !rng.HeadIs("Tuple") {
		panic("encoder: Integral expects a Tuple range")
	}
	arity(rng, 3)
	v, low, high := rng.Args()[0], rng.Args()[1], rng.Args()[2]
	return fmt.Sprintf("\\int_{%s}^{%s} %s \\, d%s",
		enc.TeX(low, true), enc.TeX(high, true), enc.TeX(args[0], inSmall), enc.TeX(v, false))
}

func (enc *TeXEncoder) texIndefIntegral(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	argstr := enc.texArgs(args, inSmall)
	switch len(args) {
	case 3:
		return fmt.Sprintf("\\int %s \\, d%s = %s + \\mathcal{C}",
			argstr[0], argstr[2], argstr[1])
	case 4:
		fx, gx, x := argstr[0], argstr[1], argstr[2]
		if x == argstr[3] {
			return fmt.Sprintf("\\int %s \\, d%s = %s + \\mathcal{C}", fx, x, gx)
		}
		return fmt.Sprintf("\\int %s \\, d%s = %s + \\mathcal{C}, %s = %s",
			fx, x, gx, x, argstr[3])
	}
	panic("encoder: indefinite integral expects 3 or 4 arguments")
}

func (enc *TeXEncoder) texSumProd(e *expr.Expr, name string, inSmall bool) string {
	args := e.Args()
	ss := "\\sum"
	if name == "Product" {
		ss = "\\prod"
	}
	body := enc.TeX(args[0], inSmall)
	switch {
	case len(args) == 2 && args[1].HeadIs("Tuple"):
		arity(args[1], 3)
		v, low, high := args[1].Args()[0], args[1].Args()[1], args[1].Args()[2]
		return ss + fmt.Sprintf("_{%s=%s}^{%s} %s",
			enc.TeX(v, false), enc.TeX(low, true), enc.TeX(high, true), body)
	case len(args) == 2:
		return ss + fmt.Sprintf("_{%s} %s", args[1].SourceString(), body)
	case len(args) == 3:
		return ss + fmt.Sprintf("_{%s} %s", enc.TeX(args[2], true), body)
	}
	panic(fmt.Sprintf("encoder: %s expects 2 or 3 arguments, got %d", name, len(args)))
}

func (enc *TeXEncoder) texDivisorSumProd(e *expr.Expr, name string, inSmall bool) string {
	args := e.Args()
	body := enc.TeX(args[0], inSmall)
	var ss string
	switch len(args) {
	case 3:
		ss = fmt.Sprintf("_{%s \\mid %s} %s",
			enc.TeX(args[1], false), enc.TeX(args[2], true), body)
	case 4:
		ss = fmt.Sprintf("_{%s \\mid %s,\\, %s} %s",
			enc.TeX(args[1], false), enc.TeX(args[2], true), enc.TeX(args[3], true), body)
	default:
		panic(fmt.Sprintf("encoder: %s expects 3 or 4 arguments, got %d", name, len(args)))
	}
	if name == "DivisorSum" {
		return "\\sum" + ss
	}
	return "\\prod" + ss
}

func (enc *TeXEncoder) texPrimeSumProd(e *expr.Expr, name string, inSmall bool) string {
	args := e.Args()
	body := enc.TeX(args[0], inSmall)
	var ss string
	switch len(args) {
	case 2:
		ss = fmt.Sprintf("_{%s} %s", enc.TeX(args[1], false), body)
	case 3:
		ss = fmt.Sprintf("_{%s} %s", enc.TeX(args[2], true), body)
	default:
		panic(fmt.Sprintf("encoder: %s expects 2 or 3 arguments, got %d", name, len(args)))
	}
	if name == "PrimeSum" {
		return "\\sum" + ss
	}
	return "\\prod" + ss
}

func (enc *TeXEncoder) texLimit(e *expr.Expr, name string, _ bool) string {
	args := e.Args()
	var cond string
	switch len(args) {
	case 3:
	case 4:
		cond = ", " + enc.TeX(args[3], true)
	default:
		panic(fmt.Sprintf("encoder: %s expects 3 or 4 arguments, got %d", name, len(args)))
	}
	v := enc.TeX(args[1], false)
	point := enc.TeX(args[2], true)
	formula := enc.TeX(args[0], false)
	if !args[2].IsAtom() && !args[2].HeadIs("Abs") {
		formula = "\\left[ " + formula + " \\right]"
	}
	switch name {
	case "LeftLimit":
		return fmt.Sprintf("\\lim_{%s \\to {%s}^{-}%s} %s", v, point, cond, formula)
	case "RightLimit":
		return fmt.Sprintf("\\lim_{%s \\to {%s}^{+}%s} %s", v, point, cond, formula)
	}
	return fmt.Sprintf("\\lim_{%s \\to %s%s} %s", v, point, cond, formula)
}

var bareExtremumHeads = map[string]bool{
	"Minimum": true, "Maximum": true, "Supremum": true, "Infimum": true,
}

func (enc *TeXEncoder) texExtremum(e *expr.Expr, name string, inSmall bool) string {
	args := e.Args()
	opname := extremumGlyphs[name]
	if bareExtremumHeads[name] && len(args) == 1 {
		return fmt.Sprintf("%s\\left(%s\\right)", opname, enc.TeX(args[0], inSmall))
	}
	arity(e, 3)
	predicate := enc.TeX(args[2], true)
	var formula string
	if h := args[0].Head(); h != nil && h.IsSymbol() &&
		(h.Name() == expr.SymAdd || h.Name() == expr.SymSub) {
		formula = "\\left(" + enc.TeX(args[0], false) + "\\right)"
	} else {
		formula = enc.TeX(args[0], false)
	}
	return fmt.Sprintf("\\mathop{%s}\\limits_{%s} %s", opname, predicate, formula)
}

func (enc *TeXEncoder) texMultiplicityOp(e *expr.Expr, opname string, inSmall bool) string {
	arity(e, 3)
	args := e.Args()
	f := enc.TeX(args[0], inSmall)
	v := enc.TeX(args[1], inSmall)
	point := enc.TeX(args[2], inSmall)
	if args[1].Equal(args[2]) {
		return fmt.Sprintf("\\mathop{%s}\\limits_{%s} %s", opname, point, f)
	}
	return fmt.Sprintf("\\mathop{%s}\\limits_{%s=%s} %s", opname, v, point, f)
}

func (enc *TeXEncoder) texDerivative(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	var v, point, order *expr.Expr
	switch len(args) {
	case 2:
		pack := args[1]
		if !pack.HeadIs("Tuple") {
			panic("encoder: packed derivative expects a Tuple")
		}
		arity(pack, 3)
		v, point, order = pack.Args()[0], pack.Args()[1], pack.Args()[2]
	case 3:
		v, point = args[1], args[2]
		order = expr.Int(1)
	case 4:
		v, point, order = args[1], args[2], args[3]
	default:
		panic(fmt.Sprintf("encoder: derivative expects 2 to 4 arguments, got %d", len(args)))
	}
	if !args[0].IsAtom() {
		f := args[0].Head()
		fargs := args[0].Args()
		if f.IsSymbol() && f.Name() != "Exp" && f.Name() != "Sqrt" &&
			len(fargs) == 1 && fargs[0].Equal(v) {
			pointstr := enc.TeX(point, true)
			fstr := enc.TeX(f, false)
			if primes, ok := smallIntOrder(order); ok {
				return fmt.Sprintf("%s%s(%s)", fstr, primes, pointstr)
			}
			return fmt.Sprintf("{%s}^{(%s)}(%s)", fstr, enc.TeX(order, false), pointstr)
		}
		if glyph, ok := enc.tab.SubscriptCallSpelling(f.Name()); ok &&
			len(fargs) == 2 && fargs[1].Equal(v) {
			arg0 := enc.TeX(fargs[0], true)
			pointstr := enc.TeX(point, true)
			if primes, ok := smallIntOrder(order); ok {
				return fmt.Sprintf("%s%s_{%s}(%s)", glyph, primes, arg0, pointstr)
			}
			return fmt.Sprintf("{%s}^{(%s)}_{%s}(%s)", glyph, enc.TeX(order, false), arg0, pointstr)
		}
	}
	varstr := enc.TeX(v, false)
	pointstr := enc.TeX(point, true)
	orderstr := enc.TeX(order, false)
	body := enc.TeX(args[0], inSmall)
	orderOne := order.IsInteger() && order.IntValue().Cmp(big.NewInt(1)) == 0
	if v.Equal(point) {
		if orderOne {
			return fmt.Sprintf("\\frac{d}{d %s}\\, %s", varstr, body)
		}
		return fmt.Sprintf("\\frac{d^{%s}}{{d %s}^{%s}} %s", orderstr, varstr, orderstr, body)
	}
	if orderOne {
		return fmt.Sprintf("\\left[ \\frac{d}{d %s}\\, %s \\right]_{%s = %s}",
			varstr, body, varstr, pointstr)
	}
	return fmt.Sprintf("\\left[ \\frac{d^{%s}}{{d %s}^{%s}} %s \\right]_{%s = %s}",
		orderstr, varstr, orderstr, body, varstr, pointstr)
}

// smallIntOrder returns the prime marks for derivative orders 0 to 3.
func smallIntOrder(order *expr.Expr) (string, bool) {
	if !order.IsInteger() {
		return "", false
	}
	v := order.IntValue()
	if !v.IsInt64() {
		return "", false
	}
	switch v.Int64() {
	case 0:
		return "", true
	case 1:
		return "'", true
	case 2:
		return "''", true
	case 3:
		return "'''", true
	}
	return "", false
}

func (enc *TeXEncoder) texBesselDerivative(e *expr.Expr, name string, inSmall bool) string {
	arity(e, 3)
	args := e.Args()
	fsym := besselGlyphs[name]
	nstr := enc.TeX(args[0], true)
	zstr := enc.TeX(args[1], inSmall)
	r := args[2]
	if primes, ok := smallIntOrder(r); ok {
		return fsym + primes + "_{" + nstr + "}" + "\\!\\left(" + zstr + "\\right)"
	}
	return fsym + "^{(" + enc.TeX(r, inSmall) + ")}_{" + nstr + "}" + "\\!\\left(" + zstr + "\\right)"
}

func (enc *TeXEncoder) texCoulombH(e *expr.Expr, _ bool) string {
	arity(e, 4)
	args := e.Args()
	omega := args[0]
	var omegastr string
	if omega.IsInteger() {
		omegastr = "+"
		if omega.IntValue().Cmp(big.NewInt(-1)) == 0 {
			omegastr = "-"
		}
	} else {
		omegastr = enc.TeX(omega, true)
	}
	return fmt.Sprintf("H^{%s}_{%s,%s}\\!\\left(%s\\right)",
		omegastr, enc.TeX(args[1], true), enc.TeX(args[2], true), enc.TeX(args[3], false))
}

func (enc *TeXEncoder) texFactorial(e *expr.Expr, name string, inSmall bool) string {
	arity(e, 1)
	arg := e.Args()[0]
	ss := "!"
	if name == "DoubleFactorial" {
		ss = "!!"
	}
	argstr := enc.TeX(arg, inSmall)
	if arg.IsSymbol() || (arg.IsInteger() && arg.IntValue().Sign() >= 0) {
		return argstr + " " + ss
	}
	return "\\left(" + argstr + "\\right)" + ss
}

func (enc *TeXEncoder) texLambertW(e *expr.Expr, inSmall bool) string {
	args := e.Args()
	switch len(args) {
	case 2:
		return "W_{" + enc.TeX(args[0], true) + "}" +
			"\\!\\left(" + enc.TeX(args[1], inSmall) + "\\right)"
	case 3:
		nstr := enc.TeX(args[0], true)
		zstr := enc.TeX(args[1], inSmall)
		if primes, ok := smallIntOrder(args[2]); ok {
			return "W" + primes + "_{" + nstr + "}" + "\\!\\left(" + zstr + "\\right)"
		}
		return "W" + "^{(" + enc.TeX(args[2], inSmall) + ")}_{" + nstr + "}" +
			"\\!\\left(" + zstr + "\\right)"
	}
	panic(fmt.Sprintf("encoder: LambertW expects 2 or 3 arguments, got %d", len(args)))
}

func (enc *TeXEncoder) texInterval(e *expr.Expr, name string, inSmall bool) string {
	arity(e, 2)
	a := enc.TeX(e.Args()[0], inSmall)
	b := enc.TeX(e.Args()[1], inSmall)
	switch name {
	case "ClosedInterval":
		return fmt.Sprintf("\\left[%s, %s\\right]", a, b)
	case "OpenInterval":
		return fmt.Sprintf("\\left(%s, %s\\right)", a, b)
	case "ClosedOpenInterval":
		return fmt.Sprintf("\\left[%s, %s\\right)", a, b)
	}
	return fmt.Sprintf("\\left(%s, %s\\right]", a, b)
}

func (enc *TeXEncoder) texCases(e *expr.Expr, inSmall bool) string {
	var sb strings.Builder
	sb.WriteString("\\begin{cases} ")
	for _, arg := range e.Args() {
		if !arg.HeadIs("Tuple") {
			panic("encoder: Cases expects Tuple branches")
		}
		arity(arg, 2)
		v := enc.TeX(arg.Args()[0], inSmall)
		var c string
		if cond := arg.Args()[1]; cond.IsSymbol() && cond.Name() == "Otherwise" {
			c = "\\text{otherwise}"
		} else {
			c = enc.TeX(cond, inSmall)
		}
		fmt.Fprintf(&sb, "%s, & %s\\\\", v, c)
	}
	sb.WriteString(" \\end{cases}")
	return sb.String()
}

// texDecimal renders a decimal literal, turning an exponent marker into
// scientific notation.
func texDecimal(text string) string {
	if mant, expo, ok := strings.Cut(text, "e"); ok {
		expo = strings.TrimLeft(expo, "+")
		return mant + " \\cdot 10^{" + expo + "}"
	}
	return text
}
