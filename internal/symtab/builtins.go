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

package symtab

import "strings"

// Builtin returns a table populated with every standard operator symbol,
// the variable alphabet, and the three spelling tables.
func Builtin() *Table {
	t := New()
	t.RegisterBuiltins(strings.Fields(builtinNames)...)
	t.RegisterBuiltins(strings.Fields(structuralNames)...)
	t.RegisterVariables(strings.Fields(variableNames)...)
	for name, spelling := range infixSpellings {
		t.SetInfix(name, spelling)
	}
	for name, glyph := range subscriptCallSpellings {
		t.SetSubscriptCall(name, glyph)
	}
	for name, spelling := range symbolSpellings {
		t.SetSymbolSpelling(name, spelling)
	}
	return t
}

const builtinNames = `
True_ False_
Parentheses Brackets Braces
Ellipsis Call Subscript
Unknown Undefined
Where
Set List Tuple
SetBuilder
PowerSet
Union Intersection SetMinus Not And Or Equivalent Implies
Cardinality
Element NotElement Subset SubsetEqual
ForAll Exists
EqualAndElement
Rings CommutativeRings Fields
PP ZZ QQ RR CC HH AlgebraicNumbers
ZZGreaterEqual ZZLessEqual ZZBetween
ClosedInterval OpenInterval ClosedOpenInterval OpenClosedInterval
RealBall
UnitCircle
OpenDisk ClosedDisk BernsteinEllipse
InteriorClosure Interior
Decimal
Equal Unequal Greater GreaterEqual Less LessEqual
Pos Neg Add Sub Mul Div Mod Inv Pow
CongruentMod Odd Even
Max Min Sign Csgn Abs Floor Ceil Arg Re Im Conjugate
NearestDecimal
Minimum Maximum ArgMin ArgMax ArgMinUnique ArgMaxUnique
Solutions UniqueSolution
Supremum Infimum
Limit SequenceLimit RealLimit LeftLimit RightLimit ComplexLimit MeromorphicLimit
Derivative RealDerivative ComplexDerivative ComplexBranchDerivative MeromorphicDerivative
Sum Product
PrimeSum DivisorSum PrimeProduct DivisorProduct
Integral
IndefiniteIntegralEqual RealIndefiniteIntegralEqual ComplexIndefiniteIntegralEqual
AsymptoticTo
FormalGenerator
FormalPowerSeries FormalLaurentSeries SeriesCoefficient
HolomorphicDomain Poles BranchPoints BranchCuts EssentialSingularities Zeros UniqueZero AnalyticContinuation
ComplexZeroMultiplicity
Residue
Infinity UnsignedInfinity
Sqrt NthRoot Log LogBase Exp
Sin Cos Tan Sec Cot Csc
Asin Acos Atan Atan2 Asec Acot Acsc
Sinh Cosh Tanh Sech Coth Csch
Asinh Acosh Atanh Asech Acoth Acsch
Sinc LambertW LambertWPuiseuxCoefficient
ConstPi ConstE ConstGamma ConstI GoldenRatio
Binomial Factorial DoubleFactorial GammaFunction LogGamma DigammaFunction PolyGamma RisingFactorial FallingFactorial HarmonicNumber StirlingSeriesRemainder
Erf Erfc Erfi
UpperGamma LowerGamma
BernoulliB BernoulliPolynomial EulerE EulerPolynomial
StirlingCycle StirlingS1 StirlingS2 BellNumber
RiemannZeta RiemannZetaZero
BesselJ BesselI BesselY BesselK HankelH1 HankelH2
BesselJDerivative BesselIDerivative BesselYDerivative BesselKDerivative
CoulombF CoulombG CoulombH CoulombC CoulombSigma
Hypergeometric0F1 Hypergeometric1F1 Hypergeometric2F1 Hypergeometric2F0 Hypergeometric3F2
HypergeometricU HypergeometricUStar
Hypergeometric0F1Regularized Hypergeometric1F1Regularized Hypergeometric2F1Regularized Hypergeometric2F0Regularized Hypergeometric3F2Regularized
HypergeometricUStarRemainder
AiryAi AiryBi AiryAiPrime AiryBiPrime
LegendrePolynomial LegendrePolynomialZero GaussLegendreWeight
HermitePolynomial
ChebyshevT ChebyshevU
DedekindEta EulerQSeries DedekindEtaEpsilon DedekindSum
JacobiTheta1 JacobiTheta2 JacobiTheta3 JacobiTheta4
Divides
GCD LCM XGCD DivisorSigma MoebiusMu Totient
LegendreSymbol JacobiSymbol KroneckerSymbol
Fibonacci
PartitionsP HardyRamanujanA
KroneckerDelta
Lattice
WeierstrassP WeierstrassZeta WeierstrassSigma
PrimeNumber PrimePi
RiemannHypothesis
LogIntegral
Matrix2x2 Matrix2x1
Spectrum Det
SL2Z PSL2Z ModularGroupAction ModularGroupFundamentalDomain
ModularLambdaFundamentalDomain
ModularJ ModularLambda
PrimitiveReducedPositiveIntegralBinaryQuadraticForms
HilbertClassPolynomial
DirichletCharacter DirichletGroup PrimitiveDirichletCharacters
ConreyGenerator
DiscreteLog
Cases Otherwise
HurwitzZeta DirichletL GeneralizedBernoulliB
StieltjesGamma
DirichletLZero
GeneralizedRiemannHypothesis
DirichletLambda GaussSum JacobiSum
EisensteinG EisensteinE
EllipticK EllipticE
QSeriesCoefficient EqualQSeriesEllipsis
BetaFunction IncompleteBeta IncompleteBetaRegularized
`

// Heads that tag the parts of entries and topics.
const structuralNames = `
Entry Formula ID Assumptions References Variables DomainCodomain
Description Table TableRelation TableHeadings TableColumnHeadings TableSplit TableSection
Topic Title DefinitionsTable Section Subsection SeeTopics Entries EntryReference
SourceForm SymbolDefinition
Image ImageSource
`

const variableNames = `
a b c d e f g h i j k l m n o p q r s t u v w x y z
A B C D E F G H I J K L M N O P Q R S T U V W X Y Z
alpha beta gamma delta epsilon zeta eta theta iota kappa mu nu xi pi rho sigma tau phi chi psi omega ell
Alpha Beta Gamma Delta Epsilon Zeta Eta Theta Iota Kappa Mu Nu Xi Pi Rho Sigma Tau Phi Chi Psi Omega
`

var infixSpellings = map[string]string{
	"Mod":          "\\bmod",
	"Element":      "\\in",
	"NotElement":   "\\notin",
	"SetMinus":     "\\setminus",
	"Union":        "\\cup",
	"Intersection": "\\cap",
	"Less":         "<",
	"LessEqual":    "\\le",
	"Greater":      ">",
	"GreaterEqual": "\\ge",
	"Equal":        "=",
	"Unequal":      "\\ne",
	"Subset":       "\\subset",
	"SubsetEqual":  "\\subseteq",
	"Divides":      "\\mid",
}

var subscriptCallSpellings = map[string]string{
	"BernoulliPolynomial":       "B",
	"LegendrePolynomial":        "P",
	"ChebyshevT":                "T",
	"ChebyshevU":                "U",
	"HermitePolynomial":         "H",
	"HilbertClassPolynomial":    "H",
	"EisensteinG":               "G",
	"EisensteinE":               "E",
	"DivisorSigma":              "\\sigma",
	"IncompleteBeta":            "\\mathrm{B}",
	"IncompleteBetaRegularized": "I",
	"PolyGamma":                 "\\psi",
}

var symbolSpellings = map[string]string{
	"ConstPi":                      "\\pi",
	"ConstI":                       "i",
	"ConstE":                       "e",
	"ConstGamma":                   "\\gamma",
	"GoldenRatio":                  "\\varphi",
	"Infinity":                     "\\infty",
	"UnsignedInfinity":             "{\\tilde \\infty}",
	"GammaFunction":                "\\Gamma",
	"LogGamma":                     "\\log \\Gamma",
	"UpperGamma":                   "\\Gamma",
	"Erf":                          "\\operatorname{erf}",
	"Erfc":                         "\\operatorname{erfc}",
	"Erfi":                         "\\operatorname{erfi}",
	"DigammaFunction":              "\\psi",
	"DedekindEta":                  "\\eta",
	"DedekindEtaEpsilon":           "\\varepsilon",
	"DedekindSum":                  "s",
	"ModularJ":                     "j",
	"ModularLambda":                "\\lambda",
	"JacobiTheta1":                 "\\theta_1",
	"JacobiTheta2":                 "\\theta_2",
	"JacobiTheta3":                 "\\theta_3",
	"JacobiTheta4":                 "\\theta_4",
	"WeierstrassP":                 "\\wp",
	"WeierstrassSigma":             "\\sigma",
	"WeierstrassZeta":              "\\zeta",
	"EllipticK":                    "K",
	"EllipticE":                    "E",
	"EulerQSeries":                 "\\phi",
	"PartitionsP":                  "p",
	"MoebiusMu":                    "\\mu",
	"HardyRamanujanA":              "A",
	"Sin":                          "\\sin",
	"Sinh":                         "\\sinh",
	"Cos":                          "\\cos",
	"Cosh":                         "\\cosh",
	"Tan":                          "\\tan",
	"Tanh":                         "\\tanh",
	"Cot":                          "\\cot",
	"Coth":                         "\\coth",
	"Sec":                          "\\sec",
	"Sech":                         "\\sech",
	"Csc":                          "\\csc",
	"Csch":                         "\\csch",
	"Exp":                          "\\exp",
	"Log":                          "\\log",
	"Atan":                         "\\operatorname{atan}",
	"Acos":                         "\\operatorname{acos}",
	"Asin":                         "\\operatorname{asin}",
	"Acot":                         "\\operatorname{acot}",
	"Atanh":                        "\\operatorname{atanh}",
	"Acosh":                        "\\operatorname{acosh}",
	"Asinh":                        "\\operatorname{asinh}",
	"Acoth":                        "\\operatorname{acoth}",
	"Atan2":                        "\\operatorname{atan2}",
	"Sinc":                         "\\operatorname{sinc}",
	"Hypergeometric0F1":            "\\,{}_0F_1",
	"Hypergeometric1F1":            "\\,{}_1F_1",
	"Hypergeometric2F1":            "\\,{}_2F_1",
	"Hypergeometric2F0":            "\\,{}_2F_0",
	"Hypergeometric3F2":            "\\,{}_3F_2",
	"HypergeometricU":              "U",
	"HypergeometricUStar":          "U^{*}",
	"Hypergeometric0F1Regularized": "\\,{}_0{\\textbf F}_1",
	"Hypergeometric1F1Regularized": "\\,{}_1{\\textbf F}_1",
	"Hypergeometric2F1Regularized": "\\,{}_2{\\textbf F}_1",
	"Hypergeometric2F0Regularized": "\\,{}_2{\\textbf F}_0",
	"Hypergeometric3F2Regularized": "\\,{}_3{\\textbf F}_2",
	"AiryAi":                       "\\operatorname{Ai}",
	"AiryBi":                       "\\operatorname{Bi}",
	"AiryAiPrime":                  "\\operatorname{Ai}'",
	"AiryBiPrime":                  "\\operatorname{Bi}'",
	"LogIntegral":                  "\\operatorname{li}",
	"GCD":                          "\\gcd",
	"LCM":                          "\\operatorname{lcm}",
	"XGCD":                         "\\operatorname{xgcd}",
	"Totient":                      "\\varphi",
	"Sign":                         "\\operatorname{sgn}",
	"Csgn":                         "\\operatorname{csgn}",
	"Arg":                          "\\arg",
	"Min":                          "\\min",
	"Max":                          "\\max",
	"PP":                           "\\mathbb{P}",
	"ZZ":                           "\\mathbb{Z}",
	"QQ":                           "\\mathbb{Q}",
	"RR":                           "\\mathbb{R}",
	"CC":                           "\\mathbb{C}",
	"HH":                           "\\mathbb{H}",
	"AlgebraicNumbers":             "\\overline{\\mathbb{Q}}",
	"UnitCircle":                   "\\mathbb{T}",
	"PrimePi":                      "\\pi",
	"SL2Z":                         "\\operatorname{SL}_2(\\mathbb{Z})",
	"PSL2Z":                        "\\operatorname{PSL}_2(\\mathbb{Z})",
	"ModularGroupFundamentalDomain":  "\\mathcal{F}",
	"ModularLambdaFundamentalDomain": "\\mathcal{F}_{\\lambda}",
	"PowerSet":                     "\\mathscr{P}",
	"Ellipsis":                     "\\ldots",
	"Spectrum":                     "\\operatorname{spec}",
	"Det":                          "\\operatorname{det}",
	"RiemannHypothesis":            "\\operatorname{RH}",
	"GeneralizedRiemannHypothesis": "\\operatorname{GRH}",
	"RiemannZeta":                  "\\zeta",
	"HurwitzZeta":                  "\\zeta",
	"DirichletL":                   "L",
	"DirichletLambda":              "\\Lambda",
	"BetaFunction":                 "\\mathrm{B}",
}
