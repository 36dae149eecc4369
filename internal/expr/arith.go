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

package expr

// Construction sugar for the canonical arithmetic operators. These build
// call terms only; nothing is evaluated.

// Canonical operator symbol names used by the sugar below and by the
// renderers' shape predicates.
const (
	SymPos  = "Pos"
	SymNeg  = "Neg"
	SymAdd  = "Add"
	SymSub  = "Sub"
	SymMul  = "Mul"
	SymDiv  = "Div"
	SymPow  = "Pow"
	SymAbs  = "Abs"
	SymSqrt = "Sqrt"
)

// Add returns Add(e, other).
func (e *Expr) Add(other any) *Expr { return Call(Symbol(SymAdd), e, From(other)) }

// Sub returns Sub(e, other).
func (e *Expr) Sub(other any) *Expr { return Call(Symbol(SymSub), e, From(other)) }

// Mul returns Mul(e, other).
func (e *Expr) Mul(other any) *Expr { return Call(Symbol(SymMul), e, From(other)) }

// Div returns Div(e, other).
func (e *Expr) Div(other any) *Expr { return Call(Symbol(SymDiv), e, From(other)) }

// Pow returns Pow(e, other).
func (e *Expr) Pow(other any) *Expr { return Call(Symbol(SymPow), e, From(other)) }

// Neg returns Neg(e).
func (e *Expr) Neg() *Expr { return Call(Symbol(SymNeg), e) }

// Pos returns Pos(e).
func (e *Expr) Pos() *Expr { return Call(Symbol(SymPos), e) }

// Abs returns Abs(e).
func (e *Expr) Abs() *Expr { return Call(Symbol(SymAbs), e) }

// Sqrt returns Sqrt(e).
func (e *Expr) Sqrt() *Expr { return Call(Symbol(SymSqrt), e) }
