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

// szenc encodes a term into a s-expr.

import (
	"io"

	"t73f.de/r/sx"

	"github.com/mhogrefe/fungrim/internal/expr"
)

type szEncoder struct{}

// WriteExpr writes the encoded term to the writer.
func (enc *szEncoder) WriteExpr(w io.Writer, e *expr.Expr) error {
	_, err := sx.Print(w, enc.GetSz(e))
	return err
}

// WriteEntry writes the encoded entry to the writer.
func (enc *szEncoder) WriteEntry(w io.Writer, entry *expr.Expr) error {
	return enc.WriteExpr(w, entry)
}

// GetSz returns the given term as a s-expression object. Symbols map to
// symbols, text to strings, calls to lists. Integers outside the int64
// range are encoded as decimal strings.
func (enc *szEncoder) GetSz(e *expr.Expr) sx.Object {
	switch {
	case e.IsSymbol():
		return sx.MakeSymbol(e.Name())
	case e.IsInteger():
		if v := e.IntValue(); v.IsInt64() {
			return sx.Int64(v.Int64())
		}
		return sx.MakeString(e.IntValue().String())
	case e.IsText():
		return sx.MakeString(e.TextValue())
	}
	var lb sx.ListBuilder
	lb.Add(enc.GetSz(e.Head()))
	for _, arg := range e.Args() {
		lb.Add(enc.GetSz(arg))
	}
	return lb.List()
}
