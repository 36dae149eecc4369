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

// srcenc encodes a term back into corpus source notation.

import (
	"io"

	"github.com/mhogrefe/fungrim/internal/expr"
)

type srcEncoder struct{}

// WriteExpr writes the term in source notation to the writer.
func (enc *srcEncoder) WriteExpr(w io.Writer, e *expr.Expr) error {
	_, err := io.WriteString(w, e.SourceString())
	return err
}

// WriteEntry writes the entry in source notation. Entries get a trailing
// newline so that several entries can be concatenated into one listing.
func (enc *srcEncoder) WriteEntry(w io.Writer, entry *expr.Expr) error {
	ew := newEncWriter(w)
	ew.WriteString(entry.SourceString())
	ew.WriteLn()
	return ew.Flush()
}
