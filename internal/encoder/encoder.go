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

// Package encoder provides a generic interface to encode formula terms
// into some text form.
package encoder

import (
	"io"

	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

// Encoder is an interface that allows to encode different parts of the
// formula corpus.
type Encoder interface {
	// WriteExpr encodes a single term and writes it to the Writer.
	WriteExpr(io.Writer, *expr.Expr) error

	// WriteEntry encodes a whole documented entry.
	WriteEntry(io.Writer, *expr.Expr) error
}

// Encoding identifies an output format.
type Encoding uint8

// Constants for Encoding.
const (
	EncodingUnknown Encoding = iota
	EncodingLaTeX
	EncodingHTML
	EncodingSz
	EncodingSource
)

var encodingNames = [...]string{"", "latex", "html", "sz", "src"}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return ""
}

// ParseEncoding returns the encoding named by text.
func ParseEncoding(text string) Encoding {
	for enc := EncodingLaTeX; enc <= EncodingSource; enc++ {
		if encodingNames[enc] == text {
			return enc
		}
	}
	return EncodingUnknown
}

// GetEncodings returns all registered encodings, ordered by encoding value.
func GetEncodings() []Encoding {
	return []Encoding{EncodingLaTeX, EncodingHTML, EncodingSz, EncodingSource}
}

// TypesetFunc converts a LaTeX source string into a renderable math
// fragment, either inline or in display mode. The engine doing the math
// layout is an external collaborator.
type TypesetFunc func(tex string, display bool) string

// CreateParameter contains values that are needed to create some encoder.
type CreateParameter struct {
	Table     *symtab.Table
	Typeset   TypesetFunc // nil selects the client-side typesetting default
	EntryDir  string      // link prefix for entry pages, default "../../entry/"
	SymbolDir string      // link prefix for symbol pages, default "../../symbol/"
	ImgDir    string      // link prefix for image assets, default "../../img/"
}

// Create builds a new encoder with the given options.
func Create(enc Encoding, params *CreateParameter) Encoder {
	switch enc {
	case EncodingLaTeX:
		return NewTeX(params.Table)
	case EncodingHTML:
		return NewHTML(params)
	case EncodingSz:
		return (*szEncoder)(nil)
	case EncodingSource:
		return (*srcEncoder)(nil)
	}
	return nil
}
