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

func TestParseEncoding(t *testing.T) {
	for _, enc := range encoder.GetEncodings() {
		if got := encoder.ParseEncoding(enc.String()); got != enc {
			t.Errorf("ParseEncoding(%q) = %v, expected %v", enc.String(), got, enc)
		}
	}
	if got := encoder.ParseEncoding("gopher"); got != encoder.EncodingUnknown {
		t.Errorf("ParseEncoding(gopher) = %v, expected unknown", got)
	}
	if got := encoder.ParseEncoding(""); got != encoder.EncodingUnknown {
		t.Errorf("ParseEncoding of empty string = %v, expected unknown", got)
	}
}

func TestCreate(t *testing.T) {
	params := encoder.CreateParameter{Table: symtab.Builtin()}
	for _, enc := range encoder.GetEncodings() {
		if got := encoder.Create(enc, &params); got == nil {
			t.Errorf("Create(%v) = nil", enc)
		}
	}
	if got := encoder.Create(encoder.EncodingUnknown, &params); got != nil {
		t.Errorf("Create(unknown) = %v, expected nil", got)
	}
}

func TestSzEncoder(t *testing.T) {
	var testcases = []struct {
		name string
		e    *expr.Expr
		exp  string
	}{
		{name: "symbol", e: expr.Symbol("z"), exp: "z"},
		{name: "integer", e: expr.Int(-5), exp: "-5"},
		{name: "text", e: expr.Text("gamma"), exp: `"gamma"`},
		{name: "call", e: expr.Symbol("z").Add(1), exp: "(Add z 1)"},
		{name: "nested call",
			e:   call("Equal", call("GammaFunction", 1), 1),
			exp: "(Equal (GammaFunction 1) 1)"},
	}
	enc := encoder.Create(encoder.EncodingSz, &encoder.CreateParameter{})
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			if err := enc.WriteExpr(&sb, tc.e); err != nil {
				t.Fatal(err)
			}
			if got := sb.String(); got != tc.exp {
				t.Errorf("\nexpected: %q\n but got: %q", tc.exp, got)
			}
		})
	}
}

func TestSourceEncoder(t *testing.T) {
	enc := encoder.Create(encoder.EncodingSource, &encoder.CreateParameter{})
	e := call("GammaFunction", expr.Symbol("z").Add(1))
	var sb strings.Builder
	if err := enc.WriteExpr(&sb, e); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "GammaFunction(Add(z, 1))"; got != want {
		t.Errorf("\nexpected: %q\n but got: %q", want, got)
	}

	entry := call("Entry", call("ID", "abc123"), call("Variables", expr.Symbol("z")))
	sb.Reset()
	if err := enc.WriteEntry(&sb, entry); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); !strings.HasSuffix(got, "\n") {
		t.Errorf("entry source must end with a newline: %q", got)
	} else if !strings.HasPrefix(got, "Entry(ID(\"abc123\"),\n") {
		t.Errorf("unexpected entry source: %q", got)
	}
}
