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

// Package expr implements the immutable term model of the formula engine.
//
// A term is either an atom (symbol, integer or text) or a call f(a, b, ...)
// where f and a, b, ... are themselves terms. Terms never change after
// construction, so sub-terms may be shared freely between trees and derived
// values such as the hash are computed once and kept.
package expr

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"
)

type kind uint8

const (
	kindSymbol kind = iota + 1
	kindInteger
	kindText
	kindCall
)

// Expr is a single immutable term. The zero value is not a valid term;
// always go through one of the constructors.
type Expr struct {
	kind    kind
	name    string   // kindSymbol
	integer *big.Int // kindInteger
	text    string   // kindText
	parts   []*Expr  // kindCall; parts[0] is the head, len >= 1
	hash    uint64
}

// Symbol returns a symbol atom with the given name.
func Symbol(name string) *Expr {
	e := &Expr{kind: kindSymbol, name: name}
	e.hash = e.computeHash()
	return e
}

// Integer returns an integer atom. The argument is copied, so later
// mutation of n does not affect the term.
func Integer(n *big.Int) *Expr {
	e := &Expr{kind: kindInteger, integer: new(big.Int).Set(n)}
	e.hash = e.computeHash()
	return e
}

// Int returns an integer atom for a machine integer.
func Int(n int64) *Expr { return Integer(big.NewInt(n)) }

// Text returns a text atom. The string may contain arbitrary characters,
// including quotes; escaping happens on output only.
func Text(s string) *Expr {
	e := &Expr{kind: kindText, text: s}
	e.hash = e.computeHash()
	return e
}

// From coerces a value into a term: a *Expr passes through unchanged,
// integers become integer atoms, strings become text atoms. Any other
// type is a programming error.
func From(v any) *Expr {
	switch x := v.(type) {
	case *Expr:
		return x
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case *big.Int:
		return Integer(x)
	case string:
		return Text(x)
	}
	panic(fmt.Sprintf("expr: cannot build a term from %T", v))
}

// Call builds the term head(args...). Head and arguments are coerced
// through From.
func Call(head any, args ...any) *Expr {
	parts := make([]*Expr, 0, len(args)+1)
	parts = append(parts, From(head))
	for _, a := range args {
		parts = append(parts, From(a))
	}
	e := &Expr{kind: kindCall, parts: parts}
	e.hash = e.computeHash()
	return e
}

// IsAtom reports whether e is a symbol, integer or text atom.
func (e *Expr) IsAtom() bool { return e.kind != kindCall }

// IsSymbol reports whether e is a symbol atom.
func (e *Expr) IsSymbol() bool { return e.kind == kindSymbol }

// IsInteger reports whether e is an integer atom.
func (e *Expr) IsInteger() bool { return e.kind == kindInteger }

// IsText reports whether e is a text atom.
func (e *Expr) IsText() bool { return e.kind == kindText }

// Name returns the symbol name, or "" for non-symbols.
func (e *Expr) Name() string { return e.name }

// IntValue returns the integer payload, or nil for non-integers.
// The result must not be modified.
func (e *Expr) IntValue() *big.Int { return e.integer }

// TextValue returns the text payload, or "" for non-text terms.
func (e *Expr) TextValue() string { return e.text }

// Head returns the head of a call, or nil for an atom.
func (e *Expr) Head() *Expr {
	if e.kind != kindCall {
		return nil
	}
	return e.parts[0]
}

// Args returns the arguments of a call, or nil for an atom. The slice
// must not be modified.
func (e *Expr) Args() []*Expr {
	if e.kind != kindCall {
		return nil
	}
	return e.parts[1:]
}

// Arity returns the number of arguments of a call, or 0 for an atom.
func (e *Expr) Arity() int {
	if e.kind != kindCall {
		return 0
	}
	return len(e.parts) - 1
}

// HeadIs reports whether e is a call whose head is the symbol name.
func (e *Expr) HeadIs(name string) bool {
	return e.kind == kindCall && e.parts[0].kind == kindSymbol && e.parts[0].name == name
}

// ArgWithHead returns the first argument that is a call with the given
// head symbol, or nil if there is none.
func (e *Expr) ArgWithHead(name string) *Expr {
	for _, a := range e.Args() {
		if a.HeadIs(name) {
			return a
		}
	}
	return nil
}

// Equal reports structural equality: same variant and, for calls,
// pairwise equal parts in order and length.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.kind != o.kind || e.hash != o.hash {
		return false
	}
	switch e.kind {
	case kindSymbol:
		return e.name == o.name
	case kindInteger:
		return e.integer.Cmp(o.integer) == 0
	case kindText:
		return e.text == o.text
	case kindCall:
		if len(e.parts) != len(o.parts) {
			return false
		}
		for i, p := range e.parts {
			if !p.Equal(o.parts[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a hash consistent with Equal. It is computed at
// construction time and stable for the life of the term.
func (e *Expr) Hash() uint64 { return e.hash }

func (e *Expr) computeHash() uint64 {
	h := fnv.New64a()
	switch e.kind {
	case kindSymbol:
		h.Write([]byte{1})
		h.Write([]byte(e.name))
	case kindInteger:
		h.Write([]byte{2})
		h.Write(e.integer.Bytes())
		if e.integer.Sign() < 0 {
			h.Write([]byte{'-'})
		}
	case kindText:
		h.Write([]byte{3})
		h.Write([]byte(e.text))
	case kindCall:
		h.Write([]byte{4})
		var buf [8]byte
		for _, p := range e.parts {
			ph := p.hash
			for i := range buf {
				buf[i] = byte(ph >> (8 * i))
			}
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Key returns a string usable as a map key; two terms have the same key
// iff they are structurally equal.
func (e *Expr) Key() string { return e.SourceString() }

// AllSymbols returns all symbol leaves in depth-first left-to-right
// order, with duplicates removed but first-occurrence order preserved.
func (e *Expr) AllSymbols() []*Expr {
	var result []*Expr
	seen := make(map[string]struct{})
	var walk func(*Expr)
	walk = func(x *Expr) {
		switch x.kind {
		case kindSymbol:
			if _, ok := seen[x.name]; !ok {
				seen[x.name] = struct{}{}
				result = append(result, x)
			}
		case kindCall:
			for _, p := range x.parts {
				walk(p)
			}
		}
	}
	walk(e)
	return result
}

// SymEntry is the head marking a documented formula entry. Its arguments
// are written one per line by SourceString.
const SymEntry = "Entry"

// SourceString returns the canonical source syntax of the term: symbols
// bare, integers decimal, text double-quoted with embedded quotes
// escaped, calls as head(a, b, ...).
func (e *Expr) SourceString() string {
	var sb strings.Builder
	e.writeSource(&sb)
	return sb.String()
}

// String implements fmt.Stringer via the source syntax.
func (e *Expr) String() string { return e.SourceString() }

func (e *Expr) writeSource(sb *strings.Builder) {
	switch e.kind {
	case kindSymbol:
		sb.WriteString(e.name)
	case kindInteger:
		sb.WriteString(e.integer.String())
	case kindText:
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(e.text, `"`, `\"`))
		sb.WriteByte('"')
	case kindCall:
		e.parts[0].writeSource(sb)
		sb.WriteByte('(')
		sep := ", "
		if e.parts[0].kind == kindSymbol && e.parts[0].name == SymEntry {
			sep = ",\n    "
		}
		for i, a := range e.parts[1:] {
			if i > 0 {
				sb.WriteString(sep)
			}
			a.writeSource(sb)
		}
		sb.WriteByte(')')
	}
}
