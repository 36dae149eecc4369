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

package corpus_test

import (
	"testing"

	"github.com/mhogrefe/fungrim/internal/corpus"
	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

func call(head string, args ...any) *expr.Expr {
	return expr.Call(expr.Symbol(head), args...)
}

func TestLoad(t *testing.T) {
	tab := symtab.Builtin()
	c := corpus.Load(tab)
	if got := len(c.Entries()); got == 0 {
		t.Fatal("collection has no entries")
	}
	if got := len(c.Topics()); got != 1 {
		t.Fatalf("collection has %d topics, expected 1", got)
	}

	topic, ok := c.TopicByTitle("Gamma function")
	if !ok {
		t.Fatal("topic Gamma function not found")
	}
	if got := corpus.TopicTitle(topic); got != "Gamma function" {
		t.Errorf("TopicTitle = %q", got)
	}

	// Every entry the topic lists must exist, and every entry must be
	// reachable by its id.
	ids := corpus.TopicEntryIDs(topic)
	if len(ids) == 0 {
		t.Fatal("topic lists no entries")
	}
	for _, id := range ids {
		if _, ok := c.EntryByID(id); !ok {
			t.Errorf("topic references missing entry %q", id)
		}
	}
	for _, entry := range c.Entries() {
		id := entry.ArgWithHead("ID")
		if id == nil {
			t.Errorf("entry without ID: %s", entry)
			continue
		}
		if got, ok := c.EntryByID(id.Args()[0].TextValue()); !ok || got != entry {
			t.Errorf("entry %s not reachable by id", id)
		}
	}

	if _, ok := c.EntryByID("000000"); ok {
		t.Error("EntryByID found a nonexistent entry")
	}
	if _, ok := c.TopicByTitle("No such topic"); ok {
		t.Error("TopicByTitle found a nonexistent topic")
	}
}

func TestLoadDescribesSymbols(t *testing.T) {
	tab := symtab.Builtin()
	corpus.Load(tab)

	d := tab.DescriptionOf(tab.Symbol("GammaFunction"))
	if d == nil {
		t.Fatal("GammaFunction has no description")
	}
	if d.DomainTable != "09e2ed" {
		t.Errorf("GammaFunction domain table = %q", d.DomainTable)
	}

	// The Factorial definition enters the table through its entry.
	df := tab.DescriptionOf(tab.Symbol("Factorial"))
	if df == nil {
		t.Fatal("Factorial has no description")
	}
	if df.DomainTable != "27bc34" {
		t.Errorf("Factorial domain table = %q", df.DomainTable)
	}
}

func TestMakeEntry(t *testing.T) {
	tab := symtab.Builtin()
	c := corpus.NewCollection(tab)
	entry := c.MakeEntry(
		call("ID", "abc123"),
		call("Formula", call("Equal", call("GammaFunction", 1), 1)))
	if got, ok := c.EntryByID("abc123"); !ok || got != entry {
		t.Error("entry not registered under its id")
	}

	t.Run("duplicate id", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("duplicate entry id must panic")
			}
		}()
		c.MakeEntry(call("ID", "abc123"))
	})

	t.Run("missing id", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("entry without id must panic")
			}
		}()
		c.MakeEntry(call("Formula", call("Equal", 1, 1)))
	})
}

func TestMakeEntrySymbolDefinition(t *testing.T) {
	tab := symtab.Builtin()
	c := corpus.NewCollection(tab)
	n := expr.Symbol("n")
	c.MakeEntry(
		call("ID", "def456"),
		call("SymbolDefinition", expr.Symbol("Factorial"), call("Factorial", n), "Factorial"))
	d := tab.DescriptionOf(tab.Symbol("Factorial"))
	if d == nil {
		t.Fatal("symbol definition did not describe the symbol")
	}
	if d.Text != "Factorial" || d.DomainTable != "def456" {
		t.Errorf("unexpected description: %+v", d)
	}
}
