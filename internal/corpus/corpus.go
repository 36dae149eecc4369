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

// Package corpus assembles the formula collection: documented entries
// and the topics grouping them. The collection is populated once at
// startup and read-only afterwards.
package corpus

import (
	"fmt"

	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

// Collection holds all entries and topics in registration order.
type Collection struct {
	tab     *symtab.Table
	entries []*expr.Expr
	topics  []*expr.Expr
	byID    map[string]*expr.Expr
	byTitle map[string]*expr.Expr
}

// NewCollection returns an empty collection registering into the given
// symbol table.
func NewCollection(tab *symtab.Table) *Collection {
	return &Collection{
		tab:     tab,
		byID:    make(map[string]*expr.Expr),
		byTitle: make(map[string]*expr.Expr),
	}
}

// Load returns the collection of all built-in formula data.
func Load(tab *symtab.Table) *Collection {
	c := NewCollection(tab)
	c.loadGamma()
	return c
}

// Table returns the symbol table the collection registers into.
func (c *Collection) Table() *symtab.Table { return c.tab }

// Entries returns all entries in registration order.
func (c *Collection) Entries() []*expr.Expr { return c.entries }

// Topics returns all topics in registration order.
func (c *Collection) Topics() []*expr.Expr { return c.topics }

// EntryByID returns the entry with the given id.
func (c *Collection) EntryByID(id string) (*expr.Expr, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// TopicByTitle returns the topic with the given title.
func (c *Collection) TopicByTitle(title string) (*expr.Expr, bool) {
	t, ok := c.byTitle[title]
	return t, ok
}

// MakeEntry builds an Entry term and registers it. An entry must carry
// an ID part; a SymbolDefinition part feeds the symbol table so that
// definition listings can link back to the defining entry.
func (c *Collection) MakeEntry(args ...*expr.Expr) *expr.Expr {
	entry := callArgs("Entry", args)
	id := entry.ArgWithHead("ID")
	if id == nil {
		panic("corpus: entry without ID")
	}
	idText := id.Args()[0].TextValue()
	if _, ok := c.byID[idText]; ok {
		panic(fmt.Sprintf("corpus: duplicate entry id %q", idText))
	}
	if symd := entry.ArgWithHead("SymbolDefinition"); symd != nil {
		symbol, example, description := symd.Args()[0], symd.Args()[1], symd.Args()[2]
		c.tab.Describe2(symbol, example, description.TextValue(), idText, nil)
	}
	c.byID[idText] = entry
	c.entries = append(c.entries, entry)
	return entry
}

// DefTopic builds a Topic term and registers it.
func (c *Collection) DefTopic(args ...*expr.Expr) *expr.Expr {
	topic := callArgs("Topic", args)
	if title := topic.ArgWithHead("Title"); title != nil {
		c.byTitle[title.Args()[0].TextValue()] = topic
	}
	c.topics = append(c.topics, topic)
	return topic
}

// TopicTitle returns the title text of a topic.
func TopicTitle(topic *expr.Expr) string {
	return topic.ArgWithHead("Title").Args()[0].TextValue()
}

// TopicEntryIDs returns the entry ids referenced by a topic, in order.
func TopicEntryIDs(topic *expr.Expr) []string {
	var ids []string
	for _, arg := range topic.Args() {
		if arg.HeadIs("Entries") {
			for _, id := range arg.Args() {
				ids = append(ids, id.TextValue())
			}
		}
	}
	return ids
}

// call builds head(args...) for a symbolic head name.
func call(head string, args ...any) *expr.Expr {
	return expr.Call(expr.Symbol(head), args...)
}

func callArgs(head string, args []*expr.Expr) *expr.Expr {
	anyArgs := make([]any, len(args))
	for i, a := range args {
		anyArgs[i] = a
	}
	return expr.Call(expr.Symbol(head), anyArgs...)
}
