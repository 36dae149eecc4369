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

package server

// HTML page assembly for the browsable collection.

import (
	"net/http"
	"strings"

	"t73f.de/r/sx"
	"t73f.de/r/sxwebs/sxhtml"
	"t73f.de/r/zsc/shtml"

	"github.com/mhogrefe/fungrim/internal/corpus"
	"github.com/mhogrefe/fungrim/internal/encoder"
	"github.com/mhogrefe/fungrim/internal/expr"
	"github.com/mhogrefe/fungrim/internal/logging"
)

var (
	symTITLE  = sx.MakeSymbol("title")
	symSCRIPT = sx.MakeSymbol("script")
	symH2     = sx.MakeSymbol("h2")
	symP      = sx.MakeSymbol("p")
	symUL     = sx.MakeSymbol("ul")
	symLI     = sx.MakeSymbol("li")
)

const mathJaxURL = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"

const pageScript = `
function toggleVisible(id) {
  var e = document.getElementById(id);
  e.style.display = (e.style.display === "none") ? "block" : "none";
}
function toggleBig(id, small, big) {
  var e = document.getElementById(id);
  if (e.src.endsWith(big)) {
    e.src = small;
    e.style.width = "140px";
    e.style.height = "auto";
  } else {
    e.src = big;
    e.style.width = "auto";
    e.style.height = "400px";
  }
}
`

func attr(name, value string) *sx.Pair {
	return sx.Cons(sx.MakeSymbol(name), sx.MakeString(value))
}

func attrList(attrs ...*sx.Pair) *sx.Pair {
	var lb sx.ListBuilder
	lb.Add(sxhtml.SymAttr)
	for _, a := range attrs {
		lb.Add(a)
	}
	return lb.List()
}

// titleFromURL maps a topic path segment back to its title.
func titleFromURL(segment string) string { return strings.ReplaceAll(segment, "_", " ") }

// titleToURL maps a topic title to its path segment.
func titleToURL(title string) string { return strings.ReplaceAll(title, " ", "_") }

func (rt *httpRouter) writePage(w http.ResponseWriter, title string, body []sx.Object) {
	var head sx.ListBuilder
	head.AddN(
		shtml.SymHead,
		sx.Nil().Cons(sx.Nil().Cons(sx.Cons(sx.MakeSymbol("charset"), sx.MakeString("utf-8")))).Cons(shtml.SymMeta),
		sx.MakeList(symTITLE, sx.MakeString(title)),
		sx.MakeList(symSCRIPT, sx.MakeList(sxhtml.SymNoEscape, sx.MakeString(pageScript))),
		sx.MakeList(symSCRIPT,
			attrList(attr("src", mathJaxURL), attr("async", "async")),
			sx.MakeString("")),
	)

	var bodyLB sx.ListBuilder
	bodyLB.Add(shtml.SymBody)
	for _, obj := range body {
		bodyLB.Add(obj)
	}

	doc := sx.MakeList(
		sxhtml.SymDoctype,
		sx.MakeList(shtml.SymHTML, head.List(), bodyLB.List()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	gen := sxhtml.NewGenerator().SetNewline()
	if _, err := gen.WriteHTML(w, doc); err != nil {
		logging.LogTrace(rt.log, "write page", "title", title, "err", err)
	}
}

func (rt *httpRouter) homePage() []sx.Object {
	var topics sx.ListBuilder
	topics.Add(symUL)
	for _, topic := range rt.col.Topics() {
		title := corpus.TopicTitle(topic)
		topics.Add(sx.MakeList(symLI,
			sx.MakeList(shtml.SymA,
				attrList(sx.Cons(shtml.SymAttrHref, sx.MakeString("/topic/"+titleToURL(title)+"/"))),
				sx.MakeString(title))))
	}
	return []sx.Object{
		sx.MakeList(shtml.SymH1, sx.MakeString("Fungrim")),
		sx.MakeList(symP, sx.MakeString("The mathematical functions grimoire.")),
		sx.MakeList(symH2, sx.MakeString("Topics")),
		topics.List(),
	}
}

func (rt *httpRouter) topicPage(topic *expr.Expr) []sx.Object {
	objs := []sx.Object{
		sx.MakeList(shtml.SymH1, sx.MakeString(corpus.TopicTitle(topic))),
	}
	for _, arg := range topic.Args() {
		switch {
		case arg.HeadIs("Section"):
			objs = append(objs, sx.MakeList(symH2, sx.MakeString(arg.Args()[0].TextValue())))
		case arg.HeadIs("Entries"):
			for _, id := range arg.Args() {
				entry, ok := rt.col.EntryByID(id.TextValue())
				if !ok {
					logging.LogTrace(rt.log, "topic references unknown entry", "id", id.TextValue())
					continue
				}
				objs = append(objs, rt.html.EntryHTML(entry, false, false))
			}
		case arg.HeadIs("SeeTopics"):
			var see sx.ListBuilder
			see.Add(symUL)
			for _, t := range arg.Args() {
				title := t.TextValue()
				see.Add(sx.MakeList(symLI,
					sx.MakeList(shtml.SymA,
						attrList(sx.Cons(shtml.SymAttrHref, sx.MakeString("/topic/"+titleToURL(title)+"/"))),
						sx.MakeString(title))))
			}
			objs = append(objs, sx.MakeList(symH2, sx.MakeString("See also")), see.List())
		case arg.HeadIs("DefinitionsTable"):
			objs = append(objs, rt.html.DefinitionsTable(rt.col.Table().DescribedSymbols(), false))
		}
	}
	return objs
}

func (rt *httpRouter) entryPage(entry *expr.Expr) []sx.Object {
	return []sx.Object{
		sx.MakeList(shtml.SymH1, sx.MakeString("Fungrim entry: "+encoder.EntryID(entry))),
		rt.html.EntryHTML(entry, true, false),
	}
}

func (rt *httpRouter) symbolPage(sym *expr.Expr) []sx.Object {
	descr := rt.col.Table().DescriptionOf(sym)
	objs := []sx.Object{
		sx.MakeList(shtml.SymH1, sx.MakeString("Fungrim symbol: "+sym.Name())),
		sx.MakeList(symP, sx.MakeString(descr.Text)),
		rt.html.DefinitionsTable([]*expr.Expr{sym}, false),
	}
	if descr.Long != nil {
		objs = append(objs, rt.html.HTML(descr.Long, true))
	}
	if descr.DomainTable != "" {
		if entry, ok := rt.col.EntryByID(descr.DomainTable); ok {
			objs = append(objs, sx.MakeList(symH2, sx.MakeString("Domain")))
			objs = append(objs, rt.html.EntryHTML(entry, false, false))
		}
	}
	return objs
}
