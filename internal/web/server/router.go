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

import (
	"log/slog"
	"net/http"

	"github.com/mhogrefe/fungrim/internal/corpus"
	"github.com/mhogrefe/fungrim/internal/encoder"
	"github.com/mhogrefe/fungrim/internal/logging"
)

// httpRouter handles all routing for the formula pages.
type httpRouter struct {
	log  *slog.Logger
	col  *corpus.Collection
	html *encoder.HTMLEncoder
	src  encoder.Encoder
	tex  encoder.Encoder
	mux  *http.ServeMux
}

type routerData struct {
	log *slog.Logger
	col *corpus.Collection
}

// initializeRouter creates a new router for the collection pages.
func (rt *httpRouter) initializeRouter(rd routerData) {
	rt.log = rd.log
	rt.col = rd.col
	params := encoder.CreateParameter{
		Table:     rd.col.Table(),
		EntryDir:  "/entry/",
		SymbolDir: "/symbol/",
		ImgDir:    "/img/",
	}
	rt.html = encoder.NewHTML(&params)
	rt.src = encoder.Create(encoder.EncodingSource, &params)
	rt.tex = encoder.Create(encoder.EncodingLaTeX, &params)

	rt.mux = http.NewServeMux()
	rt.mux.HandleFunc("GET /{$}", rt.handleHome)
	rt.mux.HandleFunc("GET /topic/{title}/", rt.handleTopic)
	rt.mux.HandleFunc("GET /entry/{id}/", rt.handleEntry)
	rt.mux.HandleFunc("GET /entry/{id}/src", rt.handleEntrySource)
	rt.mux.HandleFunc("GET /entry/{id}/tex", rt.handleEntryTeX)
	rt.mux.HandleFunc("GET /symbol/{name}/", rt.handleSymbol)
}

func (rt *httpRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

func (rt *httpRouter) handleHome(w http.ResponseWriter, r *http.Request) {
	rt.writePage(w, "Fungrim", rt.homePage())
}

func (rt *httpRouter) handleTopic(w http.ResponseWriter, r *http.Request) {
	title := titleFromURL(r.PathValue("title"))
	topic, ok := rt.col.TopicByTitle(title)
	if !ok {
		http.NotFound(w, r)
		return
	}
	rt.writePage(w, title, rt.topicPage(topic))
}

func (rt *httpRouter) handleEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := rt.col.EntryByID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	rt.writePage(w, "Entry "+encoder.EntryID(entry), rt.entryPage(entry))
}

func (rt *httpRouter) handleEntrySource(w http.ResponseWriter, r *http.Request) {
	rt.handleEntryText(w, r, rt.src)
}

func (rt *httpRouter) handleEntryTeX(w http.ResponseWriter, r *http.Request) {
	rt.handleEntryText(w, r, rt.tex)
}

func (rt *httpRouter) handleEntryText(w http.ResponseWriter, r *http.Request, enc encoder.Encoder) {
	entry, ok := rt.col.EntryByID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := enc.WriteEntry(w, entry); err != nil {
		logging.LogTrace(rt.log, "write entry text", "err", err)
	}
}

func (rt *httpRouter) handleSymbol(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	sym := rt.col.Table().Symbol(name)
	if rt.col.Table().DescriptionOf(sym) == nil {
		http.NotFound(w, r)
		return
	}
	rt.writePage(w, name, rt.symbolPage(sym))
}
