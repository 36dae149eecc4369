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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mhogrefe/fungrim/internal/corpus"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

func newTestRouter() *httpRouter {
	rt := &httpRouter{}
	rt.initializeRouter(routerData{
		log: slog.New(slog.DiscardHandler),
		col: corpus.Load(symtab.Builtin()),
	})
	return rt
}

func TestRouter(t *testing.T) {
	rt := newTestRouter()
	var testcases = []struct {
		name        string
		path        string
		status      int
		contentType string
		contains    []string
	}{
		{name: "home", path: "/", status: http.StatusOK,
			contentType: "text/html; charset=utf-8",
			contains:    []string{"Fungrim", "/topic/Gamma_function/"}},
		{name: "topic", path: "/topic/Gamma_function/", status: http.StatusOK,
			contentType: "text/html; charset=utf-8",
			contains:    []string{"Particular values", "/entry/f1d31a/"}},
		{name: "unknown topic", path: "/topic/No_such_topic/", status: http.StatusNotFound},
		{name: "entry", path: "/entry/f1d31a/", status: http.StatusOK,
			contentType: "text/html; charset=utf-8",
			contains:    []string{"Fungrim entry: f1d31a", "Source code for this entry:"}},
		{name: "unknown entry", path: "/entry/000000/", status: http.StatusNotFound},
		{name: "entry source", path: "/entry/f1d31a/src", status: http.StatusOK,
			contentType: "text/plain; charset=utf-8",
			contains:    []string{`Entry(ID("f1d31a")`}},
		{name: "entry tex", path: "/entry/f1d31a/tex", status: http.StatusOK,
			contentType: "text/plain; charset=utf-8",
			contains:    []string{`\Gamma`}},
		{name: "symbol", path: "/symbol/GammaFunction/", status: http.StatusOK,
			contentType: "text/html; charset=utf-8",
			contains:    []string{"Fungrim symbol: GammaFunction", "Gamma function"}},
		{name: "undescribed symbol", path: "/symbol/Tuple/", status: http.StatusNotFound},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			resp := w.Result()
			if resp.StatusCode != tc.status {
				t.Fatalf("GET %s = %d, expected %d", tc.path, resp.StatusCode, tc.status)
			}
			if tc.contentType != "" {
				if got := resp.Header.Get("Content-Type"); got != tc.contentType {
					t.Errorf("content type %q, expected %q", got, tc.contentType)
				}
			}
			body := w.Body.String()
			for _, want := range tc.contains {
				if !strings.Contains(body, want) {
					t.Errorf("GET %s misses %q", tc.path, want)
				}
			}
		})
	}
}

func TestTitleURLMapping(t *testing.T) {
	var testcases = []struct {
		title   string
		segment string
	}{
		{title: "Gamma function", segment: "Gamma_function"},
		{title: "One", segment: "One"},
		{title: "A B C", segment: "A_B_C"},
	}
	for _, tc := range testcases {
		t.Run(tc.title, func(t *testing.T) {
			if got := titleToURL(tc.title); got != tc.segment {
				t.Errorf("titleToURL = %q, expected %q", got, tc.segment)
			}
			if got := titleFromURL(tc.segment); got != tc.title {
				t.Errorf("titleFromURL = %q, expected %q", got, tc.title)
			}
		})
	}
}
