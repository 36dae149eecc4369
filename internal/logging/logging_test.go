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

package logging_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/mhogrefe/fungrim/internal/logging"
)

func TestParseLevel(t *testing.T) {
	var testcases = []struct {
		text string
		exp  slog.Level
	}{
		{text: "trace", exp: logging.LevelTrace},
		{text: "TR", exp: logging.LevelTrace},
		{text: "debug", exp: slog.LevelDebug},
		{text: "Info", exp: slog.LevelInfo},
		{text: "warn", exp: slog.LevelWarn},
		{text: "ERROR", exp: slog.LevelError},
		{text: "", exp: logging.LevelMissing},
		{text: "verbose", exp: logging.LevelMissing},
	}
	for _, tc := range testcases {
		t.Run(tc.text, func(t *testing.T) {
			if got := logging.ParseLevel(tc.text); got != tc.exp {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tc.text, got, tc.exp)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if got := logging.LevelString(logging.LevelTrace); got != "TRACE" {
		t.Errorf("LevelString(trace) = %q", got)
	}
	if got := logging.LevelString(logging.LevelMandatory); got != ">>>>>" {
		t.Errorf("LevelString(mandatory) = %q", got)
	}
	if got := logging.LevelStringPad(slog.LevelInfo); got != "INFO " {
		t.Errorf("LevelStringPad(info) = %q", got)
	}
}

func TestErr(t *testing.T) {
	if got := logging.Err(nil); !got.Equal(slog.Attr{}) {
		t.Errorf("Err(nil) = %v, expected empty attribute", got)
	}
	err := errors.New("boom")
	if got := logging.Err(err); got.Key != "err" {
		t.Errorf("Err(err) key = %q", got.Key)
	}
}
