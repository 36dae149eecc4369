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

// Package cmd provides the commands to call Fungrim from the command line.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/mhogrefe/fungrim/internal/corpus"
	"github.com/mhogrefe/fungrim/internal/logging"
	"github.com/mhogrefe/fungrim/internal/symtab"
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(*flag.FlagSet) (int, error) {
			fmt.Println("Available commands:")
			for _, name := range List() {
				fmt.Printf("- %q\n", name)
			}
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name:   "version",
		Func:   func(*flag.FlagSet) (int, error) { return 0, nil },
		Header: true,
	})
	RegisterCommand(Command{
		Name:     "render",
		Func:     cmdRender,
		SetFlags: flgRender,
	})
	RegisterCommand(Command{
		Name:     "run",
		Func:     runFunc,
		Header:   true,
		SetFlags: flgRun,
	})
}

var progInfo = struct {
	name    string
	version string
	time    time.Time
}{name: "Fungrim"}

func executeCommand(name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	logger := createLogger(fs)
	slog.SetDefault(logger)
	if command.Header {
		logging.LogMandatory(logger, progInfo.name,
			"version", progInfo.version, "build-time", progInfo.time)
	}
	exitCode, err := command.Func(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

func createLogger(fs *flag.FlagSet) *slog.Logger {
	level := slog.LevelInfo
	if flg := fs.Lookup("l"); flg != nil {
		if lvl := logging.ParseLevel(flg.Value.String()); lvl != logging.LevelMissing {
			level = lvl
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setupCorpus builds the symbol table and loads the formula collection.
func setupCorpus() *corpus.Collection {
	return corpus.Load(symtab.Builtin())
}

// Main is the real entrypoint of Fungrim.
func Main(progName, buildVersion string) int {
	info := retrieveVCSInfo(buildVersion)
	fullVersion := info.revision
	if info.dirty {
		fullVersion += "-dirty"
	}
	progInfo.name = progName
	progInfo.version = fullVersion
	progInfo.time = info.time
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return executeCommand("run")
	}
	return executeCommand(args[0], args[1:]...)
}

type vcsInfo struct {
	revision string
	dirty    bool
	time     time.Time
}

func retrieveVCSInfo(version string) vcsInfo {
	buildTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsInfo{revision: version, dirty: false, time: buildTime}
	}
	result := vcsInfo{revision: version, time: buildTime}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			revision := "+" + kv.Value
			if len(revision) > 11 {
				revision = revision[:11]
			}
			result.revision = version + revision
		case "vcs.modified":
			if kv.Value == "true" {
				result.dirty = true
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, kv.Value); err == nil {
				result.time = t
			}
		}
	}
	return result
}
