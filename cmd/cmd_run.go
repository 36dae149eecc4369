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

package cmd

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mhogrefe/fungrim/internal/web/server"
)

// ---------- Subcommand: run -------------------------------------------------

func flgRun(fs *flag.FlagSet) {
	fs.String("a", "127.0.0.1:23123", "listen address")
}

// runFunc serves the formula collection over HTTP until interrupted.
func runFunc(fs *flag.FlagSet) (int, error) {
	addr := fs.Lookup("a").Value.String()
	log := slog.Default()
	srv := server.New(server.ConfigData{
		Log:        log,
		ListenAddr: addr,
		Collection: setupCorpus(),
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		srv.Stop()
	}()

	log.Info("Start server", "listen", addr)
	if err := srv.Run(); err != nil {
		return 1, err
	}
	return 0, nil
}
