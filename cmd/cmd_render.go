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
	"fmt"
	"os"

	"github.com/mhogrefe/fungrim/internal/encoder"
)

// ---------- Subcommand: render ----------------------------------------------

func flgRender(fs *flag.FlagSet) {
	fs.String("t", encoder.EncodingLaTeX.String(), "target output encoding")
}

// cmdRender writes entries in the selected encoding to standard output.
// Without arguments all entries are written, otherwise the entries with
// the given ids.
func cmdRender(fs *flag.FlagSet) (int, error) {
	encName := fs.Lookup("t").Value.String()
	enc := encoder.ParseEncoding(encName)
	if enc == encoder.EncodingUnknown {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", encName)
		return 2, nil
	}

	col := setupCorpus()
	encdr := encoder.Create(enc, &encoder.CreateParameter{Table: col.Table()})

	entries := col.Entries()
	if args := fs.Args(); len(args) > 0 {
		entries = entries[:0:0]
		for _, id := range args {
			entry, ok := col.EntryByID(id)
			if !ok {
				return 2, fmt.Errorf("unknown entry %q", id)
			}
			entries = append(entries, entry)
		}
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Println()
		}
		if err := encdr.WriteEntry(os.Stdout, entry); err != nil {
			return 2, err
		}
		fmt.Println()
	}
	return 0, nil
}
