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

// Package server provides the Fungrim web service: browsable topic,
// entry and symbol pages rendered from the formula collection.
package server

// Server is the web server for browsing the formula collection via HTTP.
type Server interface {
	// Run starts the web server and blocks until it is stopped.
	Run() error

	// Stop shuts the web server down.
	Stop()
}
