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
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"t73f.de/r/webs/middleware"
	"t73f.de/r/webs/middleware/logging"
	"t73f.de/r/webs/middleware/reqid"

	"github.com/mhogrefe/fungrim/internal/corpus"
)

type webServer struct {
	log        *slog.Logger
	httpServer httpServer
}

// ConfigData contains the data needed to configure a server.
type ConfigData struct {
	Log        *slog.Logger
	ListenAddr string
	Collection *corpus.Collection
}

// New creates a new web server.
func New(sd ConfigData) Server {
	srv := webServer{log: sd.Log}

	var router httpRouter
	router.initializeRouter(routerData{log: sd.Log, col: sd.Collection})

	mwReqID := reqid.Config{WithContext: true}
	mwLogReq := logging.ReqConfig{
		Logger: sd.Log, Level: slog.LevelDebug,
		Message: "ServeHTTP", WithRequestID: true, WithRemote: true, WithHeaders: true}
	mwLogResp := logging.RespConfig{Logger: sd.Log, Level: slog.LevelDebug,
		Message: "/ServeHTTP", WithRequestID: true}
	mw := middleware.NewChain(mwReqID.Build(), mwLogReq.Build(), mwLogResp.Build())

	srv.httpServer.initializeHTTPServer(sd.ListenAddr, middleware.Apply(mw, &router))
	return &srv
}

func (srv *webServer) Run() error { return srv.httpServer.run() }
func (srv *webServer) Stop()      { srv.httpServer.stop() }

// Server timeout values
const shutdownTimeout = 5 * time.Second

// httpServer is an HTTP server.
type httpServer struct {
	http.Server
}

// initializeHTTPServer creates a new HTTP server object.
func (srv *httpServer) initializeHTTPServer(addr string, handler http.Handler) {
	if addr == "" {
		addr = ":http"
	}
	srv.Server = http.Server{
		Addr:    addr,
		Handler: handler,
	}
}

// run the web server until it is stopped.
func (srv *httpServer) run() error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	if err = srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// stop the web server.
func (srv *httpServer) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_ = srv.Shutdown(ctx)
}
