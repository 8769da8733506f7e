// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server runs the TCP accept loop and the per-connection command
// dispatch: ReadingFrame -> ExecutingCommand -> WritingResponse, looping
// back to ReadingFrame until the connection closes.
package server

import (
	"io"
	"net"
	"time"

	"respd/internal/command"
	"respd/internal/metrics"
	"respd/internal/resp"
	"respd/internal/store"
	"respd/pkg/logging"
	"respd/pkg/utils"
)

const readChunkSize = 4096

// Server accepts connections on a single TCP listener and serves each one
// from an independent goroutine against a shared Store.
type Server struct {
	addr  string
	store *store.Store
	stats *metrics.ServerStats
}

// New builds a Server bound to addr, dispatching commands against store.
func New(addr string, st *store.Store) *Server {
	return &Server{addr: addr, store: st, stats: &metrics.Global}
}

// ListenAndServe binds addr and serves connections until the listener
// errors out (including on a deliberate Close from another goroutine).
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	logging.Infof("listening on %s", s.addr)
	for {
		conn, err := ln.Accept()
		if err != nil {
			logging.Errorf("accept() failed due to error: %v", err)
			return err
		}
		s.stats.ConnOpened()
		go s.handleConn(conn)
	}
}

// handleConn drives one connection to completion: every request is fully
// read, executed, and its response fully written before the next read is
// attempted, so responses stay strictly ordered with their requests.
func (s *Server) handleConn(conn net.Conn) {
	remote := conn.RemoteAddr().String()
	defer conn.Close()

	buf := resp.NewBuffer(nil)
	scratch := make([]byte, readChunkSize)

	for {
		frame, err := s.readFrame(conn, buf, scratch)
		if err != nil {
			s.closeConn(remote, err)
			return
		}

		cmd, err := command.Parse(frame)
		if err != nil {
			logging.Warnf("closing connection %s: invalid command: %s", remote, err)
			s.stats.InvalidCommand()
			s.stats.ConnClosed(false)
			return
		}

		start := time.Now()
		reply := cmd.Execute(s.store)
		s.stats.CommandExecuted(cmd.Kind.String(), time.Since(start).Seconds())

		wire := resp.Encode(reply)
		logging.Debugf("%s -> %s", remote, utils.FormatRESPMessage(wire))
		if _, err := conn.Write(wire); err != nil {
			logging.Warnf("closing connection %s: write error: %s", remote, err)
			s.stats.ConnClosed(false)
			return
		}
	}
}

// readFrame pulls bytes off conn until Decode reports a complete frame (or
// a fatal error). Partial reads accumulate in buf across calls; buf is
// compacted after every successful decode so a long-lived pipelined
// connection doesn't grow its buffer without bound.
func (s *Server) readFrame(conn net.Conn, buf *resp.Buffer, scratch []byte) (resp.Frame, error) {
	for {
		frame, err := resp.Decode(buf)
		if err == nil {
			buf.Compact()
			return frame, nil
		}
		if err != resp.ErrNotComplete {
			return resp.Frame{}, err
		}

		n, rerr := conn.Read(scratch)
		if n > 0 {
			buf.Grow(scratch[:n])
		}
		if rerr != nil {
			if n > 0 {
				continue
			}
			return resp.Frame{}, rerr
		}
	}
}

func (s *Server) closeConn(remote string, err error) {
	if err == io.EOF {
		s.stats.ConnClosed(true)
		return
	}
	logging.Warnf("closing connection %s: %s", remote, err)
	s.stats.DecodeError(err.Error())
	s.stats.ConnClosed(false)
}
