// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// Package server implements the responder: a loop that receives one
// request datagram at a time, validates it, generates a password and sends
// the single reply. There is no shared state across exchanges; every
// request is self-contained.
package server

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/passwdgen/passwdgen/internal/logging"
	"github.com/passwdgen/passwdgen/internal/password"
	"github.com/passwdgen/passwdgen/internal/protocol"
)

// Config carries the responder settings resolved by the CLI layer.
type Config struct {
	Host string
	Port int
	// RateLimit caps sustained inbound datagrams per second per peer;
	// RateBurst is the allowed burst. A non-positive RateLimit disables
	// the guard.
	RateLimit float64
	RateBurst int
}

// Server is a single-socket responder. One request is handled at a time;
// the protocol is stateless, so nothing is remembered between exchanges.
type Server struct {
	cfg   Config
	gen   *password.Generator
	guard *peerRateGuard
}

// New builds a responder from cfg, drawing entropy from the operating
// system.
func New(cfg Config) *Server {
	s := &Server{
		cfg: cfg,
		gen: password.NewGenerator(nil),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.guard = newPeerRateGuard(cfg.RateLimit, burst)
	}
	return s
}

// ListenAndServe binds the configured UDP address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)))
	if err != nil {
		return fmt.Errorf("resolving listen address: %w", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("binding UDP socket: %w", err)
	}
	return s.Serve(ctx, conn)
}

// Serve runs the responder loop on an already-bound socket until ctx is
// cancelled, then closes the socket. Cancellation is the only clean way
// out; every other receive error is fatal to the session and returned.
func (s *Server) Serve(ctx context.Context, conn *net.UDPConn) error {
	logging.Infof("Server listening on %s", conn.LocalAddr())

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	buf := make([]byte, protocol.RequestSize)
	for {
		n, peer, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				logging.Infof("Server on %s shut down", conn.LocalAddr())
				return nil
			}
			return fmt.Errorf("receiving datagram: %w", err)
		}
		if s.guard != nil && !s.guard.allow(peer.String()) {
			logging.Warnf("Rate limit exceeded for %s; dropping datagram", peer)
			continue
		}
		s.handle(conn, peer, buf[:n])
	}
}

// handle serves one datagram. Malformed datagrams are dropped without a
// reply; well-formed but invalid requests are answered with an empty
// password field, which requesters surface as a rejection.
func (s *Server) handle(conn *net.UDPConn, peer *net.UDPAddr, data []byte) {
	req, err := protocol.DecodeRequest(data)
	if err != nil {
		logging.Warnf("Dropping datagram from %s: %v", peer, err)
		return
	}

	logging.Infof("New request from %s: category=%q length=%q", peer, string(req.Category), req.Length)

	pw, err := s.serve(req)
	if err != nil {
		logging.Warnf("Rejecting request from %s: %v", peer, err)
		pw = ""
	}

	out, err := protocol.EncodeResponse(pw)
	if err != nil {
		logging.Errorf("Encoding reply for %s: %v", peer, err)
		return
	}
	if _, err := conn.WriteToUDP(out, peer); err != nil {
		logging.Errorf("Sending reply to %s: %v", peer, err)
	}
}

// serve maps a decoded request to a password. The category byte is matched
// exactly: unknown or uppercase codes are rejections, never a fallback to
// some default category.
func (s *Server) serve(req protocol.Request) (string, error) {
	cat, err := password.CategoryFromCode(req.Category)
	if err != nil {
		return "", err
	}
	n, err := password.ParseLength(req.Length, password.MinLength, password.MaxLength)
	if err != nil {
		return "", err
	}
	return s.gen.Generate(cat, n)
}
