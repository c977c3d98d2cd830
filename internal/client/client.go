// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// Package client implements the requester side of one exchange: encode a
// request, send one datagram, wait for one reply under a deadline, decode
// it. The transport is fire-and-forget; a lost request or reply surfaces
// as a deadline error, never as a retry.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/passwdgen/passwdgen/internal/protocol"
)

// DefaultTimeout bounds the wait for a reply when the configuration does
// not say otherwise.
const DefaultTimeout = 5 * time.Second

// ErrRejected means the responder answered with an empty password field:
// the request was well-formed on the wire but failed validation on the
// responder side.
var ErrRejected = errors.New("request rejected by server")

// Client performs request/response exchanges against one responder. It is
// stateless across exchanges; each Request dials a fresh socket.
type Client struct {
	addr    string
	timeout time.Duration
}

// New returns a client for the responder at host:port. A non-positive
// timeout selects DefaultTimeout.
func New(host string, port int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		timeout: timeout,
	}
}

// Addr returns the responder address this client talks to.
func (c *Client) Addr() string {
	return c.addr
}

// Request sends one password request and blocks for the single reply. The
// category and length are sent as-is; callers validate them first so that
// a rejection here always means the responder said no. The deadline is the
// earlier of the client timeout and the context deadline.
func (c *Client) Request(ctx context.Context, category byte, length string) (string, error) {
	payload, err := protocol.EncodeRequest(protocol.Request{Category: category, Length: length})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	conn, err := net.Dial("udp", c.addr)
	if err != nil {
		return "", fmt.Errorf("dialing %s: %w", c.addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("setting deadline: %w", err)
	}

	if _, err := conn.Write(payload); err != nil {
		return "", fmt.Errorf("sending request to %s: %w", c.addr, err)
	}

	// One datagram, read whole. The buffer is larger than the response so
	// an oversized reply is visible to the codec instead of silently cut.
	buf := make([]byte, 2*protocol.PasswordFieldSize)
	n, err := conn.Read(buf)
	if err != nil {
		return "", fmt.Errorf("awaiting reply from %s: %w", c.addr, err)
	}

	pw, err := protocol.DecodeResponse(buf[:n])
	if err != nil {
		return "", err
	}
	if pw == "" {
		return "", ErrRejected
	}
	return pw, nil
}
