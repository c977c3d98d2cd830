// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/passwdgen/passwdgen/internal/protocol"
)

// fakeResponder binds a loopback UDP socket and answers each datagram with
// a canned reply built by respond. A nil reply means "do not answer".
func fakeResponder(t *testing.T, respond func(req []byte) []byte) (port int) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("binding fake responder: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	go func() {
		buf := make([]byte, protocol.RequestSize)
		for {
			n, peer, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			if reply := respond(buf[:n]); reply != nil {
				conn.WriteToUDP(reply, peer)
			}
		}
	}()

	return conn.LocalAddr().(*net.UDPAddr).Port
}

func TestRequest_RoundTrip(t *testing.T) {
	seenCh := make(chan protocol.Request, 1)
	port := fakeResponder(t, func(req []byte) []byte {
		decoded, err := protocol.DecodeRequest(req)
		if err != nil {
			t.Errorf("responder got malformed request: %v", err)
			return nil
		}
		seenCh <- decoded
		reply, _ := protocol.EncodeResponse("v3ry-s3cret")
		return reply
	})

	c := New("127.0.0.1", port, 2*time.Second)
	pw, err := c.Request(context.Background(), 's', "12")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if pw != "v3ry-s3cret" {
		t.Errorf("got password %q", pw)
	}
	seen := <-seenCh
	if seen.Category != 's' || seen.Length != "12" {
		t.Errorf("request arrived as %+v", seen)
	}
}

func TestRequest_EmptyReplyMeansRejected(t *testing.T) {
	port := fakeResponder(t, func([]byte) []byte {
		reply, _ := protocol.EncodeResponse("")
		return reply
	})

	c := New("127.0.0.1", port, 2*time.Second)
	if _, err := c.Request(context.Background(), 'x', "8"); !errors.Is(err, ErrRejected) {
		t.Errorf("want ErrRejected, got %v", err)
	}
}

func TestRequest_MalformedReply(t *testing.T) {
	port := fakeResponder(t, func([]byte) []byte {
		// An unterminated password field.
		return []byte("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	})

	c := New("127.0.0.1", port, 2*time.Second)
	if _, err := c.Request(context.Background(), 'n', "8"); !errors.Is(err, protocol.ErrMalformedMessage) {
		t.Errorf("want ErrMalformedMessage, got %v", err)
	}
}

func TestRequest_TimesOutWithoutReply(t *testing.T) {
	port := fakeResponder(t, func([]byte) []byte { return nil })

	c := New("127.0.0.1", port, 100*time.Millisecond)
	start := time.Now()
	_, err := c.Request(context.Background(), 'n', "8")
	if err == nil {
		t.Fatal("expected a deadline error")
	}
	var nerr net.Error
	if !errors.As(err, &nerr) || !nerr.Timeout() {
		t.Errorf("want a timeout error, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout took far longer than the configured deadline")
	}
}

func TestRequest_ContextDeadlineWins(t *testing.T) {
	port := fakeResponder(t, func([]byte) []byte { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New("127.0.0.1", port, 10*time.Second)
	start := time.Now()
	_, err := c.Request(ctx, 'n', "8")
	if err == nil {
		t.Fatal("expected a deadline error")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("context deadline was not applied")
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New("127.0.0.1", 8080, 0)
	if c.timeout != DefaultTimeout {
		t.Errorf("zero timeout should select the default, got %v", c.timeout)
	}
	if c.Addr() != "127.0.0.1:8080" {
		t.Errorf("unexpected address %q", c.Addr())
	}
}
