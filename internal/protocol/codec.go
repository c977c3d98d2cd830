// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// Package protocol defines the byte-exact layout of the two datagrams
// exchanged between requester and responder. The encoding is fixed-layout
// ASCII: no binary integers, no endianness, every variable-length field
// NUL-terminated inside a fixed capacity.
package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Wire layout constants. The request carries a single category byte
// followed by the length as a NUL-terminated ASCII digit string in a
// deliberately generous 1024-byte field: oversized or malformed input
// arrives intact instead of corrupting the framing. The response carries
// only the password, 32 usable characters plus terminator.
const (
	LengthFieldSize   = 1024
	RequestSize       = 1 + LengthFieldSize
	PasswordFieldSize = 33
	MaxPasswordLen    = PasswordFieldSize - 1
)

// ErrMalformedMessage marks a datagram whose terminator is absent within
// the fixed field capacity (or which is too short to carry its fields).
// Such datagrams are rejected before any out-of-bounds read can happen.
var ErrMalformedMessage = errors.New("malformed message")

// Request is one password request as it travels on the wire. Length stays
// a string until validation explicitly parses it.
type Request struct {
	Category byte
	Length   string
}

// EncodeRequest lays out a request datagram of exactly RequestSize bytes.
// Unused field bytes are zeroed, which also writes the terminator. The
// length string must fit the field with its terminator and must not itself
// contain a NUL, since that would silently truncate it on decode.
func EncodeRequest(r Request) ([]byte, error) {
	if len(r.Length) >= LengthFieldSize {
		return nil, fmt.Errorf("length field overflow: %d bytes", len(r.Length))
	}
	if strings.IndexByte(r.Length, 0) >= 0 {
		return nil, fmt.Errorf("length string contains a NUL byte")
	}
	buf := make([]byte, RequestSize)
	buf[0] = r.Category
	copy(buf[1:], r.Length)
	return buf, nil
}

// DecodeRequest parses a received datagram of any size. The length field is
// truncated at its first terminator; reading never runs past the received
// byte count nor past the fixed field capacity, whatever the peer sent.
func DecodeRequest(data []byte) (Request, error) {
	if len(data) < 2 {
		return Request{}, fmt.Errorf("%w: request too short (%d bytes)", ErrMalformedMessage, len(data))
	}
	field := data[1:]
	if len(field) > LengthFieldSize {
		field = field[:LengthFieldSize]
	}
	end := bytes.IndexByte(field, 0)
	if end < 0 {
		return Request{}, fmt.Errorf("%w: length field is not terminated", ErrMalformedMessage)
	}
	return Request{Category: data[0], Length: string(field[:end])}, nil
}

// EncodeResponse lays out a response datagram of exactly PasswordFieldSize
// bytes. An empty password is a valid encoding; the responder uses it to
// signal a rejected request.
func EncodeResponse(password string) ([]byte, error) {
	if len(password) > MaxPasswordLen {
		return nil, fmt.Errorf("password overflows response field: %d bytes", len(password))
	}
	if strings.IndexByte(password, 0) >= 0 {
		return nil, fmt.Errorf("password contains a NUL byte")
	}
	buf := make([]byte, PasswordFieldSize)
	copy(buf, password)
	return buf, nil
}

// DecodeResponse extracts the password from a received datagram, truncating
// at the first terminator and rejecting unterminated fields.
func DecodeResponse(data []byte) (string, error) {
	if len(data) < 1 {
		return "", fmt.Errorf("%w: empty response", ErrMalformedMessage)
	}
	field := data
	if len(field) > PasswordFieldSize {
		field = field[:PasswordFieldSize]
	}
	end := bytes.IndexByte(field, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: password field is not terminated", ErrMalformedMessage)
	}
	return string(field[:end]), nil
}
