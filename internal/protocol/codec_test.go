// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	in := Request{Category: 'n', Length: "8"}
	data, err := EncodeRequest(in)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	if len(data) != RequestSize {
		t.Fatalf("request datagram is %d bytes, want %d", len(data), RequestSize)
	}
	if data[0] != 'n' || data[1] != '8' || data[2] != 0 {
		t.Errorf("unexpected layout: % x", data[:3])
	}

	out, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed the request: %+v -> %+v", in, out)
	}
}

func TestEncodeRequest_Bounds(t *testing.T) {
	// The longest encodable length string is LengthFieldSize-1 bytes; the
	// final byte belongs to the terminator.
	longest := strings.Repeat("9", LengthFieldSize-1)
	data, err := EncodeRequest(Request{Category: 'n', Length: longest})
	if err != nil {
		t.Fatalf("EncodeRequest at capacity failed: %v", err)
	}
	if data[RequestSize-1] != 0 {
		t.Error("terminator missing at field end")
	}

	if _, err := EncodeRequest(Request{Category: 'n', Length: strings.Repeat("9", LengthFieldSize)}); err == nil {
		t.Error("length string filling the whole field leaves no room for the terminator")
	}
	if _, err := EncodeRequest(Request{Category: 'n', Length: "1\x002"}); err == nil {
		t.Error("embedded NUL would truncate on decode and must be refused")
	}
}

func TestDecodeRequest_TruncatesAtFirstTerminator(t *testing.T) {
	data := make([]byte, RequestSize)
	data[0] = 's'
	copy(data[1:], "12\x00garbage-after-terminator")

	out, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if out.Length != "12" {
		t.Errorf("got length %q, want %q", out.Length, "12")
	}
}

func TestDecodeRequest_ShortDatagram(t *testing.T) {
	// Datagrams shorter than the fixed layout still decode as long as the
	// field is terminated within the received bytes.
	out, err := DecodeRequest([]byte{'a', '1', '0', 0})
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if out.Category != 'a' || out.Length != "10" {
		t.Errorf("unexpected request: %+v", out)
	}
}

func TestDecodeRequest_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"category only", []byte{'n'}},
		{"unterminated", []byte{'n', '8', '8'}},
		{"unterminated at capacity", append([]byte{'n'}, bytes.Repeat([]byte{'9'}, LengthFieldSize)...)},
		{"terminator beyond capacity", append(append([]byte{'n'}, bytes.Repeat([]byte{'9'}, LengthFieldSize)...), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeRequest(tt.data); !errors.Is(err, ErrMalformedMessage) {
				t.Errorf("want ErrMalformedMessage, got %v", err)
			}
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	data, err := EncodeResponse("s3cr3t!pass")
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	if len(data) != PasswordFieldSize {
		t.Fatalf("response datagram is %d bytes, want %d", len(data), PasswordFieldSize)
	}

	pw, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if pw != "s3cr3t!pass" {
		t.Errorf("round trip changed the password: %q", pw)
	}
}

func TestEncodeResponse_Bounds(t *testing.T) {
	// 32 characters fit; 33 leave no room for the terminator.
	if _, err := EncodeResponse(strings.Repeat("x", MaxPasswordLen)); err != nil {
		t.Errorf("EncodeResponse at capacity failed: %v", err)
	}
	if _, err := EncodeResponse(strings.Repeat("x", MaxPasswordLen+1)); err == nil {
		t.Error("oversized password must be refused")
	}
}

func TestEncodeResponse_EmptySignalsRejection(t *testing.T) {
	data, err := EncodeResponse("")
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	pw, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if pw != "" {
		t.Errorf("expected empty password, got %q", pw)
	}
}

func TestDecodeResponse_Malformed(t *testing.T) {
	if _, err := DecodeResponse(nil); !errors.Is(err, ErrMalformedMessage) {
		t.Errorf("empty datagram: want ErrMalformedMessage, got %v", err)
	}
	unterminated := bytes.Repeat([]byte{'x'}, PasswordFieldSize)
	if _, err := DecodeResponse(unterminated); !errors.Is(err, ErrMalformedMessage) {
		t.Errorf("unterminated field: want ErrMalformedMessage, got %v", err)
	}
	// An oversized datagram whose only terminator sits beyond the field
	// capacity must not be read past the field.
	oversized := append(bytes.Repeat([]byte{'x'}, PasswordFieldSize+8), 0)
	if _, err := DecodeResponse(oversized); !errors.Is(err, ErrMalformedMessage) {
		t.Errorf("oversized field: want ErrMalformedMessage, got %v", err)
	}
}
