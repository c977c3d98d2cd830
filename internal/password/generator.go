// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Generator produces passwords from an explicit entropy source. The source
// is owned by the caller: production code passes nil to get
// crypto/rand.Reader, tests pass a seeded deterministic reader. The
// zero-dependency design keeps the generator safe under whatever
// concurrency model the surrounding transport loop adopts, as long as the
// source itself is (crypto/rand.Reader is).
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading entropy from src. A nil src
// selects crypto/rand.Reader.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// Generate returns a password of exactly length characters for the given
// category. Each character is drawn independently and uniformly from the
// category's charset; there is no uniqueness constraint and no guaranteed
// class coverage (a short secure password may contain no symbol). Mixed is
// the one exception to uniformity across the full set: each position is an
// independent fair coin between letter and digit, then uniform within the
// chosen class.
//
// Calling Generate with a category outside the five generation categories
// is a contract violation and fails with ErrInvalidCategory; the validator
// keeps that from happening in normal operation.
func (g *Generator) Generate(c Category, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	buf := make([]byte, length)
	for i := range buf {
		ch, err := g.nextChar(c)
		if err != nil {
			return "", err
		}
		buf[i] = ch
	}
	return string(buf), nil
}

func (g *Generator) nextChar(c Category) (byte, error) {
	switch c {
	case Numeric:
		return g.pick(charsetDigits)
	case Alpha:
		return g.pick(charsetLower)
	case Mixed:
		coin, err := g.index(2)
		if err != nil {
			return 0, err
		}
		if coin == 0 {
			return g.pick(charsetLower)
		}
		return g.pick(charsetDigits)
	case Secure:
		return g.pick(charsetSecure)
	case Unambiguous:
		return g.pick(charsetUnambiguous)
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
}

func (g *Generator) pick(charset string) (byte, error) {
	i, err := g.index(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// index draws a uniform value in [0, n) from the entropy source. Rejection
// sampling keeps the draw uniform for moduli that do not divide 256; every
// charset in this package fits in a single byte.
func (g *Generator) index(n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(g.src, b[:]); err != nil {
			return 0, fmt.Errorf("reading entropy: %w", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}
