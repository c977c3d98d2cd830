// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// Package password implements the password generation core: the five
// generation categories with their character sets, the request validation
// rules, and the generator itself. The package is transport-agnostic and
// performs no I/O beyond reading the entropy source handed to a Generator.
package password

import "fmt"

// Category is one of the five password generation categories. It is a
// closed enumeration: every switch over it in this package matches all
// five values explicitly so that adding a category is a compile-visible
// change rather than a silent default.
type Category int

const (
	// Numeric passwords contain digits only (0-9).
	Numeric Category = iota
	// Alpha passwords contain lowercase letters only (a-z).
	Alpha
	// Mixed passwords combine lowercase letters and digits.
	Mixed
	// Secure passwords draw from lowercase, uppercase, digits and symbols.
	Secure
	// Unambiguous passwords are secure passwords with visually confusable
	// characters removed.
	Unambiguous
)

// Wire codes and length bounds shared by both sides of the protocol.
const (
	// Codes lists the single-character codes of the generation categories,
	// in category order. Matching against it is case-sensitive.
	Codes = "namsu"

	MinLength     = 6
	MaxLength     = 32
	DefaultLength = 8
)

// Character sets per category. The unambiguous set is a fixed table, not
// derived: it is the secure set minus 0 O o, 1 l I i, 2 Z z, 5 S s and 8 B.
const (
	charsetDigits      = "0123456789"
	charsetLower       = "abcdefghijklmnopqrstuvwxyz"
	charsetSecure      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"
	charsetUnambiguous = "abcdefghjkmnpqrtuvwxyACDEFGHJKLMNPQRTUVWXY34679!@#$%^&*()"
)

// CategoryFromCode maps a wire code to its category. Matching is
// case-sensitive: 'N' is not a valid generation code even though the
// surrounding session loop folds case for its own control codes.
func CategoryFromCode(code byte) (Category, error) {
	switch code {
	case 'n':
		return Numeric, nil
	case 'a':
		return Alpha, nil
	case 'm':
		return Mixed, nil
	case 's':
		return Secure, nil
	case 'u':
		return Unambiguous, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, string(code))
}

// Code returns the single-character wire code for the category.
func (c Category) Code() byte {
	switch c {
	case Numeric:
		return 'n'
	case Alpha:
		return 'a'
	case Mixed:
		return 'm'
	case Secure:
		return 's'
	case Unambiguous:
		return 'u'
	}
	return 0
}

// Charset returns the full set of characters a password of this category
// may contain. For Mixed this is the membership set; the generator does
// not draw uniformly across it (see Generator.Generate).
func (c Category) Charset() string {
	switch c {
	case Numeric:
		return charsetDigits
	case Alpha:
		return charsetLower
	case Mixed:
		return charsetLower + charsetDigits
	case Secure:
		return charsetSecure
	case Unambiguous:
		return charsetUnambiguous
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case Alpha:
		return "alphabetic"
	case Mixed:
		return "mixed"
	case Secure:
		return "secure"
	case Unambiguous:
		return "unambiguous"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}
