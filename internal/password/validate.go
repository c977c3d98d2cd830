// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation failures are ordinary values, never panics. Callers inspect
// them with errors.Is and re-prompt or re-send as they see fit.
var (
	ErrInvalidCategory = errors.New("invalid password category")
	ErrInvalidLength   = errors.New("invalid password length")
)

// maxLengthDigits bounds the significant digit count accepted before
// parsing. Anything longer cannot be in range anyway, and rejecting it up
// front guarantees an oversized digit string can never wrap around into a
// value that would pass the range check.
const maxLengthDigits = 9

// TypeAllowed reports whether code appears in the caller-supplied set of
// allowed category codes. The comparison is case-sensitive; case folding
// for control codes like 'q' is the session loop's business.
func TypeAllowed(allowed string, code byte) bool {
	return strings.IndexByte(allowed, code) >= 0
}

// ParseLength converts a length string from the wire (or from user input)
// into an integer, requiring every character to be a decimal digit and the
// value to lie in [min, max]. Leading zeros are accepted. The empty string,
// non-digit characters and digit strings too long to possibly be in range
// are all rejected with ErrInvalidLength.
func ParseLength(s string, min, max int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty length", ErrInvalidLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLength, s)
		}
	}

	digits := strings.TrimLeft(s, "0")
	if len(digits) > maxLengthDigits {
		return 0, fmt.Errorf("%w: %q is out of range [%d, %d]", ErrInvalidLength, s, min, max)
	}

	n := 0
	if digits != "" {
		var err error
		n, err = strconv.Atoi(digits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidLength, s, err)
		}
	}

	if n < min || n > max {
		return 0, fmt.Errorf("%w: %d is out of range [%d, %d]", ErrInvalidLength, n, min, max)
	}
	return n, nil
}

// LengthInRange is the predicate form of ParseLength.
func LengthInRange(s string, min, max int) bool {
	_, err := ParseLength(s, min, max)
	return err == nil
}
