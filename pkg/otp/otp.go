package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Algorithm selects the hash function underlying the HMAC computation.
type Algorithm int

const (
	// AlgorithmSHA1 uses HMAC-SHA1, the RFC 4226 construction and the only
	// one universally supported by authenticator apps.
	AlgorithmSHA1 Algorithm = iota
	// AlgorithmSHA256 uses HMAC-SHA256.
	AlgorithmSHA256
	// AlgorithmSHA512 uses HMAC-SHA512.
	AlgorithmSHA512
)

// Digits is the width of a formatted code.
type Digits int

const (
	// DigitsSix is the width most authenticator apps display.
	DigitsSix Digits = 6
	// DigitsEight is the width used by the RFC 6238 test vectors.
	DigitsEight Digits = 8
)

// MaxDigits is the widest supported code. The truncated value is 31 bits,
// at most 2147483647, so a 10-digit code never reaches the top of its
// decimal range; anything wider would only ever add leading zeros and is
// rejected. Widths up to 9 cover their full range.
const MaxDigits = 10

// Common errors returned by the hotp and totp packages.
var (
	// ErrUnknownAlgorithm indicates an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("otp: unknown hash algorithm")
	// ErrInvalidDigits indicates a code width outside [1, MaxDigits].
	ErrInvalidDigits = errors.New("otp: digits out of range")
)

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return true
	}
	return false
}

// String returns the conventional upper-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSHA1:
		return "SHA1"
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Hash returns a fresh hash.Hash for the algorithm. The bound method value
// is the constructor handed to hmac.New.
//
// Hash panics for values outside the supported set; the hotp and totp entry
// points validate with Valid first, so reaching the panic requires calling
// Hash directly with a value that was never an Algorithm constant.
func (a Algorithm) Hash() hash.Hash {
	switch a {
	case AlgorithmSHA1:
		return sha1.New()
	case AlgorithmSHA256:
		return sha256.New()
	case AlgorithmSHA512:
		return sha512.New()
	}
	panic("otp: unknown hash algorithm")
}

// Size returns the digest length of the algorithm in bytes.
func (a Algorithm) Size() int {
	switch a {
	case AlgorithmSHA1:
		return sha1.Size
	case AlgorithmSHA256:
		return sha256.Size
	case AlgorithmSHA512:
		return sha512.Size
	}
	panic("otp: unknown hash algorithm")
}

// ParseAlgorithm converts a name such as "SHA1" or "sha-256" into an
// Algorithm. It returns ErrUnknownAlgorithm for anything outside the
// supported set.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "-", "")) {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Valid reports whether d is within [1, MaxDigits].
func (d Digits) Valid() bool {
	return d >= 1 && d <= MaxDigits
}

// Length returns the number of characters in a formatted code.
func (d Digits) Length() int {
	return int(d)
}

// String implements fmt.Stringer.
func (d Digits) String() string {
	return fmt.Sprintf("%d", int(d))
}

// Format reduces a truncated value modulo 10^d and renders it as a decimal
// string, left-padded with '0' to exactly d characters.
func (d Digits) Format(v uint32) string {
	f := fmt.Sprintf("%%0%dd", int(d))
	return fmt.Sprintf(f, uint64(v)%pow10(int(d)))
}

// pow10 returns 10^n as a uint64. n never exceeds MaxDigits, so the result
// fits with room to spare.
func pow10(n int) uint64 {
	out := uint64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

// Truncate applies the dynamic truncation of RFC 4226 section 5.3: the low
// nibble of the final digest byte selects a 4-byte window, which is read as
// a big-endian integer with the sign bit cleared.
//
// sum must be at least 20 bytes, the digest length of the smallest supported
// algorithm; the window then never runs past the end, because the offset is
// at most 15.
func Truncate(sum []byte) uint32 {
	offset := sum[len(sum)-1] & 0x0f
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
}
