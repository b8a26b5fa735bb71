// Package hotp implements HMAC-based one-time passwords (RFC 4226) over an
// explicit counter value.
package hotp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/jhahn/go-otp/pkg/otp"
)

// GenerateCode computes the HOTP code for a single counter value.
//
// The secret is used as the HMAC key exactly as supplied. RFC 4226
// recommends keys at least as long as the hash output, but no length is
// enforced: HMAC accepts arbitrary-length keys. The counter is consumed as
// 8 big-endian bytes.
func GenerateCode(algo otp.Algorithm, secret []byte, counter uint64, digits otp.Digits) (string, error) {
	if !algo.Valid() {
		return "", fmt.Errorf("%w: %s", otp.ErrUnknownAlgorithm, algo)
	}
	if !digits.Valid() {
		return "", fmt.Errorf("%w: %d", otp.ErrInvalidDigits, int(digits))
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)

	mac := hmac.New(algo.Hash, secret)
	mac.Write(buf[:])

	return digits.Format(otp.Truncate(mac.Sum(nil))), nil
}

// Validate reports whether passcode matches the code for the given counter.
// The comparison is constant-time.
//
// Only the exact counter is checked: look-ahead windows and counter
// resynchronization are verification policy and belong to the caller. A
// passcode of the wrong length or content yields (false, nil); only
// configuration problems produce an error.
func Validate(algo otp.Algorithm, passcode string, secret []byte, counter uint64, digits otp.Digits) (bool, error) {
	expected, err := GenerateCode(algo, secret, counter, digits)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(passcode), []byte(expected)) == 1, nil
}
