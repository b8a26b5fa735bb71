// Package totp implements time-based one-time passwords (RFC 6238) by
// deriving a step counter from a point in time and handing it to the HOTP
// construction.
//
// The package has no clock. Every operation takes the time as an argument,
// so a code is a pure function of (algorithm, secret, time, options) and
// the caller decides where time comes from. GenerateCode and Validate use
// the RFC defaults: 8 digits, a 30-second period, and the Unix epoch. The
// Custom variants accept explicit Options and reject invalid configuration
// with typed errors instead of papering over it with defaults.
package totp

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/jhahn/go-otp/pkg/hotp"
	"github.com/jhahn/go-otp/pkg/otp"
)

const (
	// DefaultPeriod is the RFC 6238 recommended time step of 30 seconds.
	DefaultPeriod = 30
	// DefaultDigits is the code width used by GenerateCode and Validate,
	// matching the RFC 6238 reference vectors.
	DefaultDigits = otp.DigitsEight
)

var (
	// ErrInvalidPeriod indicates a zero-second time step.
	ErrInvalidPeriod = errors.New("totp: period must be at least one second")
	// ErrBeforeEpoch indicates a time earlier than the configured epoch.
	ErrBeforeEpoch = errors.New("totp: time precedes the epoch")
)

// Options carries the tunable parameters of code derivation. Nothing is
// defaulted: a zero Period or an out-of-range Digits is rejected on every
// call.
type Options struct {
	// Digits is the code width, between 1 and otp.MaxDigits.
	Digits otp.Digits
	// Period is the length of one time step in seconds. Must not be zero.
	Period uint
	// Epoch is the Unix time the counter starts from. The zero value is
	// the Unix epoch itself, which is what RFC 6238 and authenticator
	// apps use.
	Epoch int64
}

// Counter maps a point in time onto the 64-bit counter fed to HOTP:
// (t - epoch) / period, rounded down.
//
// Times before the epoch are rejected with ErrBeforeEpoch rather than
// wrapped or saturated; RFC 6238 does not define codes for that region.
func Counter(t time.Time, epoch int64, period uint) (uint64, error) {
	if period == 0 {
		return 0, ErrInvalidPeriod
	}
	ts := t.Unix()
	if ts < epoch {
		return 0, fmt.Errorf("%w: time %d, epoch %d", ErrBeforeEpoch, ts, epoch)
	}
	return uint64(ts-epoch) / uint64(period), nil
}

// GenerateCode produces the 8-digit code for t under the default period
// and epoch.
func GenerateCode(algo otp.Algorithm, secret []byte, t time.Time) (string, error) {
	return GenerateCodeCustom(algo, secret, t, Options{
		Digits: DefaultDigits,
		Period: DefaultPeriod,
	})
}

// GenerateCodeCustom produces the code for t under explicit options.
func GenerateCodeCustom(algo otp.Algorithm, secret []byte, t time.Time, opts Options) (string, error) {
	counter, err := Counter(t, opts.Epoch, opts.Period)
	if err != nil {
		return "", err
	}
	return hotp.GenerateCode(algo, secret, counter, opts.Digits)
}

// Validate reports whether passcode is the 8-digit code for t under the
// default period and epoch. It returns false both for a wrong passcode and
// for a time before the Unix epoch; use ValidateCustom to tell the two
// apart.
func Validate(algo otp.Algorithm, passcode string, secret []byte, t time.Time) bool {
	ok, err := ValidateCustom(algo, passcode, secret, t, Options{
		Digits: DefaultDigits,
		Period: DefaultPeriod,
	})
	return ok && err == nil
}

// ValidateCustom reports whether passcode matches the code for exactly t.
// The comparison is constant-time.
//
// No skew window is applied: a code from the neighbouring time step does
// not match. Accepting adjacent steps to absorb clock drift is a
// verification policy and belongs to the caller, which can invoke this
// with each time it is willing to accept.
func ValidateCustom(algo otp.Algorithm, passcode string, secret []byte, t time.Time, opts Options) (bool, error) {
	expected, err := GenerateCodeCustom(algo, secret, t, opts)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(passcode), []byte(expected)) == 1, nil
}
