// Package otp provides the shared pieces of the one-time password pipeline
// defined by RFC 4226 (HOTP) and RFC 6238 (TOTP): hash algorithm selection,
// dynamic truncation, and decimal code formatting.
//
// The counter-based and time-based constructions live in the hotp and totp
// packages; both derive a code in the same way:
//
//	digest    = HMAC(secret, 8-byte big-endian counter)
//	truncated = Truncate(digest)         // 31-bit value, RFC 4226 section 5.3
//	code      = Digits.Format(truncated) // truncated mod 10^digits, zero-padded
//
// # Hash Algorithms
//
// Three algorithms are supported, chosen explicitly by the caller on every
// call and never inferred:
//   - AlgorithmSHA1 (20-byte digests, universal authenticator-app support)
//   - AlgorithmSHA256 (32-byte digests)
//   - AlgorithmSHA512 (64-byte digests)
//
// Truncate and Digits.Format operate on digest bytes and on the truncated
// value respectively, so neither needs to change when an algorithm is added.
//
// # Code Width
//
// Digits may range from 1 to MaxDigits (10). The truncated value is 31 bits,
// so a 10-digit code never exceeds 2147483647 and the upper part of the
// 10-digit range is unreachable; widths up to 9 cover their full decimal
// range. RFC 4226 recommends at least 6 digits, but shorter widths are not
// rejected (5-character schemes exist in the wild).
//
// # Secrets
//
// Secrets are raw bytes, owned by the caller, and are never mutated, logged,
// or embedded in an error by any package in this module. Authenticator apps
// usually present secrets base32-encoded; decode before calling (the
// examples show how).
//
// # Thread Safety
//
// Every function in this module is a pure function of its arguments. There
// is no shared state of any kind, so all of them are safe for unlimited
// concurrent use.
package otp
