package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		algo Algorithm
		want string
	}{
		{AlgorithmSHA1, "SHA1"},
		{AlgorithmSHA256, "SHA256"},
		{AlgorithmSHA512, "SHA512"},
		{Algorithm(42), "Algorithm(42)"},
	}
	for _, tt := range tests {
		if got := tt.algo.String(); got != tt.want {
			t.Errorf("String() = %q, expected %q", got, tt.want)
		}
	}
}

func TestAlgorithmValid(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		if !algo.Valid() {
			t.Errorf("%s: expected Valid() = true", algo)
		}
	}
	for _, algo := range []Algorithm{Algorithm(-1), Algorithm(3), Algorithm(42)} {
		if algo.Valid() {
			t.Errorf("%s: expected Valid() = false", algo)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"SHA1", AlgorithmSHA1},
		{"sha1", AlgorithmSHA1},
		{"SHA-1", AlgorithmSHA1},
		{"SHA256", AlgorithmSHA256},
		{"sha-256", AlgorithmSHA256},
		{"SHA512", AlgorithmSHA512},
		{"sha512", AlgorithmSHA512},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q): unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %s, expected %s", tt.in, got, tt.want)
			}
		})
	}

	for _, in := range []string{"", "MD5", "SHA384", "sha 1"} {
		if _, err := ParseAlgorithm(in); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q): expected ErrUnknownAlgorithm, got %v", in, err)
		}
	}
}

func TestAlgorithmHash(t *testing.T) {
	tests := []struct {
		algo Algorithm
		size int
	}{
		{AlgorithmSHA1, 20},
		{AlgorithmSHA256, 32},
		{AlgorithmSHA512, 64},
	}
	for _, tt := range tests {
		t.Run(tt.algo.String(), func(t *testing.T) {
			h := tt.algo.Hash()
			if h == nil {
				t.Fatal("Hash() returned nil")
			}
			if h.Size() != tt.size {
				t.Errorf("Hash().Size() = %d, expected %d", h.Size(), tt.size)
			}
			if tt.algo.Size() != tt.size {
				t.Errorf("Size() = %d, expected %d", tt.algo.Size(), tt.size)
			}
		})
	}
}

func TestAlgorithmHashPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Hash() to panic for an unknown algorithm")
		}
	}()
	Algorithm(42).Hash()
}

func TestDigitsValid(t *testing.T) {
	tests := []struct {
		digits Digits
		want   bool
	}{
		{Digits(0), false},
		{Digits(1), true},
		{DigitsSix, true},
		{DigitsEight, true},
		{Digits(MaxDigits), true},
		{Digits(MaxDigits + 1), false},
		{Digits(-6), false},
	}
	for _, tt := range tests {
		if got := tt.digits.Valid(); got != tt.want {
			t.Errorf("Digits(%d).Valid() = %v, expected %v", int(tt.digits), got, tt.want)
		}
	}
}

func TestDigitsFormat(t *testing.T) {
	tests := []struct {
		digits Digits
		value  uint32
		want   string
	}{
		{DigitsSix, 0, "000000"},
		{DigitsSix, 123, "000123"},
		{DigitsSix, 1234567, "234567"},
		{DigitsSix, 2147483647, "483647"},
		{DigitsEight, 1234567, "01234567"},
		{DigitsEight, 94287082, "94287082"},
		{Digits(1), 789, "9"},
		{Digits(9), 82162583, "082162583"},
		{Digits(10), 82162583, "0082162583"},
		{Digits(10), 2147483647, "2147483647"},
	}
	for _, tt := range tests {
		got := tt.digits.Format(tt.value)
		if got != tt.want {
			t.Errorf("Digits(%d).Format(%d) = %q, expected %q", int(tt.digits), tt.value, got, tt.want)
		}
		if len(got) != tt.digits.Length() {
			t.Errorf("Digits(%d).Format(%d): length %d, expected %d", int(tt.digits), tt.value, len(got), tt.digits.Length())
		}
	}
}

func TestDigitsString(t *testing.T) {
	if got := DigitsSix.String(); got != "6" {
		t.Errorf("String() = %q, expected %q", got, "6")
	}
	if got := DigitsEight.Length(); got != 8 {
		t.Errorf("Length() = %d, expected %d", got, 8)
	}
}

// TestTruncate checks the dynamic truncation against the intermediate
// values published in RFC 4226 Appendix D, recomputing each HMAC-SHA-1
// digest from the reference secret.
func TestTruncate(t *testing.T) {
	secret := []byte("12345678901234567890")
	want := []uint32{
		1284755224,
		1094287082,
		137359152,
		1726969429,
		1640338314,
		868254676,
		1918287922,
		82162583,
		673399871,
		645520489,
	}
	for counter, expected := range want {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(counter))
		mac := hmac.New(sha1.New, secret)
		mac.Write(buf[:])
		if got := Truncate(mac.Sum(nil)); got != expected {
			t.Errorf("counter %d: Truncate() = %d, expected %d", counter, got, expected)
		}
	}
}

// TestTruncateHighOffset pins the two edges the offset arithmetic has to
// get right: an offset pointing at the last possible window and a window
// whose leading bit must be masked off.
func TestTruncateHighOffset(t *testing.T) {
	sum := make([]byte, 20)
	sum[15] = 0xff
	sum[16] = 0x12
	sum[17] = 0x34
	sum[18] = 0x56
	sum[19] = 0x0f // low nibble selects offset 15
	if got, want := Truncate(sum), uint32(0x7f123456); got != want {
		t.Errorf("Truncate() = %#x, expected %#x", got, want)
	}
}

func TestTruncateLongDigest(t *testing.T) {
	// A SHA-512 sized digest whose final nibble points near its own end.
	sum := make([]byte, 64)
	for i := range sum {
		sum[i] = byte(i)
	}
	sum[63] = 0x3b // offset 11
	want := binary.BigEndian.Uint32(sum[11:15]) & 0x7fffffff
	if got := Truncate(sum); got != want {
		t.Errorf("Truncate() = %d, expected %d", got, want)
	}
}

func TestParseAlgorithmRoundTrip(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		got, err := ParseAlgorithm(strings.ToLower(algo.String()))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}
		if got != algo {
			t.Errorf("round trip %s: got %s", algo, got)
		}
	}
}
