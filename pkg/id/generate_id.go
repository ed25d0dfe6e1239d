package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"
)

// CustomerPrefix starts every customer id.
const CustomerPrefix = "ESEP"

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewCustomerID builds ESEP + last four digits of mobile + six random
// upper-case hex characters. Mobiles with fewer than four digits are
// left-padded with zeros.
func NewCustomerID(mobile string) string {
	digits := make([]rune, 0, len(mobile))
	for _, r := range mobile {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	tail := string(digits)
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	tail = strings.Repeat("0", 4-len(tail)) + tail

	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return CustomerPrefix + tail + strings.ToUpper(hex.EncodeToString(b))
}
