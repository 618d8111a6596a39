// Package voucher mints payout reference codes. Codes are simulated; no
// real gift card or UPI transfer is issued.
package voucher

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphaNum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits   = "0123456789"
)

func randomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(fmt.Sprintf("voucher: rand failed: %v", err))
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String()
}

// GiftCardCode returns an Amazon-style voucher code: AGC-XXXXXXXX.
func GiftCardCode() string {
	return "AGC-" + randomString(alphaNum, 8)
}

// UPIReference returns a UPI UTR-style reference: UTR + 12 digits.
func UPIReference() string {
	return "UTR" + randomString(digits, 12)
}

// ForMethod mints a reference code for the given payout method, defaulting
// to a gift card code for unknown methods.
func ForMethod(method string) string {
	if strings.EqualFold(method, "upi") {
		return UPIReference()
	}
	return GiftCardCode()
}
