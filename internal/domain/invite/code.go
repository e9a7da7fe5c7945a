package invite

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	CodeLength   = 8
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewCode produces one 8-character candidate from [A-Z0-9]. Uniqueness
// against existing bookings is the caller's responsibility.
func NewCode() string {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is effectively unrecoverable; fall back
			// to a clock-derived index rather than panicking.
			buf[i] = codeAlphabet[time.Now().UnixNano()%int64(len(codeAlphabet))]
			continue
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}

// CodeWithTimestampSuffix is the termination fallback when repeated
// candidates keep colliding: a fresh code with the low-order digits of
// the current timestamp appended. A tiny residual collision probability
// remains and is accepted.
func CodeWithTimestampSuffix(now time.Time) string {
	return NewCode() + fmt.Sprintf("%04d", now.UnixMilli()%10000)
}
