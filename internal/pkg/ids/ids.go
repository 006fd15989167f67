package ids

import (
	"crypto/rand"
	"fmt"
	"sync/atomic"
	"time"
)

// Record ids are short human-readable tokens: a type prefix followed by an
// eight-digit suffix derived from the current time. A process-local counter
// occupies the last two digits so ids generated within the same millisecond
// stay distinct.
var counter atomic.Uint64

// OrderPrefix and DepositPrefix tag the two record families.
const (
	OrderPrefix   = "ORD"
	DepositPrefix = "DEP"
)

// New generates a record id with the given prefix, e.g. ORD82731904.
func New(prefix string) string {
	millis := time.Now().UnixMilli()
	seq := counter.Add(1) % 100
	return fmt.Sprintf("%s%06d%02d", prefix, millis%1_000_000, seq)
}

const referralCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReferralCode generates a referral code like REF7K2Q9X.
func NewReferralCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time.
		for i := range buf {
			buf[i] = byte(time.Now().UnixNano() >> (i * 8))
		}
	}
	for i, b := range buf {
		buf[i] = referralCharset[int(b)%len(referralCharset)]
	}
	return "REF" + string(buf)
}
