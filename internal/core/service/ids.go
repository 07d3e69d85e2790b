package service

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newEntityID returns an id in the format <PREFIX>-<unix ms>-<8 hex>.
func newEntityID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), uuid.NewString()[:8])
}

func newClientID(now time.Time) string   { return newEntityID("CLI", now) }
func newContractID(now time.Time) string { return newEntityID("CTR", now) }
func newGuideID(now time.Time) string    { return newEntityID("GUI", now) }

// newAuditID returns an id in the format AUD-<unix ms>-<4 base36>.
func newAuditID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		n := time.Now().UnixNano()
		for i := range b {
			b[i] = byte(n >> (8 * i))
		}
	}
	suffix := make([]byte, len(b))
	for i, v := range b {
		suffix[i] = base36[int(v)%len(base36)]
	}
	return fmt.Sprintf("AUD-%d-%s", now.UnixMilli(), suffix)
}
