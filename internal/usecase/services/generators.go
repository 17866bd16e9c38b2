package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"
)

var transactionRefCounter uint32

// generateReferenceNumber builds a per-entry unique reference from the
// current time, a process-wide counter and a random suffix. Collisions are
// still caught by the unique index and retried by the caller.
func generateReferenceNumber() string {
	now := time.Now().UTC()
	counter := atomic.AddUint32(&transactionRefCounter, 1) % 1000000
	return fmt.Sprintf("TXN%d%06d%03d", now.UnixMilli(), counter, rand.IntN(1000))
}

// generateAccountNumber derives an account number from the account-type
// prefix, the current time and a random suffix.
func generateAccountNumber(accountType string) string {
	prefix := strings.ToUpper(accountType)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("%s%d%04d", prefix, time.Now().UnixMilli(), rand.IntN(10000))
}

func generateLoanNumber() string {
	return fmt.Sprintf("LN%d%03d", time.Now().UnixMilli(), rand.IntN(1000))
}
