package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNumberPrefix = "ORD"

// GenerateOrderNumber produces a human-legible, collision-resistant order
// identifier: a fixed prefix, the wall-clock timestamp in milliseconds, and a
// random token. The token replaces a document-count suffix so that two orders
// created in the same millisecond still get distinct numbers. Assigned
// exactly once, at first persistence, and never regenerated.
func GenerateOrderNumber(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, now.UnixMilli(), token)
}
