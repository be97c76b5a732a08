// Package identity produces opaque string identifiers for new entities.
package identity

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a unique opaque identifier. UUIDv7 carries a millisecond time
// component plus random bits, which keeps ids collision-free for the
// lifetime of a single local store without any coordination.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// fallback: random hex plus the current clock
		b := make([]byte, 6)
		_, _ = rand.Read(b)
		return fmt.Sprintf("%x-%x", b, time.Now().UnixNano())
	}
	return id.String()
}
