package idx

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	once    sync.Once
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

// New returns a lexicographically sortable ULID for the current UTC time.
// The todo service keys its rows with integers, so these only label
// transient things such as requests.
func New() string {
	once.Do(func() { entropy = ulid.Monotonic(rand.Reader, 0) })

	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// FromHeader returns the caller supplied request id when it is a usable
// token, otherwise a freshly generated one.
func FromHeader(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > 128 || strings.ContainsAny(v, " \t\r\n") {
		return New()
	}
	return v
}
