package element

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc produces element ids. Implementations must never return the same id
// twice within a process.
type IDFunc func() string

// NewID returns a random UUID string; it is the default IDFunc.
func NewID() string {
	return uuid.NewString()
}

// Sequence returns an IDFunc yielding prefix1, prefix2, ... It is safe for
// concurrent use and makes construction replayable in tests.
func Sequence(prefix string) IDFunc {
	var counter atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(counter.Add(1), 10)
	}
}
