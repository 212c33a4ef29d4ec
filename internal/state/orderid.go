package state

import (
	"fmt"
	"sync"
	"time"
)

var idMu sync.Mutex
var lastMillis int64
var lastSeq int

// NewOrderID returns an id of the form ord_<unix-millis>. Ids must stay
// unique within a process lifetime, so same-millisecond collisions get a
// monotonic sequence suffix.
func NewOrderID(now time.Time) string {
	millis := now.UnixMilli()

	idMu.Lock()
	defer idMu.Unlock()

	if millis <= lastMillis {
		lastSeq++
		return fmt.Sprintf("ord_%d_%d", lastMillis, lastSeq)
	}
	lastMillis = millis
	lastSeq = 0
	return fmt.Sprintf("ord_%d", millis)
}
