package utils

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	refMu       sync.Mutex
	lastRefTick int64
)

// NewReferenceNumber returns the customer-facing tracking token for a new
// quote: "<PREFIX>-<base36 timestamp>", uppercased, e.g. "AMB-1KQX9V2T7C".
//
// The tick is the current time in microseconds; calls landing on the same
// microsecond are bumped forward so the suffix never repeats within a
// process.
func NewReferenceNumber(prefix string) string {
	refMu.Lock()
	tick := time.Now().UnixMicro()
	if tick <= lastRefTick {
		tick = lastRefTick + 1
	}
	lastRefTick = tick
	refMu.Unlock()

	return prefix + "-" + strings.ToUpper(strconv.FormatInt(tick, 36))
}
