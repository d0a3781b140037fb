package domain

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout matches the ISO-8601 form persisted by the storefront
// (millisecond precision, UTC "Z").
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var reSpaces = regexp.MustCompile(`\s+`)

// Slugify lowercases s and collapses each whitespace run into a dash.
// Other characters are kept as-is.
func Slugify(s string) string {
	return reSpaces.ReplaceAllString(strings.ToLower(s), "-")
}

// IDGen builds "<slug>-<unix ms>" identifiers. The millisecond part never
// repeats within one generator: a call landing in the same (or an earlier)
// millisecond as the previous one is bumped to previous+1.
type IDGen struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGen(now func() time.Time) *IDGen {
	if now == nil {
		now = time.Now
	}
	return &IDGen{now: now}
}

func (g *IDGen) Next(name string) string {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()
	return Slugify(name) + "-" + strconv.FormatInt(ms, 10)
}

// NewOrderID returns "order-<unix ms>-<9 base36 chars>".
func NewOrderID(now time.Time) string {
	return "order-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomSuffix()
}

func randomSuffix() string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(s) < 9 {
		s = strings.Repeat("0", 9-len(s)) + s
	}
	return s[len(s)-9:]
}
