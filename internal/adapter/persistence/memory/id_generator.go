package memory

import (
	"sync"
	"time"
)

// IDGenerator hands out epoch-millisecond identifiers.
//
// Two creates inside the same millisecond would collide with a plain timestamp, so
// every id is max(now, last+1): ids stay close to the creation time and are strictly
// increasing for the lifetime of the process.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure later ids are greater than an id that already exists (seeds).
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}
