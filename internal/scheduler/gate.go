package scheduler

import (
	"sync"
	"time"
)

const defaultGateTTL = 2 * time.Minute

// Gate is held while a submitted transaction awaits confirmation. Balance
// ticks are skipped while it is held so they do not race the scoped refetch
// that follows the confirmation. Holds expire after a TTL in case the
// confirmation never arrives.
type Gate struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration

	TimeNow func() time.Time
}

func NewGate(ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = defaultGateTTL
	}
	return &Gate{
		held:    make(map[string]time.Time),
		ttl:     ttl,
		TimeNow: time.Now,
	}
}

func (g *Gate) Hold(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.held[id] = g.TimeNow().Add(g.ttl)
}

func (g *Gate) Release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, id)
}

func (g *Gate) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.TimeNow()
	for id, expires := range g.held {
		if now.After(expires) {
			delete(g.held, id)
		}
	}
	return len(g.held) > 0
}
