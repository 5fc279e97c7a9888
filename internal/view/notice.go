package view

import (
	"sync"
	"time"
)

// Notices holds the one transient message shown next to the current screen.
// Each Set schedules a single-shot clear; a newer Set or a Close invalidates
// the pending one so a stale timer never wipes a fresh notice.
type Notices struct {
	ttl time.Duration

	mu      sync.Mutex
	current string
	gen     uint64
	timer   *time.Timer
}

func NewNotices(ttl time.Duration) *Notices {
	return &Notices{ttl: ttl}
}

func (n *Notices) Set(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	n.current = msg

	g := n.gen
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen == g {
			n.current = ""
			n.timer = nil
		}
	})
}

func (n *Notices) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close tears the holder down; a timer already scheduled must not fire into
// the dead holder.
func (n *Notices) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.current = ""
}
