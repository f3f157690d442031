package checklist

import (
	"sync"
	"time"
)

// CelebrationMessage replaces the progress text while a celebration runs.
const CelebrationMessage = "🎉 Parabéns! Todas as tarefas concluídas! 🎉"

// Celebration is the transient message shown when progress reaches 100%.
// Only one can be active; triggering again while active is a no-op. The
// owner schedules the end after Delay and calls Expire with the generation
// Trigger returned, so a stale timer never cuts a later celebration short.
type Celebration struct {
	delay time.Duration

	mu     sync.Mutex
	active bool
	gen    uint64
}

func NewCelebration(delay time.Duration) *Celebration {
	return &Celebration{delay: delay}
}

func (c *Celebration) Delay() time.Duration { return c.delay }

// Trigger starts a celebration when p is complete and none is running.
// It returns the new generation and true when one started.
func (c *Celebration) Trigger(p Progress) (uint64, bool) {
	if !p.Complete() {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return 0, false
	}
	c.active = true
	c.gen++
	return c.gen, true
}

// Expire ends the celebration started as gen. It reports whether anything
// changed.
func (c *Celebration) Expire(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active || gen != c.gen {
		return false
	}
	c.active = false
	return true
}

func (c *Celebration) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Text is what the progress line shows right now.
func (c *Celebration) Text(p Progress) string {
	if c.Active() {
		return CelebrationMessage
	}
	return p.Text()
}

// Schedule runs Trigger and, when it starts a celebration, arranges for
// Expire after the delay followed by onEnd. Used outside Bubble Tea, where
// there is no Tick command.
func (c *Celebration) Schedule(p Progress, onEnd func()) bool {
	gen, ok := c.Trigger(p)
	if !ok {
		return false
	}
	time.AfterFunc(c.delay, func() {
		if c.Expire(gen) && onEnd != nil {
			onEnd()
		}
	})
	return true
}
