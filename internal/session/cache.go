// Package session is the client-side companion to the token API: it keeps
// the last issued token and user snapshot so a client need not prompt for
// credentials again while the token lives. The server never consults it;
// every request is still verified server-side.
package session

import (
	"sync"
	"time"

	"github.com/Somye55/colbin-recruitment-platform/internal/models"
)

// Snapshot is what a client holds between requests.
type Snapshot struct {
	Token     string
	User      models.User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Cache owns the timers around a snapshot: a warning shortly before the
// token expires, a forced logout at expiry, and an inactivity logout that
// user activity keeps deferring. Close releases every timer.
type Cache struct {
	idleLimit  time.Duration
	warnBefore time.Duration
	onWarn     func(remaining time.Duration)
	onLogout   func()

	mu          sync.Mutex
	snap        *Snapshot
	warnTimer   *time.Timer
	expireTimer *time.Timer
	idleTimer   *time.Timer
	closed      bool
}

// New builds a cache. idleLimit or warnBefore of zero disables the
// corresponding timer; callbacks may be nil.
func New(idleLimit, warnBefore time.Duration, onWarn func(time.Duration), onLogout func()) *Cache {
	return &Cache{
		idleLimit:  idleLimit,
		warnBefore: warnBefore,
		onWarn:     onWarn,
		onLogout:   onLogout,
	}
}

// Set stores a snapshot and arms the timers. An already expired snapshot is
// dropped on the floor.
func (c *Cache) Set(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.stopTimersLocked()
	ttl := time.Until(snap.ExpiresAt)
	if ttl <= 0 {
		c.snap = nil
		return
	}
	c.snap = &snap
	if c.warnBefore > 0 && ttl > c.warnBefore {
		c.warnTimer = time.AfterFunc(ttl-c.warnBefore, c.warn)
	}
	c.expireTimer = time.AfterFunc(ttl, c.expire)
	if c.idleLimit > 0 {
		c.idleTimer = time.AfterFunc(c.idleLimit, c.expire)
	}
}

// Get returns the snapshot while it is still valid.
func (c *Cache) Get() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil || time.Now().After(c.snap.ExpiresAt) {
		return Snapshot{}, false
	}
	return *c.snap, true
}

// Touch records user activity, deferring the inactivity logout.
func (c *Cache) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil && c.idleTimer != nil && !c.closed {
		c.idleTimer.Reset(c.idleLimit)
	}
}

// Close drops the snapshot and cancels all timers. The cache must not be
// reused afterwards.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.snap = nil
	c.stopTimersLocked()
}

func (c *Cache) warn() {
	c.mu.Lock()
	if c.closed || c.snap == nil {
		c.mu.Unlock()
		return
	}
	cb := c.onWarn
	remaining := time.Until(c.snap.ExpiresAt)
	c.mu.Unlock()
	if cb != nil && remaining > 0 {
		cb(remaining)
	}
}

func (c *Cache) expire() {
	c.mu.Lock()
	if c.closed || c.snap == nil {
		c.mu.Unlock()
		return
	}
	c.snap = nil
	c.stopTimersLocked()
	cb := c.onLogout
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (c *Cache) stopTimersLocked() {
	for _, t := range []*time.Timer{c.warnTimer, c.expireTimer, c.idleTimer} {
		if t != nil {
			t.Stop()
		}
	}
	c.warnTimer, c.expireTimer, c.idleTimer = nil, nil, nil
}
