package http

import (
	"math"
	"sync"
	"time"
)

const (
	idleBucketTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket holding up to capacity tokens
// that refill continuously, capacity per window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	now      func() time.Time
	clients  map[string]*clientBucket
	stop     chan struct{}
	stopOnce sync.Once
}

type RateLimiterOption func(*RateLimiter)

func WithRateLimiterClock(now func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) { r.now = now }
}

func NewRateLimiter(capacity int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		now:      time.Now,
		clients:  make(map[string]*clientBucket),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	go rl.evictLoop()
	return rl
}

func (r *RateLimiter) evictLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, b := range r.clients {
		if now.Sub(b.lastSeen) > idleBucketTTL {
			delete(r.clients, client)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *RateLimiter) Allow(client string) bool {
	ok, _ := r.Reserve(client)
	return ok
}

// Reserve takes a token for client. When none is left it reports how long
// until the next one refills.
func (r *RateLimiter) Reserve(client string) (bool, time.Duration) {
	if r.capacity <= 0 || r.window <= 0 {
		return false, r.window
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.clients[client]
	if !ok {
		b = &clientBucket{tokens: float64(r.capacity), lastSeen: now}
		r.clients[client] = b
	}

	if elapsed := now.Sub(b.lastSeen); elapsed > 0 {
		refill := float64(elapsed) * float64(r.capacity) / float64(r.window)
		b.tokens = math.Min(float64(r.capacity), b.tokens+refill)
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	missing := 1 - b.tokens
	return false, time.Duration(missing * float64(r.window) / float64(r.capacity))
}
