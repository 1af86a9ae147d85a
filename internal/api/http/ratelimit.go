package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/spec-kit/fitness-tracker/internal/config"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter throttles login attempts per client address. Entries for
// idle clients are dropped by a background cleanup loop.
type LoginRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	stopCh  chan struct{}
}

// NewLoginRateLimiter builds the limiter and starts its cleanup loop.
func NewLoginRateLimiter(cfg config.RateLimitConfig) *LoginRateLimiter {
	perMinute := cfg.LoginPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = perMinute
	}

	l := &LoginRateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Handle rejects clients that exceed the configured attempt rate.
func (l *LoginRateLimiter) Handle(c *fiber.Ctx) error {
	if !l.limiterFor(c.IP()).Allow() {
		return apperrors.NewRateLimited("too many login attempts")
	}
	return c.Next()
}

// Stop terminates the cleanup loop.
func (l *LoginRateLimiter) Stop() {
	close(l.stopCh)
}

func (l *LoginRateLimiter) limiterFor(addr string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[addr]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[addr] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (l *LoginRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterIdleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.sweep(time.Now().Add(-limiterIdleTTL))
		}
	}
}

func (l *LoginRateLimiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for addr, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, addr)
		}
	}
}
