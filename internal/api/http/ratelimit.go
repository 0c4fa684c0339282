package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

type rateClient struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter applies a per-IP token bucket to the public auth endpoints.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateClient
	r       rate.Limit
	burst   int
}

// NewRateLimiter builds the limiter and starts the stale-entry sweeper.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateClient),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, c := range rl.clients {
				if time.Since(c.seen) > 3*time.Minute {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[ip] = &rateClient{lim: l, seen: time.Now()}
	return l
}

// Handle rejects callers exceeding their bucket.
func (rl *RateLimiter) Handle(c *fiber.Ctx) error {
	if !rl.get(c.IP()).Allow() {
		return apperrors.NewDomainError("RATE_LIMITED", "Demasiadas solicitudes", fiber.StatusTooManyRequests, nil)
	}
	return c.Next()
}
