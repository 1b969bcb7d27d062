package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRateLimitGroup = "DEFAULT"

// RateLimitRule is a token-bucket refill rate (tokens/sec) and burst size.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// RateLimitConfig maps request groups to rules. GroupFor classifies a
// request; groups without a rule pass through unlimited.
type RateLimitConfig struct {
	Rules        map[string]RateLimitRule
	DefaultGroup string
	GroupFor     func(*gin.Context) string
	Limiter      *RateLimiter
}

// RateLimiter holds per-key token buckets. Buckets are created lazily and
// never expire; the key space is client IPs times rule groups, which stays
// small for this API.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	avail    float64
	refilled time.Time
}

// NewRateLimiter constructs a limiter; now defaults to time.Now.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{buckets: make(map[string]*bucket), now: now}
}

// Allow consumes one token for key under rule. When the bucket is empty it
// returns false and the wait until the next token becomes available.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b := l.buckets[key]
	if b == nil {
		b = &bucket{avail: float64(rule.Burst), refilled: now}
		l.buckets[key] = b
	}
	if elapsed := now.Sub(b.refilled).Seconds(); elapsed > 0 {
		b.avail = math.Min(float64(rule.Burst), b.avail+elapsed*rule.Rate)
		b.refilled = now
	}

	if b.avail >= 1 {
		b.avail--
		return true, 0
	}
	waitSec := (1 - b.avail) / rule.Rate
	return false, time.Duration(math.Ceil(waitSec*1000)) * time.Millisecond
}

// RateLimit enforces per-client token-bucket limits, keyed by client IP.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = defaultRateLimitGroup
	}
	return func(c *gin.Context) {
		group := cfg.DefaultGroup
		if cfg.GroupFor != nil {
			if g := strings.TrimSpace(cfg.GroupFor(c)); g != "" {
				group = g
			}
		}
		rule, limited := cfg.Rules[group]
		if !limited {
			c.Next()
			return
		}

		ok, retryAfter := cfg.Limiter.Allow(strings.TrimSpace(c.ClientIP())+"|"+group, rule)
		if ok {
			c.Next()
			return
		}
		rejectRateLimited(c, retryAfter)
	}
}

func rejectRateLimited(c *gin.Context, retryAfter time.Duration) {
	ms := int(retryAfter / time.Millisecond)
	if ms <= 0 {
		ms = 1000
	}
	seconds := (ms + 999) / 1000
	c.Header("Retry-After", strconv.Itoa(seconds))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":        "rate_limited",
		"retryAfterMs": ms,
	})
	c.Abort()
}
