package server

import (
	"net"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client may stay quiet before its bucket is
// dropped. It must exceed the one minute a bucket needs to refill.
const clientIdleTTL = 10 * time.Minute

// clientLimiter hands out one token bucket per client address.
type clientLimiter struct {
	clock clock.Clock
	every rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastPrune time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(perMinute int, clk clock.Clock) *clientLimiter {
	if perMinute <= 0 {
		return nil
	}
	if clk == nil {
		clk = clock.NewClock()
	}
	return &clientLimiter{
		clock:     clk,
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		clients:   make(map[string]*clientBucket),
		lastPrune: clk.Now(),
	}
}

// Allow reports whether addr may submit now. A nil limiter allows everything.
func (l *clientLimiter) Allow(addr string) bool {
	if l == nil {
		return true
	}
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Sub(l.lastPrune) >= clientIdleTTL {
		l.pruneLocked(now)
	}
	bucket, ok := l.clients[addr]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[addr] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

func (l *clientLimiter) pruneLocked(now time.Time) {
	for addr, bucket := range l.clients {
		if now.Sub(bucket.lastSeen) >= clientIdleTTL {
			delete(l.clients, addr)
		}
	}
	l.lastPrune = now
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err == nil {
		return host
	}
	return strings.TrimSpace(remoteAddr)
}
