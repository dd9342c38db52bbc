package commands

import (
	"sync"

	"golang.org/x/time/rate"
)

// DefaultCommandBurst is how many commands a sender may issue back to back
const DefaultCommandBurst = 5

// senderLimits throttles commands per sender
type senderLimits struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newSenderLimits(perSecond float64, burst int) *senderLimits {
	if perSecond <= 0 {
		return nil
	}

	if burst <= 0 {
		burst = DefaultCommandBurst
	}

	return &senderLimits{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// allow reports whether the sender may run another command now. A nil
// senderLimits allows everything.
func (l *senderLimits) allow(senderID string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	limiter, ok := l.limiters[senderID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[senderID] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
