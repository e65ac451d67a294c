package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces requests issued by the batch runner. The simfin client
// itself never waits; pacing is applied by whoever schedules calls.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing perSecond events per second with the given
// burst. A perSecond of zero or less means unlimited.
func New(perSecond float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	if perSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, burst)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Unlimited returns a limiter that never blocks.
func Unlimited() *Limiter {
	return New(0, 1)
}

// Wait blocks until the limiter permits an event.
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether an event may happen now
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
