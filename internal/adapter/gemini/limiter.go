package gemini

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces requests to a Generator to stay inside the API quota.
// Waiting honours the caller's context, so a run that times out does not
// queue behind other runs.
type Limiter struct {
	next    Generator
	limiter *rate.Limiter
}

// NewLimiter allows perMinute requests per minute with bursts of burst.
// A non-positive perMinute disables limiting.
func NewLimiter(next Generator, perMinute, burst int) *Limiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// Generate waits for a request slot and calls the wrapped generator.
func (l *Limiter) Generate(ctx context.Context, prompt string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.next.Generate(ctx, prompt)
}
