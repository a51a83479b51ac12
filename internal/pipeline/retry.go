package pipeline

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"call-quality-backend/internal/config"
)

// RetryPolicy bounds the in-cycle retries around the scoring call. Exhausting
// MaxElapsedTime gives up on the record for this cycle; it stays pending.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// ScoringRetryPolicy builds the policy from config
func ScoringRetryPolicy(cfg *config.Config) RetryPolicy {
	initial := time.Duration(cfg.ScoringRetryInitialSec) * time.Second
	return RetryPolicy{
		InitialInterval: initial,
		MaxInterval:     4 * initial,
		MaxElapsedTime:  time.Duration(cfg.ScoringRetryMaxElapsedSec) * time.Second,
	}
}

// New returns a fresh context-aware backoff for one record
func (p RetryPolicy) New(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.MaxElapsedTime = p.MaxElapsedTime
	return backoff.WithContext(b, ctx)
}
