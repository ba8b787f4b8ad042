package config

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrDatabaseUnavailable is returned when the database did not answer in time.
var ErrDatabaseUnavailable = errors.New("database is unavailable")

// WaitConfig controls how long WaitForDatabase keeps trying.
// A MaxRetries of zero retries until the context is done.
type WaitConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultWaitConfig returns the WaitConfig used by the connection factories.
func DefaultWaitConfig() WaitConfig {
	return WaitConfig{
		MaxRetries:      5,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// WaitForDatabase calls ping with exponential backoff until it succeeds,
// the retries are exhausted, or the context is done.
func WaitForDatabase(ctx context.Context, config WaitConfig, ping func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = config.InitialInterval
	b.MaxInterval = config.MaxInterval
	b.MaxElapsedTime = 0

	var policy backoff.BackOff = b
	if config.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(b, uint64(config.MaxRetries))
	}

	err := backoff.Retry(func() error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return backoff.Permanent(ctxErr)
		}

		return ping(ctx)
	}, backoff.WithContext(policy, ctx))

	if err != nil {
		return errors.Join(ErrDatabaseUnavailable, err)
	}

	return nil
}
