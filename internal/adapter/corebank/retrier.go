package corebank

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// transientError marks a failure worth one more attempt: network faults
// and upstream 5xx responses. Everything else is permanent; in particular
// a "no record yet" reply is a success and never reaches the retrier.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func transient(err error) error { return &transientError{err: err} }

func permanent(err error) error { return backoff.Permanent(err) }

// Retrier retries upstream reads with exponential backoff, bounded so a
// known-absent resource can never turn into a retry loop.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewRetrier creates a new upstream retrier with default settings.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      2,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  5 * time.Second,
	}
}

// Retry executes an operation, retrying transient failures only.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		var te *transientError
		if !errors.As(err, &te) {
			return err
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(te.err)
		}

		log.Warn().
			Err(te.err).
			Int("retry", retryCount).
			Msg("transient upstream error, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}
