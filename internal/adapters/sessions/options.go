// Package sessions holds the session registries: an in-process map and a Redis-backed one.
package sessions

import (
	"errors"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/utils"
)

// DefaultTTL is the fixed lifetime of a session.
const DefaultTTL = 24 * time.Hour

// maxIssueAttempts bounds retries when a freshly generated token already names a live session.
const maxIssueAttempts = 5

// ErrTokenExhausted is returned when no unique token could be generated.
var ErrTokenExhausted = errors.New("could not generate a unique session token")

type options struct {
	now      func() time.Time
	newToken func() (string, error)
}

// Option configures a registry.
type Option func(*options)

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTokenSource overrides the token generator.
func WithTokenSource(gen func() (string, error)) Option {
	return func(o *options) { o.newToken = gen }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newToken: utils.GenerateSessionToken}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
