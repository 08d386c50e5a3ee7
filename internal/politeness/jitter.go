package politeness

import (
	"context"
	"math/rand/v2"
	"time"
)

// Profile names a jitter configuration.
type Profile string

const (
	ProfileCautious   Profile = "cautious"
	ProfileNormal     Profile = "normal"
	ProfileAggressive Profile = "aggressive"
	ProfileNone       Profile = "none"
)

// Jitter adds a randomized extra delay on top of the rate limiter so the
// request cadence is not perfectly regular.
type Jitter struct {
	Min time.Duration
	Max time.Duration
}

// NewJitter returns the jitter for a named profile, or nil when the profile
// disables jitter entirely.
func NewJitter(profile Profile) *Jitter {
	switch profile {
	case ProfileCautious:
		return &Jitter{Min: time.Second, Max: 3 * time.Second}
	case ProfileAggressive:
		return &Jitter{Min: 50 * time.Millisecond, Max: 200 * time.Millisecond}
	case ProfileNone:
		return nil
	default: // normal
		return &Jitter{Min: 100 * time.Millisecond, Max: 500 * time.Millisecond}
	}
}

// Wait sleeps for a random duration within the configured range.
func (j *Jitter) Wait(ctx context.Context) error {
	d := j.Min
	if j.Max > j.Min {
		d += time.Duration(rand.Int64N(int64(j.Max - j.Min)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
