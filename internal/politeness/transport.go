package politeness

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper that applies the crawl politeness
// pipeline: static headers → robots.txt check → rate limiter → jitter → send.
// The limiter is shared by every request going through the transport, so the
// minimum inter-request delay holds in aggregate even with concurrent workers.
type Transport struct {
	Base    http.RoundTripper
	Headers http.Header
	Robots  *RobotsChecker
	Limiter *rate.Limiter
	Jitter  *Jitter
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, vals := range t.Headers {
		if req.Header.Get(key) == "" {
			for _, v := range vals {
				req.Header.Add(key, v)
			}
		}
	}

	if t.Robots != nil {
		allowed, err := t.Robots.IsAllowed(req.Header.Get("User-Agent"), req.URL.String())
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", req.URL.Path)
		}
	}

	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if t.Jitter != nil {
		if err := t.Jitter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("jitter: %w", err)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
