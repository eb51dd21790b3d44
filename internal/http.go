package internal

import "net/http"

// HeaderTransport is a RoundTripper that adds default headers to every
// request. The problem site serves a reduced page to clients without
// browser-like headers, so the fetch client installs one of these.
type HeaderTransport struct {
	Base    http.RoundTripper
	Headers http.Header
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, values := range t.Headers {
		for _, value := range values {
			if req.Header.Get(key) == "" {
				req.Header.Set(key, value)
			}
		}
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
