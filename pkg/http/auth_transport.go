package http

import "net/http"

type headerTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.value == "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set(t.header, t.value)

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sets a bearer Authorization header when token is not empty.
func WithAuthToken(token string) HttpOpts {
	value := ""
	if token != "" {
		value = "Bearer " + token
	}
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			header:    "Authorization",
			value:     value,
			transport: rt,
		}
	})
}

func WithUserAgent(userAgent string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			header:    "User-Agent",
			value:     userAgent,
			transport: rt,
		}
	})
}
