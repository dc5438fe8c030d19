package http

import "time"

type HttpOpts func(*httpConfig)

func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) {
		if timeout > 0 {
			c.connClientTimeout = timeout
		}
	}
}

// WithRequestTimeout bounds the whole exchange. Zero disables the client
// timeout entirely.
func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) {
		c.requestTimeout = timeout
	}
}

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(c *httpConfig) {
		if keepAlive > 0 {
			c.clientKeepAlive = keepAlive
		}
	}
}

func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) {
		c.responseHeaderTimeout = timeout
	}
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) {
		if timeout > 0 {
			c.idleConnTimeout = timeout
		}
	}
}

func WithTransport(transport TransportFunc) HttpOpts {
	return func(c *httpConfig) {
		c.transports = append(c.transports, transport)
	}
}
