package http

import (
	"net"
	"net/http"
	"time"
)

type TransportFunc func(http.RoundTripper) http.RoundTripper

type httpConfig struct {
	connClientTimeout     time.Duration
	requestTimeout        time.Duration
	clientKeepAlive       time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConns          int
	maxIdleConnsPerHost   int
	transports            []TransportFunc
}

func defaultHTTPConfig() *httpConfig {
	return &httpConfig{
		connClientTimeout:     30 * time.Second,
		requestTimeout:        60 * time.Second,
		clientKeepAlive:       90 * time.Second,
		tlsHandshakeTimeout:   10 * time.Second,
		responseHeaderTimeout: 30 * time.Second,
		idleConnTimeout:       90 * time.Second,
		maxIdleConns:          100,
		maxIdleConnsPerHost:   10,
		transports:            []TransportFunc{},
	}
}

func newClient(opts ...HttpOpts) *http.Client {
	cfg := defaultHTTPConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return newInternal(cfg)
}

func newInternal(cfg *httpConfig) *http.Client {
	dialer := net.Dialer{
		Timeout:   cfg.connClientTimeout,
		KeepAlive: cfg.clientKeepAlive,
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          cfg.maxIdleConns,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   cfg.tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}

	// Wrappers are applied in registration order, so the last one registered
	// sees the request first.
	for _, transportFunc := range cfg.transports {
		transport = transportFunc(transport)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: transport,
	}
}
