package nucleus

import (
	"fmt"

	"github.com/paycrest/nucleus-go/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Client is the Nucleus API facade. It is immutable after NewClient and safe for concurrent use.
type Client struct {
	conf      config.NucleusConfiguration
	baseURL   string
	transport Transport
	metrics   *metrics
}

type options struct {
	transport  Transport
	registerer prometheus.Registerer
}

// Option customizes a Client at construction
type Option func(*options)

// WithTransport replaces the default fast-shot transport
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithMetrics records request counters and latency on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// NewClient builds a client from conf
func NewClient(conf config.NucleusConfiguration, opts ...Option) (*Client, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &Client{
		conf:      conf,
		baseURL:   conf.ResolvedBaseURL(),
		transport: o.transport,
	}
	if c.transport == nil {
		c.transport = NewFastshotTransport(c.baseURL, conf.Timeout)
	}

	if o.registerer != nil {
		m, err := newMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("registering nucleus metrics: %w", err)
		}
		c.metrics = m
	}

	return c, nil
}

// NewClientFromEnv builds a client from the NUCLEUS_* configuration keys
func NewClientFromEnv(opts ...Option) (*Client, error) {
	conf, err := config.NucleusConfig()
	if err != nil {
		return nil, err
	}
	return NewClient(*conf, opts...)
}

// BaseURL returns the provider URL every call is sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Environment returns the configured deployment
func (c *Client) Environment() config.Environment {
	return c.conf.Environment
}
