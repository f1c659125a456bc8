// Package quoteclient calls the contribution quote endpoint.
package quoteclient

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"slas-calculator/internal/model"
)

const (
	QuotePath      = "/api/slas/cotizacion"
	DefaultTimeout = 10 * time.Second
)

// doer performs one POST and returns the raw answer.
type doer interface {
	post(ctx context.Context, url string, body []byte) (status int, payload []byte, err error)
}

type Client struct {
	url     string
	timeout time.Duration
	dial    func(addr string) (net.Conn, error)
	logger  *zap.Logger
	doer    doer
}

type Option func(*Client)

// WithTimeout bounds each call. Context deadlines still apply when shorter.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDial replaces the TCP dialer; used to talk to in-memory listeners.
func WithDial(dial func(addr string) (net.Conn, error)) Option {
	return func(c *Client) { c.dial = dial }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a client for the quote endpoint under baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		url:     strings.TrimRight(baseURL, "/") + QuotePath,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.doer = newDoer(c)
	return c
}

func (c *Client) URL() string { return c.url }

// Quote sends req and decodes the breakdown. Failures are *RemoteRejection or
// *TransportFailure. Nothing is retried.
func (c *Client) Quote(ctx context.Context, req model.CalculationRequest) (model.CalculationResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return model.CalculationResult{}, &TransportFailure{Err: fmt.Errorf("encode request: %w", err)}
	}

	start := time.Now()
	status, payload, err := c.doer.post(ctx, c.url, body)
	if err != nil {
		return model.CalculationResult{}, &TransportFailure{Err: err}
	}
	c.logger.Debug("quote answered",
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)))

	if status < 200 || status > 299 {
		var er model.ErrorResponse
		if err := json.Unmarshal(payload, &er); err != nil {
			// no structured reason, caller falls back to a generic message
			c.logger.Debug("unreadable error body", zap.Int("status", status), zap.Error(err))
		}
		return model.CalculationResult{}, &RemoteRejection{Status: status, Message: er.Message}
	}

	res, err := model.DecodeCalculationResult(payload)
	if err != nil {
		return model.CalculationResult{}, &TransportFailure{Err: fmt.Errorf("decode response: %w", err)}
	}
	return res, nil
}
