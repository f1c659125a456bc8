//go:build !js

package quoteclient

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

type fastDoer struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func newDoer(c *Client) doer {
	return &fastDoer{
		client: &fasthttp.Client{
			Name:                "slas-calculator",
			Dial:                c.dial,
			ReadTimeout:         c.timeout,
			WriteTimeout:        c.timeout,
			MaxIdleConnDuration: 90 * time.Second,
		},
		timeout: c.timeout,
	}
}

func (d *fastDoer) post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.SetBody(body)

	deadline := time.Now().Add(d.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := d.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, err
	}

	// resp is released on return
	payload := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), payload, nil
}
