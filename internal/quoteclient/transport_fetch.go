//go:build js && wasm

package quoteclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// In the browser net/http rides on the Fetch API; fasthttp needs raw sockets.
type fetchDoer struct {
	client *http.Client
}

func newDoer(c *Client) doer {
	return &fetchDoer{client: &http.Client{Timeout: c.timeout}}
}

func (d *fetchDoer) post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, payload, nil
}
