package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
)

const dialTimeout = 5 * time.Second

// Client implements ports.Transport over the game server's REST API.
// Endpoints are joined onto the base URL; payloads go out as JSON.
type Client struct {
	base string
	hc   *client.Client
}

func NewClient(baseURL string) (*Client, error) {
	hc, err := client.NewClient(client.WithDialTimeout(dialTimeout))
	if err != nil {
		return nil, fmt.Errorf("new hertz client: %w", err)
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}, nil
}

func (c *Client) Do(ctx context.Context, method, endpoint string, payload map[string]any) (int, []byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(c.base + "/" + endpoint)
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode payload: %w", err)
		}
		req.SetBody(b)
		req.Header.SetContentTypeBytes([]byte("application/json"))
	}

	if err := c.hc.Do(ctx, req, resp); err != nil {
		return 0, nil, err
	}

	// resp's buffer is pooled; copy before release.
	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}
