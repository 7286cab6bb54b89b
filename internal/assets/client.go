package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chuni-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

// Client builds jacket-art URLs against the configured asset host and
// can probe the host at startup. Rendering itself never talks to the
// host; only URL construction happens per payload.
type Client struct {
	host   string
	client *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		host: cfg.AssetHost,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// JacketURL converts a chart's native jacket path to a web-displayable
// URL: the .dds extension becomes .png and the name is rooted under the
// asset host's jacketArts directory.
func (c *Client) JacketURL(jacketPath string) string {
	name := strings.Replace(jacketPath, ".dds", ".png", 1)
	return fmt.Sprintf("https://%s/jacketArts/%s", c.host, name)
}

// Ping checks that the asset host answers at all. Any HTTP status
// counts as reachable; only transport errors fail.
func (c *Client) Ping(ctx context.Context) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("https://%s/", c.host))
	req.Header.SetMethod(fasthttp.MethodHead)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(10 * time.Second)
	}

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("asset host unreachable: %w", err)
	}
	return nil
}
