package crawler

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent identifies the tool to listing servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ListingBot/1.0)"

// Client fetches listing pages and their images. A shared limiter keeps
// consecutive requests (pages and images alike) at least one delay
// interval apart; requests stay strictly sequential.
type Client struct {
	client    *http.Client
	limiter   *rate.Limiter
	sizeCap   int64
	userAgent string
}

// New builds a Client. delay is the politeness interval between requests;
// zero disables pacing. sizeCap bounds any single response body.
func New(timeout, delay time.Duration, userAgent string, sizeCap int64) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		client:    &http.Client{Transport: transport, Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		sizeCap:   sizeCap,
		userAgent: userAgent,
	}
}

// FetchPage retrieves listing page markup. The returned content type is
// the raw Content-Type header, for charset detection downstream.
func (c *Client) FetchPage(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, "", fmt.Errorf("invalid url %q", rawURL)
	}
	return c.get(ctx, u.String(), "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
}

// FetchImage retrieves a single image resource.
func (c *Client) FetchImage(ctx context.Context, rawURL string) ([]byte, string, error) {
	return c.get(ctx, rawURL, "image/*,*/*;q=0.8")
}

func (c *Client) get(ctx context.Context, u, accept string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("http status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.sizeCap))
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
