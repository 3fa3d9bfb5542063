package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/finsight/revenue-dashboard/internal/adapter"
)

// Strategy abstracts how a vendor endpoint is reached. The strategy is
// chosen once at construction time: either the vendor API is called
// directly with static auth headers, or the call is routed through a
// dashboard-side proxy that injects credentials itself.
//
//go:generate mockgen -source=strategy.go -destination=../mocks/transport_strategy.go -package=mocks -mock_names=Strategy=MockStrategy
type Strategy interface {
	// Get fetches the given endpoint (path relative to the vendor base URL,
	// e.g. "/metrics/monthly/") with optional query parameters and returns
	// the raw response body
	Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error)
}

// Direct calls the vendor API at its base URL with static auth headers
type Direct struct {
	httpClient adapter.HTTPClient
	baseURL    string
	headers    map[string]string
}

// NewDirect creates a direct transport for the given vendor base URL.
// The headers map carries the vendor's auth headers and is sent verbatim
// on every request.
func NewDirect(httpClient adapter.HTTPClient, baseURL string, headers map[string]string) *Direct {
	return &Direct{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
	}
}

// Get implements Strategy
func (d *Direct) Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	fullURL := d.baseURL + normalizeEndpoint(endpoint)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	return d.httpClient.GetBytes(ctx, fullURL, d.headers)
}

// Proxied routes vendor calls through a dashboard-server proxy route,
// passing the vendor endpoint as a query parameter. The proxy holds the
// vendor credentials, so no auth headers are sent from here.
type Proxied struct {
	httpClient adapter.HTTPClient
	proxyURL   string
}

// NewProxied creates a proxied transport. proxyURL is the full proxy route
// for one vendor, e.g. "https://dashboard.internal/api/v1/proxy/profitwell".
func NewProxied(httpClient adapter.HTTPClient, proxyURL string) *Proxied {
	return &Proxied{
		httpClient: httpClient,
		proxyURL:   strings.TrimRight(proxyURL, "/"),
	}
}

// Get implements Strategy
func (p *Proxied) Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	target := normalizeEndpoint(endpoint)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	proxyQuery := url.Values{}
	proxyQuery.Set("endpoint", target)
	fullURL := fmt.Sprintf("%s?%s", p.proxyURL, proxyQuery.Encode())

	return p.httpClient.GetBytes(ctx, fullURL, nil)
}

// normalizeEndpoint guarantees a single leading slash
func normalizeEndpoint(endpoint string) string {
	return "/" + strings.TrimLeft(endpoint, "/")
}
