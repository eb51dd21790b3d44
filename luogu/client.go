package luogu

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/a48zhang/luogu-mcp/internal"
)

// DefaultBaseURL is where problem pages live.
const DefaultBaseURL = "https://www.luogu.com.cn"

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches raw problem documents. It holds no per-request state, so a
// single client may serve any number of concurrent calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	retries    int
	timeout    time.Duration
	logger     *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests to
// point at a fixture server).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL overrides the problem site base URL
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent sent with page fetches
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// WithRetries sets the maximum number of fetch retries
func WithRetries(n int) ClientOption {
	return func(client *Client) {
		client.retries = n
	}
}

// WithTimeout sets the per-fetch timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.timeout = d
	}
}

// WithLogger sets the client logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a page-fetch client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		retries:   2,
		timeout:   30 * time.Second,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = c.retries
		retryClient.RetryWaitMin = 1 * time.Second
		retryClient.RetryWaitMax = 10 * time.Second
		retryClient.HTTPClient.Timeout = c.timeout
		retryClient.Logger = nil

		httpClient := retryClient.StandardClient()
		httpClient.Transport = &internal.HeaderTransport{
			Base: httpClient.Transport,
			Headers: http.Header{
				"User-Agent":      []string{c.userAgent},
				"Accept-Language": []string{"zh-CN,zh;q=0.9,en;q=0.8"},
			},
		}
		c.httpClient = httpClient
	}

	return c
}

// ProblemURL returns the page URL for a problem id
func (c *Client) ProblemURL(id string) string {
	return c.baseURL + "/problem/" + id
}

// FetchDocument retrieves the raw document at url. A non-2xx upstream status
// or a network fault is a transport error; the body is never partially
// returned on failure.
func (c *Client) FetchDocument(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", url, err)
	}

	c.logger.Debug("fetching document", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}

	return string(body), nil
}

// FetchProblem fetches and extracts the problem with the given id, returning
// the record and the page URL it came from.
func (c *Client) FetchProblem(ctx context.Context, id string) (Problem, string, error) {
	url := c.ProblemURL(id)
	doc, err := c.FetchDocument(ctx, url)
	if err != nil {
		return Problem{}, url, err
	}
	return Extract(doc), url, nil
}
