package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"railsearch/internal/schedule"

	"github.com/imroc/req/v3"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// ErrUnreachable marks a transport-level failure, as opposed to an HTTP
// error status reported by a reachable server.
var ErrUnreachable = errors.New("schedule service unreachable")

// StatusError is a non-2xx response from the schedule service.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Text)
}

var (
	searchCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "upstream_search_total",
		Help: "Number of search requests issued to the schedule service",
	})
	searchErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_search_errors_total",
		Help: "Number of search requests that failed, by kind",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(searchCount, searchErrorCount)
}

// Client queries the schedule search API.
type Client struct {
	baseURL    string
	httpClient *req.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, limiter *rate.Limiter, logger *log.Logger) *Client {
	httpClient := req.C().
		SetTimeout(timeout).
		SetUserAgent("railsearch")

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// Search issues exactly one GET against the search endpoint and returns the
// matching trips in the order the service listed them. No retries, no
// re-sorting. A nil slice with a nil error means the service matched
// nothing.
func (c *Client) Search(ctx context.Context, sourceCode, destinationCode string) ([]schedule.TripResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	searchCount.Inc()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("sourceCode", sourceCode).
		SetQueryParam("destinationCode", destinationCode).
		SetHeader("Accept", "application/json").
		Get(c.baseURL + "/search/by-code")
	if err != nil {
		searchErrorCount.WithLabelValues("transport").Inc()
		c.logger.Printf("upstream: search %s -> %s failed: %v", sourceCode, destinationCode, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		searchErrorCount.WithLabelValues("status").Inc()
		return nil, &StatusError{Code: resp.StatusCode, Text: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		searchErrorCount.WithLabelValues("transport").Inc()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var trips []schedule.TripResult
	if err := json.Unmarshal(body, &trips); err != nil {
		searchErrorCount.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(trips) == 0 {
		return nil, nil
	}
	return trips, nil
}

// statusText pulls the reason phrase out of the status line, falling back
// to the canonical text for the code.
func statusText(resp *req.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
