// Package fetcher retrieves JSON documents over HTTP with a bounded
// timeout and maps transport failures onto the application taxonomy.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsonlens/internal/errors"
	"github.com/mcncl/jsonlens/internal/models"
	"github.com/mcncl/jsonlens/internal/parser"
)

const (
	// DefaultTimeout bounds a fetch so the caller never blocks
	// indefinitely on a slow server.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies the client; some servers reject
	// requests without one.
	DefaultUserAgent = "jsonlens/0.1.0"

	// DefaultAccept advertises the expected media type. The response
	// body is parsed regardless of what the server declares.
	DefaultAccept = "application/json"

	maxResponseSize = 1 << 20 // 1 MiB
)

// Fetcher retrieves URL contents with a timeout and response size limit.
type Fetcher struct {
	client    *http.Client
	userAgent string
	accept    string
}

// New creates a Fetcher with the given timeout. A zero timeout means
// DefaultTimeout. Empty userAgent or accept fall back to the defaults.
func New(timeout time.Duration, userAgent, accept string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if accept == "" {
		accept = DefaultAccept
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		accept:    accept,
	}
}

// Fetch issues a GET for rawURL and returns the response body,
// limited to 1 MiB.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewFetchError(
			fmt.Sprintf("invalid URL %q", rawURL),
			fmt.Errorf("%w: %v", errors.ErrTransport, err),
		)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", f.accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportFailure(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.NewFetchError(
			fmt.Sprintf("fetch %q failed", rawURL),
			&errors.StatusError{Code: resp.StatusCode},
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewFetchError(
			"failed to read response body",
			fmt.Errorf("%w: %v", errors.ErrTransport, err),
		)
	}
	return body, nil
}

// FetchAndParse retrieves rawURL and parses the body as a single JSON
// document. The declared Content-Type is ignored: only a parse failure
// fails the call.
func (f *Fetcher) FetchAndParse(ctx context.Context, rawURL string) (models.Value, error) {
	body, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return parser.ParseBytes(body)
}

// classifyTransportFailure distinguishes timeouts and connection
// problems from other transport errors so each gets its own message.
func classifyTransportFailure(rawURL string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewFetchError(
			fmt.Sprintf("fetch %q timed out", rawURL),
			errors.ErrTimeout,
		)
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return errors.NewFetchError(
				fmt.Sprintf("fetch %q timed out", rawURL),
				errors.ErrTimeout,
			)
		}
		var opErr *net.OpError
		if stderrors.As(urlErr.Err, &opErr) {
			return errors.NewFetchError(
				fmt.Sprintf("connection to %q failed", rawURL),
				fmt.Errorf("%w: %v", errors.ErrConnectionFailure, opErr),
			)
		}
		var dnsErr *net.DNSError
		if stderrors.As(urlErr.Err, &dnsErr) {
			return errors.NewFetchError(
				fmt.Sprintf("could not resolve host for %q", rawURL),
				fmt.Errorf("%w: %v", errors.ErrConnectionFailure, dnsErr),
			)
		}
	}

	return errors.NewFetchError(
		fmt.Sprintf("fetch %q failed", rawURL),
		fmt.Errorf("%w: %v", errors.ErrTransport, err),
	)
}
