package clients

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	timeout   = 15 * time.Second
	userAgent = "loadermarket-notifier/1.0"

	// responseLimit caps how much of a reply body is read.
	responseLimit = 1 << 20
)

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Post(ctx context.Context, url string, body []byte, headers http.Header) (statusCode int, respBody []byte, err error)
}

// HTTPClientAdapter sends JSON payloads over a plain *http.Client.
type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Post(ctx context.Context, url string, body []byte, headers http.Header) (int, []byte, error) {
	req, err := newJSONRequest(ctx, url, body, headers)
	if err != nil {
		return 0, nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("post %s: %w", req.URL.Redacted(), err)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, responseLimit))
	if cErr := resp.Body.Close(); cErr != nil {
		err = errors.Join(err, ErrFailedCloseResponseBody)
	}
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

func newJSONRequest(ctx context.Context, url string, body []byte, headers http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req, nil
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) Post(ctx context.Context, url string, body []byte, headers http.Header) (int, []byte, error) {
	return h.client.Post(ctx, url, body, headers)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// SetClient swaps the transport, mostly for tests.
func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
