package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient returns a retrying client with the given per-attempt timeout.
func NewHTTPClient(timeout time.Duration, retryMax int) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = nil
	// Hand back the last response instead of a "giving up" error so callers
	// see the final status code.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// StatusError is returned by GetBytes for non-200 responses.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Status)
}

// GetBytes fetches url and returns the body of a 200 response.
func GetBytes(ctx context.Context, client *retryablehttp.Client, url string, header http.Header) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
