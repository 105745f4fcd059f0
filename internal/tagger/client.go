package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultMaxRetryAttempts is how often a failed tagging call is retried
// before giving up.
const DefaultMaxRetryAttempts = 3

// HTTPClient implements Client against an HTTP tagging API.
type HTTPClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a tagger client for the given base URL. The API key
// may be empty for unauthenticated deployments.
func NewHTTPClient(baseURL, apiKey string, retryAttempts uint) *HTTPClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &HTTPClient{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (c *HTTPClient) Close() error {
	return c.httpClient.Close()
}

type tagRequest struct {
	Words []string `json:"words"`
}

type tagResponse struct {
	Results []TaggedWord `json:"results"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// TagWords requests tags for the given words. The service is expected to
// return one result per input word, in order.
func (c *HTTPClient) TagWords(ctx context.Context, words []string) ([]TaggedWord, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var result []TaggedWord
	if err := retry.Do(
		func() error {
			tagged, err := c.tagWords(ctx, words)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = tagged
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) tagWords(ctx context.Context, words []string) ([]TaggedWord, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(tagRequest{Words: words}).
		Post("/v1/tag")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	// Decode the body directly instead of SetResult: some deployments serve
	// JSON without a Content-Type header, which skips resty's auto-unmarshal.
	var responseBody tagResponse
	if err := json.Unmarshal(response.Bytes(), &responseBody); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(tag response) > %w", err)
	}
	if len(responseBody.Results) != len(words) {
		return nil, fmt.Errorf("tagger returned %d results for %d words", len(responseBody.Results), len(words))
	}
	return responseBody.Results, nil
}
