package marvel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrUpstream indicates the content provider returned a non-success response.
var ErrUpstream = errors.New("upstream request failed")

// Client performs signed GET calls against the content provider.
type Client struct {
	baseURL string
	signer  *Signer
	http    *http.Client
}

// NewClient constructs a Client. httpClient may be nil, in which case
// http.DefaultClient is used.
func NewClient(baseURL string, signer *Signer, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, signer: signer, http: httpClient}
}

// Get issues a signed GET to path, merging the operation parameters with the
// authentication triple, and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	query := c.signer.AuthParams()
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("marvel: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marvel: GET %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUpstream, path, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("marvel: read response for %s: %w", path, err)
	}
	return body, nil
}
