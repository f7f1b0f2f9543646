// Package indexer implements txtrack.TransactionSource on the HTTP API of
// the chain indexer, which serves a collection's transactions newest first
// in numbered pages.
package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/salestracker/internal/txtrack"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the indexer answers with a non-2xx
// status code.
var ErrUnexpectedStatus = errors.New("unexpected indexer response status")

// maxErrorBody bounds how much of an error response is kept in the error.
const maxErrorBody = 512

// page is the envelope of a transactions page.
type page struct {
	Data []txtrack.Transaction `json:"data"`
}

// client reads transaction pages from the indexer.
type client struct {
	baseURL    string                // indexer endpoint the collection address is appended to
	httpClient *retryablehttp.Client // transport shared with the other adapters
}

// Ensure client implements the txtrack.TransactionSource interface at compile time.
var _ txtrack.TransactionSource = (*client)(nil)

// FetchTransactions requests GET {baseURL}/{collection}?page={page}.
func (c *client) FetchTransactions(ctx context.Context, collection string, pageNumber int) ([]txtrack.Transaction, error) {
	endpoint, err := url.JoinPath(c.baseURL, collection)
	if err != nil {
		return nil, fmt.Errorf("build indexer url: %w", err)
	}
	endpoint += "?page=" + strconv.Itoa(pageNumber)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	// With retries exhausted the passthrough error handler hands back the
	// last response together with the retry policy error.
	res, err := c.httpClient.Do(req)
	if err != nil && res == nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, res.StatusCode, body)
	}

	var data page
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode transactions page: %w", err)
	}

	return data.Data, nil
}

// NewClient creates an indexer client for the endpoint at baseURL.
func NewClient(baseURL string, httpClient *retryablehttp.Client) *client {
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}
