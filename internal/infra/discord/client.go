// Package discord implements dispatch.Sink on the Discord REST API: every
// notification becomes a "create message" call on the destination channel.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/salestracker/internal/dispatch"
	"github.com/gabapcia/salestracker/internal/notification"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultAPIURL is the base of the Discord REST API.
const DefaultAPIURL = "https://discord.com/api/v10"

// ErrUnexpectedStatus is returned when Discord does not answer 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected discord response status")

// maxErrorBody bounds how much of an error response is kept in the error.
const maxErrorBody = 512

// client posts messages as a bot user.
type client struct {
	apiURL     string                // REST API base, e.g. DefaultAPIURL
	botToken   string                // sent as "Authorization: Bot <token>"
	httpClient *retryablehttp.Client // transport shared with the other adapters
}

// Ensure client implements the dispatch.Sink interface at compile time.
var _ dispatch.Sink = (*client)(nil)

// Send posts msg to POST {apiURL}/channels/{channelID}/messages. Only a 200
// response counts as delivered.
func (c *client) Send(ctx context.Context, channelID string, msg notification.Message) error {
	endpoint, err := url.JoinPath(c.apiURL, "channels", channelID, "messages")
	if err != nil {
		return fmt.Errorf("build discord url: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	// With retries exhausted the passthrough error handler hands back the
	// last response together with the retry policy error.
	res, err := c.httpClient.Do(req)
	if err != nil && res == nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, res.StatusCode, detail)
	}

	_, _ = io.Copy(io.Discard, res.Body)

	return nil
}

// NewClient creates a Discord client authenticating with botToken against
// the REST API at apiURL.
func NewClient(apiURL, botToken string, httpClient *retryablehttp.Client) *client {
	return &client{
		apiURL:     apiURL,
		botToken:   botToken,
		httpClient: httpClient,
	}
}
