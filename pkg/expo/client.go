// Package expo is a minimal client for the Expo push notification service.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	DefaultBaseURL = "https://exp.host/--/api/v2"

	// MaxMessagesPerRequest is the service limit for a single send request.
	MaxMessagesPerRequest = 100
	// MaxReceiptIDsPerRequest is the service limit for a single receipts request.
	MaxReceiptIDsPerRequest = 300
)

// Message is an Expo push message.
type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body"`
	Sound string            `json:"sound,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Details carries the error code of a failed ticket or receipt.
type Details struct {
	Error string `json:"error,omitempty"`
}

// Ticket is the per-message answer to a send request.
type Ticket struct {
	Status  string  `json:"status"`
	ID      string  `json:"id,omitempty"`
	Message string  `json:"message,omitempty"`
	Details Details `json:"details,omitempty"`
}

// Receipt is the delivery outcome of a ticket.
type Receipt struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Details Details `json:"details,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type sendResponse struct {
	Data   []Ticket   `json:"data"`
	Errors []apiError `json:"errors"`
}

type receiptsRequest struct {
	IDs []string `json:"ids"`
}

type receiptsResponse struct {
	Data   map[string]Receipt `json:"data"`
	Errors []apiError         `json:"errors"`
}

// Client talks to the Expo push API.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
	attempts    uint
	delay       time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithAccessToken enables enhanced push security.
func WithAccessToken(token string) Option {
	return func(c *Client) { c.accessToken = token }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRetry sets the number of attempts and the initial delay between them.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// NewClient creates a new Expo client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Send pushes the messages and returns one ticket per message, in order.
func (c *Client) Send(ctx context.Context, messages []Message) ([]Ticket, error) {
	if len(messages) > MaxMessagesPerRequest {
		return nil, fmt.Errorf("too many messages: %d > %d", len(messages), MaxMessagesPerRequest)
	}

	var resp sendResponse
	if err := c.post(ctx, "/push/send", messages, &resp); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("expo send: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}

	return resp.Data, nil
}

// Receipts fetches the receipts available for the ticket ids.
func (c *Client) Receipts(ctx context.Context, ids []string) (map[string]Receipt, error) {
	if len(ids) > MaxReceiptIDsPerRequest {
		return nil, fmt.Errorf("too many receipt ids: %d > %d", len(ids), MaxReceiptIDsPerRequest)
	}

	var resp receiptsResponse
	if err := c.post(ctx, "/push/getReceipts", receiptsRequest{IDs: ids}, &resp); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("expo receipts: %s: %s", resp.Errors[0].Code, resp.Errors[0].Message)
	}

	return resp.Data, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create request: %w", err))
			}

			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")
			if c.accessToken != "" {
				req.Header.Set("Authorization", "Bearer "+c.accessToken)
			}

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}

			switch {
			case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
				return fmt.Errorf("HTTP %d", resp.StatusCode)
			case resp.StatusCode >= 400:
				return retry.Unrecoverable(fmt.Errorf("HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(data)))
			}

			if err := json.Unmarshal(data, out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode response: %w", err))
			}

			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(30*time.Second),
		retry.MaxJitter(c.delay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			zlog.Logger.Warn().Err(err).Uint("attempt", n).Str("path", path).Msg("retrying expo request")
		}),
	)
}
