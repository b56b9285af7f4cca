package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Client translates each domain action into exactly one HTTP request against
// the Event-Manager API. Operations are stateless except for reading the
// session store's current credentials at call time, so a token change is
// visible to the next call. No retries, ever: every failure is terminal for
// that single action.
type Client struct {
	baseURL string
	http    *http.Client
	session ports.SessionStore
	log     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, session ports.SessionStore, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if authed {
		// Missing token is not an error here: the request goes out without a
		// credential and the server answers 401.
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	c.log.Debug("api request",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.String("request_id", req.Header.Get("X-Request-ID")),
	)

	return resp, nil
}

func (c *Client) decode(resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

// apiError extracts the server's error/detail message from a non-2xx body,
// falling back to the per-operation generic text, and tags it with kind.
func apiError(resp *http.Response, kind error, fallback string) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = fallback
	}

	return fmt.Errorf("%w: %s", kind, msg)
}
