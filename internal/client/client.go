package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SonicSavor/pkg/response"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnauthorized = errors.New("unauthorized, please log in again")

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// Client talks to the ordering backend. Every non-2xx reply is returned as a
// *response.Error carrying the status and the server's detail message.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
	tokens  TokenStore
	timeout time.Duration
}

func New(baseURL string, log *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
		tokens:  NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	auth        bool
}

func jsonBody(v interface{}) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, r.body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	if r.auth {
		token, err := c.tokens.Load()
		if err != nil || token == "" {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": r.method,
			"path":   r.path,
			"error":  err.Error(),
		}).Warn("Backend request failed")
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{
		"method":     r.method,
		"path":       r.path,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("Backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, payload)
		if r.auth && resp.StatusCode == http.StatusUnauthorized {
			if err := c.tokens.Clear(); err != nil {
				c.log.WithField("error", err.Error()).Warn("Failed to clear stored token")
			}
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
		}
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.method, r.path, err)
	}
	return nil
}

type errorBody struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeError reads the server message from either a {"detail"} or an
// {"error"} body. The message is empty when the body carries none.
func decodeError(status int, payload []byte) error {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return &response.Error{Code: status, Err: errors.New("")}
	}

	msg := body.Detail
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = body.Message
	}
	return &response.Error{Code: status, Err: errors.New(msg)}
}
