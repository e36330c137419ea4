package restsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

// Client is the one HTTP transport behind every resource service. It
// attaches the bearer token from the session store, tags each request with
// an X-Request-ID, translates failures into *core.APIError and purges the
// session on a 401 (invoking the expiry hook exactly once per failed call).
type Client struct {
	http             *http.Client
	baseURL          string
	store            auth.Store
	log              core.Logger
	onSessionExpired func()
}

var _ core.APIClient = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests, custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionExpiredHook installs the login-redirect analogue invoked after
// a 401 purges the stored session.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

func NewClient(conf *core.Config, store auth.Store, log core.Logger, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: conf.API.Timeout},
		baseURL: strings.TrimRight(conf.API.BaseURL, "/"),
		store:   store,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// listEnvelope is the paginated shape some list endpoints use instead of a
// bare array.
type listEnvelope struct {
	Content       json.RawMessage `json:"content"`
	TotalElements int             `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

// List fetches a collection into out, resolving the payload-shape
// ambiguity (raw array vs {content: [...]} envelope) right here so callers
// never probe response shapes themselves.
func (c *Client) List(ctx context.Context, path string, query url.Values, out interface{}) (*core.PageMeta, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(raw)
	switch {
	case len(body) == 0 || bytes.Equal(body, []byte("null")):
		return nil, nil
	case body[0] == '[':
		if err := json.Unmarshal(body, out); err != nil {
			return nil, errors.Wrap(err, "decoding list response")
		}
		return nil, nil
	case body[0] == '{':
		var env listEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, errors.Wrap(err, "decoding list envelope")
		}
		if env.Content == nil {
			return nil, errors.New("unexpected list payload shape")
		}
		if err := json.Unmarshal(env.Content, out); err != nil {
			return nil, errors.Wrap(err, "decoding list envelope content")
		}
		meta := &core.PageMeta{
			TotalElements: env.TotalElements,
			TotalPages:    env.TotalPages,
			Number:        env.Number,
			Size:          env.Size,
		}
		return meta, nil
	default:
		return nil, errors.New("unexpected list payload shape")
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return errors.Wrapf(err, "building request URL for %s", path)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	sess, err := c.store.Load()
	if err != nil {
		c.log.Warn("session load failed", err)
	}
	authed := sess.Authenticated()
	if authed {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return core.NewAPIError(0, "request never reached the server", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.NewAPIError(0, "reading response body", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// session expiry: purge credentials once, no retry, no refresh
		c.expireSession()
		return core.NewAPIError(resp.StatusCode, "session expired", nil)
	}
	if resp.StatusCode >= 400 {
		return core.NewAPIError(resp.StatusCode, errorMessage(resp.StatusCode, data), nil)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

func (c *Client) expireSession() {
	if err := c.store.Clear(); err != nil {
		c.log.Error("clearing expired session failed", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// errorMessage surfaces the server-provided message when there is one,
// falling back to the standard status text.
func errorMessage(code int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(code)
}
