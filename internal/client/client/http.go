package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/netx"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 30 * time.Second

	// maxResponseBody caps how much of a response is buffered.
	maxResponseBody = 4 << 20
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	metrics *Metrics
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		if d > 0 {
			h.http.Timeout = d
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(h *HTTPClient) { h.metrics = m }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	if _, err := netx.JoinURL(baseURL, ""); err != nil {
		return nil, err
	}

	h := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = NewMetrics(nil)
	}
	return h, nil
}

// call describes one exchange. endpoint is the route template used for
// metrics and logs; path is the concrete request path.
type call struct {
	method   string
	endpoint string
	path     string
	auth     bool
	body     any
	out      any
}

func (h *HTTPClient) do(ctx context.Context, c call) error {
	reqID := uuid.NewString()
	log := h.log.With("method", c.method, "endpoint", c.endpoint, "request_id", reqID)

	var token string
	if c.auth {
		t, ok, err := h.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("read access token: %w", err)
		}
		if !ok {
			h.metrics.suppressed.WithLabelValues(c.endpoint).Inc()
			log.Debug(ctx, "request suppressed, no access token")
			return ErrUnauthenticated
		}
		token = t
	}

	var body io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	target, err := netx.JoinURL(h.baseURL, c.path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, c.method, target, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", c.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	start := time.Now()
	resp, err := h.http.Do(req)
	h.metrics.duration.WithLabelValues(c.method, c.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.requests.WithLabelValues(c.method, c.endpoint, "error").Inc()
		log.Debug(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, c.method, c.endpoint, err)
	}
	defer resp.Body.Close()

	h.metrics.requests.WithLabelValues(c.method, c.endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read %s response: %w", ErrUnavailable, c.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{
			Method:     c.method,
			Path:       c.path,
			StatusCode: resp.StatusCode,
			Body:       raw,
		}
	}

	if c.out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, c.out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.endpoint, err)
	}
	return nil
}

func contactPath(id int64) string {
	return "/contacts/" + strconv.FormatInt(id, 10) + "/"
}

func (h *HTTPClient) Register(ctx context.Context, draft models.RegistrationDraft) (models.TokenPair, error) {
	var out models.TokenPair
	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/accounts/register/",
		path:     "/accounts/register/",
		body:     draft,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) Login(ctx context.Context, in models.LoginRequest) (models.TokenPair, error) {
	var out models.TokenPair
	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/accounts/login/",
		path:     "/accounts/login/",
		body:     in,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) VerifyEmail(ctx context.Context, token string) error {
	return h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/accounts/verify-email/{token}",
		path:     "/accounts/verify-email/" + url.PathEscape(token),
	})
}

func (h *HTTPClient) RequestPasswordReset(ctx context.Context, in models.PasswordResetRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/accounts/reset-password/",
		path:     "/accounts/reset-password/",
		body:     in,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	err := h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/contacts/",
		path:     "/contacts/",
		auth:     true,
		out:      &out,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Contact{}
	}
	return out, nil
}

func (h *HTTPClient) CreateContact(ctx context.Context, in models.ContactInput) (models.Contact, error) {
	var out models.Contact
	err := h.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/contacts/",
		path:     "/contacts/",
		auth:     true,
		body:     in,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	var out models.Contact
	err := h.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/contacts/{id}/",
		path:     contactPath(id),
		auth:     true,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) UpdateContact(ctx context.Context, id int64, in models.ContactInput) (models.Contact, error) {
	var out models.Contact
	err := h.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/contacts/{id}/",
		path:     contactPath(id),
		auth:     true,
		body:     in,
		out:      &out,
	})
	return out, err
}

func (h *HTTPClient) DeleteContact(ctx context.Context, id int64) error {
	return h.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/contacts/{id}/",
		path:     contactPath(id),
		auth:     true,
	})
}

var _ Client = (*HTTPClient)(nil)
