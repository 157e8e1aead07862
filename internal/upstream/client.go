package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/config"
)

// ctxKey is the private context key type for the upstream token.
type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context carrying the upstream bearer token. The client
// never reads ambient state; every request's identity arrives through its
// context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom extracts the upstream token from the context, "" if absent.
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// Client is the single point of HTTP access to the platform. It is stateless
// between calls; concurrent use is safe.
type Client struct {
	httpClient       *http.Client
	adminBase        string
	supportBase      string
	verificationBase string
	log              zerolog.Logger
}

// New creates a Client for the configured platform origins.
func New(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		httpClient:       &http.Client{Timeout: cfg.UpstreamTimeout},
		adminBase:        strings.TrimRight(cfg.AdminAPIBaseURL, "/"),
		supportBase:      strings.TrimRight(cfg.SupportAPIBaseURL, "/"),
		verificationBase: strings.TrimRight(cfg.VerificationAPIBaseURL, "/"),
		log:              log,
	}
}

// envelope is the common discriminated wrapper of every platform response.
// Resource-specific responses embed it and add their own collection field.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *envelope) status() (bool, string) { return e.Success, e.Message }

// result is implemented by every decoded response via the embedded envelope.
type result interface {
	status() (bool, string)
}

// listQuery builds the standard page/limit/search query string.
func listQuery(page, limit int, search string) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	return q
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, base, path string, query url.Values, out result) error {
	return c.call(ctx, http.MethodGet, joinURL(base, path, query), "", nil, out)
}

// sendJSON issues a mutation with a JSON body and decodes the response into out.
func (c *Client) sendJSON(ctx context.Context, method, base, path string, body any, out result) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.call(ctx, method, joinURL(base, path, nil), "application/json", reader, out)
}

// sendForm issues a mutation with a multipart body and decodes the response
// into out. The form is closed here.
func (c *Client) sendForm(ctx context.Context, method, base, path string, form *Form, out result) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	return c.call(ctx, method, joinURL(base, path, nil), contentType, body, out)
}

// call performs one HTTP exchange against the platform and classifies the
// outcome into the error taxonomy: ErrSessionExpired on 401/403 no matter
// what the body says, Rejection for any other refusal (including a 2xx with
// success=false), ErrUnavailable for transport failures.
func (c *Client) call(ctx context.Context, method, rawURL, contentType string, body io.Reader, out result) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("url", rawURL).Msg("platform unreachable")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrSessionExpired
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	decodeErr := json.Unmarshal(data, out)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := ""
		if decodeErr == nil {
			_, msg = out.status()
		}
		return &Rejection{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if ok, msg := out.status(); !ok {
		return &Rejection{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}

func joinURL(base, path string, query url.Values) string {
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
