package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/session"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
	"github.com/google/uuid"
)

// AuthTransport selects how the credential travels on the wire. The choice
// is made once per deployment, at construction time, never both.
type AuthTransport string

const (
	// TransportBearer stores the token issued by login/register and sends
	// it as an Authorization header on every request.
	TransportBearer AuthTransport = "bearer"
	// TransportCookie relies on a server-set session cookie held in the
	// transport's cookie jar; token fields in responses are ignored.
	TransportCookie AuthTransport = "cookie"
)

// Client is the HTTP implementation of Gateway and the single chokepoint
// for all requests.
type Client struct {
	baseURL   string
	transport AuthTransport
	store     session.Store
	http      *http.Client
	log       logging.Logger
}

var _ Gateway = (*Client)(nil)

// New builds a Client for the given deployment. baseURL is the API root
// (no trailing slash required); transport picks the credential scheme. In
// cookie mode the underlying http.Client gets a cookie jar so server-set
// session cookies are replayed automatically.
func New(baseURL string, transport AuthTransport, timeout time.Duration, store session.Store, log logging.Logger) (*Client, error) {
	hc := &http.Client{Timeout: timeout}

	switch transport {
	case TransportBearer:
	case TransportCookie:
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		hc.Jar = jar
	default:
		return nil, fmt.Errorf("unknown auth transport %q", transport)
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		store:     store,
		http:      hc,
		log:       log,
	}, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// attachCredential adds the bearer header when one is held. In cookie mode
// the jar does the work and nothing is added here.
func (c *Client) attachCredential(req *http.Request) {
	if c.transport != TransportBearer {
		return
	}
	if token, ok := c.store.Get(); ok {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
}

// do performs one request and populates out. Every failure mode ends up in
// the normalized result; do never returns an error and never panics.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out resulter) {
	res := out.base()

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		res.fail("invalid request: " + err.Error())
		return
	}

	// Multipart bodies pass their own boundary-bearing content type;
	// forcing JSON here would break the upload.
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	c.attachCredential(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		res.fail("request failed: " + err.Error())
		return
	}
	defer resp.Body.Close()

	c.decode(ctx, resp, out)
	c.reactToAuthFailure(ctx, resp.StatusCode, res)

	c.log.Debug(ctx, "request finished", "method", method, "path", path,
		"status", resp.StatusCode, "ok", res.OK)
}

// decode normalizes the response body into out. JSON bodies are taken
// verbatim; when the server omits the success flag it is inferred from the
// HTTP status. Non-JSON bodies collapse to a bare success/failure.
func (c *Client) decode(ctx context.Context, resp *http.Response, out resulter) {
	res := out.base()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		res.fail("reading response: " + err.Error())
		return
	}

	statusOK := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if statusOK {
			res.OK = true
			return
		}
		res.fail(resp.Status)
		return
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn(ctx, "malformed response body", "status", resp.StatusCode, "error", err)
		res.fail("malformed response: " + err.Error())
		return
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		if _, has := probe["success"]; !has {
			res.OK = statusOK
		}
	}

	if !res.OK && res.Message == "" {
		res.Message = resp.Status
	}
}

// reactToAuthFailure is the one piece of non-obvious policy in the client:
// a redirect to the login view, or a 401 status, means the held credential
// is stale, and the store is cleared before the result reaches the caller.
func (c *Client) reactToAuthFailure(ctx context.Context, statusCode int, res *Result) {
	if res.Redirect != common.LoginRedirectPath && statusCode != http.StatusUnauthorized {
		return
	}
	if err := c.store.Clear(); err != nil {
		c.log.Error(ctx, "clearing stale credential", "error", err)
	}
}

// postJSON marshals payload and issues a POST. A nil payload sends an
// empty JSON body.
func (c *Client) postJSON(ctx context.Context, path string, payload any, out resulter) {
	body, err := json.Marshal(payload)
	if err != nil {
		out.base().fail("encoding request: " + err.Error())
		return
	}
	c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

func (c *Client) get(ctx context.Context, path string, out resulter) {
	c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) delete(ctx context.Context, path string, out resulter) {
	c.do(ctx, http.MethodDelete, path, nil, "", out)
}
