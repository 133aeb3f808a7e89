package api

import (
	"context"
	"net/http"
)

// Login authenticates with email and password. In bearer deployments a
// token present in a successful response is stored as the new credential;
// in cookie deployments the jar picks up the server-set session cookie.
func (c *Client) Login(ctx context.Context, email, password string) *LoginResult {
	out := &LoginResult{}
	c.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, out)

	c.storeIssuedToken(ctx, &out.Result, out.Token)
	return out
}

// Register creates an account. Successful registration logs the user in,
// so any issued token is stored the same way Login stores it.
func (c *Client) Register(ctx context.Context, name, email, password, password2 string) *RegisterResult {
	out := &RegisterResult{}
	c.postJSON(ctx, "/auth/register", map[string]string{
		"name":      name,
		"email":     email,
		"password":  password,
		"password2": password2,
	}, out)

	c.storeIssuedToken(ctx, &out.Result, out.Token)
	return out
}

// Logout tells the server to end the session and drops the local
// credential regardless of the server outcome.
func (c *Client) Logout(ctx context.Context) *Result {
	out := &Result{}
	c.postJSON(ctx, "/auth/logout", struct{}{}, out)

	if err := c.store.Clear(); err != nil {
		c.log.Error(ctx, "clearing credential on logout", "error", err)
	}
	return out
}

// Me revalidates the held credential against the server and returns the
// current user.
func (c *Client) Me(ctx context.Context) *MeResult {
	out := &MeResult{}
	c.get(ctx, "/auth/me", out)
	return out
}

// Ping reports server reachability for the online-status watcher. Any
// transport-level failure maps to ErrUnavailable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/health"), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return ErrUnavailable
	}
	return nil
}

func (c *Client) storeIssuedToken(ctx context.Context, res *Result, token string) {
	if !res.OK || c.transport != TransportBearer || token == "" {
		return
	}
	if err := c.store.Set(token); err != nil {
		c.log.Error(ctx, "persisting credential", "error", err)
	}
}
