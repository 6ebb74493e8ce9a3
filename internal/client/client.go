// Package client is a thin HTTP wrapper around a node's gateway, used by
// the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the gateway answers 404.
var ErrNotFound = errors.New("not found")

// Client talks to one node's HTTP gateway.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New creates a client for the gateway at base (e.g. "http://host:8080").
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token for authenticated endpoints.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ─── Auth ────────────────────────────────────────────────────────────────────

func (c *Client) Register(ctx context.Context, username, displayName, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username":     username,
		"display_name": displayName,
		"password":     password,
	}, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out.Token, err
}

// ─── Posts and relations ─────────────────────────────────────────────────────

func (c *Client) CreatePost(ctx context.Context, content string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodPost, "/posts", map[string]string{"content": content}, &out)
	return out, err
}

func (c *Client) GetPost(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, &out)
	return out, err
}

func (c *Client) Repost(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodPost, "/posts/"+id+"/repost", nil, &out)
	return out, err
}

func (c *Client) UserPosts(ctx context.Context, username string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/users/"+username+"/posts", nil, &out)
	return out, err
}

func (c *Client) Feed(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/feed", nil, &out)
	return out, err
}

func (c *Client) Follow(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodPost, "/users/"+username+"/follow", nil, nil)
}

func (c *Client) Unfollow(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+username+"/follow", nil, nil)
}

func (c *Client) Following(ctx context.Context, username string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/users/"+username+"/following", nil, &out)
	return out, err
}

func (c *Client) Followers(ctx context.Context, username string) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/users/"+username+"/followers", nil, &out)
	return out, err
}

// ─── Raw KV and ring ─────────────────────────────────────────────────────────

func (c *Client) KVGet(ctx context.Context, key string) (string, error) {
	var out struct {
		Value string `json:"value"`
	}
	err := c.do(ctx, http.MethodGet, "/kv/"+key, nil, &out)
	return out.Value, err
}

func (c *Client) KVPut(ctx context.Context, key, value string) error {
	return c.do(ctx, http.MethodPut, "/kv/"+key, map[string]string{"value": value}, nil)
}

func (c *Client) KVDelete(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/kv/"+key, nil, nil)
}

func (c *Client) RingStatus(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/ring/status", nil, &out)
	return out, err
}
