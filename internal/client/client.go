// Package client provides an HTTP client for the artLibro community API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/kdh990315/artlibro-cli/internal/comment"
	"github.com/kdh990315/artlibro-cli/internal/post"
)

// Client is an HTTP client for the artLibro API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. The timeout bounds every call, so a
// request that never resolves cannot wedge the caller.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Profile is the authenticated user as reported by GET /api/me.
type Profile struct {
	Name string `json:"name"`
}

// CreateComment posts a comment on a post.
func (c *Client) CreateComment(postID, text string) (comment.CreatedComment, error) {
	body := map[string]string{"comment": text}
	var created comment.CreatedComment
	path := fmt.Sprintf("/api/posts/%s/comments", url.PathEscape(postID))
	if err := c.post(path, body, &created); err != nil {
		return comment.CreatedComment{}, err
	}
	return created, nil
}

// DeleteComment removes a comment. The server decides whether the
// caller may delete it.
func (c *Client) DeleteComment(commentID string) error {
	return c.doDelete(fmt.Sprintf("/api/comments/%s", url.PathEscape(commentID)))
}

// GetPost returns the summary for a post.
func (c *Client) GetPost(postID string) (*post.Summary, error) {
	var s post.Summary
	if err := c.get(fmt.Sprintf("/api/posts/%s", url.PathEscape(postID)), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Me returns the profile for the configured token.
func (c *Client) Me() (*Profile, error) {
	var p Profile
	if err := c.get("/api/me", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request with auth and request-id headers and
// handles error responses.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
