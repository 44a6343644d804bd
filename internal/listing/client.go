package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the listing service over HTTP with the same contract as
// Service.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, crit Criteria) ([]Listing, error) {
	u := c.BaseURL + "/listings"
	if q := crit.Encode().Encode(); q != "" {
		u += "?" + q
	}

	var out []Listing
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (Listing, error) {
	var l Listing
	if err := c.getJSON(ctx, fmt.Sprintf("%s/listings/%s", c.BaseURL, url.PathEscape(id)), &l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (c *Client) Reviews(ctx context.Context, id string) ([]Review, error) {
	var out []Review
	if err := c.getJSON(ctx, fmt.Sprintf("%s/listings/%s/reviews", c.BaseURL, url.PathEscape(id)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidCriteria, errorMessage(resp.Body))
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func errorMessage(body io.Reader) string {
	var e struct {
		Error   string         `json:"error"`
		Details map[string]any `json:"details"`
	}
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return "bad request"
	}
	if cause, ok := e.Details["cause"].(string); ok && cause != "" {
		return strings.TrimPrefix(cause, ErrInvalidCriteria.Error()+": ")
	}
	return e.Error
}
