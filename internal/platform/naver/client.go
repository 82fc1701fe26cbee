// Package naver calls the Naver search open API for books and blog
// reviews.
package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"libfinder/internal/platform/upstream"
)

const apiName = "naver"

var ErrNotConfigured = errors.New("naver: client id/secret not configured")

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	MaxRetries   int
	Backoff      time.Duration
}

type Client struct {
	transport    *upstream.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewClient(cfg Config) *Client {
	return &Client{
		transport: upstream.New(apiName, upstream.Options{
			RPS:        10,
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.Backoff,
		}),
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

// SearchQuery is shared by book and blog search. Start is 1-based.
type SearchQuery struct {
	Query   string
	Display int
	Start   int
	Sort    string
}

func (q SearchQuery) values() url.Values {
	v := url.Values{}
	v.Set("query", q.Query)
	if q.Display > 0 {
		v.Set("display", strconv.Itoa(min(q.Display, 100)))
	}
	if q.Start > 0 {
		v.Set("start", strconv.Itoa(q.Start))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

type BookItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Discount    string `json:"discount"`
	Publisher   string `json:"publisher"`
	PubDate     string `json:"pubdate"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
}

// ISBN13 picks the 13-digit number out of the "isbn10 isbn13" field.
func (b BookItem) ISBN13() string {
	for _, f := range strings.Fields(b.ISBN) {
		if len(f) == 13 {
			return f
		}
	}
	return ""
}

// ISBN10 returns the 10-digit number when present.
func (b BookItem) ISBN10() string {
	for _, f := range strings.Fields(b.ISBN) {
		if len(f) == 10 {
			return f
		}
	}
	return ""
}

type BlogItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	BloggerName string `json:"bloggername"`
	BloggerLink string `json:"bloggerlink"`
	PostDate    string `json:"postdate"`
}

type SearchResult[T any] struct {
	Total   int `json:"total"`
	Start   int `json:"start"`
	Display int `json:"display"`
	Items   []T `json:"items"`
}

func (c *Client) SearchBooks(ctx context.Context, q SearchQuery) (SearchResult[BookItem], error) {
	var res SearchResult[BookItem]
	resp, err := c.Raw(ctx, "book", q.values())
	if err != nil {
		return res, err
	}
	if resp.Status != http.StatusOK {
		return res, &upstream.StatusError{API: apiName, Status: resp.Status}
	}
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		return res, fmt.Errorf("naver book: decode: %w", err)
	}
	return res, nil
}

func (c *Client) SearchBlogs(ctx context.Context, q SearchQuery) (SearchResult[BlogItem], error) {
	var res SearchResult[BlogItem]
	resp, err := c.Raw(ctx, "blog", q.values())
	if err != nil {
		return res, err
	}
	if resp.Status != http.StatusOK {
		return res, &upstream.StatusError{API: apiName, Status: resp.Status}
	}
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		return res, fmt.Errorf("naver blog: decode: %w", err)
	}
	return res, nil
}

// Raw runs a search against /v1/search/{kind}.json and returns the
// upstream answer untouched. Used by the same-origin proxy.
func (c *Client) Raw(ctx context.Context, kind string, params url.Values) (upstream.Response, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return upstream.Response{}, ErrNotConfigured
	}
	u := fmt.Sprintf("%s/v1/search/%s.json?%s", c.baseURL, kind, params.Encode())
	return c.transport.Get(ctx, kind, u, http.Header{
		"X-Naver-Client-Id":     {c.clientID},
		"X-Naver-Client-Secret": {c.clientSecret},
	})
}
