// Package data4library is a client for the public library open-data API
// (data4library.kr): holding-library search, per-library loan status,
// popular loans and book detail.
package data4library

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

	"libfinder/internal/cache"
	"libfinder/internal/platform/upstream"
)

const (
	apiName     = "data4library"
	MaxPageSize = 100
)

var (
	ErrNotFound = errors.New("data4library: not found")
	ErrAPI      = errors.New("data4library: api error")
)

type Config struct {
	BaseURL    string
	AuthKey    string
	RPS        int
	MaxRetries int
	Timeout    time.Duration
	Backoff    time.Duration
}

type Client struct {
	transport *upstream.Client
	baseURL   string
	authKey   string
	cache     *cache.Memory[[]byte]
}

func NewClient(cfg Config) *Client {
	return &Client{
		transport: upstream.New(apiName, upstream.Options{
			RPS:        cfg.RPS,
			MaxRetries: cfg.MaxRetries,
			Timeout:    cfg.Timeout,
			Backoff:    cfg.Backoff,
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		authKey: cfg.AuthKey,
		cache:   cache.NewMemory[[]byte](apiName),
	}
}

// LibrariesByBook lists libraries holding isbn within a region.
func (c *Client) LibrariesByBook(ctx context.Context, q LibraryQuery) (LibraryPage, error) {
	params := url.Values{}
	params.Set("isbn", q.ISBN)
	if q.Region != "" {
		params.Set("region", q.Region)
	}
	if q.DtlRegion != "" {
		params.Set("dtl_region", q.DtlRegion)
	}
	params.Set("pageNo", strconv.Itoa(max(q.PageNo, 1)))
	params.Set("pageSize", strconv.Itoa(clampPageSize(q.PageSize)))

	var env envelope[libSrchByBookResponse]
	if err := c.getJSON(ctx, "libSrchByBook", params, cache.DefaultTTL, &env); err != nil {
		return LibraryPage{}, err
	}
	if env.Response.Error != "" {
		return LibraryPage{}, fmt.Errorf("%w: %s", ErrAPI, env.Response.Error)
	}

	page := LibraryPage{NumFound: env.Response.NumFound, Libraries: make([]Library, 0, len(env.Response.Libs))}
	for _, l := range env.Response.Libs {
		page.Libraries = append(page.Libraries, l.Lib.toLibrary())
	}
	return page, nil
}

// BookExist reports whether libCode holds isbn and whether a copy is on
// the shelf right now.
func (c *Client) BookExist(ctx context.Context, libCode, isbn string) (Existence, error) {
	params := url.Values{}
	params.Set("libCode", libCode)
	params.Set("isbn13", isbn)

	var env envelope[bookExistResponse]
	if err := c.getJSON(ctx, "bookExist", params, cache.DefaultTTL, &env); err != nil {
		return Existence{}, err
	}
	if env.Response.Error != "" {
		return Existence{}, fmt.Errorf("%w: %s", ErrAPI, env.Response.Error)
	}
	return Existence{
		HasBook:       yes(env.Response.Result.HasBook),
		LoanAvailable: yes(env.Response.Result.LoanAvailable),
	}, nil
}

func (c *Client) PopularBooks(ctx context.Context, q PopularQuery) ([]PopularBook, error) {
	params := url.Values{}
	if q.StartDate != "" {
		params.Set("startDt", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDt", q.EndDate)
	}
	if q.Age != "" {
		params.Set("age", q.Age)
	}
	if q.Region != "" {
		params.Set("region", q.Region)
	}
	params.Set("pageNo", "1")
	params.Set("pageSize", strconv.Itoa(clampPageSize(q.PageSize)))

	var env envelope[loanItemSrchResponse]
	if err := c.getJSON(ctx, "loanItemSrch", params, cache.SlowTTL, &env); err != nil {
		return nil, err
	}
	if env.Response.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPI, env.Response.Error)
	}

	books := make([]PopularBook, 0, len(env.Response.Docs))
	for _, d := range env.Response.Docs {
		doc := d.Doc
		books = append(books, PopularBook{
			Ranking:         atoi(doc.Ranking),
			Title:           doc.BookName,
			Authors:         doc.Authors,
			Publisher:       doc.Publisher,
			PublicationYear: doc.PublicationYear,
			ISBN13:          doc.ISBN13,
			ClassName:       doc.ClassName,
			LoanCount:       atoi(doc.LoanCount),
			ImageURL:        doc.BookImageURL,
		})
	}
	return books, nil
}

func (c *Client) BookDetail(ctx context.Context, isbn string) (BookDetail, error) {
	params := url.Values{}
	params.Set("isbn13", isbn)

	var env envelope[srchDtlListResponse]
	if err := c.getJSON(ctx, "srchDtlList", params, cache.SlowTTL, &env); err != nil {
		return BookDetail{}, err
	}
	if env.Response.Error != "" {
		return BookDetail{}, fmt.Errorf("%w: %s", ErrAPI, env.Response.Error)
	}
	if len(env.Response.Detail) == 0 {
		return BookDetail{}, ErrNotFound
	}

	b := env.Response.Detail[0].Book
	return BookDetail{
		Title:           b.BookName,
		Authors:         b.Authors,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		ISBN13:          b.ISBN13,
		ClassName:       b.ClassName,
		Description:     b.Description,
		ImageURL:        b.BookImageURL,
	}, nil
}

// Response is a raw upstream answer passed through by the proxy.
type Response = upstream.Response

// Forward calls endpoint with the caller's query, replacing any authKey
// and format with the server's own. Successful bodies are cached; error
// bodies are returned with their status.
func (c *Client) Forward(ctx context.Context, endpoint string, query url.Values) (Response, error) {
	params := url.Values{}
	for k, vs := range query {
		if k == "authKey" || k == "format" {
			continue
		}
		params[k] = vs
	}

	key := cacheKey(endpoint, params)
	if body, ok := c.cache.Get(key); ok {
		return Response{Status: http.StatusOK, ContentType: "application/json;charset=UTF-8", Body: body}, nil
	}

	resp, err := c.do(ctx, endpoint, params)
	if err != nil {
		return Response{}, err
	}
	if resp.Status == http.StatusOK && bodyError(resp.Body) == "" {
		c.cache.Set(key, resp.Body, cache.DefaultTTL)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, ttl time.Duration, target any) error {
	body, err := c.cache.Do(ctx, cacheKey(endpoint, params), ttl, func(ctx context.Context) ([]byte, error) {
		resp, err := c.do(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}
		if resp.Status != http.StatusOK {
			return nil, &upstream.StatusError{API: apiName, Status: resp.Status}
		}
		// Quota and key errors arrive with status 200.
		if msg := bodyError(resp.Body); msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrAPI, msg)
		}
		return resp.Body, nil
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		c.cache.Delete(cacheKey(endpoint, params))
		return fmt.Errorf("data4library %s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (Response, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("authKey", c.authKey)
	q.Set("format", "json")

	resp, err := c.transport.Get(ctx, endpoint, c.baseURL+"/"+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}

// bodyError returns the error message the API embeds in an otherwise
// successful response, or "" when there is none.
func bodyError(body []byte) string {
	var env envelope[struct {
		Error string `json:"error"`
	}]
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Response.Error
}

// cacheKey is endpoint plus params sorted by name. authKey never appears.
func cacheKey(endpoint string, params url.Values) string {
	return endpoint + "?" + params.Encode()
}

func clampPageSize(n int) int {
	if n <= 0 || n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
