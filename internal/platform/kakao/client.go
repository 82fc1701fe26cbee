// Package kakao wraps the Kakao Local reverse geocoding endpoint.
package kakao

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

const apiName = "kakao"

var (
	ErrNotConfigured = errors.New("kakao: rest api key not configured")
	ErrNoRegion      = errors.New("kakao: no region for coordinates")
)

type Config struct {
	BaseURL    string
	RESTKey    string
	MaxRetries int
	Backoff    time.Duration
}

type Client struct {
	transport *upstream.Client
	baseURL   string
	restKey   string
}

func NewClient(cfg Config) *Client {
	return &Client{
		transport: upstream.New(apiName, upstream.Options{
			RPS:        10,
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.Backoff,
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		restKey: cfg.RESTKey,
	}
}

type regionDocument struct {
	RegionType string `json:"region_type"`
	Region1    string `json:"region_1depth_name"`
	Region2    string `json:"region_2depth_name"`
	Region3    string `json:"region_3depth_name"`
	Code       string `json:"code"`
}

// RegionAt returns the province and city/gu names for a coordinate, e.g.
// ("경기도", "성남시 분당구"). Legal-dong ("B") documents are preferred.
func (c *Client) RegionAt(ctx context.Context, lat, lng float64) (string, string, error) {
	if c.restKey == "" {
		return "", "", ErrNotConfigured
	}
	q := url.Values{}
	q.Set("x", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))

	resp, err := c.transport.Get(ctx, "coord2regioncode", c.baseURL+"/v2/local/geo/coord2regioncode.json?"+q.Encode(), http.Header{
		"Authorization": {"KakaoAK " + c.restKey},
	})
	if err != nil {
		return "", "", err
	}
	if resp.Status != http.StatusOK {
		return "", "", &upstream.StatusError{API: apiName, Status: resp.Status}
	}

	var body struct {
		Documents []regionDocument `json:"documents"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", "", fmt.Errorf("kakao: decode: %w", err)
	}
	if len(body.Documents) == 0 {
		return "", "", ErrNoRegion
	}

	doc := body.Documents[0]
	for _, d := range body.Documents {
		if d.RegionType == "B" {
			doc = d
			break
		}
	}
	return doc.Region1, doc.Region2, nil
}
