package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/entity"
)

const yelpSource = "yelp"

// BusinessSearcher runs a business search against the upstream API.
type BusinessSearcher interface {
	Search(ctx context.Context, params dto.SearchParams, requestID string) (*entity.SearchPayload, error)
}

// YelpClient issues business searches against the Yelp Fusion API.
type YelpClient struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	dumpPath string
	logger   *zap.Logger
}

// YelpOption configures optional client behaviour.
type YelpOption func(*YelpClient)

// WithDebugDump writes the last raw payload to path.
func WithDebugDump(path string) YelpOption {
	return func(c *YelpClient) {
		c.dumpPath = strings.TrimSpace(path)
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) YelpOption {
	return func(c *YelpClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewYelpClient builds a search client for the given base URL and API key.
func NewYelpClient(client *http.Client, baseURL, apiKey string, opts ...YelpOption) *YelpClient {
	if client == nil {
		client = http.DefaultClient
	}
	c := &YelpClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search performs a single GET /businesses/search call.
func (c *YelpClient) Search(ctx context.Context, params dto.SearchParams, requestID string) (*entity.SearchPayload, error) {
	query := BuildSearchQuery(params)
	endpoint := c.baseURL + "/businesses/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Source: yelpSource, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	c.logger.Debug("yelp request", zap.String("request_id", requestID), zap.String("query", query.Encode()))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Source: yelpSource, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractYelpError(resp.Body)
		c.logger.Warn("yelp returned an error",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("error", msg))
		return nil, &UpstreamError{Source: yelpSource, Message: fmt.Sprintf("status %d: %s", resp.StatusCode, msg)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Source: yelpSource, Message: "failed to read response", Err: err}
	}

	var payload entity.SearchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &SchemaError{Source: yelpSource, Err: err}
	}
	if err := validate.Struct(payload); err != nil {
		return nil, &SchemaError{Source: yelpSource, Err: err}
	}

	c.logger.Debug("yelp response received",
		zap.String("request_id", requestID),
		zap.Int("businesses", len(payload.Businesses)))

	c.dump(body)
	return &payload, nil
}

func (c *YelpClient) dump(body []byte) {
	if c.dumpPath == "" {
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		c.logger.Error("failed to indent yelp response", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.dumpPath, pretty.Bytes(), 0o644); err != nil {
		c.logger.Error("failed to save yelp response", zap.String("path", c.dumpPath), zap.Error(err))
	}
}

// queryField converts one SearchParams field to its query value. ok is false when the field is unset.
type queryField struct {
	name   string
	encode func(p dto.SearchParams) (string, bool)
}

// searchQueryFields is the allow-list of parameters forwarded upstream. view_type is never sent.
var searchQueryFields = []queryField{
	{"location", stringField(func(p dto.SearchParams) *string { return p.Location })},
	{"latitude", floatField(func(p dto.SearchParams) *float64 { return p.Latitude })},
	{"longitude", floatField(func(p dto.SearchParams) *float64 { return p.Longitude })},
	{"term", stringField(func(p dto.SearchParams) *string { return p.Term })},
	{"radius", intField(func(p dto.SearchParams) *int { return p.Radius })},
	{"categories", stringField(func(p dto.SearchParams) *string { return p.Categories })},
	{"locale", stringField(func(p dto.SearchParams) *string { return p.Locale })},
	{"price", stringField(func(p dto.SearchParams) *string { return p.Price })},
	{"open_now", func(p dto.SearchParams) (string, bool) {
		if p.OpenNow == nil {
			return "", false
		}
		return strconv.FormatBool(*p.OpenNow), true
	}},
	{"open_at", func(p dto.SearchParams) (string, bool) {
		if p.OpenAt == nil {
			return "", false
		}
		return strconv.FormatInt(*p.OpenAt, 10), true
	}},
	{"attributes", stringField(func(p dto.SearchParams) *string { return p.Attributes })},
	{"sort_by", func(p dto.SearchParams) (string, bool) {
		if p.SortBy == nil {
			return "", false
		}
		return string(*p.SortBy), true
	}},
	{"limit", intField(func(p dto.SearchParams) *int { return p.Limit })},
	{"offset", intField(func(p dto.SearchParams) *int { return p.Offset })},
	{"reservation_date", stringField(func(p dto.SearchParams) *string { return p.ReservationDate })},
	{"reservation_time", stringField(func(p dto.SearchParams) *string { return p.ReservationTime })},
	{"reservation_covers", intField(func(p dto.SearchParams) *int { return p.ReservationCovers })},
}

// BuildSearchQuery converts every set search field into upstream query parameters.
func BuildSearchQuery(params dto.SearchParams) url.Values {
	values := url.Values{}
	for _, field := range searchQueryFields {
		if v, ok := field.encode(params); ok {
			values.Set(field.name, v)
		}
	}
	return values
}

func stringField(get func(dto.SearchParams) *string) func(dto.SearchParams) (string, bool) {
	return func(p dto.SearchParams) (string, bool) {
		v := get(p)
		if v == nil {
			return "", false
		}
		return *v, true
	}
}

func intField(get func(dto.SearchParams) *int) func(dto.SearchParams) (string, bool) {
	return func(p dto.SearchParams) (string, bool) {
		v := get(p)
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	}
}

func floatField(get func(dto.SearchParams) *float64) func(dto.SearchParams) (string, bool) {
	return func(p dto.SearchParams) (string, bool) {
		v := get(p)
		if v == nil {
			return "", false
		}
		return formatFloat(*v), true
	}
}

func extractYelpError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "yelp returned an error"
	}

	var payload struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		switch {
		case payload.Error.Description != "":
			return payload.Error.Description
		case payload.Error.Code != "":
			return payload.Error.Code
		}
	}
	return strings.TrimSpace(string(data))
}

var _ BusinessSearcher = (*YelpClient)(nil)
