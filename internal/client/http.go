package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"calckit/internal/domain"
)

// HTTP is a calcweb API client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// Compile-time assertions.
var (
	_ domain.CalculatorService = (*HTTP)(nil)
	_ domain.HistoryService    = (*HTTP)(nil)
)

// NewHTTP returns a client for the server at base. A nil httpClient uses
// http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

func (c *HTTP) List(ctx context.Context, category domain.Category) ([]domain.Calculator, error) {
	path := "/api/calculators"
	if category != "" {
		path += "?category=" + url.QueryEscape(string(category))
	}
	var out []domain.Calculator
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Describe(ctx context.Context, slug domain.Slug) (domain.Calculator, error) {
	var out domain.Calculator
	if err := c.do(ctx, http.MethodGet, "/api/calculators/"+url.PathEscape(string(slug)), nil, &out); err != nil {
		return domain.Calculator{}, err
	}
	return out, nil
}

func (c *HTTP) Run(ctx context.Context, slug domain.Slug, in domain.Inputs) (domain.Result, error) {
	var out domain.Result
	err := c.do(ctx, http.MethodPost, "/api/calculators/"+url.PathEscape(string(slug)), domain.RunRequest{Inputs: in}, &out)
	if err != nil {
		return domain.Result{}, err
	}
	return out, nil
}

// Record asks the server to save the computation. The server recomputes the
// result, so res is not sent.
func (c *HTTP) Record(ctx context.Context, slug domain.Slug, in domain.Inputs, _ domain.Result) (domain.HistoryEntry, error) {
	var out domain.HistoryEntry
	if err := c.do(ctx, http.MethodPost, "/api/history", domain.RecordRequest{Slug: slug, Inputs: in}, &out); err != nil {
		return domain.HistoryEntry{}, err
	}
	return out, nil
}

func (c *HTTP) History(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	q := url.Values{}
	if f.Slug != "" {
		q.Set("slug", string(f.Slug))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	path := "/api/history"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []domain.HistoryEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/history", nil, nil)
}

func (c *HTTP) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError turns a non-2xx response into a domain error where possible.
func statusError(method, path string, resp *http.Response) error {
	var apiErr domain.APIError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&apiErr)
	msg := apiErr.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrUnknownCalculator, msg)
	case http.StatusConflict:
		return domain.ErrHistoryDisabled
	case http.StatusUnprocessableEntity:
		return domain.Invalid(apiErr.Field, errors.New(msg))
	default:
		return fmt.Errorf("calcweb %s %s: %s", strings.ToLower(method), path, msg)
	}
}
