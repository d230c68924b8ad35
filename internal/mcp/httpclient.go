package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/state"
)

// HTTPClient implements DataSource by calling the liftlog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the state lives on the server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// is sent with writes and may be empty.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func sessionPath(week, day int) string {
	return fmt.Sprintf("/api/v1/weeks/%d/days/%d", week, day)
}

func (c *HTTPClient) Program(ctx context.Context) (program.Program, error) {
	var p program.Program
	err := c.get(ctx, "/api/v1/program", &p)
	return p, err
}

func (c *HTTPClient) Week(ctx context.Context, week int) (program.Week, error) {
	var wk program.Week
	err := c.get(ctx, fmt.Sprintf("/api/v1/weeks/%d", week), &wk)
	return wk, err
}

func (c *HTTPClient) SessionView(ctx context.Context, week, day int) (state.SessionView, error) {
	var v state.SessionView
	err := c.get(ctx, sessionPath(week, day), &v)
	return v, err
}

func (c *HTTPClient) Position(ctx context.Context) (state.Position, error) {
	var pos state.Position
	err := c.get(ctx, "/api/v1/position", &pos)
	return pos, err
}

func (c *HTTPClient) SetPosition(ctx context.Context, week, day int, tab models.Tab) (state.Position, error) {
	body := struct {
		Week int        `json:"week"`
		Day  int        `json:"day"`
		Tab  models.Tab `json:"tab,omitempty"`
	}{week, day, tab}
	var pos state.Position
	err := c.put(ctx, "/api/v1/position", body, &pos)
	return pos, err
}

func (c *HTTPClient) OneRM(ctx context.Context) (models.OneRMProfile, error) {
	var rm models.OneRMProfile
	err := c.get(ctx, "/api/v1/one-rm", &rm)
	return rm, err
}

func (c *HTTPClient) PatchMainRow(ctx context.Context, week, day, row int, p state.MainRowPatch) (state.SessionView, error) {
	body := struct {
		SetWeights []float64 `json:"setWeights,omitempty"`
		Set        *int      `json:"set,omitempty"`
		Weight     *float64  `json:"weight,omitempty"`
		Notes      *string   `json:"notes,omitempty"`
	}{p.SetWeights, p.Set, p.Weight, p.Notes}
	var v state.SessionView
	err := c.put(ctx, fmt.Sprintf("%s/main/%d", sessionPath(week, day), row), body, &v)
	return v, err
}

func (c *HTTPClient) PatchAccessory(ctx context.Context, week, day, idx int, p state.AccessoryPatch) (state.SessionView, error) {
	body := struct {
		Weight        *float64      `json:"weight,omitempty"`
		Reps          *program.Reps `json:"reps,omitempty"`
		SetsCompleted *int          `json:"setsCompleted,omitempty"`
	}{p.Weight, p.Reps, p.SetsCompleted}
	var v state.SessionView
	err := c.put(ctx, fmt.Sprintf("%s/accessories/%d", sessionPath(week, day), idx), body, &v)
	return v, err
}

func (c *HTTPClient) Report(ctx context.Context) (state.Report, error) {
	var r state.Report
	err := c.get(ctx, "/api/v1/progress", &r)
	return r, err
}
