package apisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/trezcool/attainment/core"
)

const (
	headerRequestID = "X-Request-ID"
	maxBodySize     = 10 << 20
)

type (
	// Client talks JSON over HTTP to the attainment backend.
	// It never retries: every failure is returned to the caller.
	Client struct {
		baseURL string
		http    *http.Client
		logger  core.Logger
		metrics *Metrics
		group   singleflight.Group
	}

	Option func(*Client)
)

// WithHTTPClient replaces the default http.Client (no timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger core.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	op     string // metrics & logs label
	method string
	path   string // including query
	token  string
	body   interface{}
}

// send performs req and returns the raw response body of a 2xx response.
func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encoding body", req.op)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: building request", req.op)
	}
	reqID := uuid.New().String()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, reqID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observe(req.op, "error", start)
		return nil, errors.Wrapf(err, "%s: %s %s", req.op, req.method, req.path)
	}
	defer func() { _ = resp.Body.Close() }()
	c.observe(req.op, strconv.Itoa(resp.StatusCode), start)
	if c.logger != nil {
		c.logger.Debug(req.method+" "+req.path, map[string]interface{}{
			"status":     resp.StatusCode,
			"request_id": reqID,
			"duration":   time.Since(start).String(),
		})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: reading response", req.op)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, reqID, data)
	}
	return data, nil
}

// do sends req and decodes a JSON response into out (skipped when out is nil).
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	data, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(data, out), "%s: decoding response", req.op)
}

// list GETs a collection. Identical concurrent calls share a single round trip.
// The shared round trip is detached from ctx: a caller giving up only stops its own wait.
func (c *Client) list(ctx context.Context, req request, out interface{}) error {
	req.method = http.MethodGet
	key := req.op + " " + req.path + " " + req.token
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.send(context.WithoutCancel(ctx), req)
	})

	select {
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "%s: %s %s", req.op, req.method, req.path)
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return errors.Wrapf(decodeList(res.Val.([]byte), out), "%s: decoding response", req.op)
	}
}

// decodeList accepts `[...]` and `{"data": [...]}`; anything else is an empty list.
func decodeList(data []byte, out interface{}) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.Unmarshal([]byte("[]"), out)
	}
	switch data[0] {
	case '[':
		return json.Unmarshal(data, out)
	case '{':
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		if d := bytes.TrimSpace(env.Data); len(d) > 0 && d[0] == '[' {
			return json.Unmarshal(d, out)
		}
		return json.Unmarshal([]byte("[]"), out)
	default:
		if !json.Valid(data) {
			return errors.New("invalid JSON")
		}
		return json.Unmarshal([]byte("[]"), out)
	}
}

func (c *Client) observe(op, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(op, status).Inc()
	c.metrics.Latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
