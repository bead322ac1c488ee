package backend

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/config"
)

// Envelope is the response wrapper every backend endpoint uses:
// {"data": ..., "error": ..., "message": ...}
type Envelope struct {
	Data    jsoniter.RawMessage `json:"data"`
	Error   interface{}         `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Failed reports whether the error discriminant is set. The backend sends it
// as a boolean, an error string or an error object. Only nil, false, zero and
// empty (or "false") strings count as unset.
func (e *Envelope) Failed() bool {
	switch v := e.Error.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != "" && !strings.EqualFold(v, "false")
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return cast.ToFloat64(v) != 0
	default:
		// objects and arrays describe the failure
		return true
	}
}

// Reason returns the best available failure text
func (e *Envelope) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	if s, ok := e.Error.(string); ok && s != "" {
		return s
	}
	return "request rejected by backend"
}

// Decode unmarshals data into out. It returns false when data is absent or null.
func (e *Envelope) Decode(out interface{}) (bool, error) {
	data := strings.TrimSpace(string(e.Data))
	if data == "" || data == "null" {
		return false, nil
	}
	if err := jsoniter.Unmarshal(e.Data, out); err != nil {
		return false, errors.Wrap(err, "decode backend data")
	}
	return true, nil
}

// Client is the REST client shared by every resource wrapper
type Client struct {
	baseURL     string
	token       string
	httpc       *http.Client
	uploadLimit int64
}

// NewClient creates a backend client from configuration
func NewClient(cfg config.BackendConfig, uploadLimit int64) *Client {
	httpc := &http.Client{}
	if cfg.Timeout > 0 {
		httpc.Timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.Token,
		httpc:       httpc,
		uploadLimit: uploadLimit,
	}
}

// BaseURL returns the configured backend root
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) flow(method, path string) (*dataflow.DataFlow, error) {
	g := gout.New(c.httpc)
	url := c.url(path)
	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = g.GET(url)
	case http.MethodPost:
		df = g.POST(url)
	case http.MethodPut:
		df = g.PUT(url)
	case http.MethodPatch:
		df = g.PATCH(url)
	case http.MethodDelete:
		df = g.DELETE(url)
	default:
		return nil, errors.Errorf("unsupported method %s", method)
	}
	headers := gout.H{"Accept": "application/json"}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	return df.SetHeader(headers), nil
}

// Call sends a JSON request and returns the decoded envelope. body may be nil.
// Transport failures, non-2xx statuses and envelopes with the error flag set
// are returned as *APIError.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) (*Envelope, error) {
	df, err := c.flow(method, path)
	if err != nil {
		return nil, err
	}
	if body != nil {
		df = df.SetJSON(body)
	}
	return c.send(ctx, df, method, path)
}

func (c *Client) send(ctx context.Context, df *dataflow.DataFlow, method, path string) (*Envelope, error) {
	var (
		raw  []byte
		code int
	)
	start := time.Now()
	err := df.WithContext(ctx).BindBody(&raw).Code(&code).Do()
	zap.L().Debug("backend call",
		zap.String("namespace", "backend"),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", code),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return nil, errors.WithStack(&APIError{Kind: KindTransport, Method: method, Path: path, Message: err.Error()})
	}

	env := &Envelope{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if jerr := jsoniter.Unmarshal(raw, env); jerr != nil && code >= 200 && code < 300 {
			return nil, errors.WithStack(&APIError{Kind: KindHTTP, Method: method, Path: path, Status: code,
				Message: "malformed response body: " + jerr.Error()})
		}
	}

	if code < 200 || code >= 300 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		return nil, errors.WithStack(&APIError{Kind: KindHTTP, Method: method, Path: path, Status: code, Message: msg})
	}
	if env.Failed() {
		return nil, errors.WithStack(&APIError{Kind: KindEnvelope, Method: method, Path: path, Status: code, Message: env.Reason()})
	}
	return env, nil
}

// Ping checks that the backend answers on /health
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, http.MethodGet, "/health", nil)
	return err
}
