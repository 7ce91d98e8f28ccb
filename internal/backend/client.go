package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/bizzauto/gateway/pkg/transport"
)

const defaultTimeout = 30 * time.Second

// Client is the single object through which all calls to the remote BizzAuto
// API are issued. Every method performs exactly one request and returns a
// normalized Result. There are no retries; a hung backend is bounded only by
// the http.Client timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, tokens transport.TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport.NewAuthRoundTripper(http.DefaultTransport, tokens),
		},
	}
}

// Result is the normalized request envelope. Exactly one of Data and Error is
// populated; Status is the HTTP status code, or 0 when no response arrived.
type Result struct {
	Status int
	Data   []byte
	Error  string
}

func (r Result) OK() bool {
	return r.Error == ""
}

// Err converts an error envelope into a Go error for call sites written in
// the try/catch style. Returns nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}

	return &Error{Status: r.Status, Message: r.Error}
}

// Decode unmarshals the success payload into v.
func (r Result) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}

	if len(r.Data) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Data, v)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Error carries an error envelope across the error-return convention.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

func (c *Client) Get(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodDelete, path, nil, "")
}

// Upload sends a single file as a multipart form, the one case where the
// JSON default does not apply.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader) Result {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return Result{Error: fmt.Sprintf("create form file: %s", err)}
	}

	if _, err := io.Copy(fw, file); err != nil {
		return Result{Error: fmt.Sprintf("copy file: %s", err)}
	}

	if err := mw.Close(); err != nil {
		return Result{Error: fmt.Sprintf("close form: %s", err)}
	}

	return c.do(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) Result {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Result{Error: fmt.Sprintf("marshal request: %s", err)}
		}

		reader = bytes.NewReader(b)
	}

	return c.do(ctx, method, path, reader, "application/json")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) Result {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return Result{Error: fmt.Sprintf("create request: %s", err)}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Status: 0, Error: err.Error()}
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Status: resp.StatusCode, Error: fmt.Sprintf("read response: %s", err)}
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "json")

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if isJSON && len(raw) > 0 && !json.Valid(raw) {
			return Result{Status: resp.StatusCode, Error: "invalid JSON in response body"}
		}

		return Result{Status: resp.StatusCode, Data: raw}
	}

	return Result{Status: resp.StatusCode, Error: errorMessage(raw, isJSON)}
}

// url joins the configured base with an endpoint path using exactly one
// separating slash, whatever combination of slashes the inputs carry.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// errorMessage pulls a human-readable message out of an error body. JSON
// bodies are probed for the conventional detail/message fields; anything
// else falls back to a generic string.
func errorMessage(raw []byte, isJSON bool) string {
	if isJSON {
		var body struct {
			Detail  json.RawMessage `json:"detail"`
			Message string          `json:"message"`
		}

		if err := json.Unmarshal(raw, &body); err == nil {
			if len(body.Detail) > 0 {
				var s string
				if err := json.Unmarshal(body.Detail, &s); err == nil {
					return s
				}

				return string(body.Detail)
			}

			if body.Message != "" {
				return body.Message
			}
		}
	}

	return "error occurred"
}
