package exchange

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
)

var (
	// ErrTimeout means the request did not complete within the timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrConnectionFailed means the server could not be reached.
	ErrConnectionFailed = errors.New("failed to connect to the server")

	// ErrInvalidHeaders means a header name violates transport rules.
	ErrInvalidHeaders = errors.New("invalid headers detected")

	// ErrInvalidRequest means the request model cannot be turned into
	// an HTTP request at all.
	ErrInvalidRequest = errors.New("invalid request")
)

// Result describes the response of a live re-execution.
type Result struct {
	StatusCode     int               `json:"status_code"`
	StatusText     string            `json:"status_text"`
	Headers        map[string]string `json:"headers"`
	Body           interface{}       `json:"body"`
	BodyType       string            `json:"body_type"`
	ElapsedSeconds float64           `json:"execution_time"`
	SizeBytes      int               `json:"size_bytes"`
}

// Execute re-runs the captured request for real and reports the
// response. This is the only place the unredacted model is used.
func Execute(ctx context.Context, req model.RequestModel, options *Options) (*Result, error) {
	if req.URL == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "URL is required for request execution")
	}

	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}

	r, err := BuildHTTPRequest(req)
	if err != nil {
		return nil, err
	}
	r = r.WithContext(ctx)

	start := time.Now()
	resp, err := client.Do(r)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Seconds()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	body, bodyType := parseBody(data, resp.Header.Get("Content-Type"))

	return &Result{
		StatusCode:     resp.StatusCode,
		StatusText:     statusText(resp),
		Headers:        flattenHeader(resp.Header),
		Body:           body,
		BodyType:       bodyType,
		ElapsedSeconds: math.Round(elapsed*1000) / 1000,
		SizeBytes:      len(data),
	}, nil
}

func classifyError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return errors.Wrap(ErrTimeout, urlErr.Err.Error())
		}
		message := urlErr.Err.Error()
		if strings.Contains(message, "invalid header") || strings.Contains(message, "malformed") {
			return errors.Wrap(ErrInvalidHeaders, message)
		}
		return errors.Wrap(ErrConnectionFailed, message)
	}
	return errors.Wrap(err, "sending HTTP request")
}

func parseBody(data []byte, contentType string) (interface{}, string) {
	if strings.HasPrefix(contentType, "application/json") {
		var body interface{}
		if err := json.Unmarshal(data, &body); err == nil {
			return body, "json"
		}
	}
	return string(data), "text"
}

func statusText(resp *http.Response) string {
	// resp.Status is "200 OK"; keep only the reason phrase.
	if idx := strings.Index(resp.Status, " "); idx != -1 {
		return resp.Status[idx+1:]
	}
	return resp.Status
}

func flattenHeader(header http.Header) map[string]string {
	flattened := make(map[string]string, len(header))
	for name, values := range header {
		flattened[name] = strings.Join(values, ", ")
	}
	return flattened
}
