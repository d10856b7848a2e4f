package exchange

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/harx-dev/harx/model"
	"github.com/harx-dev/harx/version"
	"github.com/pkg/errors"
)

// BuildHTTPRequest turns a request model into an *http.Request ready to
// send. Headers are sanitized again here: the extractor already drops
// transport artifacts, but models can also arrive over the API from
// clients that edited them.
func BuildHTTPRequest(req model.RequestModel) (*http.Request, error) {
	u, err := buildURL(req)
	if err != nil {
		return nil, err
	}

	header, err := buildHTTPHeader(req)
	if err != nil {
		return nil, err
	}

	bodyTuple, err := buildHTTPBody(req.Body)
	if err != nil {
		return nil, err
	}

	if header.Get("Content-Type") == "" && bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", "harx/"+version.Current().String())
	}

	r := http.Request{
		Method:        req.Method,
		URL:           u,
		Header:        header,
		Body:          bodyTuple.body,
		ContentLength: bodyTuple.contentLength,
	}
	return &r, nil
}

func buildURL(req model.RequestModel) (*url.URL, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing request URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Wrapf(ErrInvalidRequest, "request URL is incomplete: %q", req.URL)
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		q = url.Values{}
	}
	for name, value := range req.QueryParams {
		q.Set(name, value)
	}
	u.RawQuery = q.Encode()
	return u, nil
}

func buildHTTPHeader(req model.RequestModel) (http.Header, error) {
	header := make(http.Header)
	for name, value := range req.Headers {
		if !model.ForwardableHeader(name) {
			continue
		}
		if !validHeaderName(name) {
			return nil, errors.Wrapf(ErrInvalidHeaders, "header name %q", name)
		}
		header.Set(name, value)
	}
	return header, nil
}

// validHeaderName reports whether name is a legal HTTP/1.1 field name
// (an RFC 7230 token).
func validHeaderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isTokenChar(name[i]) {
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

type bodyTuple struct {
	body          io.ReadCloser
	contentLength int64
	contentType   string
}

func buildHTTPBody(body model.Body) (bodyTuple, error) {
	switch body.Kind {
	case model.BodyNone:
		return bodyTuple{}, nil
	case model.BodyJSON:
		return buildJSONBody(body)
	case model.BodyForm:
		return buildFormBody(body)
	case model.BodyText:
		return buildTextBody(body)
	default:
		return bodyTuple{}, errors.Errorf("unknown body kind: %v", body.Kind)
	}
}

func buildJSONBody(body model.Body) (bodyTuple, error) {
	data, err := json.Marshal(body.Content)
	if err != nil {
		return bodyTuple{}, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return bodyTuple{
		body:          io.NopCloser(bytes.NewReader(data)),
		contentLength: int64(len(data)),
		contentType:   "application/json",
	}, nil
}

func buildFormBody(body model.Body) (bodyTuple, error) {
	encoded := body.Form.Encode()
	return bodyTuple{
		body:          io.NopCloser(strings.NewReader(encoded)),
		contentLength: int64(len(encoded)),
		contentType:   "application/x-www-form-urlencoded; charset=utf-8",
	}, nil
}

func buildTextBody(body model.Body) (bodyTuple, error) {
	return bodyTuple{
		body:          io.NopCloser(strings.NewReader(body.Raw)),
		contentLength: int64(len(body.Raw)),
		contentType:   "text/plain",
	}, nil
}
