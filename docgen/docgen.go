// Package docgen projects a request model into API documentation,
// either Markdown for humans or an OpenAPI 3.0 document for tooling.
package docgen

import (
	"sort"
	"strings"

	"github.com/harx-dev/harx/har"
	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
)

// Format is a supported documentation output format.
type Format string

const (
	Markdown Format = "markdown"
	OpenAPI  Format = "openapi"
)

// ErrUnsupportedFormat is returned for any unknown format tag.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{Markdown, OpenAPI}
}

// Generate renders documentation for the request. Credentials are only
// ever shown in their redacted form.
func Generate(req model.RequestModel, auth model.AuthInfo, format Format) (string, error) {
	switch format {
	case Markdown:
		return generateMarkdown(req, auth), nil
	case OpenAPI:
		return generateOpenAPI(req, auth)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// Filename derives a download name from the request's method and path,
// e.g. "get_api_users.markdown". OpenAPI documents get a .json
// extension because that is how they are serialized.
func Filename(req model.RequestModel, format Format) string {
	method := strings.ToLower(req.Method)
	if method == "" {
		method = "get"
	}

	path := strings.ReplaceAll(req.Path, "/", "_")
	path = strings.TrimPrefix(path, "_")
	if path == "" {
		path = "api"
	}

	extension := string(format)
	if format == OpenAPI {
		extension = "json"
	}
	return method + "_" + path + "." + extension
}

// harView reconstructs a HAR-shaped request from the canonical model so
// the curl projector can render an example. Maps are emitted in sorted
// order to keep the document deterministic.
func harView(req model.RequestModel) *har.Request {
	view := &har.Request{
		Method: req.Method,
		URL:    req.URL,
	}
	for _, name := range sortedKeys(req.Headers) {
		view.Headers = append(view.Headers, har.NameValuePair{Name: name, Value: req.Headers[name]})
	}
	for _, name := range sortedKeys(req.QueryParams) {
		view.QueryString = append(view.QueryString, har.NameValuePair{Name: name, Value: req.QueryParams[name]})
	}
	if req.Body.Kind != model.BodyNone {
		view.PostData = &har.PostData{
			MIMEType: bodyMediaType(req.Body.Kind),
			Text:     req.Body.Raw,
		}
	}
	return view
}

func bodyMediaType(kind model.BodyKind) string {
	switch kind {
	case model.BodyJSON:
		return "application/json"
	case model.BodyForm:
		return "application/x-www-form-urlencoded"
	default:
		return "text/plain"
	}
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
