package model

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/harx-dev/harx/har"
)

// Transport-level header names dropped during extraction. Forwarding
// them verbatim makes HTTP clients reject the request with illegal
// header errors.
var droppedHeaders = map[string]bool{
	"host":       true,
	":authority": true,
	":method":    true,
	":path":      true,
	":scheme":    true,
	":status":    true,
}

var (
	braceParam = regexp.MustCompile(`\{([^}]+)\}`)
	colonParam = regexp.MustCompile(`:([A-Za-z0-9_]+)`)
)

// Extract builds a RequestModel from one HAR entry. It never fails:
// malformed URLs yield empty scheme/host/path, missing substructures
// yield empty maps, and body parse errors fall back to the text variant.
func Extract(entry har.Entry) RequestModel {
	request := entry.Request

	scheme, host, path := splitURL(request.URL)

	return RequestModel{
		Method:      strings.ToUpper(request.Method),
		URL:         request.URL,
		Scheme:      scheme,
		Host:        host,
		Path:        path,
		Headers:     extractHeaders(request.Headers),
		QueryParams: extractQueryParams(request.QueryString),
		PathParams:  extractPathParams(path),
		Body:        extractBody(request.PostData),
	}
}

func splitURL(rawURL string) (scheme, host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", ""
	}
	return u.Scheme, u.Host, u.Path
}

// ForwardableHeader reports whether a header is application-level data
// that may be sent on a re-executed request.
func ForwardableHeader(name string) bool {
	if strings.HasPrefix(name, ":") {
		return false
	}
	return !droppedHeaders[strings.ToLower(name)]
}

func extractHeaders(pairs []har.NameValuePair) map[string]string {
	headers := make(map[string]string)
	for _, pair := range pairs {
		if !ForwardableHeader(pair.Name) {
			continue
		}
		headers[pair.Name] = pair.Value
	}
	return headers
}

func extractQueryParams(pairs []har.NameValuePair) map[string]string {
	// Last occurrence wins on duplicate names.
	params := make(map[string]string)
	for _, pair := range pairs {
		params[pair.Name] = pair.Value
	}
	return params
}

// extractPathParams recovers parameter names from templated path
// segments, both the "{name}" and the ":name" style. The result is a
// deduplicated, sorted set.
func extractPathParams(path string) []string {
	seen := make(map[string]bool)
	for _, match := range braceParam.FindAllStringSubmatch(path, -1) {
		seen[match[1]] = true
	}
	for _, match := range colonParam.FindAllStringSubmatch(path, -1) {
		seen[match[1]] = true
	}
	if len(seen) == 0 {
		return nil
	}
	params := make([]string, 0, len(seen))
	for name := range seen {
		params = append(params, name)
	}
	sort.Strings(params)
	return params
}

func extractBody(postData *har.PostData) Body {
	if postData == nil {
		return Body{Kind: BodyNone}
	}

	mimeType := strings.ToLower(postData.MIMEType)
	text := postData.Text

	switch {
	case strings.Contains(mimeType, "application/json"):
		var content interface{}
		if err := json.Unmarshal([]byte(text), &content); err == nil {
			return Body{Kind: BodyJSON, Content: content, Raw: text}
		}
	case strings.Contains(mimeType, "application/x-www-form-urlencoded"):
		if form, err := url.ParseQuery(text); err == nil {
			return Body{Kind: BodyForm, Form: form, Raw: text}
		}
	}

	return Body{Kind: BodyText, Raw: text}
}
