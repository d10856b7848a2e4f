// Package har models the subset of the HAR 1.2 format that browser
// network exports produce, and classifies captured entries.
package har

// Document is the top-level HAR file structure.
type Document struct {
	Log Log `json:"log"`
}

// Log holds the captured entries.
type Log struct {
	Entries []Entry `json:"entries"`
}

// Entry is one captured HTTP transaction (request + response).
type Entry struct {
	Request  Request  `json:"request"`
	Response Response `json:"response"`
}

// Request describes the captured request.
type Request struct {
	// Method of the HTTP request, in caps, GET/POST/etc
	Method string `json:"method"`

	// URL of the request (absolute)
	URL string `json:"url"`

	// Headers sent with the request, in capture order
	Headers []NameValuePair `json:"headers"`

	// QueryString parsed from the URL by the capturing browser
	QueryString []NameValuePair `json:"queryString"`

	// PostData of the request (e.g. from a POST)
	PostData *PostData `json:"postData,omitempty"`
}

// Response describes the captured response.
type Response struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Headers    []NameValuePair `json:"headers"`
	Content    Content         `json:"content"`
}

// NameValuePair is a single header or query-string item.
type NameValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData carries the request body and its declared MIME type.
type PostData struct {
	MIMEType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Content carries the response body.
type Content struct {
	Text string `json:"text"`
}

// Header returns the value of the named request header, or "" when absent.
// Lookup is case-insensitive, matching HAR captures that preserve the
// original header casing.
func (r *Request) Header(name string) string {
	return lookup(r.Headers, name)
}

// ContentType returns the response Content-Type header, or "" when absent.
func (r *Response) ContentType() string {
	return lookup(r.Headers, "content-type")
}
