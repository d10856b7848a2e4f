// Package model builds the canonical, language-agnostic representation
// of a captured HTTP transaction. Every projector except the curl one
// consumes this model; the extractor is a pure function of its HAR
// entry, so re-deriving the model always yields an identical value.
package model

import "net/url"

// BodyKind discriminates the request body variants.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyForm
	BodyText
)

// String returns the wire name of the body kind.
func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyForm:
		return "form"
	case BodyText:
		return "text"
	default:
		return "none"
	}
}

// Body is the parsed request payload. Content is set for BodyJSON,
// Form for BodyForm; Raw always carries the original text except for
// BodyNone.
type Body struct {
	Kind    BodyKind
	Content interface{}
	Form    url.Values
	Raw     string
}

// RequestModel is the canonical request representation. Headers exclude
// transport artifacts (HTTP/2 pseudo-headers and Host), which HTTP
// clients reintroduce on their own.
type RequestModel struct {
	Method      string            `json:"method"`
	URL         string            `json:"url"`
	Scheme      string            `json:"scheme"`
	Host        string            `json:"host"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	PathParams  []string          `json:"path_params"`
	Body        Body              `json:"body"`
}
