// Package analyze sequences the selection pipeline: filter the capture,
// summarize the candidates, ask the selector for the best match, and
// project the winner into its canonical model and curl command.
package analyze

import (
	"context"
	"strings"

	"github.com/harx-dev/harx/curlcmd"
	"github.com/harx-dev/harx/har"
	"github.com/harx-dev/harx/llm"
	"github.com/harx-dev/harx/model"
)

// Details identifies the selected request within the capture.
type Details struct {
	Method           string `json:"method"`
	URL              string `json:"url"`
	Index            int    `json:"index"`
	TotalAPIRequests int    `json:"total_api_requests"`
}

// Parameters is the credential-free parameter view shown to users.
type Parameters struct {
	QueryParams map[string]string `json:"query_params"`
	PathParams  []string          `json:"path_params"`
	Headers     map[string]string `json:"headers"`
}

// Analysis is the complete result of one selection cycle.
type Analysis struct {
	CurlCommand string             `json:"curl_command"`
	Details     Details            `json:"request_details"`
	Model       model.RequestModel `json:"request_info"`
	Auth        model.AuthInfo     `json:"auth_info"`
	Parameters  Parameters         `json:"parameters"`
	Entry       har.Entry          `json:"-"`
}

// Header names hidden from the parameter view because they carry
// credentials; the auth section reports them in redacted form instead.
var credentialHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"api-key":       true,
}

// Run picks the entry matching the description and derives every
// downstream artifact from it.
func Run(ctx context.Context, doc *har.Document, description string, selector llm.Selector) (*Analysis, error) {
	entries := har.FilterAPIEntries(doc.Log.Entries)
	if len(entries) == 0 {
		return nil, llm.ErrNoCandidates
	}

	summaries := har.SummarizeAll(entries)

	index, err := selector.SelectBestIndex(ctx, summaries, description)
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateIndex(index, len(entries)); err != nil {
		return nil, err
	}

	selected := entries[index]
	requestModel := model.Extract(selected)
	auth := model.DetectAuth(requestModel.Headers, requestModel.QueryParams)

	return &Analysis{
		CurlCommand: curlcmd.Command(&selected.Request),
		Details: Details{
			Method:           selected.Request.Method,
			URL:              selected.Request.URL,
			Index:            index,
			TotalAPIRequests: len(entries),
		},
		Model:      requestModel,
		Auth:       auth,
		Parameters: buildParameters(requestModel),
		Entry:      selected,
	}, nil
}

func buildParameters(requestModel model.RequestModel) Parameters {
	headers := make(map[string]string)
	for name, value := range requestModel.Headers {
		if credentialHeaders[strings.ToLower(name)] {
			continue
		}
		headers[name] = value
	}
	return Parameters{
		QueryParams: requestModel.QueryParams,
		PathParams:  requestModel.PathParams,
		Headers:     headers,
	}
}
