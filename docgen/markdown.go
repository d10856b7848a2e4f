package docgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harx-dev/harx/curlcmd"
	"github.com/harx-dev/harx/model"
)

func generateMarkdown(req model.RequestModel, auth model.AuthInfo) string {
	lines := []string{
		"# API Documentation",
		"",
		fmt.Sprintf("## %s %s", req.Method, req.Path),
		"",
		fmt.Sprintf("**URL:** `%s`", req.URL),
		"",
		"### Description",
		"",
		"This endpoint was reverse-engineered from a HAR file capture.",
		"",
	}

	if auth.Type != model.AuthNone {
		lines = append(lines,
			"### Authentication",
			"",
			fmt.Sprintf("**Type:** %s", authTitle(auth.Type)),
			fmt.Sprintf("**Location:** %s", auth.Location),
			"")
		if auth.RedactedValue != "" {
			lines = append(lines,
				"**Example:**",
				"```",
				auth.RedactedValue,
				"```",
				"")
		}
	}

	if len(req.QueryParams) > 0 {
		lines = append(lines,
			"### Query Parameters",
			"",
			"| Parameter | Type | Required | Description |",
			"|-----------|------|----------|-------------|")
		for _, name := range sortedKeys(req.QueryParams) {
			lines = append(lines, fmt.Sprintf("| `%s` | string | No | Example: `%s` |", name, req.QueryParams[name]))
		}
		lines = append(lines, "")
	}

	if len(req.Headers) > 0 {
		lines = append(lines,
			"### Headers",
			"",
			"| Header | Value |",
			"|--------|-------|")
		for _, name := range sortedKeys(req.Headers) {
			lines = append(lines, fmt.Sprintf("| `%s` | `%s` |", name, req.Headers[name]))
		}
		lines = append(lines, "")
	}

	if req.Body.Kind != model.BodyNone {
		lines = append(lines,
			"### Request Body",
			"",
			fmt.Sprintf("**Content Type:** %s", req.Body.Kind),
			"")
		if req.Body.Kind == model.BodyJSON {
			lines = append(lines,
				"**Example:**",
				"```json",
				prettyJSON(req.Body.Content),
				"```",
				"")
		} else {
			lines = append(lines,
				"**Example:**",
				"```",
				req.Body.Raw,
				"```",
				"")
		}
	}

	lines = append(lines,
		"### cURL Example",
		"",
		"```bash",
		curlcmd.Command(harView(req)),
		"```",
		"")

	lines = append(lines,
		"### Response",
		"",
		"The API returns a JSON response with the requested data.",
		"",
		"**Example Response:**",
		"```json",
		"{",
		`  "status": "success",`,
		`  "data": {`,
		`    "message": "Request successful"`,
		"  }",
		"}",
		"```",
		"")

	return strings.Join(lines, "\n")
}

// authTitle turns an auth type tag into a display name, e.g.
// bearer_token -> Bearer Token.
func authTitle(authType model.AuthType) string {
	words := strings.Split(string(authType), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func prettyJSON(value interface{}) string {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
