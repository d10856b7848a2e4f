package llm

import (
	"fmt"
	"strings"

	"github.com/harx-dev/harx/har"
)

const systemPrompt = `You are an API request analyzer. Given a list of HTTP requests from a HAR file and a user's description, identify which request best matches their intent.

Rules:
- Only consider requests that return JSON or XML data, not HTML pages
- Focus on the URL path and response content to understand what data the API returns
- Return the 0-based index of the best matching request
- Provide brief reasoning for your choice

Respond with a JSON object in this format:
{"index": 0, "reasoning": "brief explanation"}`

// buildPrompt lists the candidate requests and the user's intent.
func buildPrompt(summaries []har.Summary, intent string) string {
	lines := []string{"Requests:", ""}

	for i, summary := range summaries {
		lines = append(lines, fmt.Sprintf("[%d] %s %s", i, summary.Method, summary.URL))
		lines = append(lines, fmt.Sprintf("    Content-Type: %s", summary.ContentType))
		if summary.ResponsePreview != "" {
			lines = append(lines, fmt.Sprintf("    Response preview: %s", summary.ResponsePreview))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		fmt.Sprintf("User wants: %q", intent),
		"",
		"Which request index best matches?")

	return strings.Join(lines, "\n")
}
