package codegen

import (
	"fmt"
	"strings"

	"github.com/harx-dev/harx/model"
)

// generateJavaScript emits a script using the fetch API.
func generateJavaScript(req model.RequestModel) string {
	if req.URL == "" {
		return "// Error: No URL provided in request details"
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = "GET"
	}

	var lines []string

	if len(req.QueryParams) > 0 {
		lines = append(lines,
			"// Query parameters",
			fmt.Sprintf("const params = %s;", stringMapLiteral(req.QueryParams, javascriptSyntax)),
			fmt.Sprintf("const url = new URL('%s');", req.URL),
			"Object.keys(params).forEach(key => url.searchParams.append(key, params[key]));",
			"")
	} else {
		lines = append(lines,
			fmt.Sprintf("const url = '%s';", req.URL),
			"")
	}

	if len(req.Headers) > 0 {
		lines = append(lines,
			"// Headers",
			fmt.Sprintf("const headers = %s;", stringMapLiteral(req.Headers, javascriptSyntax)),
			"")
	}

	if body := javascriptBody(req.Body); len(body) > 0 {
		lines = append(lines, body...)
		lines = append(lines, "")
	}

	var options []string
	if method != "GET" {
		options = append(options, fmt.Sprintf("method: '%s'", method))
	}
	if len(req.Headers) > 0 {
		options = append(options, "headers: headers")
	}
	if req.Body.Kind != model.BodyNone {
		options = append(options, "body: body")
	}

	fetchArgs := []string{"url"}
	if len(options) > 0 {
		fetchArgs = append(fetchArgs, fmt.Sprintf("{%s}", strings.Join(options, ", ")))
	}

	lines = append(lines,
		"// Make request",
		fmt.Sprintf("fetch(%s)", strings.Join(fetchArgs, ", ")),
		"  .then(response => {",
		"    console.log('Status:', response.status);",
		"    return response.text();",
		"  })",
		"  .then(body => console.log('Response:', body))",
		"  .catch(error => console.error('Error:', error));")

	return strings.Join(lines, "\n")
}

func javascriptBody(body model.Body) []string {
	switch body.Kind {
	case model.BodyJSON:
		return []string{
			"// Request body",
			fmt.Sprintf("const body = JSON.stringify(%s);", renderLiteral(body.Content, javascriptSyntax)),
		}
	case model.BodyForm:
		return []string{
			"// Request body (form data)",
			fmt.Sprintf("const body = new URLSearchParams(%s);", formLiteral(body.Form, javascriptSyntax)),
		}
	case model.BodyText:
		return []string{
			"// Request body",
			fmt.Sprintf("const body = `%s`;", escapeTemplateLiteral(body.Raw)),
		}
	default:
		return nil
	}
}

// escapeTemplateLiteral neutralizes the sequences that would terminate
// or interpolate a JavaScript template literal.
func escapeTemplateLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}
