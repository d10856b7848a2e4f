package codegen

import (
	"fmt"
	"strings"

	"github.com/harx-dev/harx/model"
)

// generatePython emits a script using the requests library.
func generatePython(req model.RequestModel) string {
	if req.URL == "" {
		return "# Error: No URL provided in request details"
	}

	method := strings.ToLower(req.Method)
	if method == "" {
		method = "get"
	}

	lines := []string{"import requests", ""}

	if len(req.QueryParams) > 0 {
		lines = append(lines,
			"# Query parameters",
			fmt.Sprintf("params = %s", stringMapLiteral(req.QueryParams, pythonSyntax)),
			"")
	}

	if len(req.Headers) > 0 {
		lines = append(lines,
			"# Headers",
			fmt.Sprintf("headers = %s", stringMapLiteral(req.Headers, pythonSyntax)),
			"")
	}

	if body := pythonBody(req.Body); len(body) > 0 {
		lines = append(lines, body...)
		lines = append(lines, "")
	}

	callArgs := []string{fmt.Sprintf("'%s'", req.URL)}
	if len(req.QueryParams) > 0 {
		callArgs = append(callArgs, "params=params")
	}
	if len(req.Headers) > 0 {
		callArgs = append(callArgs, "headers=headers")
	}
	switch req.Body.Kind {
	case model.BodyJSON:
		callArgs = append(callArgs, "json=data")
	case model.BodyForm, model.BodyText:
		callArgs = append(callArgs, "data=data")
	}

	lines = append(lines,
		"# Make request",
		fmt.Sprintf("response = requests.%s(%s)", method, strings.Join(callArgs, ", ")),
		"",
		"# Handle response",
		"print(f'Status: {response.status_code}')",
		"print(f'Response: {response.text}')")

	return strings.Join(lines, "\n")
}

func pythonBody(body model.Body) []string {
	switch body.Kind {
	case model.BodyJSON:
		return []string{
			"# Request body",
			fmt.Sprintf("data = %s", renderLiteral(body.Content, pythonSyntax)),
		}
	case model.BodyForm:
		return []string{
			"# Request body (form data)",
			fmt.Sprintf("data = %s", formLiteral(body.Form, pythonSyntax)),
		}
	case model.BodyText:
		return []string{
			"# Request body",
			fmt.Sprintf(`data = """%s"""`, escapeTripleQuoted(body.Raw)),
		}
	default:
		return nil
	}
}

// escapeTripleQuoted escapes every quote so the body can never close
// the surrounding triple-quoted string, not even at its end.
func escapeTripleQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
