package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harx-dev/harx/model"
)

// generateGo emits a standalone program using net/http. Imports are
// emitted per feature so the result compiles without unused imports.
func generateGo(req model.RequestModel) string {
	if req.URL == "" {
		return "// Error: No URL provided in request details"
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = "GET"
	}
	hasParams := len(req.QueryParams) > 0
	hasBody := req.Body.Kind != model.BodyNone

	imports := []string{`"fmt"`, `"io"`, `"net/http"`}
	if hasParams {
		imports = append(imports, `"net/url"`)
	}
	if hasBody {
		imports = append(imports, `"strings"`)
	}
	sort.Strings(imports)

	lines := []string{"package main", "", "import ("}
	for _, imp := range imports {
		lines = append(lines, "\t"+imp)
	}
	lines = append(lines, ")", "", "func main() {",
		"\tclient := &http.Client{}",
		"")

	if hasParams {
		lines = append(lines,
			"\t// Query parameters",
			fmt.Sprintf("\tbaseURL := %q", req.URL),
			"\tu, _ := url.Parse(baseURL)",
			"\tq := u.Query()")
		for _, key := range sortedKeys(req.QueryParams) {
			lines = append(lines, fmt.Sprintf("\tq.Set(%q, %q)", key, req.QueryParams[key]))
		}
		lines = append(lines,
			"\tu.RawQuery = q.Encode()",
			"\trequestURL := u.String()",
			"")
	} else {
		lines = append(lines, fmt.Sprintf("\trequestURL := %q", req.URL), "")
	}

	if body := goBody(req.Body); len(body) > 0 {
		lines = append(lines, body...)
		lines = append(lines, "")
	}

	lines = append(lines, "\t// Create request")
	if hasBody {
		lines = append(lines, fmt.Sprintf("\treq, _ := http.NewRequest(%q, requestURL, body)", method))
	} else {
		lines = append(lines, fmt.Sprintf("\treq, _ := http.NewRequest(%q, requestURL, nil)", method))
	}
	lines = append(lines, "")

	if len(req.Headers) > 0 {
		lines = append(lines, "\t// Headers")
		for _, key := range sortedKeys(req.Headers) {
			lines = append(lines, fmt.Sprintf("\treq.Header.Set(%q, %q)", key, req.Headers[key]))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"\t// Execute request",
		"\tresp, err := client.Do(req)",
		"\tif err != nil {",
		"\t\tpanic(err)",
		"\t}",
		"\tdefer resp.Body.Close()",
		"",
		"\t// Read response",
		"\trespBody, _ := io.ReadAll(resp.Body)",
		"\tfmt.Printf(\"Status: %s\\n\", resp.Status)",
		"\tfmt.Printf(\"Response: %s\\n\", string(respBody))",
		"}")

	return strings.Join(lines, "\n")
}

func goBody(body model.Body) []string {
	switch body.Kind {
	case model.BodyJSON:
		return []string{
			"\t// Request body",
			fmt.Sprintf("\tbody := strings.NewReader(`%s`)", renderLiteral(body.Content, javascriptSyntax)),
		}
	case model.BodyForm:
		return []string{
			"\t// Request body (form data)",
			fmt.Sprintf("\tbody := strings.NewReader(%q)", body.Form.Encode()),
		}
	case model.BodyText:
		return []string{
			"\t// Request body",
			fmt.Sprintf("\tbody := strings.NewReader(`%s`)", body.Raw),
		}
	default:
		return nil
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
