package codegen

import (
	"net/url"
	"strings"
	"testing"

	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
)

func sampleModel() model.RequestModel {
	return model.RequestModel{
		Method:      "POST",
		URL:         "https://api.example.com/v1/items",
		Scheme:      "https",
		Host:        "api.example.com",
		Path:        "/v1/items",
		Headers:     map[string]string{"Content-Type": "application/json"},
		QueryParams: map[string]string{"page": "2"},
		Body: model.Body{
			Kind:    model.BodyJSON,
			Content: map[string]interface{}{"a": float64(1)},
			Raw:     `{"a": 1}`,
		},
	}
}

func TestGenerateUnsupportedLanguage(t *testing.T) {
	_, err := Generate(sampleModel(), Language("rust"))
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got err=%v", err)
	}
}

func TestGenerateEmptyURL(t *testing.T) {
	testCases := []struct {
		title    string
		lang     Language
		expected string
	}{
		{title: "python comment", lang: Python, expected: "# Error: No URL provided in request details"},
		{title: "javascript comment", lang: JavaScript, expected: "// Error: No URL provided in request details"},
		{title: "go comment", lang: Go, expected: "// Error: No URL provided in request details"},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			code, err := Generate(model.RequestModel{Method: "GET"}, tt.lang)
			if err != nil {
				t.Fatalf("empty URL must not be an error: err=%v", err)
			}
			if code != tt.expected {
				t.Errorf("unexpected soft failure output: expected=%q, actual=%q", tt.expected, code)
			}
		})
	}
}

func TestGeneratePython(t *testing.T) {
	code, err := Generate(sampleModel(), Python)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	for _, fragment := range []string{
		"import requests",
		`params = {`,
		`"page": "2"`,
		`headers = {`,
		`"Content-Type": "application/json"`,
		`data = {`,
		`"a": 1`,
		"response = requests.post('https://api.example.com/v1/items', params=params, headers=headers, json=data)",
		"print(f'Status: {response.status_code}')",
		"print(f'Response: {response.text}')",
	} {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated python misses %q:\n%s", fragment, code)
		}
	}
}

func TestGeneratePythonTextBody(t *testing.T) {
	req := sampleModel()
	req.Body = model.Body{Kind: model.BodyText, Raw: "line one\nline 'two'"}

	code, err := Generate(req, Python)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	if !strings.Contains(code, "data = \"\"\"line one\nline 'two'\"\"\"") {
		t.Errorf("text body should use a triple-quoted literal:\n%s", code)
	}
	if !strings.Contains(code, "data=data") {
		t.Errorf("text body should be passed as data:\n%s", code)
	}
}

func TestGenerateJavaScript(t *testing.T) {
	code, err := Generate(sampleModel(), JavaScript)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	for _, fragment := range []string{
		"const params = {",
		"const url = new URL('https://api.example.com/v1/items');",
		"url.searchParams.append(key, params[key])",
		"const headers = {",
		"const body = JSON.stringify({",
		"method: 'POST'",
		"console.log('Status:', response.status);",
		"console.log('Response:', body)",
	} {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated javascript misses %q:\n%s", fragment, code)
		}
	}
}

func TestGenerateJavaScriptGETWithoutOptions(t *testing.T) {
	req := model.RequestModel{Method: "GET", URL: "https://x.test/a"}

	code, err := Generate(req, JavaScript)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	if !strings.Contains(code, "fetch(url)") {
		t.Errorf("GET without headers or body should call fetch(url):\n%s", code)
	}
}

func TestGenerateGo(t *testing.T) {
	code, err := Generate(sampleModel(), Go)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	for _, fragment := range []string{
		"package main",
		`"net/http"`,
		`"net/url"`,
		`"strings"`,
		`q.Set("page", "2")`,
		"requestURL := u.String()",
		`http.NewRequest("POST", requestURL, body)`,
		`req.Header.Set("Content-Type", "application/json")`,
		`fmt.Printf("Status: %s\n", resp.Status)`,
	} {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated go misses %q:\n%s", fragment, code)
		}
	}
}

func TestGenerateGoMinimalImports(t *testing.T) {
	req := model.RequestModel{Method: "GET", URL: "https://x.test/a"}

	code, err := Generate(req, Go)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	if strings.Contains(code, `"net/url"`) || strings.Contains(code, `"strings"`) {
		t.Errorf("generated go should not import unused packages:\n%s", code)
	}
	if !strings.Contains(code, `http.NewRequest("GET", requestURL, nil)`) {
		t.Errorf("bodyless request should pass nil body:\n%s", code)
	}
}

func TestGenerateFormBody(t *testing.T) {
	req := sampleModel()
	req.Body = model.Body{
		Kind: model.BodyForm,
		Form: url.Values{"user": {"alice"}, "tags": {"a", "b"}},
		Raw:  "user=alice&tags=a&tags=b",
	}

	python, err := Generate(req, Python)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	if !strings.Contains(python, `"user": "alice"`) {
		t.Errorf("python form body misses single value:\n%s", python)
	}
	if !strings.Contains(python, `"tags": [`) {
		t.Errorf("python form body should render repeated names as a list:\n%s", python)
	}

	js, err := Generate(req, JavaScript)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}
	if !strings.Contains(js, "new URLSearchParams(") {
		t.Errorf("javascript form body should use URLSearchParams:\n%s", js)
	}
}

func TestGenerateJavaScriptEscapesTextBody(t *testing.T) {
	req := sampleModel()
	req.Headers = map[string]string{"Content-Type": "text/plain"}
	req.Body = model.Body{
		Kind: model.BodyText,
		Raw:  "tick ` and ${interp} and back\\slash",
	}

	code, err := Generate(req, JavaScript)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	expected := "const body = `tick \\` and \\${interp} and back\\\\slash`;"
	if !strings.Contains(code, expected) {
		t.Errorf("text body must not break out of the template literal:\n%s", code)
	}
}

func TestGeneratePythonEscapesTextBody(t *testing.T) {
	req := sampleModel()
	req.Headers = map[string]string{"Content-Type": "text/plain"}
	req.Body = model.Body{
		Kind: model.BodyText,
		Raw:  `she said """stop""" and back\slash`,
	}

	code, err := Generate(req, Python)
	if err != nil {
		t.Fatalf("unexpected error: err=%v", err)
	}

	expected := `data = """she said \"\"\"stop\"\"\" and back\\slash"""`
	if !strings.Contains(code, expected) {
		t.Errorf("text body must not break out of the triple-quoted string:\n%s", code)
	}
}
