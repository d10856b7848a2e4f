package docgen

import (
	"encoding/json"
	"testing"

	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() model.RequestModel {
	return model.RequestModel{
		Method:      "POST",
		URL:         "https://api.example.com/v1/items?q=test",
		Scheme:      "https",
		Host:        "api.example.com",
		Path:        "/v1/items",
		Headers:     map[string]string{"Content-Type": "application/json"},
		QueryParams: map[string]string{"q": "test"},
		Body: model.Body{
			Kind:    model.BodyJSON,
			Content: map[string]interface{}{"name": "widget"},
			Raw:     `{"name": "widget"}`,
		},
	}
}

func bearerAuthInfo() model.AuthInfo {
	return model.AuthInfo{
		Type:          model.AuthBearer,
		Location:      model.LocationHeader,
		RedactedValue: "abcd********wxyz",
		OriginalValue: "abcdefghijklmnopqrstwxyz",
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := Generate(sampleModel(), model.AuthInfo{Type: model.AuthNone}, Format("asciidoc"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestGenerateMarkdown(t *testing.T) {
	doc, err := Generate(sampleModel(), bearerAuthInfo(), Markdown)
	require.NoError(t, err)

	assert.Contains(t, doc, "# API Documentation")
	assert.Contains(t, doc, "## POST /v1/items")
	assert.Contains(t, doc, "**URL:** `https://api.example.com/v1/items?q=test`")
	assert.Contains(t, doc, "### Authentication")
	assert.Contains(t, doc, "**Type:** Bearer Token")
	assert.Contains(t, doc, "**Location:** header")
	assert.Contains(t, doc, "abcd********wxyz")
	assert.Contains(t, doc, "| `q` | string | No | Example: `test` |")
	assert.Contains(t, doc, "| `Content-Type` | `application/json` |")
	assert.Contains(t, doc, "```json\n{\n  \"name\": \"widget\"\n}\n```")
	assert.Contains(t, doc, "### cURL Example")
	assert.Contains(t, doc, "curl 'https://api.example.com/v1/items?q=test'")
	assert.Contains(t, doc, `"status": "success"`)
}

func TestGenerateMarkdownNeverLeaksOriginalCredential(t *testing.T) {
	auth := bearerAuthInfo()

	doc, err := Generate(sampleModel(), auth, Markdown)
	require.NoError(t, err)

	assert.NotContains(t, doc, auth.OriginalValue)
}

func TestGenerateMarkdownWithoutAuth(t *testing.T) {
	doc, err := Generate(sampleModel(), model.AuthInfo{Type: model.AuthNone, Location: model.LocationNone}, Markdown)
	require.NoError(t, err)

	assert.NotContains(t, doc, "### Authentication")
}

func TestGenerateOpenAPI(t *testing.T) {
	raw, err := Generate(sampleModel(), bearerAuthInfo(), OpenAPI)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "3.0.0", doc["openapi"])

	paths := doc["paths"].(map[string]interface{})
	item := paths["/v1/items"].(map[string]interface{})
	op := item["post"].(map[string]interface{})

	params := op["parameters"].([]interface{})
	require.Len(t, params, 1)
	param := params[0].(map[string]interface{})
	assert.Equal(t, "q", param["name"])
	assert.Equal(t, "query", param["in"])
	assert.Equal(t, false, param["required"])
	assert.Equal(t, "test", param["example"])

	body := op["requestBody"].(map[string]interface{})
	content := body["content"].(map[string]interface{})
	media := content["application/json"].(map[string]interface{})
	assert.Equal(t, "object", media["schema"].(map[string]interface{})["type"])

	components := doc["components"].(map[string]interface{})
	schemes := components["securitySchemes"].(map[string]interface{})
	bearer := schemes["bearer_token"].(map[string]interface{})
	assert.Equal(t, "http", bearer["type"])
	assert.Equal(t, "bearer", bearer["scheme"])

	security := op["security"].([]interface{})
	require.Len(t, security, 1)
	_, ok := security[0].(map[string]interface{})["bearer_token"]
	assert.True(t, ok)
}

func TestGenerateOpenAPIBodyMediaTypes(t *testing.T) {
	testCases := []struct {
		title        string
		body         model.Body
		mediaType    string
		schemaType   string
		expectAbsent bool
	}{
		{
			title:     "json body",
			body:      model.Body{Kind: model.BodyJSON, Content: map[string]interface{}{"a": float64(1)}, Raw: `{"a":1}`},
			mediaType:  "application/json",
			schemaType: "object",
		},
		{
			title:      "form body",
			body:       model.Body{Kind: model.BodyForm, Raw: "a=1"},
			mediaType:  "application/x-www-form-urlencoded",
			schemaType: "string",
		},
		{
			title:      "text body",
			body:       model.Body{Kind: model.BodyText, Raw: "hello"},
			mediaType:  "text/plain",
			schemaType: "string",
		},
		{
			title:        "no body",
			body:         model.Body{Kind: model.BodyNone},
			expectAbsent: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			req := sampleModel()
			req.Body = tt.body

			raw, err := Generate(req, model.AuthInfo{Type: model.AuthNone}, OpenAPI)
			require.NoError(t, err)

			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(raw), &doc))
			op := doc["paths"].(map[string]interface{})["/v1/items"].(map[string]interface{})["post"].(map[string]interface{})

			body, present := op["requestBody"]
			if tt.expectAbsent {
				assert.False(t, present)
				return
			}
			content := body.(map[string]interface{})["content"].(map[string]interface{})
			media, ok := content[tt.mediaType].(map[string]interface{})
			require.True(t, ok, "media type %s missing", tt.mediaType)
			assert.Equal(t, tt.schemaType, media["schema"].(map[string]interface{})["type"])
		})
	}
}

func TestGenerateOpenAPIAPIKeyScheme(t *testing.T) {
	auth := model.AuthInfo{
		Type:          model.AuthAPIKey,
		Location:      model.LocationQuery,
		RedactedValue: "qu******34",
		OriginalValue: "querykey1234",
	}

	raw, err := Generate(sampleModel(), auth, OpenAPI)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	schemes := doc["components"].(map[string]interface{})["securitySchemes"].(map[string]interface{})
	apiKey := schemes["api_key"].(map[string]interface{})
	assert.Equal(t, "apiKey", apiKey["type"])
	assert.Equal(t, "query", apiKey["in"])
	assert.Equal(t, "X-API-Key", apiKey["name"])
}

func TestFilename(t *testing.T) {
	testCases := []struct {
		title    string
		method   string
		path     string
		format   Format
		expected string
	}{
		{
			title:    "markdown uses the format as extension",
			method:   "GET",
			path:     "/api/users",
			format:   Markdown,
			expected: "get_api_users.markdown",
		},
		{
			title:    "openapi documents are json files",
			method:   "POST",
			path:     "/api/login",
			format:   OpenAPI,
			expected: "post_api_login.json",
		},
		{
			title:    "empty method and path fall back to defaults",
			method:   "",
			path:     "",
			format:   Markdown,
			expected: "get_api.markdown",
		},
		{
			title:    "root path falls back to api",
			method:   "GET",
			path:     "/",
			format:   Markdown,
			expected: "get_api.markdown",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			req := model.RequestModel{Method: tt.method, Path: tt.path}
			assert.Equal(t, tt.expected, Filename(req, tt.format))
		})
	}
}

func TestGenerateOpenAPITemplatedPath(t *testing.T) {
	req := model.RequestModel{
		Method:     "GET",
		URL:        "https://api.example.com/v1/users/123",
		Scheme:     "https",
		Host:       "api.example.com",
		Path:       "/v1/users/{id}",
		PathParams: []string{"id"},
		QueryParams: map[string]string{
			"verbose": "true",
		},
		Body: model.Body{Kind: model.BodyNone},
	}

	raw, err := Generate(req, model.AuthInfo{Type: model.AuthNone}, OpenAPI)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	op := doc["paths"].(map[string]interface{})["/v1/users/{id}"].(map[string]interface{})["get"].(map[string]interface{})

	params := op["parameters"].([]interface{})
	require.Len(t, params, 2)
	pathParam := params[0].(map[string]interface{})
	assert.Equal(t, "id", pathParam["name"])
	assert.Equal(t, "path", pathParam["in"])
	assert.Equal(t, true, pathParam["required"])
	assert.Equal(t, "string", pathParam["schema"].(map[string]interface{})["type"])
	assert.Equal(t, "query", params[1].(map[string]interface{})["in"])
}

func TestGenerateOpenAPIRepeatedPathVariable(t *testing.T) {
	req := model.RequestModel{
		Method:     "GET",
		Scheme:     "https",
		Host:       "api.example.com",
		Path:       "/v1/{tenant}/users/{id}/orders/{id}",
		PathParams: []string{"id", "tenant"},
		Body:       model.Body{Kind: model.BodyNone},
	}

	raw, err := Generate(req, model.AuthInfo{Type: model.AuthNone}, OpenAPI)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	op := doc["paths"].(map[string]interface{})["/v1/{tenant}/users/{id}/orders/{id}"].(map[string]interface{})["get"].(map[string]interface{})

	params := op["parameters"].([]interface{})
	require.Len(t, params, 2)
	assert.Equal(t, "tenant", params[0].(map[string]interface{})["name"])
	assert.Equal(t, "id", params[1].(map[string]interface{})["name"])
}

func TestGenerateOpenAPIArrayBody(t *testing.T) {
	req := model.RequestModel{
		Method: "POST",
		URL:    "https://api.example.com/v1/items/bulk",
		Scheme: "https",
		Host:   "api.example.com",
		Path:   "/v1/items/bulk",
		Body: model.Body{
			Kind:    model.BodyJSON,
			Content: []interface{}{map[string]interface{}{"name": "a"}, map[string]interface{}{"name": "b"}},
			Raw:     `[{"name": "a"}, {"name": "b"}]`,
		},
	}

	raw, err := Generate(req, model.AuthInfo{Type: model.AuthNone}, OpenAPI)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	op := doc["paths"].(map[string]interface{})["/v1/items/bulk"].(map[string]interface{})["post"].(map[string]interface{})
	media := op["requestBody"].(map[string]interface{})["content"].(map[string]interface{})["application/json"].(map[string]interface{})

	assert.Equal(t, "object", media["schema"].(map[string]interface{})["type"])
	_, present := media["example"]
	assert.False(t, present, "array content must not become the example of an object schema")
}
