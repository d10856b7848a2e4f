package docgen

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
	yamlLib "gopkg.in/yaml.v3"
)

func generateOpenAPI(req model.RequestModel, auth model.AuthInfo) (string, error) {
	method := strings.ToLower(req.Method)
	if method == "" {
		method = "get"
	}
	path := req.Path
	if path == "" {
		path = "/"
	}

	op := &operation{
		Summary:     fmt.Sprintf("%s %s", strings.ToUpper(method), path),
		Description: "Endpoint reverse-engineered from HAR file",
		Parameters:  append(buildPathParameters(path), buildParameters(req.QueryParams)...),
		RequestBody: buildRequestBody(req.Body),
		Responses: map[string]responseItem{
			"200": {
				Description: "Successful response",
				Content: map[string]mediaType{
					"application/json": {
						Schema: schema{
							Type: "object",
							Properties: map[string]interface{}{
								"status": map[string]interface{}{"type": "string"},
								"data":   map[string]interface{}{"type": "object"},
							},
						},
					},
				},
			},
		},
	}

	doc := openAPIDoc{
		OpenAPI: "3.0.0",
		Info: info{
			Title:       "Reverse Engineered API",
			Description: "API documentation generated from HAR file analysis",
			Version:     "1.0.0",
		},
		Servers: []server{
			{URL: serverURL(req), Description: "API Server"},
		},
		Paths: map[string]pathItem{
			path: {method: op},
		},
	}

	if auth.Type != model.AuthNone {
		doc.Components = map[string]interface{}{
			"securitySchemes": buildSecuritySchemes(auth),
		}
		op.Security = []map[string][]string{
			{string(auth.Type): {}},
		}
	}

	if err := validate(doc); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding OpenAPI document")
	}
	return string(data), nil
}

func serverURL(req model.RequestModel) string {
	scheme := req.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, req.Host)
}

var pathTemplateVar = regexp.MustCompile(`\{([^}]+)\}`)

// buildPathParameters declares every template variable appearing in the
// path. An operation that leaves one undeclared is not a valid OpenAPI
// document.
func buildPathParameters(path string) []parameter {
	seen := make(map[string]bool)
	var parameters []parameter
	for _, match := range pathTemplateVar.FindAllStringSubmatch(path, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		parameters = append(parameters, parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   paramSchema{Type: "string"},
		})
	}
	return parameters
}

func buildParameters(queryParams map[string]string) []parameter {
	var parameters []parameter
	for _, name := range sortedKeys(queryParams) {
		parameters = append(parameters, parameter{
			Name:     name,
			In:       "query",
			Required: false,
			Schema:   paramSchema{Type: "string"},
			Example:  queryParams[name],
		})
	}
	return parameters
}

func buildRequestBody(body model.Body) *requestBody {
	if body.Kind == model.BodyNone {
		return nil
	}

	schemaType := "string"
	var example interface{} = body.Raw
	if body.Kind == model.BodyJSON {
		schemaType = "object"
		// Arrays and scalars are valid JSON bodies, but only object
		// content may serve as the example of an object schema.
		if content, ok := body.Content.(map[string]interface{}); ok {
			example = content
		} else {
			example = nil
		}
	}

	return &requestBody{
		Required: true,
		Content: map[string]mediaType{
			bodyMediaType(body.Kind): {
				Schema:  schema{Type: schemaType},
				Example: example,
			},
		},
	}
}

func buildSecuritySchemes(auth model.AuthInfo) map[string]securityScheme {
	switch auth.Type {
	case model.AuthBearer:
		return map[string]securityScheme{
			string(model.AuthBearer): {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		}
	case model.AuthBasic:
		return map[string]securityScheme{
			string(model.AuthBasic): {Type: "http", Scheme: "basic"},
		}
	case model.AuthAPIKey:
		return map[string]securityScheme{
			string(model.AuthAPIKey): {Type: "apiKey", In: string(auth.Location), Name: "X-API-Key"},
		}
	default:
		return map[string]securityScheme{}
	}
}

// validate round-trips the document through kin-openapi so a structural
// mistake surfaces as an error instead of a corrupt artifact.
func validate(doc openAPIDoc) error {
	data, err := yamlLib.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshaling OpenAPI document for validation")
	}
	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData(data)
	if err != nil {
		return errors.Wrap(err, "loading OpenAPI document")
	}
	if err := parsed.Validate(context.Background()); err != nil {
		return errors.Wrap(err, "validating OpenAPI document")
	}
	return nil
}
