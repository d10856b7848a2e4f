package docgen

// Hand-rolled OpenAPI 3.0 document model. Only the subset a single
// reverse-engineered operation needs; tagged for both JSON (the output
// format) and YAML (the validation path).

type openAPIDoc struct {
	OpenAPI    string                 `json:"openapi" yaml:"openapi"`
	Info       info                   `json:"info" yaml:"info"`
	Servers    []server               `json:"servers" yaml:"servers"`
	Paths      map[string]pathItem    `json:"paths" yaml:"paths"`
	Components map[string]interface{} `json:"components,omitempty" yaml:"components,omitempty"`
}

type info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
}

type server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

type pathItem map[string]*operation

type operation struct {
	Summary     string                  `json:"summary" yaml:"summary"`
	Description string                  `json:"description" yaml:"description"`
	Parameters  []parameter             `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *requestBody            `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]responseItem `json:"responses" yaml:"responses"`
	Security    []map[string][]string   `json:"security,omitempty" yaml:"security,omitempty"`
}

type parameter struct {
	Name     string      `json:"name" yaml:"name"`
	In       string      `json:"in" yaml:"in"`
	Required bool        `json:"required" yaml:"required"`
	Schema   paramSchema `json:"schema" yaml:"schema"`
	Example  string      `json:"example,omitempty" yaml:"example,omitempty"`
}

type paramSchema struct {
	Type string `json:"type" yaml:"type"`
}

type requestBody struct {
	Required bool                 `json:"required" yaml:"required"`
	Content  map[string]mediaType `json:"content" yaml:"content"`
}

type mediaType struct {
	Schema  schema      `json:"schema" yaml:"schema"`
	Example interface{} `json:"example,omitempty" yaml:"example,omitempty"`
}

type schema struct {
	Type       string                 `json:"type" yaml:"type"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type responseItem struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]mediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type securityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	In           string `json:"in,omitempty" yaml:"in,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
}
