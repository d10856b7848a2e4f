// Package codegen projects a request model into runnable source code
// for a target language. Code generation is a best-effort preview:
// a model without a URL produces an in-band comment instead of an error.
package codegen

import (
	"github.com/harx-dev/harx/model"
	"github.com/pkg/errors"
)

// Language is a supported code generation target.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	Go         Language = "go"
)

// ErrUnsupportedLanguage is returned for any unknown target language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Languages lists the supported targets in display order.
func Languages() []Language {
	return []Language{Python, JavaScript, Go}
}

// Generate renders source code that performs the model's HTTP call and
// prints the response status and body.
func Generate(req model.RequestModel, lang Language) (string, error) {
	switch lang {
	case Python:
		return generatePython(req), nil
	case JavaScript:
		return generateJavaScript(req), nil
	case Go:
		return generateGo(req), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedLanguage, "%q", lang)
	}
}
