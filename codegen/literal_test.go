package codegen

import (
	"testing"
)

func TestRenderLiteral(t *testing.T) {
	nested := map[string]interface{}{
		"name":    "widget",
		"count":   float64(2),
		"ratio":   1.5,
		"active":  true,
		"deleted": false,
		"parent":  nil,
		"tags":    []interface{}{"a", "b"},
		"meta": map[string]interface{}{
			"empty": map[string]interface{}{},
			"none":  []interface{}{},
		},
	}

	testCases := []struct {
		title    string
		syntax   literalSyntax
		expected string
	}{
		{
			title:  "python syntax",
			syntax: pythonSyntax,
			expected: `{
  "active": True,
  "count": 2,
  "deleted": False,
  "meta": {
    "empty": {},
    "none": []
  },
  "name": "widget",
  "parent": None,
  "ratio": 1.5,
  "tags": [
    "a",
    "b"
  ]
}`,
		},
		{
			title:  "javascript syntax",
			syntax: javascriptSyntax,
			expected: `{
  "active": true,
  "count": 2,
  "deleted": false,
  "meta": {
    "empty": {},
    "none": []
  },
  "name": "widget",
  "parent": null,
  "ratio": 1.5,
  "tags": [
    "a",
    "b"
  ]
}`,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual := renderLiteral(nested, tt.syntax)
			if actual != tt.expected {
				t.Errorf("unexpected literal:\nexpected:\n%s\nactual:\n%s", tt.expected, actual)
			}
		})
	}
}

func TestRenderLiteralDeterministic(t *testing.T) {
	value := map[string]interface{}{"b": float64(2), "a": float64(1), "c": float64(3)}

	first := renderLiteral(value, javascriptSyntax)
	for i := 0; i < 10; i++ {
		if actual := renderLiteral(value, javascriptSyntax); actual != first {
			t.Fatalf("rendering is not deterministic: first=%q, actual=%q", first, actual)
		}
	}
}

func TestQuoteString(t *testing.T) {
	testCases := []struct {
		title    string
		value    string
		expected string
	}{
		{title: "plain", value: "abc", expected: `"abc"`},
		{title: "embedded quotes", value: `say "hi"`, expected: `"say \"hi\""`},
		{title: "newline", value: "a\nb", expected: `"a\nb"`},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			if actual := quoteString(tt.value); actual != tt.expected {
				t.Errorf("unexpected quoting: expected=%s, actual=%s", tt.expected, actual)
			}
		})
	}
}
