package codegen

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// literalSyntax captures the only tokens that differ between the
// JSON-like literal syntaxes of the target languages. Strings, numbers,
// arrays and objects render identically; keeping the divergence here
// keeps escaping rules centralized and testable.
type literalSyntax struct {
	trueToken  string
	falseToken string
	nullToken  string
}

var (
	pythonSyntax     = literalSyntax{trueToken: "True", falseToken: "False", nullToken: "None"}
	javascriptSyntax = literalSyntax{trueToken: "true", falseToken: "false", nullToken: "null"}
)

// renderLiteral renders a decoded JSON value as a literal in the target
// syntax, with 2-space indentation and map keys sorted so the output is
// deterministic.
func renderLiteral(value interface{}, syntax literalSyntax) string {
	var sb strings.Builder
	writeLiteral(&sb, value, syntax, 0)
	return sb.String()
}

func writeLiteral(sb *strings.Builder, value interface{}, syntax literalSyntax, depth int) {
	switch v := value.(type) {
	case nil:
		sb.WriteString(syntax.nullToken)
	case bool:
		if v {
			sb.WriteString(syntax.trueToken)
		} else {
			sb.WriteString(syntax.falseToken)
		}
	case string:
		sb.WriteString(quoteString(v))
	case float64:
		sb.WriteString(formatNumber(v))
	case json.Number:
		sb.WriteString(v.String())
	case []interface{}:
		writeArray(sb, v, syntax, depth)
	case map[string]interface{}:
		writeObject(sb, v, syntax, depth)
	default:
		// Values produced by encoding/json never reach here; anything
		// else is rendered through its JSON form.
		data, err := json.Marshal(v)
		if err != nil {
			sb.WriteString(quoteString(fmt.Sprintf("%v", v)))
			return
		}
		sb.Write(data)
	}
}

func writeArray(sb *strings.Builder, values []interface{}, syntax literalSyntax, depth int) {
	if len(values) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteString("[\n")
	for i, value := range values {
		writeIndent(sb, depth+1)
		writeLiteral(sb, value, syntax, depth+1)
		if i < len(values)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	writeIndent(sb, depth)
	sb.WriteString("]")
}

func writeObject(sb *strings.Builder, object map[string]interface{}, syntax literalSyntax, depth int) {
	if len(object) == 0 {
		sb.WriteString("{}")
		return
	}
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sb.WriteString("{\n")
	for i, key := range keys {
		writeIndent(sb, depth+1)
		sb.WriteString(quoteString(key))
		sb.WriteString(": ")
		writeLiteral(sb, object[key], syntax, depth+1)
		if i < len(keys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	writeIndent(sb, depth)
	sb.WriteString("}")
}

func writeIndent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

// quoteString produces a double-quoted, JSON-escaped string literal,
// which is valid in Python and JavaScript alike.
func quoteString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(data)
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// stringMapLiteral renders a map of strings as an object literal with
// sorted keys.
func stringMapLiteral(values map[string]string, syntax literalSyntax) string {
	object := make(map[string]interface{}, len(values))
	for key, value := range values {
		object[key] = value
	}
	return renderLiteral(object, syntax)
}

// formLiteral renders multi-value form data: single values render as
// strings, repeated names as arrays.
func formLiteral(form url.Values, syntax literalSyntax) string {
	object := make(map[string]interface{}, len(form))
	for key, values := range form {
		if len(values) == 1 {
			object[key] = values[0]
			continue
		}
		list := make([]interface{}, len(values))
		for i, value := range values {
			list[i] = value
		}
		object[key] = list
	}
	return renderLiteral(object, syntax)
}
