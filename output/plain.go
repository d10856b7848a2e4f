package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/model"
)

type PlainPrinter struct {
	writer  io.Writer
	options *Options
}

func NewPlainPrinter(writer io.Writer, options *Options) Printer {
	return &PlainPrinter{
		writer:  writer,
		options: options,
	}
}

func (p *PlainPrinter) PrintAnalysis(analysis *analyze.Analysis) error {
	if p.options.PrintDetails {
		fmt.Fprintf(p.writer, "%s %s\n", analysis.Details.Method, analysis.Details.URL)
		fmt.Fprintf(p.writer, "Matched request %d of %d API calls\n\n",
			analysis.Details.Index+1, analysis.Details.TotalAPIRequests)
	}
	if p.options.PrintCurl {
		fmt.Fprintf(p.writer, "%s\n\n", analysis.CurlCommand)
	}
	if p.options.PrintAuth {
		printAuth(p.writer, analysis.Auth)
	}
	if p.options.PrintParameters {
		printParameters(p.writer, analysis.Parameters)
	}
	return nil
}

func (p *PlainPrinter) PrintCode(language string, code string) error {
	fmt.Fprintf(p.writer, "--- %s ---\n%s\n", language, code)
	return nil
}

func (p *PlainPrinter) PrintDocs(format string, content string) error {
	fmt.Fprintf(p.writer, "--- %s ---\n%s\n", format, content)
	return nil
}

func (p *PlainPrinter) PrintExecution(result *exchange.Result) error {
	fmt.Fprintf(p.writer, "%d %s (%gs, %s)\n",
		result.StatusCode, result.StatusText,
		result.ElapsedSeconds, bytefmt.ByteSize(uint64(result.SizeBytes)))

	for _, name := range sortedNames(result.Headers) {
		fmt.Fprintf(p.writer, "%s: %s\n", name, result.Headers[name])
	}
	fmt.Fprintln(p.writer)

	return printExecutionBody(p.writer, result)
}

func printAuth(writer io.Writer, auth model.AuthInfo) {
	if auth.Type == model.AuthNone {
		fmt.Fprintf(writer, "Authentication: none\n\n")
		return
	}
	fmt.Fprintf(writer, "Authentication: %s (%s)\n", auth.Type, auth.Location)
	fmt.Fprintf(writer, "  Value: %s\n\n", auth.RedactedValue)
}

func printParameters(writer io.Writer, parameters analyze.Parameters) {
	if len(parameters.QueryParams) > 0 {
		fmt.Fprintln(writer, "Query parameters:")
		for _, name := range sortedNames(parameters.QueryParams) {
			fmt.Fprintf(writer, "  %s: %s\n", name, parameters.QueryParams[name])
		}
	}
	if len(parameters.PathParams) > 0 {
		fmt.Fprintln(writer, "Path parameters:")
		for _, name := range parameters.PathParams {
			fmt.Fprintf(writer, "  %s\n", name)
		}
	}
	if len(parameters.Headers) > 0 {
		fmt.Fprintln(writer, "Headers:")
		for _, name := range sortedNames(parameters.Headers) {
			fmt.Fprintf(writer, "  %s: %s\n", name, parameters.Headers[name])
		}
	}
}

// printExecutionBody re-indents JSON bodies and writes anything else
// verbatim.
func printExecutionBody(writer io.Writer, result *exchange.Result) error {
	if result.BodyType == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "    ")
		if err := encoder.Encode(result.Body); err != nil {
			return errors.Wrap(err, "encoding JSON body")
		}
		return nil
	}
	text, _ := result.Body.(string)
	fmt.Fprintln(writer, text)
	return nil
}

func sortedNames(values map[string]string) []string {
	var names []string
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
