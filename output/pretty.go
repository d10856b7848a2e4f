package output

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/bytefmt"
	"github.com/logrusorgru/aurora"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/model"
)

type PrettyPrinter struct {
	writer  io.Writer
	options *Options
	plain   Printer
	aurora  aurora.Aurora
	palette *Palette
}

type Palette struct {
	Method     aurora.Color
	URL        aurora.Color
	Success    aurora.Color
	Failure    aurora.Color
	Section    aurora.Color
	FieldName  aurora.Color
	FieldValue aurora.Color
	Credential aurora.Color
}

var defaultPalette = Palette{
	Method:     aurora.GreenFg | aurora.BoldFm,
	URL:        aurora.CyanFg,
	Success:    aurora.GreenFg | aurora.BoldFm,
	Failure:    aurora.RedFg | aurora.BoldFm,
	Section:    aurora.BlueFg | aurora.BoldFm,
	FieldName:  aurora.GrayFg,
	FieldValue: aurora.CyanFg,
	Credential: aurora.BrownFg,
}

func NewPrettyPrinter(writer io.Writer, options *Options) Printer {
	return &PrettyPrinter{
		writer:  writer,
		options: options,
		plain:   NewPlainPrinter(writer, options),
		aurora:  aurora.NewAurora(true),
		palette: &defaultPalette,
	}
}

func (p *PrettyPrinter) PrintAnalysis(analysis *analyze.Analysis) error {
	if p.options.PrintDetails {
		fmt.Fprintf(p.writer, "%s %s\n",
			p.aurora.Colorize(analysis.Details.Method, p.palette.Method),
			p.aurora.Colorize(analysis.Details.URL, p.palette.URL))
		fmt.Fprintf(p.writer, "Matched request %d of %d API calls\n\n",
			analysis.Details.Index+1, analysis.Details.TotalAPIRequests)
	}
	if p.options.PrintCurl {
		fmt.Fprintf(p.writer, "%s\n\n", analysis.CurlCommand)
	}
	if p.options.PrintAuth {
		p.printAuth(analysis.Auth)
	}
	if p.options.PrintParameters {
		p.printParameters(analysis.Parameters)
	}
	return nil
}

func (p *PrettyPrinter) PrintCode(language string, code string) error {
	fmt.Fprintf(p.writer, "%s\n%s\n",
		p.aurora.Colorize("--- "+language+" ---", p.palette.Section), code)
	return nil
}

func (p *PrettyPrinter) PrintDocs(format string, content string) error {
	fmt.Fprintf(p.writer, "%s\n%s\n",
		p.aurora.Colorize("--- "+format+" ---", p.palette.Section), content)
	return nil
}

func (p *PrettyPrinter) PrintExecution(result *exchange.Result) error {
	statusColor := p.palette.Success
	if result.StatusCode >= 400 {
		statusColor = p.palette.Failure
	}
	status := fmt.Sprintf("%d %s", result.StatusCode, result.StatusText)
	fmt.Fprintf(p.writer, "%s (%gs, %s)\n",
		p.aurora.Colorize(status, statusColor),
		result.ElapsedSeconds, bytefmt.ByteSize(uint64(result.SizeBytes)))

	for _, name := range sortedNames(result.Headers) {
		fmt.Fprintf(p.writer, "%s: %s\n",
			p.aurora.Colorize(name, p.palette.FieldName),
			p.aurora.Colorize(result.Headers[name], p.palette.FieldValue))
	}
	fmt.Fprintln(p.writer)

	return printExecutionBody(p.writer, result)
}

func (p *PrettyPrinter) printAuth(auth model.AuthInfo) {
	if auth.Type == model.AuthNone {
		fmt.Fprintf(p.writer, "%s none\n\n", p.aurora.Colorize("Authentication:", p.palette.Section))
		return
	}
	fmt.Fprintf(p.writer, "%s %s (%s)\n",
		p.aurora.Colorize("Authentication:", p.palette.Section), auth.Type, auth.Location)
	fmt.Fprintf(p.writer, "  Value: %s\n\n", p.aurora.Colorize(auth.RedactedValue, p.palette.Credential))
}

func (p *PrettyPrinter) printParameters(parameters analyze.Parameters) {
	if len(parameters.QueryParams) > 0 {
		fmt.Fprintln(p.writer, p.aurora.Colorize("Query parameters:", p.palette.Section))
		for _, name := range sortedNames(parameters.QueryParams) {
			p.printField(name, parameters.QueryParams[name])
		}
	}
	if len(parameters.PathParams) > 0 {
		fmt.Fprintln(p.writer, p.aurora.Colorize("Path parameters:", p.palette.Section))
		for _, name := range parameters.PathParams {
			fmt.Fprintf(p.writer, "  %s\n", name)
		}
	}
	if len(parameters.Headers) > 0 {
		fmt.Fprintln(p.writer, p.aurora.Colorize("Headers:", p.palette.Section))
		for _, name := range sortedNames(parameters.Headers) {
			p.printField(name, parameters.Headers[name])
		}
	}
}

func (p *PrettyPrinter) printField(name, value string) {
	fmt.Fprintf(p.writer, "  %s: %s\n",
		p.aurora.Colorize(name, p.palette.FieldName),
		p.aurora.Colorize(value, p.palette.FieldValue))
}
