package output

import (
	"io"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/exchange"
)

type Printer interface {
	PrintAnalysis(analysis *analyze.Analysis) error
	PrintCode(language string, code string) error
	PrintDocs(format string, content string) error
	PrintExecution(result *exchange.Result) error
}

func NewPrinter(writer io.Writer, options *Options) Printer {
	if options.EnableColor {
		return NewPrettyPrinter(writer, options)
	}
	return NewPlainPrinter(writer, options)
}
