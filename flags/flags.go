// Package flags turns command line arguments into the option set the
// CLI runs with.
package flags

import (
	"io"
	"os"
	"regexp"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"

	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/output"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	HARPath     string
	Description string

	Language   string
	Format     string
	Exec       bool
	ConfigPath string

	ShowVersion  bool
	ShowLicenses bool

	ExchangeOptions exchange.Options
	OutputOptions   output.Options
}

// UsageError means the command line itself was wrong and usage should
// be shown.
type UsageError struct {
	message string
}

func (e *UsageError) Error() string {
	return e.message
}

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdinIsTerminal:  isatty.IsTerminal(os.Stdin.Fd()),
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
}

func parse(args []string, terminal terminalInfo) (FlagSet, *OptionSet, error) {
	exchangeOptions := exchange.Options{}
	outputOptions := output.Options{}
	optionSet := OptionSet{}
	printFlag := "\000" // indicates the user did not specify --print
	timeout := "30s"

	flagSet := getopt.New()
	flagSet.SetParameters("HAR_FILE DESCRIPTION")
	flagSet.StringVarLong(&optionSet.Language, "lang", 'l', "also generate code in this language (python, javascript, go)")
	flagSet.StringVarLong(&optionSet.Format, "format", 'f', "also export documentation in this format (markdown, openapi)")
	flagSet.BoolVarLong(&optionSet.Exec, "exec", 'x', "re-execute the selected request and print the response")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (cdap)")
	flagSet.StringVarLong(&timeout, "timeout", 0, "timeout for the re-executed request (number of seconds or duration string)")
	flagSet.StringVarLong(&outputOptions.OutputFile, "output", 'o', "write exported documentation to this file")
	flagSet.BoolVarLong(&outputOptions.Overwrite, "overwrite", 0, "overwrite the documentation file if it exists")
	flagSet.StringVarLong(&optionSet.ConfigPath, "config", 0, "directory to search for harx.yml")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 'v', "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicenses, "licenses", 0, "print licenses of dependencies and exit")
	flagSet.Parse(args)

	if err := parsePrintFlag(printFlag, terminal, &outputOptions); err != nil {
		return nil, nil, err
	}

	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return nil, nil, err
	}
	exchangeOptions.Timeout = d

	outputOptions.EnableColor = terminal.stdoutIsTerminal

	if !optionSet.ShowVersion && !optionSet.ShowLicenses {
		positional := flagSet.Args()
		if len(positional) != 2 {
			return flagSet, nil, &UsageError{message: "HAR_FILE and DESCRIPTION are required"}
		}
		optionSet.HARPath = positional[0]
		optionSet.Description = positional[1]
	}

	optionSet.ExchangeOptions = exchangeOptions
	optionSet.OutputOptions = outputOptions
	return flagSet, &optionSet, nil
}

func parsePrintFlag(printFlag string, terminal terminalInfo, outputOptions *output.Options) error {
	if printFlag == "\000" {
		// --print is not specified
		outputOptions.PrintCurl = true
		if terminal.stdoutIsTerminal {
			outputOptions.PrintDetails = true
			outputOptions.PrintAuth = true
			outputOptions.PrintParameters = true
		}
		return nil
	}
	for _, c := range printFlag {
		switch c {
		case 'c':
			outputOptions.PrintCurl = true
		case 'd':
			outputOptions.PrintDetails = true
		case 'a':
			outputOptions.PrintAuth = true
		case 'p':
			outputOptions.PrintParameters = true
		default:
			return errors.Errorf("Invalid char in --print value (must be consist of cdap): %c", c)
		}
	}
	return nil
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
