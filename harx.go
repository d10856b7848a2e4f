package harx

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/harx-dev/harx/analyze"
	"github.com/harx-dev/harx/codegen"
	"github.com/harx-dev/harx/config"
	"github.com/harx-dev/harx/docgen"
	"github.com/harx-dev/harx/exchange"
	"github.com/harx-dev/harx/flags"
	"github.com/harx-dev/harx/har"
	"github.com/harx-dev/harx/llm"
	"github.com/harx-dev/harx/output"
	"github.com/harx-dev/harx/version"
)

func Main() error {
	// Parse flags
	flagSet, optionSet, err := flags.Parse(os.Args)
	if _, ok := errors.Cause(err).(*flags.UsageError); ok {
		flagSet.PrintUsage(os.Stderr)
		return err
	}
	if err != nil {
		return err
	}

	if optionSet.ShowVersion {
		fmt.Printf("harx %s\n", version.Current())
		return nil
	}
	if optionSet.ShowLicenses {
		version.PrintLicenses(os.Stdout)
		return nil
	}

	cfg, err := config.Load(optionSet.ConfigPath)
	if err != nil {
		return err
	}

	// Read and parse the capture
	data, err := os.ReadFile(optionSet.HARPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", optionSet.HARPath)
	}
	doc, err := har.Parse(data)
	if err != nil {
		return err
	}

	// Ask the selection model for the best match
	apiKey, err := flags.ResolveAPIKey(cfg.OpenAI.APIKey)
	if err != nil {
		return err
	}
	selector := llm.NewOpenAIClient(apiKey, zap.NewNop(),
		llm.WithModel(cfg.OpenAI.Model),
		llm.WithBaseURL(cfg.OpenAI.BaseURL))

	ctx := context.Background()
	analysis, err := analyze.Run(ctx, doc, optionSet.Description, selector)
	if err != nil {
		return err
	}

	// Print the analysis
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()
	printer := output.NewPrinter(writer, &optionSet.OutputOptions)
	if err := printer.PrintAnalysis(analysis); err != nil {
		return err
	}

	if optionSet.Language != "" {
		code, err := codegen.Generate(analysis.Model, codegen.Language(optionSet.Language))
		if err != nil {
			return err
		}
		if err := printer.PrintCode(optionSet.Language, code); err != nil {
			return err
		}
	}

	if optionSet.Format != "" {
		format := docgen.Format(optionSet.Format)
		content, err := docgen.Generate(analysis.Model, analysis.Auth, format)
		if err != nil {
			return err
		}
		if optionSet.OutputOptions.OutputFile != "" {
			fileWriter := output.NewFileWriter(docgen.Filename(analysis.Model, format), &optionSet.OutputOptions)
			if err := fileWriter.Write(content); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved documentation to %s\n", fileWriter.Path())
		} else {
			if err := printer.PrintDocs(optionSet.Format, content); err != nil {
				return err
			}
		}
	}

	if optionSet.Exec {
		result, err := exchange.Execute(ctx, analysis.Model, &optionSet.ExchangeOptions)
		if err != nil {
			return err
		}
		if err := printer.PrintExecution(result); err != nil {
			return err
		}
	}

	return nil
}
