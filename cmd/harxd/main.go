package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pborman/getopt"
	"go.uber.org/zap"

	"github.com/harx-dev/harx/config"
	"github.com/harx-dev/harx/llm"
	"github.com/harx-dev/harx/server"
	"github.com/harx-dev/harx/version"
)

func main() {
	var configPath string
	var showVersion bool
	flagSet := getopt.New()
	flagSet.SetParameters("")
	flagSet.StringVarLong(&configPath, "config", 0, "directory to search for harx.yml")
	flagSet.BoolVarLong(&showVersion, "version", 'v', "print version and exit")
	flagSet.Parse(os.Args)

	if showVersion {
		fmt.Printf("harxd %s\n", version.Current())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OpenAI API key is not configured; /api/analyze will fail (set HARX_OPENAI_API_KEY)")
	}

	selector := llm.NewOpenAIClient(cfg.OpenAI.APIKey, logger,
		llm.WithModel(cfg.OpenAI.Model),
		llm.WithBaseURL(cfg.OpenAI.BaseURL))

	srv := server.New(logger, selector, cfg)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
