package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/licagency/policy-tracker/internal/common"
	"github.com/licagency/policy-tracker/internal/ingest"
	"github.com/licagency/policy-tracker/internal/llm"
	processor "github.com/licagency/policy-tracker/internal/pipeline"
	repo "github.com/licagency/policy-tracker/internal/repository"
	"github.com/licagency/policy-tracker/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "incoming directory to process documents from (required)")
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		dryRun = flag.Bool("dry-run", false, "reconcile into memory only; do not write the database or move files")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var st store.TxStore
	if *dryRun {
		logger.Info("dry run: using in-memory store, files stay in place")
		st = store.NewMemStore()
	} else {
		dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer dbResult.Cleanup()
		st = repo.NewStore(dbResult.Client, logger)
	}

	// Model fallback is optional; without a key, pattern parsing is all
	// there is.
	var fallback llm.RowExtractor
	if cfg.LLM.APIKey != "" {
		ext, err := llm.NewGeminiExtractor(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger)
		if err != nil {
			logger.Error("failed to initialize model client", "error", err)
			os.Exit(1)
		}
		fallback = ext
		logger.Info("model fallback enabled", "model", cfg.LLM.Model)
	} else {
		logger.Warn("GEMINI_API_KEY not configured, model fallback disabled")
	}

	proc := processor.New(st, fallback, logger)
	runner := ingest.NewRunner(proc, !*dryRun, logger)

	logger.Info("starting batch", "dir", *dir)
	result, err := runner.Run(ctx, *dir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Scanned:    %d\n", result.Scanned)
	fmt.Printf("- Skipped:    %d\n", result.Skipped)
	fmt.Printf("- Processed:  %d\n", result.Processed)
	fmt.Printf("- Duplicates: %d\n", result.Duplicates)
	fmt.Printf("- Errors:     %d\n", result.Errors)
	for _, doc := range result.Documents {
		if doc.Reason != "" {
			fmt.Printf("  %s [%s]: %s\n", doc.Filename, doc.Outcome, doc.Reason)
		}
	}
}
