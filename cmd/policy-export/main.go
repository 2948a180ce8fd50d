package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/licagency/policy-tracker/internal/common"
	"github.com/licagency/policy-tracker/internal/export"
)

func main() {
	var (
		out   = flag.String("out", "policies.xlsx", "output XLSX file path")
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Export.OutputPath != "" && *out == "policies.xlsx" {
		*out = cfg.Export.OutputPath
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	svc := export.NewService(dbResult.Client, logger)
	data, err := svc.ExportXLSX(ctx)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Export complete: %s (%d bytes)\n", *out, len(data))
}
