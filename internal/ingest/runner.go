// Package ingest walks an incoming directory and drives each document
// through the processor, routing the file to processed/, duplicates/, or
// errors/ next to the incoming directory.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/pipeline"
)

const errorLogName = "error_log.txt"

// Destination directory names, siblings of the incoming directory.
const (
	DirProcessed  = "processed"
	DirDuplicates = "duplicates"
	DirErrors     = "errors"
)

// RunResult aggregates one batch run.
type RunResult struct {
	Scanned    int
	Skipped    int // wrong extension or hidden
	Processed  int
	Duplicates int
	Errors     int
	Documents  []processor.DocumentResult
}

type Runner struct {
	Processor *processor.Processor
	Logger    *slog.Logger

	// MoveFiles disables file routing when false (dry runs).
	MoveFiles bool
}

func NewRunner(p *processor.Processor, moveFiles bool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Processor: p, MoveFiles: moveFiles, Logger: logger.With("component", "ingest")}
}

// Run processes every allowed file directly under incomingDir, one at a
// time in name order. A panic or failure in one document is contained to
// that document; the batch always runs to completion.
func (r *Runner) Run(ctx context.Context, incomingDir string) (RunResult, error) {
	entries, err := os.ReadDir(incomingDir)
	if err != nil {
		return RunResult{}, fmt.Errorf("read incoming directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var res RunResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		res.Scanned++
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			res.Skipped++
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			res.Skipped++
			continue
		}

		path := filepath.Join(incomingDir, name)
		doc := r.processOne(ctx, path)
		res.Documents = append(res.Documents, doc)

		switch doc.Outcome {
		case constants.OutcomeProcessed:
			res.Processed++
			r.route(incomingDir, path, DirProcessed)
		case constants.OutcomeDuplicate:
			res.Duplicates++
			r.route(incomingDir, path, DirDuplicates)
		default:
			res.Errors++
			r.logError(incomingDir, name, doc.Reason)
			r.route(incomingDir, path, DirErrors)
		}
	}

	r.Logger.Info("batch complete",
		"scanned", res.Scanned, "skipped", res.Skipped,
		"processed", res.Processed, "duplicates", res.Duplicates, "errors", res.Errors)
	return res, nil
}

// processOne isolates panics so one broken document cannot take down the
// batch.
func (r *Runner) processOne(ctx context.Context, path string) (doc processor.DocumentResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Error("panic while processing document", "path", path, "panic", rec)
			doc = processor.DocumentResult{
				Path:     path,
				Filename: filepath.Base(path),
				Outcome:  constants.OutcomeError,
				Reason:   fmt.Sprintf("panic: %v", rec),
			}
		}
	}()
	return r.Processor.Process(ctx, path)
}

// route moves a file into a sibling destination directory, creating it on
// first use. A name collision gets a timestamp suffix instead of clobbering
// the earlier file.
func (r *Runner) route(incomingDir, path, destName string) {
	if !r.MoveFiles {
		return
	}
	destDir := filepath.Join(filepath.Dir(incomingDir), destName)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		r.Logger.Error("create destination directory", "dir", destDir, "error", err)
		return
	}

	base := filepath.Base(path)
	dest := filepath.Join(destDir, base)
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		dest = filepath.Join(destDir, fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102150405"), ext))
	}
	if err := os.Rename(path, dest); err != nil {
		r.Logger.Error("move document", "from", path, "to", dest, "error", err)
	}
}

// logError appends a timestamped line to the error log beside the incoming
// directory. The log is for humans; the run result is the source of truth.
func (r *Runner) logError(incomingDir, filename, reason string) {
	logPath := filepath.Join(filepath.Dir(incomingDir), errorLogName)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.Logger.Error("open error log", "path", logPath, "error", err)
		return
	}
	defer f.Close()
	line := fmt.Sprintf("[%s] %s: %s\n", time.Now().Format(time.RFC3339), filename, reason)
	if _, err := f.WriteString(line); err != nil {
		r.Logger.Error("append error log", "path", logPath, "error", err)
	}
}
