// Package processor drives one document through the full pipeline:
// text extraction, duplicate check, classification, table location, row
// parsing, and reconciliation inside a single transaction.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/dedup"
	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/extract"
	"github.com/licagency/policy-tracker/internal/llm"
	"github.com/licagency/policy-tracker/internal/parse"
	"github.com/licagency/policy-tracker/internal/recon"
	"github.com/licagency/policy-tracker/internal/store"
)

// minTextLen is the threshold below which a document counts as unreadable.
const minTextLen = 10

// errNoWrites marks a document where every row either failed or changed
// nothing, so the whole transaction must be discarded.
var errNoWrites = errors.New("no successful writes for document")

// DocumentResult is one document's terminal state plus the counts behind it.
type DocumentResult struct {
	Path            string
	Filename        string
	Type            constants.DocumentType
	Outcome         constants.Outcome
	Reason          string
	DuplicateMethod dedup.Method
	CandidateRows   int
	ValidRows       int
	Recon           recon.Result
	UsedFallback    bool
}

type Processor struct {
	Store    store.TxStore
	Detector *dedup.Detector
	Engine   *recon.Engine
	Fallback llm.RowExtractor // optional; nil disables model extraction
	Logger   *slog.Logger
}

func New(st store.TxStore, fallback llm.RowExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Store:    st,
		Detector: dedup.NewDetector(st, logger),
		Engine:   recon.NewEngine(logger),
		Fallback: fallback,
		Logger:   logger.With("component", "processor"),
	}
}

// Process runs one document to a terminal outcome. It never returns an
// error for document-level problems; those become the Error outcome with a
// reason. An error return means the store itself is unusable.
func (p *Processor) Process(ctx context.Context, path string) DocumentResult {
	res := DocumentResult{Path: path, Filename: filepath.Base(path)}

	doc, errRes := p.prepare(ctx, path, &res)
	if errRes != nil {
		return *errRes
	}

	dup, method, err := p.Detector.IsDuplicate(ctx, doc.ContentHash, doc.Filename)
	if err != nil {
		return p.fail(res, fmt.Sprintf("duplicate check failed: %v", err))
	}
	if dup {
		res.Outcome = constants.OutcomeDuplicate
		res.DuplicateMethod = method
		res.Reason = fmt.Sprintf("already ingested (%s match)", method)
		return res
	}

	rows, candidates := p.parseRows(ctx, doc, &res)
	res.CandidateRows = candidates
	res.ValidRows = len(rows)
	if candidates == 0 {
		return p.fail(res, "no row parser produced any candidate rows")
	}
	if len(rows) == 0 {
		return p.fail(res, "every candidate row was rejected during normalization")
	}

	var rec recon.Result
	err = p.Store.WithinTx(ctx, func(ctx context.Context, tx store.Store) error {
		rec = p.Engine.Reconcile(ctx, tx, doc, rows)
		if !rec.Changed() {
			if rec.Failed > 0 {
				return errNoWrites
			}
			return store.ErrRollback
		}
		return p.recordDocument(ctx, tx, doc, rows)
	})
	res.Recon = rec
	if err != nil {
		if errors.Is(err, errNoWrites) {
			return p.fail(res, "all rows failed to write")
		}
		return p.fail(res, fmt.Sprintf("transaction failed: %v", err))
	}

	if !rec.Changed() {
		// Every row mapped onto already-current records. Nothing new here,
		// which is not the same as a broken file.
		res.Outcome = constants.OutcomeDuplicate
		res.Reason = "all rows already current"
		return res
	}

	res.Outcome = constants.OutcomeProcessed
	p.Logger.Info("document processed",
		"filename", res.Filename, "type", res.Type,
		"created", rec.Created, "updated", rec.Updated,
		"skipped", rec.Skipped, "failed", rec.Failed)
	return res
}

// prepare extracts text, hashes it, and classifies the document. A nil
// second return means prepare succeeded.
func (p *Processor) prepare(ctx context.Context, path string, res *DocumentResult) (*entity.SourceDocument, *DocumentResult) {
	extractor, err := extract.ForFile(path, p.Logger)
	if err != nil {
		r := p.fail(*res, err.Error())
		return nil, &r
	}
	ext, err := extractor.Extract(ctx, path)
	if err != nil {
		r := p.fail(*res, fmt.Sprintf("text extraction failed: %v", err))
		return nil, &r
	}
	for _, w := range ext.Warnings {
		p.Logger.Warn("extraction warning", "filename", res.Filename, "warning", w)
	}

	text := ext.Text()
	if len(strings.TrimSpace(text)) < minTextLen {
		r := p.fail(*res, "no extractable text")
		return nil, &r
	}

	doc := &entity.SourceDocument{
		Path:             path,
		Filename:         res.Filename,
		Pages:            ext.Pages,
		Text:             text,
		Type:             parse.Classify(res.Filename, text),
		DocumentDate:     parse.DocumentDate(res.Filename, text),
		AgentCode:        parse.AgentCode(res.Filename, text),
		ExtractionMethod: constants.ExtractionPattern,
	}
	if len(ext.Pages) > 0 {
		doc.ContentHash = dedup.ContentHash(ext.Pages[0])
	}
	res.Type = doc.Type
	return doc, nil
}

// parseRows runs the typed parser over the located table, falling back to
// the generic parser and then the model extractor when nothing matches.
func (p *Processor) parseRows(ctx context.Context, doc *entity.SourceDocument, res *DocumentResult) ([]entity.RowExtraction, int) {
	table := parse.LocateTable(doc.Text, doc.Type)
	rows, candidates := parse.ForType(doc.Type, p.Logger).Parse(table)

	if candidates == 0 && doc.Type != constants.DocTypeUnknown {
		rows, candidates = parse.ForType(constants.DocTypeUnknown, p.Logger).Parse(doc.Text)
	}

	if len(rows) == 0 && p.Fallback != nil {
		llmRows, err := p.Fallback.ExtractRows(ctx, doc)
		if err != nil {
			p.Logger.Warn("model extraction failed", "filename", doc.Filename, "error", err)
			return rows, candidates
		}
		if len(llmRows) > 0 {
			doc.ExtractionMethod = constants.ExtractionAI
			res.UsedFallback = true
			return llmRows, len(llmRows)
		}
	}
	return rows, candidates
}

func (p *Processor) recordDocument(ctx context.Context, tx store.Store, doc *entity.SourceDocument, rows []entity.RowExtraction) error {
	seen := make(map[string]struct{}, len(rows))
	numbers := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.PolicyNumber]; ok {
			continue
		}
		seen[r.PolicyNumber] = struct{}{}
		numbers = append(numbers, r.PolicyNumber)
	}

	rec := &entity.IngestedDocument{
		ID:            uuid.New(),
		FileName:      doc.Filename,
		FilePath:      doc.Path,
		DocumentType:  string(doc.Type),
		PolicyNumbers: numbers,
	}
	if doc.ContentHash != "" {
		rec.ContentHash = &doc.ContentHash
	}
	if doc.DocumentDate != "" {
		rec.DocumentDate = &doc.DocumentDate
	}
	return tx.RecordDocument(ctx, rec)
}

func (p *Processor) fail(res DocumentResult, reason string) DocumentResult {
	res.Outcome = constants.OutcomeError
	res.Reason = reason
	p.Logger.Error("document failed", "filename", res.Filename, "reason", reason)
	return res
}
