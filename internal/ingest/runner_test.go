package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	processor "github.com/licagency/policy-tracker/internal/pipeline"
	"github.com/licagency/policy-tracker/internal/store"
)

const commissionDoc = `COMMISSION STATEMENT FOR MAY

S.NO PH NAME POLICY NO PLAN FUP DATE PAID ON PREM COMM
1 C NONDICHAMY 308700508 814-21 27/05/2025 26/05/2025 2640.00 132.00

TOTAL 2640.00 132.00
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunner(moveFiles bool) (*Runner, *store.MemStore) {
	mem := store.NewMemStore()
	p := processor.New(mem, nil, testLogger())
	return NewRunner(p, moveFiles, testLogger()), mem
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mustLs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunRoutesByOutcome(t *testing.T) {
	root := t.TempDir()
	incoming := filepath.Join(root, "incoming")
	if err := os.MkdirAll(filepath.Join(incoming, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, incoming, "CM-1234567N-20250501.txt", commissionDoc)
	writeFile(t, incoming, "bad.txt", "x")
	writeFile(t, incoming, "zz-copy.txt", commissionDoc) // same content, new name
	writeFile(t, incoming, ".hidden.txt", commissionDoc)
	writeFile(t, incoming, "data.csv", "308700508,C NONDICHAMY")

	r, _ := newRunner(true)
	res, err := r.Run(context.Background(), incoming)
	if err != nil {
		t.Fatal(err)
	}

	if res.Scanned != 5 || res.Skipped != 2 {
		t.Errorf("scanned/skipped = %d/%d, want 5/2", res.Scanned, res.Skipped)
	}
	if res.Processed != 1 || res.Duplicates != 1 || res.Errors != 1 {
		t.Errorf("processed/duplicates/errors = %d/%d/%d, want 1/1/1",
			res.Processed, res.Duplicates, res.Errors)
	}
	if len(res.Documents) != 3 {
		t.Errorf("documents = %d, want 3", len(res.Documents))
	}

	if got := mustLs(t, filepath.Join(root, "processed")); len(got) != 1 || got[0] != "CM-1234567N-20250501.txt" {
		t.Errorf("processed/ = %v", got)
	}
	if got := mustLs(t, filepath.Join(root, "duplicates")); len(got) != 1 || got[0] != "zz-copy.txt" {
		t.Errorf("duplicates/ = %v", got)
	}
	if got := mustLs(t, filepath.Join(root, "errors")); len(got) != 1 || got[0] != "bad.txt" {
		t.Errorf("errors/ = %v", got)
	}

	// Skipped files stay put, routed files leave.
	left := mustLs(t, incoming)
	if len(left) != 3 { // .hidden.txt, data.csv, nested/
		t.Errorf("incoming/ after run = %v", left)
	}

	logBytes, err := os.ReadFile(filepath.Join(root, "error_log.txt"))
	if err != nil {
		t.Fatalf("error log: %v", err)
	}
	if !strings.Contains(string(logBytes), "bad.txt: no extractable text") {
		t.Errorf("error log = %q", logBytes)
	}
}

func TestRunProcessesInNameOrder(t *testing.T) {
	root := t.TempDir()
	incoming := filepath.Join(root, "incoming")
	if err := os.MkdirAll(incoming, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, incoming, "b.txt", "x")
	writeFile(t, incoming, "a.txt", "x")

	r, _ := newRunner(false)
	res, err := r.Run(context.Background(), incoming)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Documents) != 2 {
		t.Fatalf("documents = %d", len(res.Documents))
	}
	if res.Documents[0].Filename != "a.txt" || res.Documents[1].Filename != "b.txt" {
		t.Errorf("order = %s, %s", res.Documents[0].Filename, res.Documents[1].Filename)
	}
}

func TestRunDryRunLeavesFilesInPlace(t *testing.T) {
	root := t.TempDir()
	incoming := filepath.Join(root, "incoming")
	if err := os.MkdirAll(incoming, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, incoming, "CM-1234567N-20250501.txt", commissionDoc)

	r, mem := newRunner(false)
	res, err := r.Run(context.Background(), incoming)
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 1 {
		t.Fatalf("processed = %d", res.Processed)
	}

	// The store still commits on dry runs; only file moves are disabled.
	if _, policies, _, _ := mem.Counts(); policies != 1 {
		t.Errorf("policies = %d, want 1", policies)
	}
	if got := mustLs(t, incoming); len(got) != 1 {
		t.Errorf("incoming/ = %v", got)
	}
	if _, err := os.Stat(filepath.Join(root, "processed")); !os.IsNotExist(err) {
		t.Error("processed/ should not be created on a dry run")
	}
}

func TestRouteRenamesOnCollision(t *testing.T) {
	root := t.TempDir()
	incoming := filepath.Join(root, "incoming")
	errorsDir := filepath.Join(root, "errors")
	for _, d := range []string{incoming, errorsDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, errorsDir, "bad.txt", "earlier failure")
	writeFile(t, incoming, "bad.txt", "x")

	r, _ := newRunner(true)
	if _, err := r.Run(context.Background(), incoming); err != nil {
		t.Fatal(err)
	}

	got := mustLs(t, errorsDir)
	if len(got) != 2 {
		t.Fatalf("errors/ = %v, want the earlier file kept", got)
	}
	var suffixed bool
	for _, name := range got {
		if name != "bad.txt" && strings.HasPrefix(name, "bad_") && strings.HasSuffix(name, ".txt") {
			suffixed = true
		}
	}
	if !suffixed {
		t.Errorf("errors/ = %v, want a timestamp-suffixed copy", got)
	}
}
