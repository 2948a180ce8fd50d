package dedup

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContentHash(t *testing.T) {
	a := ContentHash("AGENCY COMMISSION STATEMENT\nAgent 1234567N\n")
	b := ContentHash("  AGENCY COMMISSION STATEMENT\nAgent 1234567N\n  ")
	if a == "" {
		t.Fatal("hash should not be empty for real text")
	}
	if a != b {
		t.Error("leading and trailing whitespace must not change the hash")
	}
	if ContentHash("different statement entirely") == a {
		t.Error("different content must hash differently")
	}
	if ContentHash("   \n  ") != "" {
		t.Error("whitespace-only text has nothing hashable")
	}

	// Only the leading sample participates, so trailing pages can differ.
	prefix := strings.Repeat("x", 1500)
	if ContentHash(prefix+"AAA") != ContentHash(prefix+"BBB") {
		t.Error("bytes beyond the sample must not change the hash")
	}
}

func TestDetectorContentMatch(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	hash := ContentHash("some statement body")
	if err := st.RecordDocument(ctx, &entity.IngestedDocument{
		ID:          uuid.New(),
		FileName:    "CM-74N-20250401.pdf",
		FilePath:    "/in/CM-74N-20250401.pdf",
		ContentHash: &hash,
	}); err != nil {
		t.Fatal(err)
	}

	d := NewDetector(st, testLogger())

	dup, method, err := d.IsDuplicate(ctx, hash, "renamed-copy.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if !dup || method != MethodContent {
		t.Errorf("got (%v, %v), want duplicate by content", dup, method)
	}

	// Same filename but different content is not a duplicate.
	dup, _, err = d.IsDuplicate(ctx, ContentHash("other body"), "CM-74N-20250401.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if dup {
		t.Error("different content under a repeated filename must not be a duplicate")
	}
}

func TestDetectorFilenameFallback(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	if err := st.RecordDocument(ctx, &entity.IngestedDocument{
		ID:       uuid.New(),
		FileName: "scan.pdf",
		FilePath: "/in/scan.pdf",
	}); err != nil {
		t.Fatal(err)
	}

	d := NewDetector(st, testLogger())

	dup, method, err := d.IsDuplicate(ctx, "", "scan.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if !dup || method != MethodFilename {
		t.Errorf("got (%v, %v), want duplicate by filename", dup, method)
	}

	dup, _, err = d.IsDuplicate(ctx, "", "fresh.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if dup {
		t.Error("unseen filename with no hash must not be a duplicate")
	}
}
