// Package dedup decides whether an incoming document has been seen before.
// The primary signal is a hash of the opening text of the first page, which
// survives re-downloads under a different filename. When a document yields
// no usable text the filename is the only signal left.
package dedup

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/licagency/policy-tracker/internal/store"
)

const hashSampleLen = 1000

// Method names the signal that matched.
type Method string

const (
	MethodContent  Method = "content_hash"
	MethodFilename Method = "filename"
	MethodNone     Method = "none"
)

// ContentHash hashes a stable prefix of the first page. Statement bodies
// repeat boilerplate across months, but the opening block carries the
// period and agent, so two distinct statements hash differently while a
// re-upload of the same file hashes identically.
func ContentHash(firstPage string) string {
	sample := strings.TrimSpace(firstPage)
	if sample == "" {
		return ""
	}
	if len(sample) > hashSampleLen {
		sample = sample[:hashSampleLen]
	}
	sum := md5.Sum([]byte(sample))
	return hex.EncodeToString(sum[:])
}

type Detector struct {
	store  store.Store
	logger *slog.Logger
}

func NewDetector(s store.Store, logger *slog.Logger) *Detector {
	return &Detector{store: s, logger: logger.With("component", "dedup")}
}

// IsDuplicate reports whether a document with this content hash, or failing
// that this filename, was already ingested. An empty hash downgrades the
// check to filename matching only.
func (d *Detector) IsDuplicate(ctx context.Context, contentHash, filename string) (bool, Method, error) {
	if contentHash != "" {
		doc, err := d.store.FindDocumentByHash(ctx, contentHash)
		if err != nil {
			return false, MethodNone, err
		}
		if doc != nil {
			d.logger.Info("duplicate document detected",
				"method", MethodContent, "filename", filename, "prior", doc.FileName)
			return true, MethodContent, nil
		}
		return false, MethodNone, nil
	}

	d.logger.Warn("no content hash available, falling back to filename match", "filename", filename)
	doc, err := d.store.FindDocumentByFilename(ctx, filename)
	if err != nil {
		return false, MethodNone, err
	}
	if doc != nil {
		d.logger.Info("duplicate document detected",
			"method", MethodFilename, "filename", filename)
		return true, MethodFilename, nil
	}
	return false, MethodNone, nil
}
