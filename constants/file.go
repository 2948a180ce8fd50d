package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for document ingestion.
// PDFs are the normal case; .txt covers pre-extracted text dumps.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
