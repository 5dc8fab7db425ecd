// Package textextract pulls best-effort plain text out of resume documents.
//
// Nothing in this package returns an error to the caller: unsupported,
// corrupt or unreadable documents produce an empty string and a logged
// diagnostic so that a bad upload never aborts the pipeline.
package textextract

import (
	"path/filepath"
	"strings"

	"github.com/muhammadolammi/resumeparser/internal/logger"
)

// blockSeparator separates pages, paragraphs and table rows in the output.
const blockSeparator = "\n\n"

// Extract returns the text of a PDF, DOCX or DOC document. The format is
// chosen from the filename suffix, case-insensitively.
func Extract(content []byte, filename string) (text string) {
	ext := strings.ToLower(filepath.Ext(filename))

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("file", filename).Interface("panic", r).Msg("text extraction panicked")
			text = ""
		}
	}()

	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(content)
	case ".docx":
		text, err = extractDOCX(content)
	case ".doc":
		// Legacy binary .doc is not really supported; some files are DOCX
		// archives with the wrong suffix and those still work.
		text, err = extractDOC(content)
		if err != nil {
			logger.Warn().Str("file", filename).Err(err).Msg("doc extraction failed, legacy .doc format is not supported")
			return ""
		}
	default:
		logger.Warn().Str("file", filename).Msg("unsupported file type")
		return ""
	}

	if err != nil {
		logger.Error().Str("file", filename).Err(err).Msg("text extraction failed")
		return ""
	}
	return text
}

// joinBlocks drops blank blocks and joins the rest.
func joinBlocks(blocks []string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, blockSeparator)
}
