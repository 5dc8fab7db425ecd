package textextract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"

	"github.com/muhammadolammi/resumeparser/internal/fallback"
	"github.com/muhammadolammi/resumeparser/internal/logger"
)

// pdfBackend returns the text of every page, in page order.
type pdfBackend struct {
	name  string
	pages func(content []byte) ([]string, error)
}

// pdfBackends are tried in order until one succeeds.
var pdfBackends = []pdfBackend{
	{name: "layout", pages: layoutPages},
	{name: "plain", pages: plainPages},
}

const (
	// wordGap is the horizontal gap, as a fraction of the font size, above
	// which two neighbouring text runs are treated as separate words.
	wordGap = 0.15
	// glyphWidth approximates an average glyph advance, as a fraction of the
	// font size, for runs whose width the reader did not report.
	glyphWidth = 0.5
)

func extractPDF(content []byte) (string, error) {
	strategies := make([]fallback.Strategy[[]string], 0, len(pdfBackends))
	for _, b := range pdfBackends {
		strategies = append(strategies, fallback.Strategy[[]string]{
			Name: b.name,
			Run: func(context.Context) ([]string, error) {
				pages, err := b.pages(content)
				if err != nil {
					logger.Warn().Str("backend", b.name).Err(err).Msg("pdf backend failed")
				}
				return pages, err
			},
		})
	}

	pages, backend, err := fallback.First(context.Background(), strategies...)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	logger.Debug().Str("backend", backend).Int("pages", len(pages)).Msg("pdf text extracted")
	return joinBlocks(pages), nil
}

// layoutPages rebuilds each page line by line from positioned text runs.
func layoutPages(content []byte) ([]string, error) {
	r, err := lpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			if line := strings.TrimSpace(joinRuns(row.Content)); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

func joinRuns(runs lpdf.TextHorizontal) string {
	var b strings.Builder
	for i, g := range runs {
		if i > 0 {
			prev := runs[i-1]
			width := prev.W
			if width == 0 {
				width = float64(utf8.RuneCountInString(prev.S)) * prev.FontSize * glyphWidth
			}
			gap := g.X - (prev.X + width)
			if gap > g.FontSize*wordGap && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}

// plainPages uses the content-stream order of each page.
func plainPages(content []byte) ([]string, error) {
	r, err := dpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	return pages, nil
}
