package textextract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func extractDOCX(content []byte) (string, error) {
	paragraphs, rows, err := readDocument(content)
	if err != nil {
		return "", err
	}
	return joinBlocks(append(paragraphs, rows...)), nil
}

// extractDOC reads a DOCX archive saved under a .doc name. Only body
// paragraphs are kept.
func extractDOC(content []byte) (string, error) {
	paragraphs, _, err := readDocument(content)
	if err != nil {
		return "", err
	}
	return joinBlocks(paragraphs), nil
}

func readDocument(content []byte) (paragraphs, rows []string, err error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer r.Close()

	return parseDocumentXML(r.Editable().GetContent())
}

// parseDocumentXML walks word/document.xml and returns the body paragraphs and
// one " | "-joined line per table row. Paragraphs inside tables belong to
// their cell, not to the body list.
func parseDocumentXML(doc string) (paragraphs []string, rows []string, err error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var (
		para      strings.Builder
		paraDepth int
		tabStops  int
		inText    bool
		tblDepth  int
		cell      []string
		row       []string
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if paraDepth == 0 {
					para.Reset()
				}
				paraDepth++
			case "t":
				inText = true
			case "tabs":
				tabStops++
			case "tab":
				if paraDepth > 0 && tabStops == 0 {
					para.WriteByte('\t')
				}
			case "br", "cr":
				if paraDepth > 0 {
					para.WriteByte('\n')
				}
			case "tbl":
				tblDepth++
			case "tr":
				if tblDepth == 1 {
					row = row[:0]
				}
			case "tc":
				if tblDepth == 1 {
					cell = cell[:0]
				}
			}

		case xml.CharData:
			if inText && paraDepth > 0 {
				para.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tabs":
				tabStops--
			case "p":
				paraDepth--
				if paraDepth > 0 {
					continue
				}
				text := para.String()
				switch {
				case tblDepth > 0:
					cell = append(cell, text)
				case strings.TrimSpace(text) != "":
					paragraphs = append(paragraphs, text)
				}
			case "tc":
				if tblDepth == 1 {
					if text := strings.TrimSpace(strings.Join(cell, "\n")); text != "" {
						row = append(row, text)
					}
				}
			case "tr":
				if tblDepth == 1 && len(row) > 0 {
					rows = append(rows, strings.Join(row, " | "))
				}
			case "tbl":
				tblDepth--
			}
		}
	}

	return paragraphs, rows, nil
}
