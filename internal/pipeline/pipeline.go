// Package pipeline turns a stored resume's text into career rows.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/muhammadolammi/resumeparser/internal/career"
	"github.com/muhammadolammi/resumeparser/internal/database"
	"github.com/muhammadolammi/resumeparser/internal/logger"
)

var ErrNoText = errors.New("resume has no extracted text")

type StructuredExtractor interface {
	ExtractStructured(ctx context.Context, text string) (*career.Data, error)
}

type Populator interface {
	Populate(ctx context.Context, resumeID uuid.UUID, data *career.Data) error
}

type Processor struct {
	extractor StructuredExtractor
	populator Populator
}

func NewProcessor(extractor StructuredExtractor, populator Populator) *Processor {
	return &Processor{extractor: extractor, populator: populator}
}

// Process extracts structured data from the resume's stored text and
// persists it. A nil error means the rows were committed. A panic in either
// stage is returned as an error.
func (p *Processor) Process(ctx context.Context, resume database.Resume) (err error) {
	log := logger.Logger.With().Str("resume_id", resume.ID.String()).Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("resume processing panicked")
			err = fmt.Errorf("processing panicked: %v", r)
		}
	}()

	if strings.TrimSpace(resume.TextExtracted) == "" {
		log.Warn().Msg("no text extracted for resume")
		return ErrNoText
	}

	data, err := p.extractor.ExtractStructured(ctx, resume.TextExtracted)
	if err != nil {
		log.Error().Err(err).Msg("structured extraction failed")
		return err
	}

	if err := p.populator.Populate(ctx, resume.ID, data); err != nil {
		return err
	}

	log.Info().Msg("resume processed")
	return nil
}
