// Package populate files structured career data as child rows of a resume.
package populate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/muhammadolammi/resumeparser/internal/career"
	"github.com/muhammadolammi/resumeparser/internal/database"
	"github.com/muhammadolammi/resumeparser/internal/dates"
	"github.com/muhammadolammi/resumeparser/internal/logger"
)

// ErrPersist wraps every failure of a populate pass. Nothing was written when
// it is returned.
var ErrPersist = errors.New("failed to persist resume data")

// Column widths of the bounded text columns.
const (
	nameWidth     = 255
	skillWidth    = 100
	languageWidth = 50
)

// TxRunner runs fn atomically. *database.Store implements it.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(database.Querier) error) error
}

type Populator struct {
	store TxRunner
}

func New(store TxRunner) *Populator {
	return &Populator{store: store}
}

// Populate creates every experience, education, skill, language,
// certification and project in data for the resume in one transaction.
// Either all rows are committed or none are. Existing rows for the resume are
// left alone, so running it twice appends a second copy.
func (p *Populator) Populate(ctx context.Context, resumeID uuid.UUID, data *career.Data) error {
	if data == nil {
		return fmt.Errorf("%w: no data", ErrPersist)
	}

	var counts [6]int
	err := p.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		steps := []func() (int, error){
			func() (int, error) { return createExperiences(ctx, q, resumeID, data.Experiences) },
			func() (int, error) { return createEducations(ctx, q, resumeID, data.Educations) },
			func() (int, error) { return createSkills(ctx, q, resumeID, data.Skills) },
			func() (int, error) { return createLanguages(ctx, q, resumeID, data.Languages) },
			func() (int, error) { return createCertifications(ctx, q, resumeID, data.Certifications) },
			func() (int, error) { return createProjects(ctx, q, resumeID, data.Projects) },
		}
		for i, step := range steps {
			if counts[i], err = step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("resume_id", resumeID.String()).Msg("error populating resume data, rolled back")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	logger.Info().
		Str("resume_id", resumeID.String()).
		Int("experiences", counts[0]).
		Int("educations", counts[1]).
		Int("skills", counts[2]).
		Int("languages", counts[3]).
		Int("certifications", counts[4]).
		Int("projects", counts[5]).
		Msg("populated resume data")
	return nil
}

func createExperiences(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Experience) (int, error) {
	for _, e := range items {
		err := q.CreateExperience(ctx, database.CreateExperienceParams{
			ResumeID:     resumeID,
			Title:        clip(e.Title, nameWidth),
			Company:      clip(e.Company, nameWidth),
			StartDate:    dates.NullTime(e.StartDate.String()),
			EndDate:      dates.NullTime(e.EndDate.String()),
			Description:  e.Description.String(),
			Achievements: e.Achievements.String(),
		})
		if err != nil {
			return 0, fmt.Errorf("create experience: %w", err)
		}
	}
	return len(items), nil
}

func createEducations(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Education) (int, error) {
	for _, e := range items {
		err := q.CreateEducation(ctx, database.CreateEducationParams{
			ResumeID:    resumeID,
			Institution: clip(e.Institution, nameWidth),
			Degree:      clip(e.Degree, nameWidth),
			StartDate:   dates.NullTime(e.StartDate.String()),
			EndDate:     dates.NullTime(e.EndDate.String()),
			Description: e.Description.String(),
		})
		if err != nil {
			return 0, fmt.Errorf("create education: %w", err)
		}
	}
	return len(items), nil
}

// createSkills trims names and skips blank ones.
func createSkills(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Text) (int, error) {
	n := 0
	for _, s := range items {
		name := strings.TrimSpace(s.String())
		if name == "" {
			continue
		}
		err := q.CreateSkill(ctx, database.CreateSkillParams{
			ResumeID: resumeID,
			Name:     clip(career.Text(name), skillWidth),
		})
		if err != nil {
			return 0, fmt.Errorf("create skill: %w", err)
		}
		n++
	}
	return n, nil
}

func createLanguages(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Language) (int, error) {
	for _, l := range items {
		err := q.CreateLanguageProficiency(ctx, database.CreateLanguageProficiencyParams{
			ResumeID: resumeID,
			Language: clip(l.Language, languageWidth),
			Level:    clip(l.Level, languageWidth),
		})
		if err != nil {
			return 0, fmt.Errorf("create language: %w", err)
		}
	}
	return len(items), nil
}

func createCertifications(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Certification) (int, error) {
	for _, c := range items {
		err := q.CreateCertification(ctx, database.CreateCertificationParams{
			ResumeID:     resumeID,
			Name:         clip(c.Name, nameWidth),
			Issuer:       clip(c.Issuer, nameWidth),
			DateObtained: dates.NullTime(c.DateObtained.String()),
		})
		if err != nil {
			return 0, fmt.Errorf("create certification: %w", err)
		}
	}
	return len(items), nil
}

func createProjects(ctx context.Context, q database.Querier, resumeID uuid.UUID, items []career.Project) (int, error) {
	for _, p := range items {
		err := q.CreateProject(ctx, database.CreateProjectParams{
			ResumeID:     resumeID,
			Name:         clip(p.Name, nameWidth),
			Description:  p.Description.String(),
			StartDate:    dates.NullTime(p.StartDate.String()),
			EndDate:      dates.NullTime(p.EndDate.String()),
			Url:          p.URL.String(),
			Technologies: p.Technologies.String(),
			Role:         clip(p.Role, nameWidth),
			Achievements: p.Achievements.String(),
		})
		if err != nil {
			return 0, fmt.Errorf("create project: %w", err)
		}
	}
	return len(items), nil
}

// clip cuts t to at most n runes so it fits a VARCHAR(n) column.
func clip(t career.Text, n int) string {
	s := string(t)
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
