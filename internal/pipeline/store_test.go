package pipeline

import (
	"context"

	"github.com/muhammadolammi/resumeparser/internal/database"
)

// rowCounts is what countingStore has committed, per child table.
type rowCounts struct {
	experiences, educations, skills, languages, certifications, projects int
}

// countingStore commits a transaction's rows only when fn succeeds.
type countingStore struct {
	committed rowCounts
}

func (s *countingStore) ExecTx(_ context.Context, fn func(database.Querier) error) error {
	q := &countingQuerier{}
	if err := fn(q); err != nil {
		return err
	}
	s.committed.experiences += q.staged.experiences
	s.committed.educations += q.staged.educations
	s.committed.skills += q.staged.skills
	s.committed.languages += q.staged.languages
	s.committed.certifications += q.staged.certifications
	s.committed.projects += q.staged.projects
	return nil
}

type countingQuerier struct {
	database.Querier
	staged rowCounts
}

func (q *countingQuerier) CreateExperience(context.Context, database.CreateExperienceParams) error {
	q.staged.experiences++
	return nil
}

func (q *countingQuerier) CreateEducation(context.Context, database.CreateEducationParams) error {
	q.staged.educations++
	return nil
}

func (q *countingQuerier) CreateSkill(context.Context, database.CreateSkillParams) error {
	q.staged.skills++
	return nil
}

func (q *countingQuerier) CreateLanguageProficiency(context.Context, database.CreateLanguageProficiencyParams) error {
	q.staged.languages++
	return nil
}

func (q *countingQuerier) CreateCertification(context.Context, database.CreateCertificationParams) error {
	q.staged.certifications++
	return nil
}

func (q *countingQuerier) CreateProject(context.Context, database.CreateProjectParams) error {
	q.staged.projects++
	return nil
}
