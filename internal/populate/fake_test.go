package populate

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/muhammadolammi/resumeparser/internal/database"
)

var errInjected = errors.New("injected failure")

// rows is what the fake store holds for every resume.
type rows struct {
	experiences    []database.CreateExperienceParams
	educations     []database.CreateEducationParams
	skills         []database.CreateSkillParams
	languages      []database.CreateLanguageProficiencyParams
	certifications []database.CreateCertificationParams
	projects       []database.CreateProjectParams
}

// fakeStore stages writes per transaction and publishes them only on commit.
type fakeStore struct {
	committed rows
	failOn    string // name of the Create method that should fail
	txCount   int
}

func (s *fakeStore) ExecTx(_ context.Context, fn func(database.Querier) error) error {
	s.txCount++
	q := &fakeQuerier{failOn: s.failOn}
	if err := fn(q); err != nil {
		return err
	}
	s.committed.experiences = append(s.committed.experiences, q.staged.experiences...)
	s.committed.educations = append(s.committed.educations, q.staged.educations...)
	s.committed.skills = append(s.committed.skills, q.staged.skills...)
	s.committed.languages = append(s.committed.languages, q.staged.languages...)
	s.committed.certifications = append(s.committed.certifications, q.staged.certifications...)
	s.committed.projects = append(s.committed.projects, q.staged.projects...)
	return nil
}

type fakeQuerier struct {
	database.Querier
	staged rows
	failOn string
}

func (q *fakeQuerier) fail(method string) error {
	if q.failOn == method {
		return errInjected
	}
	return nil
}

func (q *fakeQuerier) CreateExperience(_ context.Context, arg database.CreateExperienceParams) error {
	if err := q.fail("CreateExperience"); err != nil {
		return err
	}
	q.staged.experiences = append(q.staged.experiences, arg)
	return nil
}

func (q *fakeQuerier) CreateEducation(_ context.Context, arg database.CreateEducationParams) error {
	if err := q.fail("CreateEducation"); err != nil {
		return err
	}
	q.staged.educations = append(q.staged.educations, arg)
	return nil
}

func (q *fakeQuerier) CreateSkill(_ context.Context, arg database.CreateSkillParams) error {
	if err := q.fail("CreateSkill"); err != nil {
		return err
	}
	q.staged.skills = append(q.staged.skills, arg)
	return nil
}

func (q *fakeQuerier) CreateLanguageProficiency(_ context.Context, arg database.CreateLanguageProficiencyParams) error {
	if err := q.fail("CreateLanguageProficiency"); err != nil {
		return err
	}
	q.staged.languages = append(q.staged.languages, arg)
	return nil
}

func (q *fakeQuerier) CreateCertification(_ context.Context, arg database.CreateCertificationParams) error {
	if err := q.fail("CreateCertification"); err != nil {
		return err
	}
	q.staged.certifications = append(q.staged.certifications, arg)
	return nil
}

func (q *fakeQuerier) CreateProject(_ context.Context, arg database.CreateProjectParams) error {
	if err := q.fail("CreateProject"); err != nil {
		return err
	}
	q.staged.projects = append(q.staged.projects, arg)
	return nil
}

func (q *fakeQuerier) CountResumeChildren(context.Context, uuid.UUID) (database.CountResumeChildrenRow, error) {
	return database.CountResumeChildrenRow{}, nil
}
