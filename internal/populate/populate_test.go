package populate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/resumeparser/internal/career"
)

func fullData() *career.Data {
	return &career.Data{
		Experiences: []career.Experience{{
			Title:     "Backend Engineer",
			Company:   "Acme",
			StartDate: "2019-02-01",
			EndDate:   "Present",
		}},
		Educations: []career.Education{{Institution: "MIT", Degree: "BSc", StartDate: "2014", EndDate: "2018"}},
		Skills:     []career.Text{"Go"},
		Languages:  []career.Language{{Language: "English", Level: "Native"}},
		Certifications: []career.Certification{
			{Name: "CKA", Issuer: "CNCF", DateObtained: "March 2021"},
		},
		Projects: []career.Project{{Name: "resumeparser", URL: "https://example.com", Technologies: "Go, Postgres"}},
	}
}

func TestPopulate_AllCollections(t *testing.T) {
	store := &fakeStore{}
	id := uuid.New()

	err := New(store).Populate(context.Background(), id, fullData())

	require.NoError(t, err)
	assert.Equal(t, 1, store.txCount)
	c := store.committed
	require.Len(t, c.experiences, 1)
	assert.Equal(t, id, c.experiences[0].ResumeID)
	assert.Equal(t, "Backend Engineer", c.experiences[0].Title)
	assert.True(t, c.experiences[0].StartDate.Valid)
	assert.Equal(t, time.February, c.experiences[0].StartDate.Time.Month())
	assert.False(t, c.experiences[0].EndDate.Valid, "unparseable dates are stored as absent")
	assert.Len(t, c.educations, 1)
	assert.Equal(t, 2014, c.educations[0].StartDate.Time.Year())
	assert.Len(t, c.skills, 1)
	assert.Len(t, c.languages, 1)
	require.Len(t, c.certifications, 1)
	assert.Equal(t, time.March, c.certifications[0].DateObtained.Time.Month())
	require.Len(t, c.projects, 1)
	assert.Equal(t, "https://example.com", c.projects[0].Url)
	assert.Equal(t, "", c.projects[0].Role)
}

func TestPopulate_SkillsAreTrimmedAndBlanksDropped(t *testing.T) {
	store := &fakeStore{}

	err := New(store).Populate(context.Background(), uuid.New(), &career.Data{
		Skills: []career.Text{"Python", "", "  ", " Go "},
	})

	require.NoError(t, err)
	require.Len(t, store.committed.skills, 2)
	assert.Equal(t, "Python", store.committed.skills[0].Name)
	assert.Equal(t, "Go", store.committed.skills[1].Name)
}

func TestPopulate_RollsBackEverythingOnFailure(t *testing.T) {
	// Experiences are written first; the failure hits the skills pass.
	store := &fakeStore{failOn: "CreateSkill"}

	err := New(store).Populate(context.Background(), uuid.New(), fullData())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.ErrorIs(t, err, errInjected)
	assert.Empty(t, store.committed.experiences)
	assert.Empty(t, store.committed.educations)
	assert.Empty(t, store.committed.skills)
	assert.Empty(t, store.committed.projects)
}

func TestPopulate_OneExperienceOneSkill(t *testing.T) {
	store := &fakeStore{}

	err := New(store).Populate(context.Background(), uuid.New(), &career.Data{
		Experiences: []career.Experience{{Title: "Engineer"}},
		Skills:      []career.Text{"Go"},
	})

	require.NoError(t, err)
	assert.Len(t, store.committed.experiences, 1)
	assert.Len(t, store.committed.skills, 1)
	assert.Empty(t, store.committed.educations)
}

func TestPopulate_MissingFieldsBecomeEmpty(t *testing.T) {
	store := &fakeStore{}

	err := New(store).Populate(context.Background(), uuid.New(), &career.Data{
		Experiences: []career.Experience{{}},
		Projects:    []career.Project{{}},
	})

	require.NoError(t, err)
	e := store.committed.experiences[0]
	assert.Equal(t, "", e.Title)
	assert.Equal(t, "", e.Company)
	assert.False(t, e.StartDate.Valid)
	assert.False(t, store.committed.projects[0].EndDate.Valid)
}

func TestPopulate_EmptyDataCommitsNothing(t *testing.T) {
	store := &fakeStore{}

	require.NoError(t, New(store).Populate(context.Background(), uuid.New(), &career.Data{}))
	assert.Equal(t, 1, store.txCount)
	assert.Empty(t, store.committed.experiences)
}

func TestPopulate_NilData(t *testing.T) {
	store := &fakeStore{}

	err := New(store).Populate(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrPersist)
	assert.Zero(t, store.txCount)
}

// Re-processing a resume is append-only: earlier rows are neither cleared
// nor rejected.
func TestPopulate_ReprocessingAppends(t *testing.T) {
	store := &fakeStore{}
	p := New(store)
	id := uuid.New()
	data := &career.Data{Skills: []career.Text{"Go"}}

	require.NoError(t, p.Populate(context.Background(), id, data))
	require.NoError(t, p.Populate(context.Background(), id, data))

	assert.Len(t, store.committed.skills, 2)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 5))
	assert.Equal(t, "ab", clip("abc", 2))
	assert.Equal(t, "héllo", clip("héllo", 5))
	assert.Equal(t, strings.Repeat("é", 3), clip(career.Text(strings.Repeat("é", 10)), 3))
}
