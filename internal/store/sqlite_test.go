package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-utils/pkg/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(models.JobCreate{
		Company:   "Acme Corp",
		Position:  "Senior Go Engineer",
		Location:  "Remote",
		JobURL:    "https://acme.example/jobs/42",
		SalaryMin: intPtr(120000),
		SalaryMax: intPtr(160000),
		Notes:     "referred by a friend",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, models.StatusWishlist, created.Status, "status defaults to wishlist")
	assert.False(t, created.DateAdded.IsZero())

	fetched, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestGetUnknownReturnsErrNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(models.JobCreate{Company: "A", Position: "Dev", Status: models.StatusApplied})
	require.NoError(t, err)
	_, err = s.Create(models.JobCreate{Company: "B", Position: "Dev", Status: models.StatusRejected})
	require.NoError(t, err)
	_, err = s.Create(models.JobCreate{Company: "C", Position: "Dev", Status: models.StatusApplied})
	require.NoError(t, err)

	applied, err := s.List(models.StatusApplied)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	for _, job := range applied {
		assert.Equal(t, models.StatusApplied, job.Status)
	}

	all, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create(models.JobCreate{Company: "First", Position: "Dev"})
	require.NoError(t, err)
	second, err := s.Create(models.JobCreate{Company: "Second", Position: "Dev"})
	require.NoError(t, err)

	jobs, err := s.List("")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestUpdatePartial(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(models.JobCreate{
		Company:  "Acme Corp",
		Position: "Go Engineer",
		Notes:    "initial notes",
	})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, models.JobUpdate{
		Status: strPtr(models.StatusInterviewing),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInterviewing, updated.Status)
	assert.Equal(t, "Acme Corp", updated.Company, "untouched fields survive")
	assert.Equal(t, "initial notes", updated.Notes)
}

func TestUpdateNoFieldsIsNoOp(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(models.JobCreate{Company: "Acme", Position: "Dev"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, models.JobUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateUnknownReturnsErrNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Update(9999, models.JobUpdate{Status: strPtr(models.StatusOffer)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(models.JobCreate{Company: "Acme", Position: "Dev"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(created.ID), ErrNotFound)
}
