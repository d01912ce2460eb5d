package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-utils/internal/analysis"
	"jobtrack-utils/internal/config"
	"jobtrack-utils/internal/store"
	"jobtrack-utils/pkg/models"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ int) (string, error) {
	return s.response, s.err
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newAnalysisService(gen analysis.Generator) *analysis.Service {
	cfg := &config.Config{}
	cfg.LLM.ScoreMaxTokens = 1024
	cfg.LLM.LetterMaxTokens = 1500
	return analysis.NewService(cfg, gen)
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	require.NoError(t, handler(c))
	return rec
}

func TestCreateJobHandler(t *testing.T) {
	s := newTestStore(t)

	rec := doJSON(t, CreateJobHandler(s), http.MethodPost, "/api/v1/jobs",
		`{"company": "Acme Corp", "position": "Go Engineer", "status": "applied"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var job models.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, models.StatusApplied, job.Status)
	assert.NotZero(t, job.ID)
}

func TestCreateJobHandler_RejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)

	rec := doJSON(t, CreateJobHandler(s), http.MethodPost, "/api/v1/jobs",
		`{"company": "Acme", "position": "Dev", "status": "ghosted"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestCreateJobHandler_RequiresCompanyAndPosition(t *testing.T) {
	s := newTestStore(t)

	rec := doJSON(t, CreateJobHandler(s), http.MethodPost, "/api/v1/jobs", `{"notes": "no names"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobHandler_NotFound(t *testing.T) {
	s := newTestStore(t)

	rec := doJSON(t, GetJobHandler(s), http.MethodGet, "/api/v1/jobs/42", "", map[string]string{"id": "42"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListJobsHandler_FiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(models.JobCreate{Company: "A", Position: "Dev", Status: models.StatusApplied})
	require.NoError(t, err)
	_, err = s.Create(models.JobCreate{Company: "B", Position: "Dev", Status: models.StatusOffer})
	require.NoError(t, err)

	rec := doJSON(t, ListJobsHandler(s), http.MethodGet, "/api/v1/jobs?status=offer", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []models.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "B", jobs[0].Company)
}

func TestListJobsHandler_RejectsUnknownStatusFilter(t *testing.T) {
	s := newTestStore(t)

	rec := doJSON(t, ListJobsHandler(s), http.MethodGet, "/api/v1/jobs?status=bogus", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteJobHandlers(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(models.JobCreate{Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	id := strconv.FormatInt(created.ID, 10)

	rec := doJSON(t, UpdateJobHandler(s), http.MethodPut, "/api/v1/jobs/"+id,
		`{"status": "interviewing"}`, map[string]string{"id": id})
	require.Equal(t, http.StatusOK, rec.Code)

	var job models.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, models.StatusInterviewing, job.Status)

	rec = doJSON(t, DeleteJobHandler(s), http.MethodDelete, "/api/v1/jobs/"+id, "", map[string]string{"id": id})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, DeleteJobHandler(s), http.MethodDelete, "/api/v1/jobs/"+id, "", map[string]string{"id": id})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreResumeHandler_Success(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{
		response: `{"score": 72, "missing_keywords": ["AWS"], "suggestions": ["Add AWS experience"], "summary": "Good match"}`,
	})

	rec := doJSON(t, ScoreResumeHandler(svc), http.MethodPost, "/api/v1/analyze/score",
		`{"resume_text": "Python developer, 3 years", "job_description": "Senior Python Engineer, AWS required"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Report)
	assert.Equal(t, 72, resp.Report.Score)
	assert.Equal(t, []string{"AWS"}, resp.Report.MissingKeywords)
}

func TestScoreResumeHandler_MalformedGenerationStillSucceeds(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{response: "Sorry, I cannot help."})

	rec := doJSON(t, ScoreResumeHandler(svc), http.MethodPost, "/api/v1/analyze/score",
		`{"resume_text": "r", "job_description": "j"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report)
	assert.Equal(t, 0, resp.Report.Score)
	assert.Equal(t, "Sorry, I cannot help.", resp.Report.Summary)
}

func TestScoreResumeHandler_UpstreamFailureIsBadGateway(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{err: errors.New("rate limited")})

	rec := doJSON(t, ScoreResumeHandler(svc), http.MethodPost, "/api/v1/analyze/score",
		`{"resume_text": "r", "job_description": "j"}`, nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "generation_failed")
}

func TestScoreResumeHandler_MissingFields(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{})

	rec := doJSON(t, ScoreResumeHandler(svc), http.MethodPost, "/api/v1/analyze/score",
		`{"resume_text": "only a resume"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoverLetterHandler_Success(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{response: "Dear Hiring Manager, ..."})

	rec := doJSON(t, CoverLetterHandler(svc), http.MethodPost, "/api/v1/analyze/cover-letter",
		`{"resume_text": "r", "job_description": "j", "company_name": "Acme Corp", "tone": "enthusiastic"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CoverLetterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Dear Hiring Manager, ...", resp.CoverLetter)
}

func TestCoverLetterHandler_RequiresCompanyName(t *testing.T) {
	svc := newAnalysisService(&stubGenerator{response: "a letter"})

	rec := doJSON(t, CoverLetterHandler(svc), http.MethodPost, "/api/v1/analyze/cover-letter",
		`{"resume_text": "r", "job_description": "j"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
