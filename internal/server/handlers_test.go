package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

type stubTexts struct{ text string }

func (s *stubTexts) ExtractText(_ []byte, _ string) (string, error) { return s.text, nil }

type stubProfiles struct{ profile *types.ResumeProfile }

func (s *stubProfiles) Extract(_ context.Context, _ string) (*types.ResumeProfile, error) {
	return s.profile, nil
}

type stubSearcher struct{ results []jobs.Listing }

func (s *stubSearcher) Search(_ context.Context, _ []string, _, _ int) ([]jobs.Listing, error) {
	return s.results, nil
}

type recordingSender struct{ sent []feedback.Submission }

func (r *recordingSender) Send(_ context.Context, sub feedback.Submission) error {
	r.sent = append(r.sent, sub)
	return nil
}

func listings(n int) []jobs.Listing {
	out := make([]jobs.Listing, n)
	for i := range out {
		out[i] = jobs.Listing{Title: "Engineer"}
	}
	return out
}

func newTestServer(t *testing.T) (*Server, *recordingSender) {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	orch := pipeline.New(
		&stubTexts{text: "Jane Doe, Skills: Go, Python"},
		&stubProfiles{profile: &types.ResumeProfile{Name: "Jane Doe", Skills: []string{"Go", "Python"}}},
		&stubSearcher{results: listings(10)},
		pipeline.Options{},
	)
	sender := &recordingSender{}
	return New(orch, sender, Config{Port: 0}), sender
}

func multipartResume(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeState(t *testing.T, body *bytes.Buffer) pipeline.State {
	t.Helper()
	var state pipeline.State
	require.NoError(t, json.NewDecoder(body).Decode(&state))
	return state
}

func TestHandleAnalyze(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", "Jane Doe")
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec.Body)
	assert.Equal(t, pipeline.PhaseReady, state.Phase)
	assert.Equal(t, "Jane Doe", state.Profile.Name)
	assert.Len(t, state.Jobs, 10)
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	srv, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.handleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleState(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleState(rec, httptest.NewRequest(http.MethodGet, "/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec.Body)
	assert.Equal(t, pipeline.PhaseIdle, state.Phase)
}

func TestHandleToggleSkill(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("before analysis", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/skills/toggle", strings.NewReader(`{"skill":"Go"}`))
		rec := httptest.NewRecorder()
		srv.handleToggleSkill(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	body, contentType := multipartResume(t, "resume.txt", "Jane Doe")
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	srv.handleAnalyze(httptest.NewRecorder(), req)

	t.Run("unknown skill", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/skills/toggle", strings.NewReader(`{"skill":"Kubernetes"}`))
		rec := httptest.NewRecorder()
		srv.handleToggleSkill(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid toggle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/skills/toggle", strings.NewReader(`{"skill":"Python"}`))
		rec := httptest.NewRecorder()
		srv.handleToggleSkill(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeState(t, rec.Body)
		assert.Equal(t, []string{"Go"}, state.SelectedSkills)
		assert.Equal(t, 1, state.CurrentPage)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/skills/toggle", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		srv.handleToggleSkill(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSetPage(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", "Jane Doe")
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	srv.handleAnalyze(httptest.NewRecorder(), req)

	t.Run("forward", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/page", strings.NewReader(`{"page":2}`))
		rec := httptest.NewRecorder()
		srv.handleSetPage(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decodeState(t, rec.Body).CurrentPage)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/page", strings.NewReader(`{"page":0}`))
		rec := httptest.NewRecorder()
		srv.handleSetPage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDismissError(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleDismissError(rec, httptest.NewRequest(http.MethodPost, "/error/dismiss", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pipeline.PhaseIdle, decodeState(t, rec.Body).Phase)
}

func TestHandleFeedback(t *testing.T) {
	srv, sender := newTestServer(t)

	t.Run("valid", func(t *testing.T) {
		body := `{"name":"Jane Doe","email":"jane@example.com","message":"Nice tool!"}`
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.handleFeedback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Jane Doe", sender.sent[0].Name)
	})

	t.Run("invalid name", func(t *testing.T) {
		body := `{"name":"Jane 2","email":"jane@example.com","message":"Hi"}`
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.handleFeedback(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, sender.sent, 1, "invalid submissions are not delivered")
	})
}

func TestHandleJobs(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartResume(t, "resume.txt", "Jane Doe")
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	srv.handleAnalyze(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	srv.handleJobs(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Jobs        []jobs.Listing `json:"jobs"`
		CurrentPage int            `json:"current_page"`
		HasNextPage bool           `json:"has_next_page"`
		HasPrevPage bool           `json:"has_prev_page"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Jobs, 10)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.True(t, resp.HasNextPage)
	assert.False(t, resp.HasPrevPage)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
