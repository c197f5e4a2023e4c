package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

// maxResumeSize caps uploaded documents at 10 MiB.
const maxResumeSize = 10 << 20

// handleAnalyze accepts a multipart resume upload and runs the full
// pipeline. The response is the resulting state snapshot; failures are part
// of the state, so the HTTP status reflects only transport-level problems.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	// Pipeline failures land in the state snapshot; the intent itself
	// succeeded.
	_ = s.orch.Submit(r.Context(), header.Filename, data)
	s.jsonResponse(w, http.StatusOK, s.orch.Snapshot())
}

// handleState returns the current state snapshot.
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.orch.Snapshot())
}

// handleJobs returns the current page of job listings.
func (s *Server) handleJobs(w http.ResponseWriter, _ *http.Request) {
	state := s.orch.Snapshot()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":          state.Jobs,
		"current_page":  state.CurrentPage,
		"page_size":     state.PageSize,
		"has_next_page": state.HasNextPage(),
		"has_prev_page": state.HasPrevPage(),
	})
}

type toggleSkillRequest struct {
	Skill string `json:"skill"`
}

func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	var req toggleSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing 'skill' field")
		return
	}

	if err := s.orch.ToggleSkill(r.Context(), req.Skill); err != nil {
		if status, ok := intentStatus(err); ok {
			s.errorResponse(w, status, err.Error())
			return
		}
		// A search failure is carried in the state, not the HTTP status.
	}
	s.jsonResponse(w, http.StatusOK, s.orch.Snapshot())
}

type setPageRequest struct {
	Page int `json:"page"`
}

func (s *Server) handleSetPage(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.orch.SetPage(r.Context(), req.Page); err != nil {
		if status, ok := intentStatus(err); ok {
			s.errorResponse(w, status, err.Error())
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, s.orch.Snapshot())
}

func (s *Server) handleDismissError(w http.ResponseWriter, _ *http.Request) {
	s.orch.DismissError()
	s.jsonResponse(w, http.StatusOK, s.orch.Snapshot())
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var sub feedback.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := sub.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid field: "+verrs[0].Field())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid submission")
		return
	}

	if err := s.sender.Send(r.Context(), sub); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to record feedback")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "received"})
}

// intentStatus maps intent rejections to HTTP statuses. Pipeline failures
// are not intent rejections; they return (0, false) and surface via the
// state snapshot.
func intentStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, pipeline.ErrNoProfile):
		return http.StatusConflict, true
	case errors.Is(err, pipeline.ErrUnknownSkill), errors.Is(err, pipeline.ErrInvalidPage):
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}
