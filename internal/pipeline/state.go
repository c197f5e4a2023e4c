// Package pipeline provides the orchestration state machine that sequences
// résumé extraction, structured parsing and job search, and owns the single
// source of truth for loading, error and result state.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Phase is the orchestrator's current position in the pipeline.
type Phase string

// Pipeline phases.
const (
	PhaseIdle                   Phase = "idle"
	PhaseExtractingText         Phase = "extracting_text"
	PhaseAwaitingStructuredData Phase = "awaiting_structured_data"
	PhaseSearchingJobs          Phase = "searching_jobs"
	PhaseReady                  Phase = "ready"
	PhaseFailed                 Phase = "failed"
)

// StatusText returns the user-facing loading message for a phase.
func (p Phase) StatusText() string {
	switch p {
	case PhaseExtractingText, PhaseAwaitingStructuredData:
		return "Fetching resume overview..."
	case PhaseSearchingJobs:
		return "Looking for job recommendations..."
	default:
		return ""
	}
}

// Loading reports whether the phase represents an in-flight operation.
func (p Phase) Loading() bool {
	switch p {
	case PhaseExtractingText, PhaseAwaitingStructuredData, PhaseSearchingJobs:
		return true
	default:
		return false
	}
}

// ErrorKind classifies a pipeline failure for display.
type ErrorKind string

// Pipeline failure kinds.
const (
	// ErrValidation is bad local input; surfaced immediately, no network call
	// was made.
	ErrValidation ErrorKind = "validation"
	// ErrService is an extraction or search network/service failure.
	ErrService ErrorKind = "service"
	// ErrAuthorization is an upstream credential rejection, distinct from a
	// generic service failure.
	ErrAuthorization ErrorKind = "authorization"
	// ErrMalformedResponse is a completion payload that failed to parse or
	// validate; the user sees generic retry guidance.
	ErrMalformedResponse ErrorKind = "malformed_response"
)

// ErrorInfo is the single dismissible error surface. At most one is visible
// at a time.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// State is the session-wide pipeline state. It is mutated exclusively by the
// Orchestrator; observers receive copies via Snapshot.
type State struct {
	SessionID   uuid.UUID            `json:"session_id"`
	Phase       Phase                `json:"phase"`
	StatusText  string               `json:"status_text,omitempty"`
	CurrentPage int                  `json:"current_page"`
	PageSize    int                  `json:"page_size"`
	Jobs        []jobs.Listing       `json:"jobs"`
	Profile     *types.ResumeProfile `json:"profile,omitempty"`
	// AvailableSkills mirrors Profile.Skills; toggles are only accepted for
	// skills in this list.
	AvailableSkills []string   `json:"available_skills"`
	SelectedSkills  []string   `json:"selected_skills"`
	Error           *ErrorInfo `json:"error,omitempty"`
}

// HasPrevPage reports whether backward navigation is possible. "Previous" is
// disabled at page 1.
func (s State) HasPrevPage() bool {
	return s.CurrentPage > 1
}

// HasNextPage reports whether forward navigation should be offered. A page
// below the fixed size is read as the last known page; the search API is not
// queried speculatively past it.
func (s State) HasNextPage() bool {
	return len(s.Jobs) >= s.PageSize
}
