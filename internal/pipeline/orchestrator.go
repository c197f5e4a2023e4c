package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Intent-level errors. These reject the intent without touching pipeline
// state; they are not session failures.
var (
	// ErrNoProfile is returned for skill or page intents before a résumé has
	// been analyzed.
	ErrNoProfile = errors.New("no resume has been analyzed yet")
	// ErrUnknownSkill is returned when toggling a skill that is not part of
	// the extracted profile.
	ErrUnknownSkill = errors.New("skill is not part of the extracted profile")
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page number must be at least 1")
)

// TextExtractor extracts plain text from a submitted document.
type TextExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

// ProfileExtractor turns extracted text into a validated résumé profile.
type ProfileExtractor interface {
	Extract(ctx context.Context, text string) (*types.ResumeProfile, error)
}

// JobSearcher fetches one page of job listings for a set of skills.
type JobSearcher interface {
	Search(ctx context.Context, skills []string, page, pageSize int) ([]jobs.Listing, error)
}

// Options configures an Orchestrator.
type Options struct {
	// PageSize is the fixed results-per-page. Defaults to jobs.DefaultPageSize.
	PageSize int
	// SeedSkillCount is how many extracted skills seed the selection.
	// Defaults to skills.DefaultSeedCount.
	SeedSkillCount int
	// OnChange, when set, receives a state snapshot after every transition.
	OnChange func(State)
}

// Orchestrator sequences extraction, structured parsing and job search, and
// is the sole writer of the session's pipeline state. Display layers read
// snapshots and issue intents; they never mutate state directly.
//
// Intents may run on any goroutine: all state writes happen under one mutex,
// network calls happen outside it, and every completion is checked against
// generation counters so results of superseded submissions or searches are
// discarded on arrival.
type Orchestrator struct {
	texts     TextExtractor
	profiles  ProfileExtractor
	searcher  JobSearcher
	pageSize  int
	seedCount int
	onChange  func(State)

	mu        sync.Mutex
	state     State
	selection skills.Selection
	submitGen uint64
	searchGen uint64
}

// New creates an orchestrator in the Idle phase.
func New(texts TextExtractor, profiles ProfileExtractor, searcher JobSearcher, opts Options) *Orchestrator {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = jobs.DefaultPageSize
	}
	seedCount := opts.SeedSkillCount
	if seedCount <= 0 {
		seedCount = skills.DefaultSeedCount
	}

	return &Orchestrator{
		texts:     texts,
		profiles:  profiles,
		searcher:  searcher,
		pageSize:  pageSize,
		seedCount: seedCount,
		onChange:  opts.OnChange,
		state: State{
			SessionID:       uuid.New(),
			Phase:           PhaseIdle,
			CurrentPage:     1,
			PageSize:        pageSize,
			Jobs:            []jobs.Listing{},
			AvailableSkills: []string{},
			SelectedSkills:  []string{},
		},
	}
}

// Snapshot returns a copy of the current pipeline state.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// Submit runs the full pipeline for a newly submitted document. Any prior
// in-flight work is invalidated: its results are discarded when they arrive.
// All derived state is cleared before extraction begins.
func (o *Orchestrator) Submit(ctx context.Context, filename string, data []byte) error {
	o.mu.Lock()
	o.submitGen++
	gen := o.submitGen
	o.searchGen++
	o.selection = skills.Selection{}
	o.state = State{
		SessionID:       o.state.SessionID,
		Phase:           PhaseExtractingText,
		CurrentPage:     1,
		PageSize:        o.pageSize,
		Jobs:            []jobs.Listing{},
		AvailableSkills: []string{},
		SelectedSkills:  []string{},
	}
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)

	text, err := o.texts.ExtractText(data, filename)
	if err != nil {
		return o.fail(gen, err)
	}
	if strings.TrimSpace(text) == "" {
		return o.fail(gen, &ingestion.ValidationError{Field: "resume", Message: "document contains no extractable text"})
	}

	if !o.advance(gen, PhaseAwaitingStructuredData) {
		return nil
	}

	profile, err := o.profiles.Extract(ctx, text)
	if err != nil {
		return o.fail(gen, err)
	}

	o.mu.Lock()
	if o.submitGen != gen {
		o.mu.Unlock()
		return nil
	}
	o.state.Profile = profile
	o.state.AvailableSkills = append([]string{}, profile.Skills...)
	o.selection = skills.Seed(profile.Skills, o.seedCount)
	o.state.SelectedSkills = o.selection.Active()
	o.state.Phase = PhaseSearchingJobs
	snap = o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)

	return o.search(ctx, gen)
}

// ToggleSkill flips a skill filter and re-runs the search from page 1.
// Changing the filter without resetting pagination would show page N of a
// completely different result set.
func (o *Orchestrator) ToggleSkill(ctx context.Context, skill string) error {
	o.mu.Lock()
	if o.state.Profile == nil {
		o.mu.Unlock()
		return ErrNoProfile
	}
	if !containsSkill(o.state.AvailableSkills, skill) {
		o.mu.Unlock()
		return ErrUnknownSkill
	}
	gen := o.submitGen
	o.selection = o.selection.Toggle(skill)
	o.state.SelectedSkills = o.selection.Active()
	o.state.CurrentPage = 1
	o.mu.Unlock()

	return o.search(ctx, gen)
}

// SetPage navigates to a page and re-runs the search. Forward navigation past
// the last known non-full page is a no-op: the API does not report a total
// count, so a short page is read as the end of the result set and no
// speculative call is made.
func (o *Orchestrator) SetPage(ctx context.Context, page int) error {
	o.mu.Lock()
	if o.state.Profile == nil {
		o.mu.Unlock()
		return ErrNoProfile
	}
	if page < 1 {
		o.mu.Unlock()
		return ErrInvalidPage
	}
	if page > o.state.CurrentPage && len(o.state.Jobs) < o.state.PageSize {
		o.mu.Unlock()
		return nil
	}
	gen := o.submitGen
	o.state.CurrentPage = page
	o.mu.Unlock()

	return o.search(ctx, gen)
}

// DismissError clears the error surface and returns the session to its last
// stable state: Ready when structured data survived the failure, Idle
// otherwise.
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	if o.state.Error == nil {
		o.mu.Unlock()
		return
	}
	o.state.Error = nil
	if o.state.Profile != nil {
		o.state.Phase = PhaseReady
	} else {
		o.state.Phase = PhaseIdle
	}
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)
}

// search runs one paged query against the job API and applies the result if
// it is still current. A search failure clears the visible listings but
// preserves previously valid structured data.
func (o *Orchestrator) search(ctx context.Context, submitGen uint64) error {
	o.mu.Lock()
	if o.submitGen != submitGen {
		o.mu.Unlock()
		return nil
	}
	o.searchGen++
	sgen := o.searchGen
	page := o.state.CurrentPage
	pageSize := o.state.PageSize
	terms := o.selection.QuerySkills()
	o.state.Phase = PhaseSearchingJobs
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)

	// A profile with no skills at all has nothing to query; degrade to an
	// empty result set instead of an unbounded unfiltered search.
	if len(terms) == 0 {
		o.mu.Lock()
		if o.submitGen != submitGen || o.searchGen != sgen {
			o.mu.Unlock()
			return nil
		}
		o.state.Jobs = []jobs.Listing{}
		o.state.Phase = PhaseReady
		o.state.Error = nil
		snap = o.snapshotLocked()
		o.mu.Unlock()
		o.notify(snap)
		return nil
	}

	listings, err := o.searcher.Search(ctx, terms, page, pageSize)

	o.mu.Lock()
	if o.submitGen != submitGen || o.searchGen != sgen {
		// A newer submission or search superseded this one; discard.
		o.mu.Unlock()
		logger.Debug().Uint64("generation", sgen).Msg("discarding stale search result")
		return nil
	}
	if err != nil {
		o.state.Jobs = []jobs.Listing{}
		o.state.Phase = PhaseFailed
		o.state.Error = classify(err)
		snap = o.snapshotLocked()
		o.mu.Unlock()
		o.notify(snap)
		return err
	}
	o.state.Jobs = jobs.Rank(listings)
	o.state.Phase = PhaseReady
	o.state.Error = nil
	snap = o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)
	return nil
}

// fail transitions the session to Failed unless the submission has been
// superseded.
func (o *Orchestrator) fail(gen uint64, err error) error {
	o.mu.Lock()
	if o.submitGen != gen {
		o.mu.Unlock()
		return nil
	}
	o.state.Phase = PhaseFailed
	o.state.Error = classify(err)
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)
	return err
}

// advance moves to the next phase unless the submission has been superseded.
func (o *Orchestrator) advance(gen uint64, phase Phase) bool {
	o.mu.Lock()
	if o.submitGen != gen {
		o.mu.Unlock()
		return false
	}
	o.state.Phase = phase
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.notify(snap)
	return true
}

// snapshotLocked copies the state for observers. The profile pointer is
// shared; profiles are immutable once set.
func (o *Orchestrator) snapshotLocked() State {
	snap := o.state
	snap.StatusText = snap.Phase.StatusText()
	snap.Jobs = append([]jobs.Listing{}, o.state.Jobs...)
	snap.AvailableSkills = append([]string{}, o.state.AvailableSkills...)
	snap.SelectedSkills = append([]string{}, o.state.SelectedSkills...)
	return snap
}

func (o *Orchestrator) notify(snap State) {
	if o.onChange != nil {
		o.onChange(snap)
	}
}

func containsSkill(available []string, skill string) bool {
	for _, s := range available {
		if s == skill {
			return true
		}
	}
	return false
}
