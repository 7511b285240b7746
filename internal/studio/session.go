// Package studio holds the state of one Form & Preview session.
//
// A session moves Idle -> Submitting -> Success|Failure. Editing the form or
// resetting it from Success or Failure returns to Idle; submitting is allowed
// from any phase except Submitting. Result data only exists in Success and an
// error message only in Failure.
package studio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"launchpage_studio/internal/ai"
	"launchpage_studio/internal/types"
)

// Phase is the submission state of a session.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PreviewMode selects how the preview pane renders. It is independent of Phase.
type PreviewMode string

const (
	ModeVisual PreviewMode = "visual"
	ModeRaw    PreviewMode = "raw"
)

var (
	ErrBusy        = errors.New("a generation is already running")
	ErrStaleTicket = errors.New("completion does not match the running submission")
	ErrUnknownMode = errors.New("unknown preview mode")
)

// CopyGenerator produces landing page copy. *ai.Generator satisfies it.
type CopyGenerator interface {
	GenerateLandingCopy(ctx context.Context, brief types.ProductBrief) (*types.GeneratedCopy, error)
}

// Session is safe for concurrent use.
type Session struct {
	ID string

	mu           sync.Mutex
	form         types.ProductBrief
	phase        Phase
	mode         PreviewMode
	result       *types.GeneratedCopy
	errMsg       string
	ticket       uint64
	lastActivity time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		form:         types.DefaultBrief(),
		phase:        Idle,
		mode:         ModeVisual,
		lastActivity: time.Now(),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// LastActivity returns when the session was last touched.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

// UpdateForm replaces the form. The form is locked while Submitting.
func (s *Session) UpdateForm(brief types.ProductBrief) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase == Submitting {
		return ErrBusy
	}
	s.form = brief
	if s.phase == Success || s.phase == Failure {
		s.toIdle()
	}
	return nil
}

// Begin moves the session to Submitting with brief as the form and returns
// the ticket the completion must present.
func (s *Session) Begin(brief types.ProductBrief) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase == Submitting {
		return 0, ErrBusy
	}
	s.form = brief
	s.phase = Submitting
	s.result = nil
	s.errMsg = ""
	s.ticket++
	return s.ticket, nil
}

// Complete records a successful generation for ticket.
func (s *Session) Complete(ticket uint64, out *types.GeneratedCopy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != Submitting || ticket != s.ticket {
		return ErrStaleTicket
	}
	s.phase = Success
	s.result = out
	return nil
}

// Fail records a failed generation for ticket.
func (s *Session) Fail(ticket uint64, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != Submitting || ticket != s.ticket {
		return ErrStaleTicket
	}
	s.phase = Failure
	s.errMsg = msg
	return nil
}

// Reset restores the default form and clears result and error. The preview
// mode is kept.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase == Submitting {
		return ErrBusy
	}
	s.form = types.DefaultBrief()
	s.toIdle()
	return nil
}

// SetMode switches the preview pane.
func (s *Session) SetMode(mode PreviewMode) error {
	if mode != ModeVisual && mode != ModeRaw {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.mode = mode
	return nil
}

func (s *Session) toIdle() {
	s.phase = Idle
	s.result = nil
	s.errMsg = ""
}

// Run performs the provider call for a submission started with Begin and
// records its outcome against ticket. The session lock is not held during
// the call. The returned error is the generation error, already recorded on
// the session as the client-facing message.
func (s *Session) Run(ctx context.Context, gen CopyGenerator, ticket uint64, brief types.ProductBrief) error {
	out, genErr := gen.GenerateLandingCopy(ctx, brief)
	if genErr != nil {
		if err := s.Fail(ticket, ai.PublicMessage(genErr, ai.MsgCopyFailed)); err != nil {
			log.Printf("WARN: Dropped failure for session %s: %v", s.ID, err)
		}
		return genErr
	}

	if err := s.Complete(ticket, out); err != nil {
		log.Printf("WARN: Dropped result for session %s: %v", s.ID, err)
	}
	return nil
}
