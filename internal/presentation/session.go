// Package presentation drives one explain form: input, loading state and the
// currently displayed result or error.
package presentation

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/kdduha/code-explainer/internal/client"
	"github.com/kdduha/code-explainer/internal/models"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type ErrorKind int

const (
	ErrorValidation ErrorKind = iota
	ErrorService
)

const (
	msgGeneric  = "Failed to analyze code. Please try again."
	msgNoServer = "Failed to connect to API. Please try again."
)

// DisplayError is what the error banner shows.
type DisplayError struct {
	Kind      ErrorKind
	Field     string
	Message   string
	Retryable bool
}

// View is an immutable snapshot for rendering.
type View struct {
	State         State
	Code          string
	Language      string
	Result        *models.ExplanationResult
	Err           *DisplayError
	SubmitEnabled bool
	Loading       bool
}

type Explainer interface {
	Explain(ctx context.Context, req models.ExplainRequest) (*models.ExplanationResult, error)
}

// Session is safe for concurrent use. Overlapping submissions are allowed and
// not cancelled; only the most recent one may update the view.
type Session struct {
	explainer Explainer

	mu       sync.Mutex
	state    State
	code     string
	language string
	result   *models.ExplanationResult
	err      *DisplayError
	seq      uint64
}

func NewSession(explainer Explainer) *Session {
	return &Session{explainer: explainer}
}

// Edit updates the draft input. A finished submission returns to idle; an
// in-flight one keeps running.
func (s *Session) Edit(code, language string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.code, s.language = code, language
	if s.state == StateSuccess || s.state == StateError {
		s.state = StateIdle
		s.err = nil
	}
	return s.viewLocked()
}

// Submit validates the input and, when valid, calls the explainer. It blocks
// until the call resolves and returns the view at that point.
func (s *Session) Submit(ctx context.Context, code, language string) View {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.code, s.language = code, language
	s.state = StateValidating

	req := models.ExplainRequest{Code: code, Language: language}
	if err := req.Validate(); err != nil {
		s.state = StateError
		s.result = nil
		s.err = displayError(err)
		v := s.viewLocked()
		s.mu.Unlock()
		return v
	}

	s.state = StateSubmitting
	s.result = nil
	s.err = nil
	s.mu.Unlock()

	res, err := s.explainer.Explain(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.seq {
		// superseded by a later submission
		return s.viewLocked()
	}
	if err != nil {
		s.state = StateError
		s.err = displayError(err)
		return s.viewLocked()
	}
	s.state = StateSuccess
	s.result = res
	return s.viewLocked()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	return View{
		State:         s.state,
		Code:          s.code,
		Language:      s.language,
		Result:        s.result,
		Err:           s.err,
		SubmitEnabled: s.state != StateSubmitting,
		Loading:       s.state == StateSubmitting,
	}
}

func displayError(err error) *DisplayError {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return &DisplayError{Kind: ErrorValidation, Field: ve.Field, Message: ve.Message}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusBadRequest {
			return &DisplayError{Kind: ErrorValidation, Message: apiErr.Message}
		}
		msg := apiErr.Message
		if msg == "" {
			msg = msgGeneric
		}
		return &DisplayError{Kind: ErrorService, Message: msg, Retryable: apiErr.Retryable()}
	}

	return &DisplayError{Kind: ErrorService, Message: msgNoServer, Retryable: true}
}
