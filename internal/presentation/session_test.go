package presentation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/kdduha/code-explainer/internal/client"
	"github.com/kdduha/code-explainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	res *models.ExplanationResult
	err error
}

// scriptedExplainer answers each call from its own channel so tests decide
// the order in which overlapping calls resolve.
type scriptedExplainer struct {
	mu      sync.Mutex
	calls   []models.ExplainRequest
	started chan models.ExplainRequest
	replies map[string]chan reply
}

func newScripted(codes ...string) *scriptedExplainer {
	s := &scriptedExplainer{
		started: make(chan models.ExplainRequest, len(codes)),
		replies: map[string]chan reply{},
	}
	for _, c := range codes {
		s.replies[c] = make(chan reply, 1)
	}
	return s
}

func (s *scriptedExplainer) Explain(ctx context.Context, req models.ExplainRequest) (*models.ExplanationResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	ch := s.replies[req.Code]
	s.mu.Unlock()

	s.started <- req
	r := <-ch
	return r.res, r.err
}

func (s *scriptedExplainer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func result(text string) *models.ExplanationResult {
	return &models.ExplanationResult{Explanation: text, DetectedLanguage: "javascript", KeyPoints: []string{text + " point"}}
}

func TestSubmitValidationMakesNoCall(t *testing.T) {
	exp := newScripted()
	s := NewSession(exp)

	tests := []struct {
		code, lang string
		wantMsg    string
		wantField  string
	}{
		{"", "go", "Code is required", "code"},
		{"  \n\t", "go", "Code is required", "code"},
		{strings.Repeat("x", models.MaxCodeLength+1), "go", "Code must be less than 10,000 characters", "code"},
		{"x := 1", "", "Language is required", "language"},
	}
	for _, tt := range tests {
		v := s.Submit(context.Background(), tt.code, tt.lang)

		assert.Equal(t, StateError, v.State)
		require.NotNil(t, v.Err)
		assert.Equal(t, ErrorValidation, v.Err.Kind)
		assert.Equal(t, tt.wantMsg, v.Err.Message)
		assert.Equal(t, tt.wantField, v.Err.Field)
		assert.True(t, v.SubmitEnabled)
	}
	assert.Zero(t, exp.callCount())
}

func TestSubmitHappyPath(t *testing.T) {
	exp := newScripted(`console.log("Hello, World!");`)
	s := NewSession(exp)

	done := make(chan View)
	go func() {
		done <- s.Submit(context.Background(), `console.log("Hello, World!");`, "javascript")
	}()

	<-exp.started
	loading := s.View()
	assert.Equal(t, StateSubmitting, loading.State)
	assert.True(t, loading.Loading)
	assert.False(t, loading.SubmitEnabled)

	// edits while in flight neither cancel nor change state
	edited := s.Edit("something else", "javascript")
	assert.Equal(t, StateSubmitting, edited.State)

	exp.replies[`console.log("Hello, World!");`] <- reply{res: result("hello")}
	v := <-done

	assert.Equal(t, StateSuccess, v.State)
	assert.True(t, v.SubmitEnabled)
	require.NotNil(t, v.Result)
	assert.Equal(t, "hello", v.Result.Explanation)
	assert.Nil(t, v.Err)
	assert.Equal(t, `console.log("Hello, World!");`, exp.calls[0].Code, "payload equals submitted input")
}

func TestSubmitReplacesPreviousResult(t *testing.T) {
	exp := newScripted("a", "b")
	s := NewSession(exp)

	exp.replies["a"] <- reply{res: result("result A")}
	v := s.Submit(context.Background(), "a", "go")
	require.Equal(t, "result A", v.Result.Explanation)

	done := make(chan View)
	go func() { done <- s.Submit(context.Background(), "b", "go") }()
	<-exp.started
	<-exp.started
	assert.Nil(t, s.View().Result, "previous result is cleared while loading")

	exp.replies["b"] <- reply{res: result("result B")}
	v = <-done

	assert.Equal(t, "result B", v.Result.Explanation)
	assert.Equal(t, []string{"result B point"}, v.Result.KeyPoints)
	assert.NotContains(t, Render(v, 100), "result A")
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	exp := newScripted("first", "second")
	s := NewSession(exp)

	firstDone := make(chan View)
	go func() { firstDone <- s.Submit(context.Background(), "first", "go") }()
	<-exp.started

	secondDone := make(chan View)
	go func() { secondDone <- s.Submit(context.Background(), "second", "go") }()
	<-exp.started

	exp.replies["second"] <- reply{res: result("second")}
	v := <-secondDone
	assert.Equal(t, "second", v.Result.Explanation)

	// the older call resolves last and must not overwrite the view
	exp.replies["first"] <- reply{res: result("first")}
	<-firstDone

	final := s.View()
	assert.Equal(t, StateSuccess, final.State)
	assert.Equal(t, "second", final.Result.Explanation)
}

func TestValidationFailureSupersedesInFlight(t *testing.T) {
	exp := newScripted("slow")
	s := NewSession(exp)

	done := make(chan View)
	go func() { done <- s.Submit(context.Background(), "slow", "go") }()
	<-exp.started

	v := s.Submit(context.Background(), "", "go")
	assert.Equal(t, StateError, v.State)

	exp.replies["slow"] <- reply{res: result("late")}
	<-done
	assert.Equal(t, StateError, s.View().State)
	assert.Nil(t, s.View().Result)
}

func TestValidationFailureClearsPreviousResult(t *testing.T) {
	exp := newScripted("a := 1")
	s := NewSession(exp)

	exp.replies["a := 1"] <- reply{res: result("result A")}
	v := s.Submit(context.Background(), "a := 1", "go")
	require.Equal(t, StateSuccess, v.State)
	require.NotNil(t, v.Result)

	v = s.Submit(context.Background(), "   ", "go")
	assert.Equal(t, StateError, v.State)
	require.NotNil(t, v.Err)
	assert.Equal(t, "Code is required", v.Err.Message)
	assert.Nil(t, v.Result)
	assert.Nil(t, s.View().Result)
	assert.NotContains(t, Render(v, 100), "result A")
	assert.Equal(t, 1, exp.callCount())
}

func TestServiceErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantKind  ErrorKind
		wantMsg   string
		retryable bool
	}{
		{
			name:      "unavailable",
			err:       &client.APIError{Status: http.StatusServiceUnavailable, Message: "AI service temporarily unavailable. Please try again in a moment."},
			wantKind:  ErrorService,
			wantMsg:   "AI service temporarily unavailable. Please try again in a moment.",
			retryable: true,
		},
		{
			name:     "server failure",
			err:      &client.APIError{Status: http.StatusInternalServerError, Message: "Failed to analyze code. Please try again."},
			wantKind: ErrorService,
			wantMsg:  "Failed to analyze code. Please try again.",
		},
		{
			name:     "server side validation",
			err:      &client.APIError{Status: http.StatusBadRequest, Message: "Code is required"},
			wantKind: ErrorValidation,
			wantMsg:  "Code is required",
		},
		{
			name:      "no connection",
			err:       errors.New("dial tcp: connection refused"),
			wantKind:  ErrorService,
			wantMsg:   msgNoServer,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := newScripted("x := 1")
			exp.replies["x := 1"] <- reply{err: tt.err}
			s := NewSession(exp)

			v := s.Submit(context.Background(), "x := 1", "go")

			assert.Equal(t, StateError, v.State)
			assert.True(t, v.SubmitEnabled)
			assert.Equal(t, "x := 1", v.Code, "input preserved for retry")
			require.NotNil(t, v.Err)
			assert.Equal(t, tt.wantKind, v.Err.Kind)
			assert.Equal(t, tt.wantMsg, v.Err.Message)
			assert.Equal(t, tt.retryable, v.Err.Retryable)
		})
	}
}

func TestEditReturnsToIdle(t *testing.T) {
	s := NewSession(newScripted())

	v := s.Submit(context.Background(), "", "go")
	require.Equal(t, StateError, v.State)

	v = s.Edit("x := 1", "go")
	assert.Equal(t, StateIdle, v.State)
	assert.Nil(t, v.Err)
	assert.Equal(t, "x := 1", v.Code)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", State(42).String())
}
