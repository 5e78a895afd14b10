package form

import "github.com/sevigo/code-review-agent/internal/core"

// Phase names the stage of the current submission.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the display state of the form. Only the constructors below
// produce values, so a result and an error message never coexist and a
// loading outcome carries neither.
type Outcome struct {
	phase   Phase
	result  *core.ReviewResult
	message string
}

// Idle is the quiescent state with nothing to show.
func Idle() Outcome { return Outcome{phase: PhaseIdle} }

// Loading marks a request in flight.
func Loading() Outcome { return Outcome{phase: PhaseLoading} }

// Succeeded holds the result of a completed request.
func Succeeded(result *core.ReviewResult) Outcome {
	return Outcome{phase: PhaseSucceeded, result: result}
}

// Failed holds a user-facing error message.
func Failed(message string) Outcome {
	return Outcome{phase: PhaseFailed, message: message}
}

func (o Outcome) Phase() Phase { return o.phase }

// Result returns the review result, or nil unless the outcome succeeded.
func (o Outcome) Result() *core.ReviewResult { return o.result }

// Message returns the error message, or "" unless the outcome failed.
func (o Outcome) Message() string { return o.message }
