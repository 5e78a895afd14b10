// Package form holds the view state of the review form and the transitions
// user actions trigger on it. It is independent of any rendering surface:
// the terminal UI, the web form and the CLI all drive the same Controller.
package form

import (
	"context"
	"errors"

	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/gateway"
)

// EmptyCodeMessage is shown when a blank snippet is submitted.
const EmptyCodeMessage = "Please enter code to review"

var (
	// ErrEmptyCode is returned by Begin and Submit when the code is blank.
	ErrEmptyCode = errors.New("empty code submission")
	// ErrBusy is returned when a submission is attempted while one is in flight.
	ErrBusy = errors.New("a review is already in progress")
	// ErrNotLoading is returned by Complete when no submission is outstanding.
	ErrNotLoading = errors.New("no review in progress")
)

// Controller owns the form state. It is not safe for concurrent use; every
// call must come from the single goroutine that owns the view.
type Controller struct {
	language core.Language
	code     string
	outcome  Outcome
}

// NewController returns a form with the default language and empty code.
func NewController() *Controller {
	return &Controller{
		language: core.DefaultLanguage(),
		outcome:  Idle(),
	}
}

func (c *Controller) Language() core.Language { return c.language }
func (c *Controller) Code() string            { return c.code }
func (c *Controller) Outcome() Outcome        { return c.outcome }

// Loading reports whether a request is outstanding.
func (c *Controller) Loading() bool { return c.outcome.phase == PhaseLoading }

// CanSubmit reports whether the submit control is enabled.
func (c *Controller) CanSubmit() bool { return !c.Loading() }

// Result returns the last review result, if any.
func (c *Controller) Result() *core.ReviewResult { return c.outcome.Result() }

// Error returns the current error message, if any.
func (c *Controller) Error() string { return c.outcome.Message() }

// Display returns the text for the result area, or "" when there is no result.
func (c *Controller) Display() string {
	if r := c.Result(); r != nil {
		return r.Text()
	}
	return ""
}

// SetLanguage replaces the selected language. Membership in the supported
// set is the selector's responsibility.
func (c *Controller) SetLanguage(l core.Language) {
	c.language = l
}

// SetCode replaces the code text verbatim.
func (c *Controller) SetCode(code string) {
	c.code = code
}

// Reset clears code, result and error. The language is kept, and an
// outstanding request stays outstanding.
func (c *Controller) Reset() {
	c.code = ""
	if !c.Loading() {
		c.outcome = Idle()
	}
}

// Begin validates the form and, if it may be sent, moves it to loading and
// returns the request to send. Blank code sets the validation message.
func (c *Controller) Begin() (core.ReviewRequest, error) {
	if c.Loading() {
		return core.ReviewRequest{}, ErrBusy
	}
	req := core.ReviewRequest{Language: c.language, Code: c.code}
	if err := req.Validate(); err != nil {
		c.outcome = Failed(EmptyCodeMessage)
		return core.ReviewRequest{}, ErrEmptyCode
	}
	c.outcome = Loading()
	return req, nil
}

// Complete ends the outstanding submission with the gateway's answer.
func (c *Controller) Complete(result *core.ReviewResult, err error) error {
	if !c.Loading() {
		return ErrNotLoading
	}
	switch {
	case err != nil:
		c.outcome = Failed(gateway.UserMessage(err))
	case result == nil:
		c.outcome = Failed(gateway.TransportErrorMessage)
	default:
		c.outcome = Succeeded(result)
	}
	return nil
}

// Submit runs a whole submission synchronously against gw. The returned
// error is non-nil only when the request was not sent (ErrEmptyCode,
// ErrBusy); service failures end up in Error().
func (c *Controller) Submit(ctx context.Context, gw core.ReviewGateway) error {
	req, err := c.Begin()
	if err != nil {
		return err
	}
	result, sendErr := gw.Send(ctx, req)
	return c.Complete(result, sendErr)
}
