package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCode is returned when a review is requested for blank code.
var ErrEmptyCode = errors.New("code must not be empty")

// ReviewRequest is the language/code pair submitted for evaluation.
type ReviewRequest struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
}

// Validate reports whether the request may be submitted.
func (r ReviewRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return ErrEmptyCode
	}
	return nil
}

// ReviewResult is the structured response of the review service.
// The service owns the shape; only the "review" field is interpreted.
type ReviewResult struct {
	// Review holds the textual assessment when the response carries a string "review" field.
	Review    string
	HasReview bool
	// Fields holds every top-level key when the response is a JSON object.
	Fields map[string]any

	raw json.RawMessage
}

// ParseReviewResult decodes a success body. Any valid JSON value is accepted.
func ParseReviewResult(body []byte) (*ReviewResult, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	res := &ReviewResult{raw: append(json.RawMessage(nil), body...)}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		// Not an object: keep the raw value for the dump.
		return res, nil
	}
	res.Fields = fields
	if review, ok := fields["review"].(string); ok {
		res.Review = review
		res.HasReview = true
	}
	return res, nil
}

// Raw returns the response body as received.
func (r *ReviewResult) Raw() json.RawMessage {
	return r.raw
}

// Text returns the text to display: the review itself, or an indented
// dump of the whole response when no non-empty review is present.
func (r *ReviewResult) Text() string {
	if r.HasReview && r.Review != "" {
		return r.Review
	}
	return r.Dump()
}

// Dump renders the full response as two-space indented JSON.
func (r *ReviewResult) Dump() string {
	if len(r.raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		return string(r.raw)
	}
	return buf.String()
}

// HealthStatus is the body returned by the review service health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
