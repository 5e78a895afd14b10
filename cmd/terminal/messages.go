package main

import "github.com/sevigo/code-review-agent/internal/core"

// Delivered when the outstanding review request finishes, successfully or not.
type reviewCompletedMsg struct {
	result *core.ReviewResult
	err    error
}

// Delivered when the startup health probe of the review service finishes.
type healthCheckedMsg struct {
	status *core.HealthStatus
	err    error
}
