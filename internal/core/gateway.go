// Package core defines the essential interfaces and data structures shared by
// the review front ends: the request and result types and the gateway contract
// through which the remote review service is reached.
package core

import "context"

//go:generate mockgen -destination=../../mocks/mock_review_gateway.go -package=mocks . ReviewGateway

// ReviewGateway is the boundary to the remote review service.
type ReviewGateway interface {
	// Send submits a single review request. There are no retries; the returned
	// error is already classified for UserMessage-style translation by the caller.
	Send(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
	// Health probes the service liveness endpoint.
	Health(ctx context.Context) (*HealthStatus, error)
}
