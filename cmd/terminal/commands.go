package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/code-review-agent/internal/core"
)

const healthTimeout = 5 * time.Second

// reviewCmd sends the request and reports back on the UI loop. There is no
// cancellation path once issued.
func reviewCmd(gw core.ReviewGateway, req core.ReviewRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := gw.Send(context.Background(), req)
		return reviewCompletedMsg{result: result, err: err}
	}
}

func healthCmd(gw core.ReviewGateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		status, err := gw.Health(ctx)
		return healthCheckedMsg{status: status, err: err}
	}
}
