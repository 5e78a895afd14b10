package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/mocks"
)

func TestServer_ShutdownLetsInFlightReviewFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockReviewGateway(ctrl)

	result, err := core.ParseReviewResult([]byte(`{"review":"Looks fine."}`))
	require.NoError(t, err)

	started := make(chan struct{})
	gw.EXPECT().Send(gomock.Any(), core.ReviewRequest{Language: core.LanguagePython, Code: "print(1)"}).
		DoAndReturn(func(ctx context.Context, _ core.ReviewRequest) (*core.ReviewResult, error) {
			close(started)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(300 * time.Millisecond):
				return result, nil
			}
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Review: config.ReviewConfig{APIURL: config.DefaultReviewAPIURL},
	}
	s, err := NewServer(ctx, cfg, gw, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ts := httptest.NewUnstartedServer(nil)
	ts.Config = s.server
	ts.Start()
	defer ts.Close()

	type response struct {
		status int
		body   string
		err    error
	}
	done := make(chan response, 1)
	go func() {
		form := url.Values{"language": {"python"}, "code": {"print(1)"}}
		resp, err := ts.Client().Post(ts.URL+"/review", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		if err != nil {
			done <- response{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		done <- response{status: resp.StatusCode, body: string(body), err: err}
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("review was never sent to the gateway")
	}
	cancel()
	require.NoError(t, s.Stop())

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, "Looks fine.")
	assert.NotContains(t, res.body, "An error occurred")
}
