package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/server"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func testConfig(port string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: port},
		Review: config.ReviewConfig{APIURL: config.DefaultReviewAPIURL},
	}
}

func TestNewGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gw, err := NewGateway(testConfig("3000"), logger)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultReviewAPIURL, gw.BaseURL())

	cfg := testConfig("3000")
	cfg.Review.APIURL = "::not a url"
	_, err = NewGateway(cfg, logger)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(freePort(t))

	gw, err := NewGateway(cfg, logger)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := server.NewServer(ctx, cfg, gw, logger)
	require.NoError(t, err)
	a := NewApp(cfg, gw, srv, logger)

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + cfg.Server.Port + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancellation")
	}
}
