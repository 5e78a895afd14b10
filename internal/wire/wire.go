//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/code-review-agent/internal/app"
	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/gateway"
	"github.com/sevigo/code-review-agent/internal/server"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		config.LoadConfig,
		provideLoggerConfig,
		provideLogOutput,
		provideSlogLogger,
		app.NewGateway,
		wire.Bind(new(core.ReviewGateway), new(*gateway.Client)),
		server.NewServer,
		app.NewApp,
	)
	return &app.App{}, nil, nil
}
