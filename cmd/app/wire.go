//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/starbook-app/starbook/internal/bootstrap"
	"github.com/starbook-app/starbook/internal/domain/astro"
	"github.com/starbook-app/starbook/internal/domain/auspice"
	"github.com/starbook-app/starbook/internal/infra/config"
	"github.com/starbook-app/starbook/internal/infra/ephemeris"
	httpiface "github.com/starbook-app/starbook/internal/interface/http"
	"github.com/starbook-app/starbook/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuspiceConfig,
		ephemeris.New,
		wire.Bind(new(astro.Ephemeris), new(*ephemeris.Ephemeris)),
		provideMonthRepository,
		provideMonthStore,
		providePublisher,
		auspice.NewService,
		provideGenerationQueue,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
