//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/cmd/controller/ioc"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/event"
	commonioc "github.com/KhangChau12/The-Noders-Competition-Platform-sub000/ioc"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web"
)

func BuildDependency() *App {
	wire.Build(
		commonioc.InitLogger,
		commonioc.InitDB,
		commonioc.InitRedis,
		commonioc.InitClock,
		commonioc.InitJWTHandler,
		commonioc.InitFileStore,
		commonioc.InitSaramaClient,
		commonioc.InitSyncProducer,
		commonioc.InitConsumerGroup,

		service.NewUserService,
		service.NewCompetitionService,
		service.NewTeamService,
		service.NewRegistrationService,
		service.NewQuotaService,
		commonioc.InitSubmissionService,
		commonioc.InitLeaderboardService,

		event.NewScoreResultConsumer,

		web.NewUserHandler,
		web.NewCompetitionHandler,
		web.NewTeamHandler,
		web.NewRegistrationHandler,
		web.NewSubmissionHandler,
		web.NewLeaderboardHandler,
		web.NewHealthHandler,

		ioc.InitGinServer,

		wire.Struct(new(App), "*"),
	)
	return &App{}
}
