//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/cmd/cronjob/ioc"
	commonioc "github.com/KhangChau12/The-Noders-Competition-Platform-sub000/ioc"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job"
)

func InitScheduler() *job.CronScheduler {
	wire.Build(
		commonioc.InitLogger,
		commonioc.InitDB,
		commonioc.InitRedis,
		commonioc.InitClock,
		commonioc.InitFileStore,
		commonioc.InitLeaderboardService,
		ioc.InitScheduler,
	)
	return &job.CronScheduler{}
}
