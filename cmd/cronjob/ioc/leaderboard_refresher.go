package ioc

import (
	"log"
	"time"

	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/cmd/cronjob/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job/refresher"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

func InitLeaderboardRefresher(db *gorm.DB, leaderboardSvc service.LeaderboardService, l loggerv2.Logger) *job.JobConfig {
	var cfg config.LeaderboardRefresherConfig
	err := viper.UnmarshalKey(cfg.Key(), &cfg)
	if err != nil {
		log.Panicf("unmarshal leaderboard refresher config fail, err: %v", err)
	}

	r := refresher.NewLeaderboardRefresher(db, leaderboardSvc, l)
	jbCfg := &job.JobConfig{
		Name:        "leaderboard refresher",
		CronExpr:    cfg.CronExpr,
		JobFunc:     r.RunRefresh,
		Description: "recompute cached leaderboards of competitions in a test window",
		Enabled:     cfg.Enabled,
		Timeout:     time.Duration(cfg.Timeout) * time.Millisecond,
	}
	return jbCfg
}
