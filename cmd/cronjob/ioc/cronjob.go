package ioc

import (
	"log"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

func InitScheduler(l loggerv2.Logger, db *gorm.DB, leaderboardSvc service.LeaderboardService, fileStore *filestore.MinIOService) *job.CronScheduler {
	scheduler := job.NewCronScheduler(l)

	if err := scheduler.AddJob(InitLeaderboardRefresher(db, leaderboardSvc, l)); err != nil {
		log.Panicf("add leaderboard refresher job fail, err: %v", err)
	}
	if err := scheduler.AddJob(InitArtifactCleaner(db, fileStore, l)); err != nil {
		log.Panicf("add artifact cleaner job fail, err: %v", err)
	}

	return scheduler
}
