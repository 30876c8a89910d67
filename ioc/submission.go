package ioc

import (
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/event"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

func InitSubmissionService(
	db *gorm.DB,
	rdb redis.Cmdable,
	quotaSvc service.QuotaService,
	regSvc service.RegistrationService,
	teamSvc service.TeamService,
	compSvc service.CompetitionService,
	fileStore *filestore.MinIOService,
	producer event.Producer,
	clock service.Clock,
	l loggerv2.Logger,
) service.SubmissionService {
	var cfg config.StorageConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal storage config failed: %v", err)
	}
	return service.NewSubmissionService(db, rdb, quotaSvc, regSvc, teamSvc, compSvc, fileStore, producer, clock, l, cfg.Bucket)
}
