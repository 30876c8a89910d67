package ioc

import (
	"log"
	"time"

	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	cronconfig "github.com/KhangChau12/The-Noders-Competition-Platform-sub000/cmd/cronjob/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/job/cleaner"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
)

func InitArtifactCleaner(db *gorm.DB, fileStore *filestore.MinIOService, l loggerv2.Logger) *job.JobConfig {
	var cfg cronconfig.ArtifactCleanerConfig
	err := viper.UnmarshalKey(cfg.Key(), &cfg)
	if err != nil {
		log.Panicf("unmarshal artifact cleaner config fail, err: %v", err)
	}

	var storageCfg config.StorageConfig
	if err = viper.UnmarshalKey(storageCfg.Key(), &storageCfg); err != nil {
		log.Panicf("unmarshal storage config fail, err: %v", err)
	}

	c := cleaner.NewArtifactCleaner(db, fileStore, l, storageCfg.Bucket, time.Duration(cfg.TimeRange)*24*time.Hour)
	jbCfg := &job.JobConfig{
		Name:        "artifact cleaner",
		CronExpr:    cfg.CronExpr,
		JobFunc:     c.RunCleanup,
		Description: "remove stored prediction files of aged invalid submissions",
		Enabled:     cfg.Enabled,
		Timeout:     time.Duration(cfg.Timeout) * time.Millisecond,
	}
	return jbCfg
}
