package ioc

import (
	"log"

	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
)

func InitFileStore(l loggerv2.Logger) *filestore.MinIOService {
	var cfg config.StorageConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal storage config failed: %v", err)
	}
	return filestore.NewMinIOService(l, cfg.Endpoint, cfg.UseSSL)
}
