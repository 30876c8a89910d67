package ioc

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

func InitLeaderboardService(db *gorm.DB, rdb redis.Cmdable, clock service.Clock, l loggerv2.Logger) service.LeaderboardService {
	var cfg config.LeaderboardConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal leaderboard config failed: %v", err)
	}
	if cfg.CacheTTLSeconds <= 0 {
		cfg.CacheTTLSeconds = 60
	}
	return service.NewLeaderboardService(db, rdb, clock, l, time.Duration(cfg.CacheTTLSeconds)*time.Second)
}
