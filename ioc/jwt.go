package ioc

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/jwt"
)

func InitJWTHandler(client redis.Cmdable) jwt.Handler {
	var cfg config.JWTConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal jwt config failed: %v", err)
	}
	return jwt.NewRedisJWTHandler(client,
		[]byte(cfg.JWTKey),
		[]byte(cfg.RefreshKey),
		time.Duration(cfg.JWTExpiration)*time.Second,
		time.Duration(cfg.RefreshExpiration)*time.Second)
}
