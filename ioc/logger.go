package ioc

import (
	"log"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"go.uber.org/zap"
)

func InitLogger() loggerv2.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	zl, err := cfg.Build()
	if err != nil {
		log.Panicf("build zap logger failed: %v", err)
	}
	return loggerv2.NewZapContextLogger(zl)
}
