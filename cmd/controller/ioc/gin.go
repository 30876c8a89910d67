package ioc

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/jwt"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/middleware"
)

func InitGinServer(
	l loggerv2.Logger,
	jwtHandler jwt.Handler,
	userHandler *web.UserHandler,
	competitionHandler *web.CompetitionHandler,
	teamHandler *web.TeamHandler,
	registrationHandler *web.RegistrationHandler,
	submissionHandler *web.SubmissionHandler,
	leaderboardHandler *web.LeaderboardHandler,
	healthHandler *web.HealthHandler,
) *web.GinServer {
	var cfg config.GinConfig
	err := viper.UnmarshalKey(cfg.Key(), &cfg)
	if err != nil {
		log.Panicf("unmarshal gin config failed, err: %v", err)
	}

	// The environment takes precedence over the config file for the port.
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	registerValidations()

	corsBuilder := middleware.NewCORSMiddlewareBuilder(
		cfg.AllowOrigins,
		cfg.AllowMethods,
		cfg.AllowHeaders,
		cfg.ExposeHeaders,
		cfg.AllowCredentials,
		time.Duration(cfg.MaxAge)*time.Second)
	jwtBuilder := middleware.NewJWTMiddlewareBuilder(jwtHandler, l, cfg.PublicPaths)

	engine := gin.Default()
	engine.Use(
		corsBuilder.Build(),
		jwtBuilder.CheckLogin(),
		gintool.ContextMiddleware(),
	)

	pprof.Register(engine)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userHandler.Register(engine)
	competitionHandler.Register(engine)
	teamHandler.Register(engine)
	registrationHandler.Register(engine)
	submissionHandler.Register(engine)
	leaderboardHandler.Register(engine)
	healthHandler.Register(engine)

	return &web.GinServer{
		Engine: engine,
		Addr:   cfg.Addr,
	}
}

func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Panicf("unexpected validator engine type")
	}
	err := v.RegisterValidation("scoring_metric", func(fl validator.FieldLevel) bool {
		return model.ScoringMetric(fl.Field().String()).Valid()
	})
	if err != nil {
		log.Panicf("register scoring_metric validation failed: %v", err)
	}
}
