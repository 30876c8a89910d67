package ioc

import (
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

func InitDB() *gorm.DB {
	var cfg config.DBConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal db config failed: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Panicf("open db failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Competition{},
		&model.Team{},
		&model.TeamMember{},
		&model.Registration{},
		&model.Submission{},
	)
	if err != nil {
		log.Panicf("auto migrate failed: %v", err)
	}
	return db
}
