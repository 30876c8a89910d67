package main

import (
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigPath = "./config/config.yaml"

func main() {
	cfile := pflag.String("config", defaultConfigPath, "config file path")
	pflag.Parse()

	viper.SetConfigFile(*cfile)
	if err := viper.ReadInConfig(); err != nil {
		log.Panicf("read config file failed: %v", err)
	}

	// The daily quota window resets at local midnight, so the process
	// timezone must match the platform timezone.
	if tz := viper.GetString("timezone"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Panicf("load location failed: %v", err)
		}
		time.Local = loc
	}

	app := BuildDependency()
	app.StartConsumer()
	log.Println("gin server start")
	if err := app.Server.Start(); err != nil {
		log.Panicf("gin server failed: %v", err)
	}
}
