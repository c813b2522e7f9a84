package global

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"
)

var Config struct {
	LogLevel string `json:"log_level"`
	Listen   string `json:"listen"`
	Station  string `json:"station"`
	I2c      struct {
		Bus int `json:"bus"`
	} `json:"i2c"`
	Poll struct {
		Cron string `json:"cron"`
	} `json:"poll"`
	Mqtt struct {
		Broker   string `json:"broker"`
		ClientId string `json:"client_id"`
		Topic    string `json:"topic"`
	} `json:"mqtt"`
	Db struct {
		Dsn string `json:"dsn"`
	} `json:"db"`
}

var CronJob *cron.Cron

func Init(name string) {
	b, err := os.ReadFile(name)
	if err != nil {
		log.Fatal(err)
	}
	if err = json.Unmarshal(b, &Config); err != nil {
		log.Fatal(err)
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(Config.LogLevel)); err != nil {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	CronJob = cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	CronJob.Start()
}
