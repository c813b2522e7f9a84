package main

import (
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"wake/pkg/project"
	"wake/wake_station/controller"
	"wake/wake_station/global"
)

func init() {
	flag.StringVar(&global.Config.LogLevel, "log", "debug", "log level")
	cfgName := flag.String("config", "config.json", "Config file")
	flag.Parse()

	global.Init(*cfgName)
}

func main() {
	controller.Init()
	go func() {
		err := http.ListenAndServe(global.Config.Listen, nil)
		slog.Error("HTTP server exited", "error", err)
		os.Exit(1)
	}()
	waitAndCleanUp()
}

func waitAndCleanUp() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	<-ch
	project.CallReleaseFunc()
}
