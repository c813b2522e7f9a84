package db

import (
	"log"
	"os"
	"testing"

	"wake/wake_station/global"
)

func TestMain(m *testing.M) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	global.Init("../config.test.json")
	Init()

	exitCode := m.Run()
	os.Exit(exitCode)
}
