package controller

import (
	"log"
	"os"
	"testing"

	"wake/wake_station/db"
	"wake/wake_station/global"
)

func TestMain(m *testing.M) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	global.Init("../config.test.json")
	db.Init()

	rc := m.Run()

	os.Exit(rc)
}
