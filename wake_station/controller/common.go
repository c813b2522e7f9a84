package controller

import (
	"log/slog"
	"os"
	"time"

	"periph.io/x/host/v3/sysfs"

	"wake/alarm"
	"wake/caltime"
	"wake/ds1307"
	"wake/pkg/project"
	"wake/wake_station/db"
	"wake/wake_station/global"
)

func Init() {
	db.Init()
	project.RegisterReleaseFunc(db.Close)

	bus, err := sysfs.NewI2C(global.Config.I2c.Bus)
	if err != nil {
		slog.Error("Connecting", "i2c", global.Config.I2c.Bus, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected", "i2c", global.Config.I2c.Bus)

	dev := ds1307.New(bus)
	if !dev.Present() {
		slog.Error("DS1307 not responding", "addr", ds1307.Addr)
		os.Exit(1)
	}
	set, err := dev.TimeSet()
	if err != nil {
		slog.Error("Failed to query clock-is-set token", "error", err)
		os.Exit(1)
	}
	if !set {
		now := caltime.FromTime(time.Now())
		slog.Warn("Clock was never set, initializing from system time",
			"date", now.Time2000, "weekday", now.Weekday)
		if err = dev.SetDateTime(now); err != nil {
			slog.Error("Failed to initialize clock", "error", err)
			os.Exit(1)
		}
	}

	store := alarm.NewStore(dev)
	monitor := alarm.NewMonitor(store)

	pub, err := newMqttPublisher(global.Config.Mqtt.Broker, global.Config.Mqtt.ClientId, global.Config.Mqtt.Topic)
	if err != nil {
		slog.Error("Failed to connect to MQTT broker", "broker", global.Config.Mqtt.Broker, "error", err)
		os.Exit(1)
	}
	project.RegisterReleaseFunc(func() { _ = pub.Close() })

	if err = dev.LogTime(); err != nil {
		slog.Warn("Failed to log clock state", "error", err)
	}
	if err = dev.DumpNVRAM(); err != nil {
		slog.Warn("Failed to dump NVRAM", "error", err)
	}

	addPollJob(dev, monitor, store, pub)
}
