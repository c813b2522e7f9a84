package controller

import (
	"log/slog"
	"sync/atomic"
	"time"

	"wake/alarm"
	"wake/caltime"
	"wake/pkg"
	"wake/wake_station/db"
	"wake/wake_station/global"
)

// timeSource is the part of the RTC the poll loop reads.
type timeSource interface {
	ReadTime() (caltime.Clock, error)
}

func addPollJob(dev timeSource, monitor *alarm.Monitor, store *alarm.Store, pub Publisher) {
	var inQuery atomic.Bool
	job := func() {
		// Determine if the chip is still being queried
		if !inQuery.CompareAndSwap(false, true) {
			slog.Warn("Poll interval too short")
			return
		}
		defer inQuery.Store(false)

		pollOnce(dev, monitor, store, pub)
	}
	pkg.Must2(global.CronJob.AddFunc(global.Config.Poll.Cron, job))
}

func pollOnce(dev timeSource, monitor *alarm.Monitor, store *alarm.Store, pub Publisher) {
	now, err := dev.ReadTime()
	if err != nil {
		slog.Error("Failed to read time", "error", err)
		return
	}
	fired, err := monitor.Check(now)
	if err != nil {
		slog.Error("Failed to check alarm", "error", err)
		return
	}
	if !fired {
		return
	}

	code, _, err := store.Get(now.Weekday)
	if err != nil {
		slog.Error("Failed to read fired alarm back", "weekday", now.Weekday, "error", err)
		return
	}
	hour, minute := code.Time()
	event := db.WakeEvent{
		Timestamp:   time.Now().UnixMilli(),
		Weekday:     now.Weekday,
		AlarmHour:   hour,
		AlarmMinute: minute,
	}
	slog.Info("Alarm fired", "weekday", event.Weekday, "hour", event.AlarmHour, "minute", event.AlarmMinute)
	if err = db.SaveWakeEvent(event); err != nil {
		slog.Error("Failed to save wake event", "error", err)
	}
	if err = pub.Publish(event); err != nil {
		slog.Error("Failed to publish wake event", "error", err)
	}
}
