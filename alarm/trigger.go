package alarm

import "wake/caltime"

// Monitor decides when the stored alarm for the current day fires. An
// alarm fires at most once per day; a poll landing on 00:00 re-arms it.
type Monitor struct {
	store *Store

	// firedAt holds the Time2000 of the last trigger, 0 = armed. The
	// zero ambiguity is harmless: epoch second 0 is a midnight, hours
	// before the earliest encodable alarm.
	firedAt uint32
}

func NewMonitor(store *Store) *Monitor {
	return &Monitor{store: store}
}

// Check inspects the schedule against now and reports whether the alarm
// fires on this poll. The hour and minute thresholds are compared
// independently: once the alarm hour has begun, the alarm still waits for
// a poll whose minute has also reached the alarm minute, even in a later
// hour. Callers polling at least once a minute never notice the
// difference.
func (m *Monitor) Check(now caltime.Clock) (bool, error) {
	sc, err := m.store.Schedule()
	if err != nil {
		return false, err
	}
	if !sc.Enabled(now.Weekday) {
		return false, nil
	}
	hour, minute := sc.Codes[now.Weekday].Time()
	fired := false
	if m.firedAt == 0 && now.Hour >= hour && now.Minute >= minute {
		m.firedAt = now.Time2000
		fired = true
	}
	if now.Hour == 0 && now.Minute == 0 {
		m.firedAt = 0
	}
	return fired, nil
}
