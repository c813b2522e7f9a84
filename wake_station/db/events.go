package db

import "wake/caltime"

// WakeEvent is one alarm trigger as it went to disk and over the wire.
type WakeEvent struct {
	Timestamp   int64           `json:"timestamp"` // unix milliseconds
	Weekday     caltime.Weekday `json:"weekday"`
	AlarmHour   uint8           `json:"alarm_hour"`
	AlarmMinute uint8           `json:"alarm_minute"`
}

func SaveWakeEvent(e WakeEvent) error {
	_, err := db.Exec("insert into wake_events (timestamp, weekday, alarm_hour, alarm_min) VALUES (?,?,?,?)",
		e.Timestamp, e.Weekday, e.AlarmHour, e.AlarmMinute)
	return err
}

func GetWakeEventsAfter(start int64) ([]WakeEvent, error) {
	rows, err := db.Query("select timestamp, weekday, alarm_hour, alarm_min from wake_events where timestamp>? order by timestamp", start)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var (
		e  WakeEvent
		es []WakeEvent
	)
	for rows.Next() {
		if err = rows.Scan(&e.Timestamp, &e.Weekday, &e.AlarmHour, &e.AlarmMinute); err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return es, nil
}
