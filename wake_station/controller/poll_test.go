package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wake/alarm"
	"wake/caltime"
	"wake/wake_station/db"
)

type fakeClock struct {
	now caltime.Clock
	err error
}

func (f *fakeClock) ReadTime() (caltime.Clock, error) {
	return f.now, f.err
}

type memNVRAM struct {
	mem [56]byte
}

func (m *memNVRAM) ReadNVRAM(offset uint8, p []byte) error {
	copy(p, m.mem[offset:])
	return nil
}

func (m *memNVRAM) WriteNVRAM(offset uint8, p []byte) error {
	copy(m.mem[offset:], p)
	return nil
}

type fakePublisher struct {
	events []db.WakeEvent
	err    error
}

func (f *fakePublisher) Publish(event db.WakeEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestPollOnce(t *testing.T) {
	store := alarm.NewStore(&memNVRAM{})
	require.NoError(t, store.ClearAll())
	monitor := alarm.NewMonitor(store)
	pub := &fakePublisher{}

	// 2024-01-08 is a Monday
	monday := caltime.FromDate(2024, 1, 8)
	require.NoError(t, store.Set(monday.Weekday, 8, 0))

	clk := &fakeClock{now: monday.WithTimeOfDay(7, 59, 0)}
	pollOnce(clk, monitor, store, pub)
	assert.Empty(t, pub.events, "before the alarm")

	clk.now = monday.WithTimeOfDay(8, 0, 0)
	pollOnce(clk, monitor, store, pub)
	require.Len(t, pub.events, 1, "at the alarm")
	assert.Equal(t, monday.Weekday, pub.events[0].Weekday)
	assert.EqualValues(t, 8, pub.events[0].AlarmHour)
	assert.EqualValues(t, 0, pub.events[0].AlarmMinute)

	events, err := db.GetWakeEventsAfter(0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, pub.events[0], events[0])

	clk.now = monday.WithTimeOfDay(8, 1, 0)
	pollOnce(clk, monitor, store, pub)
	assert.Len(t, pub.events, 1, "fires only once per day")
}

func TestPollOnceReadError(t *testing.T) {
	store := alarm.NewStore(&memNVRAM{})
	require.NoError(t, store.ClearAll())
	pub := &fakePublisher{}

	clk := &fakeClock{err: errors.New("no ack")}
	pollOnce(clk, alarm.NewMonitor(store), store, pub)
	assert.Empty(t, pub.events)
}
