package caltime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCETSummerTime2021(t *testing.T) {
	// 2021: window opens Sunday 2021-03-28 02:00, closes Sunday
	// 2021-10-31 03:00.
	tests := []struct {
		name string
		c    Clock
		want bool
	}{
		{"midwinter", FromDate(2021, 1, 15).WithTimeOfDay(12, 0, 0), false},
		{"day before transition", FromDate(2021, 3, 27).WithTimeOfDay(12, 0, 0), false},
		{"just before transition", FromDate(2021, 3, 28).WithTimeOfDay(1, 59, 59), false},
		{"at transition", FromDate(2021, 3, 28).WithTimeOfDay(2, 0, 0), true},
		{"just after transition", FromDate(2021, 3, 28).WithTimeOfDay(2, 0, 1), true},
		{"midsummer", FromDate(2021, 7, 1).WithTimeOfDay(12, 0, 0), true},
		{"just before winter", FromDate(2021, 10, 31).WithTimeOfDay(2, 59, 59), true},
		{"at winter transition", FromDate(2021, 10, 31).WithTimeOfDay(3, 0, 0), false},
		{"after winter transition", FromDate(2021, 11, 1).WithTimeOfDay(0, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsCETSummerTime())
		})
	}
}

func TestIsCETSummerTime2020(t *testing.T) {
	// 2020: March 30 is a Monday, so the window opens 2020-03-29;
	// October 31 is a Saturday, so it closes 2020-10-25.
	assert.False(t, FromDate(2020, 3, 29).WithTimeOfDay(1, 59, 59).IsCETSummerTime())
	assert.True(t, FromDate(2020, 3, 29).WithTimeOfDay(2, 0, 0).IsCETSummerTime())
	assert.True(t, FromDate(2020, 10, 25).WithTimeOfDay(2, 59, 59).IsCETSummerTime())
	assert.False(t, FromDate(2020, 10, 25).WithTimeOfDay(3, 0, 0).IsCETSummerTime())
}

func TestIsCETSummerTimeKeepsReceiver(t *testing.T) {
	c := FromDate(2021, 7, 1).WithTimeOfDay(12, 0, 0)
	before := c
	_ = c.IsCETSummerTime()
	assert.Equal(t, before, c)
}
