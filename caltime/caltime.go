// Package caltime implements the calendar arithmetic behind the DS1307
// driver: conversions between calendar dates, day counters relative to
// 2000-01-01 and a 32-bit seconds counter.
//
// The counters keep the chip's natural ranges: two-digit years cover
// 2000..2099 and the seconds counter runs out at 2136-02-07 06:28:15.
package caltime

import "time"

// Weekday numbers the days of the week, 0 = Sunday .. 6 = Saturday.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

func (d Weekday) String() string {
	if d > Saturday {
		return "???"
	}
	return weekdayNames[d]
}

// Clock is one consistent reading of the calendar: the stored fields plus
// every derived counter. Values are only built through the From...
// constructors and WithTimeOfDay, which recompute all dependent fields, so
// a Clock can never hold a date whose counters disagree.
type Clock struct {
	Second uint8
	Minute uint8
	Hour   uint8

	Day   uint8 // 1..31
	Month uint8 // 1..12
	Year  uint16

	Weekday  Weekday
	YDN      uint16 // day within the year, 1 = Jan 1st
	CDN      uint16 // days since 2000-01-01, which is day 0
	Time2000 uint32 // seconds since 2000-01-01 00:00:00
}

// FromDate builds a reading for the given calendar date at 00:00:00.
func FromDate(year uint16, month, day uint8) Clock {
	c := Clock{Year: year, Month: month, Day: day}
	c.YDN = yearDayNumber(year, month, day)
	c.CDN = centuryDayNumber(year, c.YDN)
	c.Weekday = Weekday((c.CDN + 6) % 7)
	c.Time2000 = time2000(c.CDN, 0, 0, 0)
	return c
}

// WithTimeOfDay returns a copy of the reading with the time of day
// replaced. The date and its counters are untouched.
func (c Clock) WithTimeOfDay(hour, minute, second uint8) Clock {
	c.Hour, c.Minute, c.Second = hour, minute, second
	c.Time2000 = time2000(c.CDN, hour, minute, second)
	return c
}

// FromCDN builds a reading at 00:00:00 from a century day number by
// walking forward from the year 2000 and then deriving month and day from
// the remaining day number within the found year.
func FromCDN(cdn uint16) Clock {
	rest := cdn
	year := uint16(2000)
	for {
		days := 365 + leapDay(year)
		if rest < days {
			break
		}
		rest -= days
		year++
	}
	c := Clock{Year: year, YDN: rest + 1, CDN: cdn}
	c.Weekday = Weekday((cdn + 6) % 7)
	c.Month = monthByYDN(year, c.YDN)
	c.Day = dayByYDN(year, c.Month, c.YDN)
	c.Time2000 = time2000(cdn, 0, 0, 0)
	return c
}

// FromTime2000 builds a reading from a seconds-since-2000 timestamp.
func FromTime2000(t uint32) Clock {
	second := uint8(t % 60)
	t /= 60
	minute := uint8(t % 60)
	t /= 60
	hour := uint8(t % 24)
	t /= 24
	return FromCDN(uint16(t)).WithTimeOfDay(hour, minute, second)
}

// FromTime converts a Go time to a reading, ignoring sub-second precision
// and the location-independent fields.
func FromTime(t time.Time) Clock {
	return FromDate(uint16(t.Year()), uint8(t.Month()), uint8(t.Day())).
		WithTimeOfDay(uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()))
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func leapDay(year uint16) uint16 {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// yearDayNumber computes the 1-based day within the year with the
// "Robertson" formula: months are shifted so March opens the year, which
// puts the leap day, if any, at the very end of the shifted year.
func yearDayNumber(year uint16, month, day uint8) uint16 {
	n := (uint16(month)+2)*611/20 + uint16(day) - 91
	if month >= 3 {
		n -= 2
		n += leapDay(year)
	}
	return n
}

// centuryDayNumber counts the days since 2000-01-01 by summing whole years
// below the given one.
func centuryDayNumber(year, ydn uint16) uint16 {
	cdn := ydn - 1
	for y := year; y > 2000; {
		y--
		cdn += 365 + leapDay(y)
	}
	return cdn
}

func time2000(cdn uint16, hour, minute, second uint8) uint32 {
	t := uint32(cdn)
	t = t*24 + uint32(hour)
	t = t*60 + uint32(minute)
	t = t*60 + uint32(second)
	return t
}

// correctedYDN undoes the January/February special case of the Robertson
// formula so the month can be read back off by plain division.
func correctedYDN(year, ydn uint16) uint16 {
	a := leapDay(year)
	c := ydn
	if c > 59+a {
		c += 2 - a
	}
	return c + 91
}

func monthByYDN(year, ydn uint16) uint8 {
	return uint8(correctedYDN(year, ydn)*20/611) - 2
}

func dayByYDN(year uint16, month uint8, ydn uint16) uint8 {
	return uint8(correctedYDN(year, ydn) - (uint16(month)+2)*611/20)
}
