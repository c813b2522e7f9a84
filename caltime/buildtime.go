package caltime

import "fmt"

var buildMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseBuildDateTime parses the fixed-width strings produced by the C
// compiler's __DATE__ and __TIME__ macros, e.g. "Dec 26 2009" and
// "12:34:56", into a reading. Days below 10 are space padded in date.
func ParseBuildDateTime(date, tod string) (Clock, error) {
	if len(date) != 11 {
		return Clock{}, fmt.Errorf("caltime: malformed build date %q", date)
	}
	if len(tod) != 8 || tod[2] != ':' || tod[5] != ':' {
		return Clock{}, fmt.Errorf("caltime: malformed build time %q", tod)
	}
	month := uint8(0)
	for i, name := range buildMonths {
		if date[:3] == name {
			month = uint8(i) + 1
			break
		}
	}
	if month == 0 {
		return Clock{}, fmt.Errorf("caltime: unknown month in build date %q", date)
	}
	day, err := twoDigits(date[4:6])
	if err != nil {
		return Clock{}, fmt.Errorf("caltime: malformed build date %q", date)
	}
	year, err := twoDigits(date[9:11])
	if err != nil {
		return Clock{}, fmt.Errorf("caltime: malformed build date %q", date)
	}
	hour, err1 := twoDigits(tod[0:2])
	minute, err2 := twoDigits(tod[3:5])
	second, err3 := twoDigits(tod[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return Clock{}, fmt.Errorf("caltime: malformed build time %q", tod)
	}
	return FromDate(2000+uint16(year), month, day).
		WithTimeOfDay(hour, minute, second), nil
}

// twoDigits reads a two character number whose first digit may be a
// padding space, as in "Jun  7 2012".
func twoDigits(s string) (uint8, error) {
	var v uint8
	switch {
	case s[0] >= '0' && s[0] <= '9':
		v = s[0] - '0'
	case s[0] == ' ':
		v = 0
	default:
		return 0, fmt.Errorf("caltime: not a number: %q", s)
	}
	if s[1] < '0' || s[1] > '9' {
		return 0, fmt.Errorf("caltime: not a number: %q", s)
	}
	return 10*v + s[1] - '0', nil
}
