package caltime

// IsCETSummerTime reports whether the reading falls inside the central
// european summer time window of its year. The window opens on the Sunday
// on or before March 30 at 02:00 and closes on the Sunday on or before
// October 31 at 03:00, end exclusive. The receiver is not modified; the
// boundary dates are computed on throwaway values.
func (c Clock) IsCETSummerTime() bool {
	summerStart := sundayOnOrBefore(FromDate(c.Year, 3, 30)).WithTimeOfDay(2, 0, 0).Time2000
	winterStart := sundayOnOrBefore(FromDate(c.Year, 10, 31)).WithTimeOfDay(3, 0, 0).Time2000
	return summerStart <= c.Time2000 && c.Time2000 < winterStart
}

func sundayOnOrBefore(c Clock) Clock {
	return FromCDN(c.CDN - uint16(c.Weekday))
}
