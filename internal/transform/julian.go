package transform

import (
	"math"
	"time"
)

// CivilDateTime is a Gregorian calendar date and UTC time of day.
//
// Fields are not range-checked: out-of-range values (month=13, hour=25, ...)
// feed the Julian Date formula unchanged and yield a mathematically defined
// but semantically meaningless result. Callers own validation.
type CivilDateTime struct {
	Year   int
	Month  int     // 1-12
	Day    int     // 1-31
	Hour   int     // 0-23
	Minute int     // 0-59
	Second float64 // [0, 60)
}

// CivilFromTime converts a time.Time to a CivilDateTime in UTC.
// Sub-second precision is preserved as a fractional second.
func CivilFromTime(t time.Time) CivilDateTime {
	t = t.UTC()
	return CivilDateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// JulianDate converts the civil date/time to a fractional Julian Date.
// Uses the standard astronomical algorithm valid for dates after March 1, 4801 BC.
func (c CivilDateTime) JulianDate() float64 {
	y := float64(c.Year)
	m := float64(c.Month)

	// Adjust year/month for Jan/Feb (treat as months 13/14 of previous year).
	if m <= 2 {
		y -= 1
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(c.Day) + B - 1524.5
	jd += (float64(c.Hour) + float64(c.Minute)/60.0 + c.Second/3600.0) / 24.0

	return jd
}
