package curve

import "time"

// DayCounter is a day-count convention converting a calendar interval
// into a year fraction.
type DayCounter string

const (
	// Actual365Fixed divides actual days by 365.
	Actual365Fixed DayCounter = "ACT/365F"
	// Actual360 divides actual days by 360.
	Actual360 DayCounter = "ACT/360"
	// Thirty360 is 30E/360 (Eurobond basis): both day numbers capped at 30.
	Thirty360 DayCounter = "30E/360"
)

// YearFraction computes the year fraction between two dates under the
// convention. Unknown conventions fall back to ACT/365F, the standard
// basis for curve time axes.
func (dc DayCounter) YearFraction(start, end time.Time) float64 {
	switch dc {
	case Actual360:
		return days(start, end) / 360.0
	case Thirty360:
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return days(start, end) / 365.0
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
