package device

// Conversion factors used by Timespan. A month is 30 days and a year is 365
// days.
const (
	HoursPerDay   = 24.0
	HoursPerMonth = 720.0
	HoursPerYear  = 8760.0
)

// Timespan is a duration expressed in several units at once.
type Timespan struct {
	Hours  float64
	Days   float64
	Months float64
	Years  float64
}

// FromHours builds a Timespan from a number of hours.
func FromHours(hours float64) Timespan {
	return Timespan{
		Hours:  hours,
		Days:   hours / HoursPerDay,
		Months: hours / HoursPerMonth,
		Years:  hours / HoursPerYear,
	}
}

// FromMonths builds a Timespan from a number of 720-hour months.
func FromMonths(months float64) Timespan {
	return FromHours(months * HoursPerMonth)
}
