package services

import (
	"time"

	"finledger/internal/models"
)

// ResolveDateRange maps a symbolic period and a reference instant to an
// inclusive date-string range in the reference's local calendar. Custom
// bounds pass through as given; an empty bound means unbounded on that side.
func ResolveDateRange(period models.Period, reference time.Time, customFrom, customTo string) models.DateRange {
	year, month, day := reference.Date()
	loc := reference.Location()

	switch period {
	case models.PeriodDay:
		today := formatDate(time.Date(year, month, day, 0, 0, 0, 0, loc))
		return models.DateRange{From: today, To: today}

	case models.PeriodWeek:
		// Week runs Sunday..Saturday; time.Weekday has Sunday = 0.
		midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
		sunday := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		saturday := sunday.AddDate(0, 0, 6)
		return models.DateRange{From: formatDate(sunday), To: formatDate(saturday)}

	case models.PeriodMonth:
		first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		// Day before the first of next month handles 28/29/30/31-day months.
		last := first.AddDate(0, 1, -1)
		return models.DateRange{From: formatDate(first), To: formatDate(last)}

	case models.PeriodYear:
		first := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		last := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		return models.DateRange{From: formatDate(first), To: formatDate(last)}

	case models.PeriodCustom:
		return models.DateRange{From: customFrom, To: customTo}

	default:
		return models.DateRange{}
	}
}

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
