package services

import (
	"testing"
	"time"

	"finledger/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestDateRange(t *testing.T) {
	suite.Run(t, new(DateRangeSuite))
}

type DateRangeSuite struct {
	suite.Suite
	// 2024-03-15 is a Friday
	reference time.Time
}

func (s *DateRangeSuite) SetupTest() {
	s.reference = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
}

func (s *DateRangeSuite) TestResolveDateRange_SymbolicPeriods() {
	tests := []struct {
		name   string
		period models.Period
		want   models.DateRange
	}{
		{"day", models.PeriodDay, models.DateRange{From: "2024-03-15", To: "2024-03-15"}},
		{"week runs sunday to saturday", models.PeriodWeek, models.DateRange{From: "2024-03-10", To: "2024-03-16"}},
		{"month", models.PeriodMonth, models.DateRange{From: "2024-03-01", To: "2024-03-31"}},
		{"year", models.PeriodYear, models.DateRange{From: "2024-01-01", To: "2024-12-31"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := ResolveDateRange(tt.period, s.reference, "", "")
			s.Equal(tt.want, got)
		})
	}
}

func (s *DateRangeSuite) TestResolveDateRange_WeekOnSunday() {
	// 2024-03-10 is itself a Sunday; the week starts on it
	reference := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	got := ResolveDateRange(models.PeriodWeek, reference, "", "")
	s.Equal(models.DateRange{From: "2024-03-10", To: "2024-03-16"}, got)
}

func (s *DateRangeSuite) TestResolveDateRange_WeekSpansMonthBoundary() {
	// 2024-03-31 is a Sunday; the week runs into April
	reference := time.Date(2024, time.March, 31, 8, 0, 0, 0, time.UTC)
	got := ResolveDateRange(models.PeriodWeek, reference, "", "")
	s.Equal(models.DateRange{From: "2024-03-31", To: "2024-04-06"}, got)
}

func (s *DateRangeSuite) TestResolveDateRange_MonthLengths() {
	tests := []struct {
		name      string
		reference time.Time
		want      models.DateRange
	}{
		{
			"leap february",
			time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			models.DateRange{From: "2024-02-01", To: "2024-02-29"},
		},
		{
			"non-leap february",
			time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC),
			models.DateRange{From: "2023-02-01", To: "2023-02-28"},
		},
		{
			"thirty-day month",
			time.Date(2024, time.April, 22, 0, 0, 0, 0, time.UTC),
			models.DateRange{From: "2024-04-01", To: "2024-04-30"},
		},
		{
			"december",
			time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
			models.DateRange{From: "2024-12-01", To: "2024-12-31"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := ResolveDateRange(models.PeriodMonth, tt.reference, "", "")
			s.Equal(tt.want, got)
		})
	}
}

func (s *DateRangeSuite) TestResolveDateRange_Custom() {
	tests := []struct {
		name     string
		from, to string
		want     models.DateRange
	}{
		{"both bounds", "2024-01-10", "2024-02-20", models.DateRange{From: "2024-01-10", To: "2024-02-20"}},
		{"open start", "", "2024-02-20", models.DateRange{To: "2024-02-20"}},
		{"open end", "2024-01-10", "", models.DateRange{From: "2024-01-10"}},
		{"fully unbounded", "", "", models.DateRange{}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := ResolveDateRange(models.PeriodCustom, s.reference, tt.from, tt.to)
			s.Equal(tt.want, got)
		})
	}
}

func (s *DateRangeSuite) TestResolveDateRange_Deterministic() {
	first := ResolveDateRange(models.PeriodWeek, s.reference, "", "")
	second := ResolveDateRange(models.PeriodWeek, s.reference, "", "")
	s.Equal(first, second)
}

func (s *DateRangeSuite) TestResolveDateRange_UnknownPeriodIsUnbounded() {
	got := ResolveDateRange(models.Period("fortnight"), s.reference, "", "")
	s.Equal(models.DateRange{}, got)
}
