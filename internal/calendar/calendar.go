package calendar

import "time"

// DayInfo represents the classification of a specific day
type DayInfo struct {
	Date      time.Time `json:"date"`
	IsWork    bool      `json:"is_work"`
	IsShort   bool      `json:"is_short"`
	IsHoliday bool      `json:"is_holiday"`
	IsWeekend bool      `json:"is_weekend"`
}

// MonthData holds the day sets extracted for one month.
// The sets are day-of-month numbers (1-31) and are not required to be
// disjoint: a holiday may also appear in the weekend table of the source
// page. Query-time precedence resolves the overlap.
type MonthData struct {
	PreHolidays []int `json:"pre_holidays"`
	Weekends    []int `json:"weekends"`
	Holidays    []int `json:"holidays"`
}

// YearData maps month number (1-12) to that month's day sets.
// A degraded extraction may produce fewer than 12 months; looking up a
// missing month is an error at query time.
type YearData map[int]MonthData

// MonthSummary aggregates per-day classifications for a whole month
type MonthSummary struct {
	Year      int
	Month     time.Month
	WorkDays  int
	Shortened int
	Weekends  int
	Holidays  int
	Days      []DayInfo
}

// Fetcher retrieves the raw calendar document for one year
type Fetcher interface {
	Fetch(year int) (string, error)
}

// Extractor derives per-month day sets from a raw calendar document.
// The i-th extracted month is month i+1: tables are assumed to appear in
// document order, January first. Implementations must be pure functions.
type Extractor interface {
	Extract(document string) []MonthData
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
