package calendar

import (
	"regexp"
	"strconv"
)

// TableExtractor implements Extractor for the consultant.ru markup: each
// month is a <table class="cal"> element, day cells are classified by
// their td class attribute.
type TableExtractor struct {
	tablePattern      *regexp.Regexp
	preHolidayPattern *regexp.Regexp
	weekendPattern    *regexp.Regexp
	holidayPattern    *regexp.Regexp
}

// NewTableExtractor creates a new TableExtractor instance
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{
		tablePattern:      regexp.MustCompile(`(?s)<table class="cal">(.*?)</table>`),
		preHolidayPattern: regexp.MustCompile(`<td class="preholiday">(\d+)<`),
		weekendPattern:    regexp.MustCompile(`<td class="weekend">(.*?)</td>`),
		holidayPattern:    regexp.MustCompile(`<td class="holiday[^"]*">(.*?)</td>`),
	}
}

// Extract returns the month tables found in document order.
// Fewer than 12 recognizable tables yields a correspondingly shorter
// slice; an empty or unrecognized document yields an empty slice.
func (te *TableExtractor) Extract(document string) []MonthData {
	tables := te.tablePattern.FindAllStringSubmatch(document, -1)

	months := make([]MonthData, 0, len(tables))
	for _, table := range tables {
		months = append(months, MonthData{
			PreHolidays: extractDays(te.preHolidayPattern, table[1]),
			Weekends:    extractDays(te.weekendPattern, table[1]),
			Holidays:    extractDays(te.holidayPattern, table[1]),
		})
	}

	return months
}

// extractDays collects day numbers from all pattern captures, skipping
// captures that do not parse as integers
func extractDays(pattern *regexp.Regexp, table string) []int {
	matches := pattern.FindAllStringSubmatch(table, -1)

	days := make([]int, 0, len(matches))
	for _, match := range matches {
		day, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		days = append(days, day)
	}

	return days
}
