package calendar

import (
	"fmt"
	"time"

	"github.com/Band1kut/production-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

const monthsPerYear = 12

// Service answers day-classification queries against the cached
// production calendar, lazily populating the cache one year at a time
type Service struct {
	fetcher   Fetcher
	extractor Extractor
	store     *Store
	logger    *zap.Logger
}

// NewService creates a new Service instance
func NewService(fetcher Fetcher, extractor Extractor, store *Store, logger *zap.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		store:     store,
		logger:    logger,
	}
}

// Classify returns the classification of the given date.
// The precedence over the month's day sets is fixed: pre-holiday wins
// over holiday wins over weekend; anything unlisted is a workday. A day
// explicitly marked as a shortened pre-holiday workday stays a workday
// even if the source also lists it as a weekend.
func (s *Service) Classify(date time.Time) (DayInfo, error) {
	year := date.Year()

	data, ok, err := s.store.Get(year)
	if err != nil {
		return DayInfo{}, err
	}
	if !ok {
		data = s.buildYear(year)
		if err := s.store.Put(year, data); err != nil {
			return DayInfo{}, err
		}
	}

	month, ok := data[int(date.Month())]
	if !ok {
		return DayInfo{}, fmt.Errorf("no calendar data for year %d, month %d", year, int(date.Month()))
	}

	return classifyDay(date, month), nil
}

// PreCache re-fetches and re-extracts each given year, bypassing the
// cache check, then persists all of them in a single write. This is an
// explicit refresh/seed operation, not a cache-aware query.
func (s *Service) PreCache(years ...int) error {
	fetched := make(map[int]YearData, len(years))
	for _, year := range years {
		fetched[year] = s.buildYear(year)
	}

	return s.store.PutAll(fetched)
}

// MonthSummary classifies every day of the given month and returns the
// per-day list with totals
func (s *Service) MonthSummary(year int, month time.Month) (*MonthSummary, error) {
	summary := &MonthSummary{
		Year:  year,
		Month: month,
	}

	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		info, err := s.Classify(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		if err != nil {
			return nil, err
		}

		switch {
		case info.IsShort:
			summary.Shortened++
			summary.WorkDays++
		case info.IsHoliday:
			summary.Holidays++
		case info.IsWeekend:
			summary.Weekends++
		default:
			summary.WorkDays++
		}

		summary.Days = append(summary.Days, info)
	}

	return summary, nil
}

// buildYear fetches and extracts one year. A failed fetch degrades to an
// empty document; a short extraction keeps whatever months were found.
// Either way the result is cached, so queries against missing months of
// that year fail at lookup time for the rest of the process lifetime.
func (s *Service) buildYear(year int) YearData {
	document, err := s.fetcher.Fetch(year)
	if err != nil {
		s.logger.Warn("Failed to fetch calendar page",
			zap.Int("year", year),
			zap.Error(err))
		document = ""
	}

	months := s.extractor.Extract(document)
	if len(months) < monthsPerYear && document != "" {
		s.logger.Warn("Extracted fewer month tables than expected",
			zap.Int("year", year),
			zap.Int("months", len(months)))
	}

	data := make(YearData, len(months))
	for i, month := range months {
		data[i+1] = month
	}

	s.logger.Info("Year data built",
		zap.Int("year", year),
		zap.Int("months", len(data)))

	return data
}

func classifyDay(date time.Time, month MonthData) DayInfo {
	info := DayInfo{Date: date}

	switch {
	case containsDay(month.PreHolidays, date.Day()):
		info.IsWork = true
		info.IsShort = true
	case containsDay(month.Holidays, date.Day()):
		info.IsHoliday = true
		info.IsWeekend = true
	case containsDay(month.Weekends, date.Day()):
		info.IsWeekend = true
	default:
		info.IsWork = true
	}

	return info
}
