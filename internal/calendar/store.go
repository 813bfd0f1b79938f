package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Store is the two-tier year cache: an in-memory map owned by this
// instance and a single JSON file shared across process instances.
//
// The file is written with read-merge-write semantics: every persist
// loads the full stored mapping, overlays the entire in-memory tier and
// rewrites the file in full. There is no cross-process locking, so two
// processes persisting in the same window race with last-writer-wins per
// year. Single-writer-at-a-time is the intended usage.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
	years  map[int]YearData
}

// NewStore creates a new Store backed by the given cache file path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
		years:  make(map[int]YearData),
	}
}

// Get returns the cached data for a year. The in-memory tier is checked
// first; on a file-tier hit the year is promoted into memory for the
// rest of the process lifetime. A missing or empty cache file means
// absent, a malformed one is a fatal error.
func (s *Store) Get(year int) (YearData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.years[year]; ok {
		s.logger.Debug("Using cached year data", zap.Int("year", year))
		return data, true, nil
	}

	stored, err := s.readFile()
	if err != nil {
		return nil, false, err
	}

	data, ok := stored[year]
	if !ok {
		return nil, false, nil
	}

	s.years[year] = data
	s.logger.Debug("Year data promoted from cache file",
		zap.Int("year", year),
		zap.String("file", s.path))

	return data, true, nil
}

// Put stores one year in memory and persists the whole in-memory tier
func (s *Store) Put(year int, data YearData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.years[year] = data
	return s.persist()
}

// PutAll stores several years in memory, then performs a single merged
// write covering them plus anything already held in memory
func (s *Store) PutAll(years map[int]YearData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for year, data := range years {
		s.years[year] = data
	}
	return s.persist()
}

// persist merges the in-memory tier over the stored mapping and rewrites
// the cache file in full. Callers must hold s.mu.
func (s *Store) persist() error {
	stored, err := s.readFile()
	if err != nil {
		return err
	}

	for year, data := range s.years {
		stored[year] = data
	}

	// Integer map keys marshal as sorted decimal strings, which keeps
	// the file deterministic across writes.
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	s.logger.Info("Cache file written",
		zap.String("file", s.path),
		zap.Int("years", len(stored)))

	return nil
}

// readFile loads the persisted mapping. An absent or empty file is an
// empty mapping; malformed content is a fatal parse error.
func (s *Store) readFile() (map[int]YearData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[int]YearData), nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(raw) == 0 {
		return make(map[int]YearData), nil
	}

	var stored map[int]YearData
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", s.path, err)
	}

	return stored, nil
}
