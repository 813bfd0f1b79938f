package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := cfg.Calendar.GetBaseURL(); got != "https://www.consultant.ru/law/ref/calendar/proizvodstvennye/" {
		t.Errorf("GetBaseURL() = %q, unexpected default", got)
	}
	if got := cfg.Calendar.GetCacheFile(); got != "production_calendar_cache.json" {
		t.Errorf("GetCacheFile() = %q, unexpected default", got)
	}
	if got := cfg.Calendar.GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("GetHTTPTimeout() = %v, want 10s", got)
	}
	if cfg.Calendar.InsecureSkipVerify {
		t.Error("InsecureSkipVerify defaults to true, want false")
	}
}

func TestLoad_ExplicitValues(t *testing.T) {
	content := `
calendar:
  base_url: https://example.com/calendar/
  cache_file: /tmp/cal-cache.json
  http_timeout: 30s
  insecure_skip_verify: true
log:
  level: debug
  file: /tmp/cal.log
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Calendar.GetBaseURL() != "https://example.com/calendar/" {
		t.Errorf("GetBaseURL() = %q", cfg.Calendar.GetBaseURL())
	}
	if cfg.Calendar.GetHTTPTimeout() != 30*time.Second {
		t.Errorf("GetHTTPTimeout() = %v, want 30s", cfg.Calendar.GetHTTPTimeout())
	}
	if !cfg.Calendar.InsecureSkipVerify {
		t.Error("InsecureSkipVerify = false, want true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/cal.log" {
		t.Errorf("Log config = %+v", cfg.Log)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit config returned no error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name: "valid base url and timeout",
			cfg: Config{Calendar: CalendarConfig{
				BaseURL:     "https://example.com/",
				HTTPTimeout: "15s",
			}},
		},
		{
			name:    "scheme-less base url",
			cfg:     Config{Calendar: CalendarConfig{BaseURL: "example.com/calendar"}},
			wantErr: true,
		},
		{
			name:    "unparsable timeout",
			cfg:     Config{Calendar: CalendarConfig{HTTPTimeout: "soon"}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Calendar: CalendarConfig{HTTPTimeout: "-5s"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
