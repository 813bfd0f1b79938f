package calendar

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL     = "https://www.consultant.ru/law/ref/calendar/proizvodstvennye/"
	defaultHTTPTimeout = 10 * time.Second
)

// PageFetcher implements Fetcher by downloading the consultant.ru
// production calendar page for a year
type PageFetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPageFetcher creates a new PageFetcher instance.
// insecureSkipVerify disables TLS certificate and hostname verification;
// it is an explicit opt-in and logs a warning when enabled.
func NewPageFetcher(baseURL string, timeout time.Duration, insecureSkipVerify bool, logger *zap.Logger) *PageFetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	if insecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		logger.Warn("TLS certificate verification is disabled for calendar fetches")
	}

	return &PageFetcher{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger,
	}
}

// Fetch downloads the raw calendar page for the given year.
// No retries are performed; any transport or protocol error is returned
// to the caller, which decides how to degrade.
func (pf *PageFetcher) Fetch(year int) (string, error) {
	if year <= 0 {
		return "", fmt.Errorf("year must be positive, got %d", year)
	}

	url := fmt.Sprintf("%s%d/", pf.baseURL, year)

	pf.logger.Debug("Fetching calendar page",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := pf.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch calendar page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("calendar source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read calendar page: %w", err)
	}

	pf.logger.Info("Calendar page fetched",
		zap.Int("year", year),
		zap.Int("bytes", len(body)))

	return string(body), nil
}
