package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Band1kut/production-calendar/internal/calendar"
	"github.com/Band1kut/production-calendar/internal/config"
	"github.com/Band1kut/production-calendar/pkg/dateutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "production-calendar",
		Short: "Production calendar day classifier",
		Long:  "Answers whether a date is a workday, shortened workday, weekend or holiday, with a local cache over the consultant.ru production calendar",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(precacheCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [date]",
		Short: "Classify a single date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.Today()
			if len(args) == 1 {
				var err error
				date, err = dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
			}

			svc, err := buildService()
			if err != nil {
				return err
			}

			info, err := svc.Classify(date)
			if err != nil {
				return fmt.Errorf("failed to classify date: %w", err)
			}

			if asJSON {
				raw, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Println(string(raw))
				return nil
			}

			fmt.Printf("%s: %s\n", date.Format("2006-01-02"), dayStatusLabel(info))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print result as JSON")

	return cmd
}

func buildService() (*calendar.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fetcher := calendar.NewPageFetcher(
		cfg.Calendar.GetBaseURL(),
		cfg.Calendar.GetHTTPTimeout(),
		cfg.Calendar.InsecureSkipVerify,
		logger,
	)
	store := calendar.NewStore(cfg.Calendar.GetCacheFile(), logger)

	return calendar.NewService(fetcher, calendar.NewTableExtractor(), store, logger), nil
}

func dayStatusLabel(info calendar.DayInfo) string {
	switch {
	case info.IsShort:
		return "shortened workday"
	case info.IsHoliday:
		return "holiday"
	case info.IsWeekend:
		return "weekend"
	default:
		return "workday"
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
