package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func monthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Print per-day classification and totals for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year <= 0 {
				return fmt.Errorf("invalid year: %s", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month: %s", args[1])
			}

			svc, err := buildService()
			if err != nil {
				return err
			}

			summary, err := svc.MonthSummary(year, time.Month(month))
			if err != nil {
				return fmt.Errorf("failed to build month summary: %w", err)
			}

			fmt.Printf("%s %d\n", summary.Month, summary.Year)
			fmt.Println("═══════════════════════════════")
			for _, day := range summary.Days {
				fmt.Printf("  %s  %s\n", day.Date.Format("2006-01-02 Mon"), dayStatusLabel(day))
			}
			fmt.Println()
			fmt.Printf("  Workdays:  %d (%d shortened)\n", summary.WorkDays, summary.Shortened)
			fmt.Printf("  Weekends:  %d\n", summary.Weekends)
			fmt.Printf("  Holidays:  %d\n", summary.Holidays)

			return nil
		},
	}

	return cmd
}

func precacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precache <year>...",
		Short: "Fetch and persist calendar data for the given years",
		Long:  "Unconditionally re-fetches each given year, bypassing the cache, and persists all of them in one write",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := make([]int, 0, len(args))
			for _, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil || year <= 0 {
					return fmt.Errorf("invalid year: %s", arg)
				}
				years = append(years, year)
			}

			svc, err := buildService()
			if err != nil {
				return err
			}

			logger.Info("Pre-caching years", zap.Ints("years", years))

			if err := svc.PreCache(years...); err != nil {
				return fmt.Errorf("pre-cache failed: %w", err)
			}

			fmt.Printf("Cached %d year(s)\n", len(years))
			return nil
		},
	}

	return cmd
}
