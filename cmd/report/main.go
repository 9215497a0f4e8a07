package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inequalitydb/db"
	"inequalitydb/model"
)

const defaultDBPath = "global_inequality.db"

func main() {
	var dbPath string
	var year int

	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Print row counts and sample aggregates from the inequality database",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConn, err := openDB(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open DB: %w", err)
			}
			defer func() {
				if sqlDB, err := dbConn.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()
			return report(cmd.Context(), db.NewSQLStore(dbConn), year)
		},
	}

	rootCmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Path to SQLite database file")
	rootCmd.Flags().IntVar(&year, "year", 2023, "Year to report aggregates for")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("command failed: %v", err)
		os.Exit(1)
	}
}

func openDB(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func report(ctx context.Context, store db.Store, year int) error {
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	counts, err := store.TableCounts()
	if err != nil {
		return err
	}
	fmt.Println("table row counts:")
	for _, table := range db.Tables {
		fmt.Printf("  %-25s %d\n", table, counts[table])
	}

	averages, err := store.RegionalGiniAverages(year)
	if err != nil {
		return err
	}
	regions := make([]model.Region, 0, len(averages))
	for r := range averages {
		regions = append(regions, r)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	fmt.Printf("\naverage Gini by region, %d:\n", year)
	for _, r := range regions {
		fmt.Printf("  %-28s %.2f\n", r, averages[r])
	}

	top, err := store.TopGDPPerCapita(year, 10)
	if err != nil {
		return err
	}
	fmt.Printf("\ntop GDP per capita, %d:\n", year)
	for i, rec := range top {
		fmt.Printf("  %2d. %s  %.2f USD\n", i+1, rec.CountryCode, rec.GDPPerCapita)
	}
	return nil
}
