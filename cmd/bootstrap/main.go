package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"inequalitydb/db"
)

const (
	dbPathEnvVar      = "INEQ_DB_PATH"
	seedEnvVar        = "INEQ_SEED"
	catalogEnvVar     = "INEQ_CATALOG"
	defaultDBPath     = "global_inequality.db"
	defaultMaxBackups = 5
	backupFileExt     = ".bak"
)

func main() {
	var dbPath string
	var seed int64
	var catalogPath string
	var schemaPath string
	var doBackup bool
	var maxBackups int

	rootCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the inequality demo database and fill it with generated statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment overrides for containerized runs.
			if v := viper.GetString(dbPathEnvVar); v != "" && !cmd.Flags().Changed("db") {
				dbPath = v
			}
			if v := viper.GetInt64(seedEnvVar); v != 0 && !cmd.Flags().Changed("seed") {
				seed = v
			}
			if v := viper.GetString(catalogEnvVar); v != "" && !cmd.Flags().Changed("catalog") {
				catalogPath = v
			}

			if doBackup {
				if info, err := os.Stat(dbPath); err == nil {
					log.Printf("existing database file size: %d bytes", info.Size())
					backupPath := fmt.Sprintf("%s.%s%s", dbPath, time.Now().Format("20060102-150405"), backupFileExt)
					if err := copyFile(dbPath, backupPath); err != nil {
						return fmt.Errorf("failed to create DB backup: %w", err)
					}
					log.Printf("existing database backed up to %s", backupPath)
					pruneOldBackups(dbPath, maxBackups)
				}
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			lg := logger.Sugar()

			dbConn, err := db.BootstrapSQLite(dbPath, db.Options{
				Seed:        seed,
				CatalogPath: catalogPath,
				SchemaPath:  schemaPath,
				Logger:      lg,
			})
			if err != nil {
				return fmt.Errorf("bootstrap failed: %w", err)
			}
			defer func() {
				if sqlDB, err := dbConn.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()

			store := db.NewSQLStore(dbConn)
			counts, err := store.TableCounts()
			if err != nil {
				return fmt.Errorf("failed to summarize tables: %w", err)
			}
			for _, table := range db.Tables {
				lg.Infof("%-25s: %d rows", table, counts[table])
			}
			lg.Infof("database ready at %s", dbPath)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Path to SQLite database file")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for data generation (0 uses the wall clock)")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a YAML country catalog (default uses the built-in set)")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a DDL script applied instead of auto-migration")
	rootCmd.Flags().BoolVar(&doBackup, "backup", true, "Whether to create a backup of the database if it exists")
	rootCmd.Flags().IntVar(&maxBackups, "max-backups", defaultMaxBackups, "Maximum number of backups to retain")

	viper.AutomaticEnv() // binds environment variables to viper config

	if err := rootCmd.Execute(); err != nil {
		log.Printf("command failed: %v", err)
		os.Exit(1)
	}
}

func copyFile(src, dst string) error {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func(source *os.File) {
		err := source.Close()
		if err != nil {
			log.Printf("warning: failed to close file %s: %v", src, err)
		}
	}(source)

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func(destination *os.File) {
		err := destination.Close()
		if err != nil {
			log.Printf("warning: failed to close file %s: %v", dst, err)
		}
	}(destination)

	_, err = destination.ReadFrom(source)
	return err
}

func pruneOldBackups(dbPath string, max int) {
	dir := filepath.Dir(dbPath)
	base := filepath.Base(dbPath)
	prefix := base + "."
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("warning: failed to read backup directory: %v", err)
		return
	}

	var backups []string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), prefix) && strings.HasSuffix(f.Name(), backupFileExt) {
			backups = append(backups, filepath.Join(dir, f.Name()))
		}
	}

	if len(backups) <= max {
		return
	}

	sort.Strings(backups)
	toRemove := backups[:len(backups)-max]
	for _, file := range toRemove {
		err := os.Remove(file)
		if err != nil {
			log.Printf("warning: failed to remove old backup %s: %v", file, err)
		} else {
			log.Printf("removed old backup: %s", file)
		}
	}
}
