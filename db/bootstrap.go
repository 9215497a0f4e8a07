package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inequalitydb/model"
	"inequalitydb/synth"
)

const insertBatchSize = 200

// Options configures a bootstrap run.
type Options struct {
	// Seed drives every generator; zero falls back to the wall clock and
	// makes the output non-reproducible.
	Seed int64
	// CatalogPath overrides the embedded country catalog when set.
	CatalogPath string
	// SchemaPath points at an external DDL script applied instead of
	// auto-migration when set.
	SchemaPath string
	// SchemaOnly creates the tables but loads no data.
	SchemaOnly bool
	Logger     *zap.SugaredLogger
}

// BootstrapSQLite opens (or creates) the SQLite database at dbPath, ensures
// the schema, and fills all five tables with freshly generated data. Each
// table is replaced wholesale, so repeated runs keep row counts stable.
func BootstrapSQLite(dbPath string, opts Options) (*gorm.DB, error) {
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,   // Slow SQL threshold
			LogLevel:                  logger.Silent, // Log level
			IgnoreRecordNotFoundError: true,          // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,          // Don't include params in the SQL log
			Colorful:                  false,         // Disable color
		},
	)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err := initialize(db, opts, lg); err != nil {
		// Release the connection before reporting; a failed run must not
		// leak the handle.
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	lg.Infof("bootstrap: completed and loaded generated data into %s", dbPath)
	return db, nil
}

func initialize(db *gorm.DB, opts Options, lg *zap.SugaredLogger) error {
	if opts.SchemaPath != "" {
		if err := applySchema(db, opts.SchemaPath); err != nil {
			return fmt.Errorf("applying schema %s: %w", opts.SchemaPath, err)
		}
		lg.Infof("bootstrap: schema applied from %s", opts.SchemaPath)
	} else if err := db.AutoMigrate(
		&model.Country{},
		&model.GDPRecord{},
		&model.InequalityRecord{},
		&model.PovertyRecord{},
		&model.TradeEducationRecord{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	if opts.SchemaOnly {
		lg.Infof("bootstrap: database schema created but no data loaded")
		return nil
	}

	countries, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	gen := synth.New(opts.Seed)

	if err := loadCountryMetadata(db, countries, lg); err != nil {
		return fmt.Errorf("bootstrap: failed to load country metadata: %w", err)
	}
	if err := loadGDPData(db, gen, countries, lg); err != nil {
		return fmt.Errorf("bootstrap: failed to load GDP data: %w", err)
	}
	if err := loadInequalityData(db, gen, countries, lg); err != nil {
		return fmt.Errorf("bootstrap: failed to load inequality data: %w", err)
	}
	if err := loadPovertyData(db, gen, countries, lg); err != nil {
		return fmt.Errorf("bootstrap: failed to load poverty data: %w", err)
	}
	if err := loadTradeEducation(db, gen, countries, lg); err != nil {
		return fmt.Errorf("bootstrap: failed to load trade/education data: %w", err)
	}

	return nil
}

func loadCatalog(path string) ([]model.Country, error) {
	if path != "" {
		return synth.LoadCatalog(path)
	}
	return synth.DefaultCatalog()
}

// applySchema executes an external DDL script against the database.
func applySchema(db *gorm.DB, path string) error {
	ddl, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}
	if err := db.Exec(string(ddl)).Error; err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// replaceAll deletes every row of dst's table and inserts rows in batches,
// all inside tx.
func replaceAll[T any](tx *gorm.DB, dst *T, rows []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(dst).Error; err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("inserting %d rows: %w", len(rows), err)
	}
	return nil
}

func loadCountryMetadata(db *gorm.DB, countries []model.Country, lg *zap.SugaredLogger) error {
	if err := db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &model.Country{}, countries)
	}); err != nil {
		return err
	}
	lg.Infof("loaded %d countries", len(countries))
	return nil
}

func loadGDPData(db *gorm.DB, gen *synth.Generator, countries []model.Country, lg *zap.SugaredLogger) error {
	var records []model.GDPRecord
	for _, c := range countries {
		records = append(records, gen.GDPSeries(c)...)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &model.GDPRecord{}, records)
	}); err != nil {
		return err
	}
	lg.Infof("loaded %d GDP records", len(records))
	return nil
}

func loadInequalityData(db *gorm.DB, gen *synth.Generator, countries []model.Country, lg *zap.SugaredLogger) error {
	var records []model.InequalityRecord
	for _, c := range countries {
		records = append(records, gen.InequalitySeries(c)...)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &model.InequalityRecord{}, records)
	}); err != nil {
		return err
	}
	lg.Infof("loaded %d inequality records", len(records))
	return nil
}

func loadPovertyData(db *gorm.DB, gen *synth.Generator, countries []model.Country, lg *zap.SugaredLogger) error {
	var records []model.PovertyRecord
	for _, c := range countries {
		// PovertySeries returns nil for high-income countries.
		records = append(records, gen.PovertySeries(c)...)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &model.PovertyRecord{}, records)
	}); err != nil {
		return err
	}
	lg.Infof("loaded %d poverty records", len(records))
	return nil
}

func loadTradeEducation(db *gorm.DB, gen *synth.Generator, countries []model.Country, lg *zap.SugaredLogger) error {
	var records []model.TradeEducationRecord
	for _, c := range countries {
		records = append(records, gen.TradeEducationSeries(c)...)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &model.TradeEducationRecord{}, records)
	}); err != nil {
		return err
	}
	lg.Infof("loaded %d trade/education records", len(records))
	return nil
}
