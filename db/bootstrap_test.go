package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestBootstrapSQLiteRowCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inequality.db")

	dbConn, err := BootstrapSQLite(path, Options{Seed: 42})
	require.NoError(t, err)
	defer closeDB(t, dbConn)

	counts, err := NewSQLStore(dbConn).TableCounts()
	require.NoError(t, err)

	// 48 countries; 9 GDP and trade years; 5 survey years; 22 countries
	// below the high-income tier.
	assert.Equal(t, int64(48), counts["country_metadata"])
	assert.Equal(t, int64(48*9), counts["gdp_data"])
	assert.Equal(t, int64(48*5), counts["inequality_metrics"])
	assert.Equal(t, int64(22*5), counts["poverty_indicators"])
	assert.Equal(t, int64(48*9), counts["trade_education"])
}

func TestBootstrapSQLiteReplacesOnRerun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inequality.db")

	first, err := BootstrapSQLite(path, Options{Seed: 1})
	require.NoError(t, err)
	firstCounts, err := NewSQLStore(first).TableCounts()
	require.NoError(t, err)
	closeDB(t, first)

	second, err := BootstrapSQLite(path, Options{Seed: 2})
	require.NoError(t, err)
	defer closeDB(t, second)

	secondCounts, err := NewSQLStore(second).TableCounts()
	require.NoError(t, err)
	assert.Equal(t, firstCounts, secondCounts)
}

func TestBootstrapSQLiteDeterministicWithSeed(t *testing.T) {
	dir := t.TempDir()

	read := func(path string) []float64 {
		dbConn, err := BootstrapSQLite(path, Options{Seed: 99})
		require.NoError(t, err)
		defer closeDB(t, dbConn)

		series, err := NewSQLStore(dbConn).GetGDPSeries("KEN")
		require.NoError(t, err)
		values := make([]float64, len(series))
		for i, rec := range series {
			values[i] = rec.GDPPerCapita
		}
		return values
	}

	a := read(filepath.Join(dir, "a.db"))
	b := read(filepath.Join(dir, "b.db"))
	assert.Equal(t, a, b)
}

func TestBootstrapSQLiteCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "countries.yaml")
	catalog := `countries:
  - {code: NOR, name: Norway, region: Europe & Central Asia, income_group: High income}
  - {code: TZA, name: Tanzania, region: Sub-Saharan Africa, income_group: Lower middle income}
  - {code: RWA, name: Rwanda, region: Sub-Saharan Africa, income_group: Low income}
`
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalog), 0o644))

	dbConn, err := BootstrapSQLite(filepath.Join(dir, "small.db"), Options{
		Seed:        7,
		CatalogPath: catalogPath,
	})
	require.NoError(t, err)
	defer closeDB(t, dbConn)

	counts, err := NewSQLStore(dbConn).TableCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["country_metadata"])
	assert.Equal(t, int64(3*9), counts["gdp_data"])
	assert.Equal(t, int64(3*5), counts["inequality_metrics"])
	assert.Equal(t, int64(2*5), counts["poverty_indicators"])
	assert.Equal(t, int64(3*9), counts["trade_education"])
}

func TestBootstrapSQLiteExternalSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.sql")
	ddl := `
CREATE TABLE IF NOT EXISTS country_metadata (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    region TEXT,
    income_group TEXT,
    population2023 INTEGER
);
CREATE TABLE IF NOT EXISTS gdp_data (
    country_code TEXT,
    year INTEGER,
    gdp_per_capita_current_usd REAL,
    gdp_total_current_usd REAL,
    gdp_growth_annual_pct REAL,
    PRIMARY KEY (country_code, year)
);
CREATE TABLE IF NOT EXISTS inequality_metrics (
    country_code TEXT,
    year INTEGER,
    gini_coefficient REAL,
    income_share_lowest_20pct REAL,
    income_share_highest_20pct REAL,
    palma_ratio REAL,
    PRIMARY KEY (country_code, year)
);
CREATE TABLE IF NOT EXISTS poverty_indicators (
    country_code TEXT,
    year INTEGER,
    poverty_headcount_215_pct REAL,
    poverty_headcount_365_pct REAL,
    poverty_headcount_685_pct REAL,
    poverty_gap REAL,
    PRIMARY KEY (country_code, year)
);
CREATE TABLE IF NOT EXISTS trade_education (
    country_code TEXT,
    year INTEGER,
    trade_pct_gdp REAL,
    secondary_enrollment_rate REAL,
    tertiary_enrollment_rate REAL,
    government_expenditure_education_pct REAL,
    PRIMARY KEY (country_code, year)
);
`
	require.NoError(t, os.WriteFile(schemaPath, []byte(ddl), 0o644))

	dbConn, err := BootstrapSQLite(filepath.Join(dir, "schema.db"), Options{
		Seed:       21,
		SchemaPath: schemaPath,
	})
	require.NoError(t, err)
	defer closeDB(t, dbConn)

	// All five loaders must succeed against the hand-written DDL, proving
	// its column names line up with the gorm models.
	counts, err := NewSQLStore(dbConn).TableCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(48), counts["country_metadata"])
	assert.Equal(t, int64(48*9), counts["gdp_data"])
	assert.Equal(t, int64(48*5), counts["inequality_metrics"])
	assert.Equal(t, int64(22*5), counts["poverty_indicators"])
	assert.Equal(t, int64(48*9), counts["trade_education"])
}

func TestBootstrapSQLiteMissingSchemaFile(t *testing.T) {
	dir := t.TempDir()
	_, err := BootstrapSQLite(filepath.Join(dir, "x.db"), Options{
		SchemaPath: filepath.Join(dir, "missing.sql"),
	})
	assert.ErrorContains(t, err, "applying schema")
}

func TestBootstrapSQLiteMissingCatalogFile(t *testing.T) {
	dir := t.TempDir()
	_, err := BootstrapSQLite(filepath.Join(dir, "x.db"), Options{
		CatalogPath: filepath.Join(dir, "missing.yaml"),
	})
	assert.Error(t, err)
}
