package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inequalitydb/model"
)

type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Ping verifies the underlying database connection is healthy.
func (s *SQLStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sql store is not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// TableCounts returns the row count of every loader-owned table.
func (s *SQLStore) TableCounts() (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var n int64
		if err := s.db.Table(table).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("counting rows of %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func (s *SQLStore) ListCountries() ([]model.Country, error) {
	var countries []model.Country
	err := s.db.Order("code").Find(&countries).Error
	return countries, err
}

func (s *SQLStore) ListCountriesByIncomeGroup(group model.IncomeGroup) ([]model.Country, error) {
	var countries []model.Country
	err := s.db.
		Where("income_group = ?", string(group)).
		Order("code").
		Find(&countries).Error
	return countries, err
}

// GetCountryMapByCode returns the catalog keyed by country code
func (s *SQLStore) GetCountryMapByCode() (map[string]model.Country, error) {
	var countries []model.Country
	if err := s.db.Find(&countries).Error; err != nil {
		return nil, err
	}
	m := make(map[string]model.Country, len(countries))
	for _, c := range countries {
		m[c.Code] = c
	}
	return m, nil
}

func (s *SQLStore) GetCountry(code string) (*model.Country, error) {
	var c model.Country
	err := s.db.Where("code = ?", code).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) GetGDPSeries(code string) ([]model.GDPRecord, error) {
	if _, err := s.GetCountry(code); err != nil {
		return nil, err
	}
	var records []model.GDPRecord
	err := s.db.
		Where("country_code = ?", code).
		Order("year").
		Find(&records).Error
	return records, err
}

func (s *SQLStore) GetInequalitySeries(code string) ([]model.InequalityRecord, error) {
	if _, err := s.GetCountry(code); err != nil {
		return nil, err
	}
	var records []model.InequalityRecord
	err := s.db.
		Where("country_code = ?", code).
		Order("year").
		Find(&records).Error
	return records, err
}

func (s *SQLStore) GetPovertySeries(code string) ([]model.PovertyRecord, error) {
	if _, err := s.GetCountry(code); err != nil {
		return nil, err
	}
	var records []model.PovertyRecord
	err := s.db.
		Where("country_code = ?", code).
		Order("year").
		Find(&records).Error
	return records, err
}

func (s *SQLStore) GetTradeEducationSeries(code string) ([]model.TradeEducationRecord, error) {
	if _, err := s.GetCountry(code); err != nil {
		return nil, err
	}
	var records []model.TradeEducationRecord
	err := s.db.
		Where("country_code = ?", code).
		Order("year").
		Find(&records).Error
	return records, err
}

// RegionalGiniAverages returns the mean Gini coefficient per region for the
// given survey year.
func (s *SQLStore) RegionalGiniAverages(year int) (map[model.Region]float64, error) {
	var rows []struct {
		Region  model.Region
		AvgGini float64
	}
	err := s.db.
		Table("inequality_metrics").
		Select("country_metadata.region AS region, AVG(inequality_metrics.gini_coefficient) AS avg_gini").
		Joins("JOIN country_metadata ON country_metadata.code = inequality_metrics.country_code").
		Where("inequality_metrics.year = ?", year).
		Group("country_metadata.region").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying regional gini averages for %d: %w", year, err)
	}

	result := make(map[model.Region]float64, len(rows))
	for _, row := range rows {
		result[row.Region] = row.AvgGini
	}
	return result, nil
}

// TopGDPPerCapita returns the limit highest GDP-per-capita records for year,
// richest first.
func (s *SQLStore) TopGDPPerCapita(year, limit int) ([]model.GDPRecord, error) {
	var records []model.GDPRecord
	err := s.db.
		Where("year = ?", year).
		Order("gdp_per_capita_current_usd DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("querying top GDP per capita for %d: %w", year, err)
	}
	return records, nil
}
