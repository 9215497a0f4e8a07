package db

import (
	"context"
	"errors"

	"inequalitydb/model"
)

var ErrCountryNotFound = errors.New("country not found")

// Tables lists every table the loader owns, in load order.
var Tables = []string{
	"country_metadata",
	"gdp_data",
	"inequality_metrics",
	"poverty_indicators",
	"trade_education",
}

type Store interface {
	Ping(ctx context.Context) error
	TableCounts() (map[string]int64, error)
	ListCountries() ([]model.Country, error)
	ListCountriesByIncomeGroup(group model.IncomeGroup) ([]model.Country, error)
	GetCountryMapByCode() (map[string]model.Country, error)
	GetCountry(code string) (*model.Country, error)
	GetGDPSeries(code string) ([]model.GDPRecord, error)
	GetInequalitySeries(code string) ([]model.InequalityRecord, error)
	GetPovertySeries(code string) ([]model.PovertyRecord, error)
	GetTradeEducationSeries(code string) ([]model.TradeEducationRecord, error)
	RegionalGiniAverages(year int) (map[model.Region]float64, error)
	TopGDPPerCapita(year, limit int) ([]model.GDPRecord, error)
}
