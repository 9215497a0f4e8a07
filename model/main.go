package model

import (
	"database/sql/driver"
	"fmt"
)

type Region string

const (
	NorthAmerica          Region = "North America"
	EuropeCentralAsia     Region = "Europe & Central Asia"
	EastAsiaPacific       Region = "East Asia & Pacific"
	SouthAsia             Region = "South Asia"
	LatinAmericaCaribbean Region = "Latin America & Caribbean"
	MiddleEastNorthAfrica Region = "Middle East & North Africa"
	SubSaharanAfrica      Region = "Sub-Saharan Africa"
)

// IsValid returns true if Region is a known World Bank region
func (r Region) IsValid() bool {
	switch r {
	case NorthAmerica, EuropeCentralAsia, EastAsiaPacific, SouthAsia,
		LatinAmericaCaribbean, MiddleEastNorthAfrica, SubSaharanAfrica:
		return true
	}
	return false
}

func (r *Region) Scan(value interface{ any }) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into Region", value)
	}
	*r = Region(v)
	return nil
}

func (r Region) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid Region %q", r)
	}
	return string(r), nil
}

type IncomeGroup string

const (
	LowIncome         IncomeGroup = "Low income"
	LowerMiddleIncome IncomeGroup = "Lower middle income"
	UpperMiddleIncome IncomeGroup = "Upper middle income"
	HighIncome        IncomeGroup = "High income"
)

func (g IncomeGroup) IsValid() bool {
	switch g {
	case LowIncome, LowerMiddleIncome, UpperMiddleIncome, HighIncome:
		return true
	}
	return false
}

// HasPovertySurveys reports whether countries in this tier carry poverty
// headcount data. High-income countries are excluded from the poverty table.
func (g IncomeGroup) HasPovertySurveys() bool {
	switch g {
	case LowIncome, LowerMiddleIncome, UpperMiddleIncome:
		return true
	}
	return false
}

func (g *IncomeGroup) Scan(value interface{ any }) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into IncomeGroup", value)
	}
	*g = IncomeGroup(v)
	return nil
}

func (g IncomeGroup) Value() (driver.Value, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("invalid IncomeGroup %q", g)
	}
	return string(g), nil
}

// A Country is one row of the static reference catalog that drives every
// generator. The catalog is loaded once and never updated afterwards.
type Country struct {
	Code           string      `gorm:"primaryKey;size:3;check:code <> ''" yaml:"code"`
	Name           string      `gorm:"not null" yaml:"name"`
	Region         Region      `gorm:"type:text;index" yaml:"region"`
	IncomeGroup    IncomeGroup `gorm:"type:text;index" yaml:"income_group"`
	Population2023 *int64      `yaml:"-"`
}

func (Country) TableName() string { return "country_metadata" }

// GDPRecord is one (country, year) observation in the GDP series.
type GDPRecord struct {
	CountryCode  string  `gorm:"primaryKey;size:3"`
	Year         int     `gorm:"primaryKey;autoIncrement:false"`
	GDPPerCapita float64 `gorm:"column:gdp_per_capita_current_usd"`
	// GDPTotal mirrors the schema column; the generator leaves it unset.
	GDPTotal  *float64 `gorm:"column:gdp_total_current_usd"`
	GrowthPct float64  `gorm:"column:gdp_growth_annual_pct"`
}

func (GDPRecord) TableName() string { return "gdp_data" }

// InequalityRecord holds Gini and income-share metrics for a survey year.
type InequalityRecord struct {
	CountryCode          string  `gorm:"primaryKey;size:3"`
	Year                 int     `gorm:"primaryKey;autoIncrement:false"`
	Gini                 float64 `gorm:"column:gini_coefficient"`
	IncomeShareLowest20  float64 `gorm:"column:income_share_lowest_20pct"`
	IncomeShareHighest20 float64 `gorm:"column:income_share_highest_20pct"`
	PalmaRatio           float64 `gorm:"column:palma_ratio"`
}

func (InequalityRecord) TableName() string { return "inequality_metrics" }

// PovertyRecord holds headcount rates at the three World Bank poverty lines
// ($2.15, $3.65, $6.85 per day). Only non-high-income countries have rows.
type PovertyRecord struct {
	CountryCode  string   `gorm:"primaryKey;size:3"`
	Year         int      `gorm:"primaryKey;autoIncrement:false"`
	Headcount215 float64  `gorm:"column:poverty_headcount_215_pct"`
	Headcount365 float64  `gorm:"column:poverty_headcount_365_pct"`
	Headcount685 float64  `gorm:"column:poverty_headcount_685_pct"`
	PovertyGap   *float64 `gorm:"column:poverty_gap"`
}

func (PovertyRecord) TableName() string { return "poverty_indicators" }

// TradeEducationRecord combines trade openness with enrollment and
// public education spending for one (country, year).
type TradeEducationRecord struct {
	CountryCode         string  `gorm:"primaryKey;size:3"`
	Year                int     `gorm:"primaryKey;autoIncrement:false"`
	TradePctGDP         float64 `gorm:"column:trade_pct_gdp"`
	SecondaryEnrollment float64 `gorm:"column:secondary_enrollment_rate"`
	TertiaryEnrollment  float64 `gorm:"column:tertiary_enrollment_rate"`
	EduExpenditurePct   float64 `gorm:"column:government_expenditure_education_pct"`
}

func (TradeEducationRecord) TableName() string { return "trade_education" }
