package synth

import (
	"math"

	"inequalitydb/model"
)

// Base GDP per capita in current USD, keyed by income group.
var gdpBaseSpans = map[model.IncomeGroup]span{
	model.HighIncome:        {40000, 80000},
	model.UpperMiddleIncome: {8000, 20000},
	model.LowerMiddleIncome: {2000, 8000},
	model.LowIncome:         {500, 2000},
}

// Annual growth rates in percent. Poorer countries grow faster from a
// smaller base.
var gdpGrowthSpans = map[model.IncomeGroup]span{
	model.HighIncome:        {1, 3},
	model.UpperMiddleIncome: {3, 7},
	model.LowerMiddleIncome: {4, 8},
	model.LowIncome:         {3, 6},
}

// The 2020 contraction hits every income group with the same range.
var shockGrowthSpan = span{-5, -2}

// GDPSeries projects a 2015-2023 GDP-per-capita series for c. Each year's
// growth rate is sampled fresh and applied to the exponent of years elapsed
// since the base year, so the series is not path-chained.
func (g *Generator) GDPSeries(c model.Country) []model.GDPRecord {
	base := g.uniform(gdpBaseSpans[c.IncomeGroup])

	records := make([]model.GDPRecord, 0, FinalYear-BaseYear+1)
	for year := BaseYear; year <= FinalYear; year++ {
		growth := g.uniform(gdpGrowthSpans[c.IncomeGroup])
		if year == ShockYear {
			growth = g.uniform(shockGrowthSpan)
		}

		elapsed := float64(year - BaseYear)
		gdp := base * math.Pow(1+growth/100, elapsed)

		records = append(records, model.GDPRecord{
			CountryCode:  c.Code,
			Year:         year,
			GDPPerCapita: round2(gdp),
			GrowthPct:    round2(growth),
		})
	}
	return records
}
