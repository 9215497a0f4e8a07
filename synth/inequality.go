package synth

import "inequalitydb/model"

// Base Gini coefficient spans by region, roughly tracking observed World
// Bank distributions.
var giniSpans = map[model.Region]span{
	model.LatinAmericaCaribbean: {45, 55},
	model.SubSaharanAfrica:      {40, 65},
	model.MiddleEastNorthAfrica: {35, 42},
	model.SouthAsia:             {32, 38},
	model.EastAsiaPacific:       {30, 45},
	model.EuropeCentralAsia:     {25, 38},
	model.NorthAmerica:          {38, 42},
}

var (
	giniDriftSpan = span{-3, 3}
	lowest20Span  = span{4, 9}
	highest20Span = span{40, 55}
)

// InequalitySeries produces one record per survey year. The Gini drifts
// around a regional base and is clamped to [20,70]; income shares are
// sampled independently and the Palma ratio is derived from them.
func (g *Generator) InequalitySeries(c model.Country) []model.InequalityRecord {
	base := g.uniform(giniSpans[c.Region])

	records := make([]model.InequalityRecord, 0, len(SurveyYears))
	for _, year := range SurveyYears {
		gini := clamp(base+g.uniform(giniDriftSpan), 20, 70)

		low20 := g.uniform(lowest20Span)
		high20 := g.uniform(highest20Span)

		records = append(records, model.InequalityRecord{
			CountryCode:          c.Code,
			Year:                 year,
			Gini:                 round2(gini),
			IncomeShareLowest20:  round2(low20),
			IncomeShareHighest20: round2(high20),
			PalmaRatio:           round2(high20 / (low20 * 2)),
		})
	}
	return records
}
