package synth

import "inequalitydb/model"

// Base headcount rates at the $2.15, $3.65 and $6.85 daily poverty lines,
// keyed by income group. High-income countries carry no poverty rows.
var povertySpans = map[model.IncomeGroup][3]span{
	model.LowIncome:         {{40, 70}, {60, 85}, {75, 95}},
	model.LowerMiddleIncome: {{10, 40}, {25, 60}, {50, 80}},
	model.UpperMiddleIncome: {{1, 15}, {5, 30}, {15, 50}},
}

// povertyDecay scales the base rates down linearly: a 15% total reduction
// spread over the 8 years between the base and final survey year.
func povertyDecay(year int) float64 {
	return 1 - 0.15*float64(year-BaseYear)/8
}

// PovertySeries returns one record per survey year, or nil for high-income
// countries. All three rates share the same decay factor, so each rate
// strictly decreases across years.
func (g *Generator) PovertySeries(c model.Country) []model.PovertyRecord {
	if !c.IncomeGroup.HasPovertySurveys() {
		return nil
	}

	spans := povertySpans[c.IncomeGroup]
	base215 := g.uniform(spans[0])
	base365 := g.uniform(spans[1])
	base685 := g.uniform(spans[2])

	records := make([]model.PovertyRecord, 0, len(SurveyYears))
	for _, year := range SurveyYears {
		decay := povertyDecay(year)
		records = append(records, model.PovertyRecord{
			CountryCode:  c.Code,
			Year:         year,
			Headcount215: round2(base215 * decay),
			Headcount365: round2(base365 * decay),
			Headcount685: round2(base685 * decay),
		})
	}
	return records
}
