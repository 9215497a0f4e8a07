package synth

import "inequalitydb/model"

type educationSpans struct {
	secondary   span
	tertiary    span
	expenditure span
}

var eduSpans = map[model.IncomeGroup]educationSpans{
	model.HighIncome:        {span{95, 105}, span{60, 90}, span{4, 6}},
	model.UpperMiddleIncome: {span{75, 95}, span{30, 60}, span{3.5, 5.5}},
	model.LowerMiddleIncome: {span{50, 80}, span{15, 40}, span{3, 5}},
	model.LowIncome:         {span{30, 60}, span{5, 20}, span{2, 4}},
}

var (
	tradeBaseSpan  = span{40, 150}
	tradeNoiseSpan = span{-10, 10}
	expNoiseSpan   = span{-0.5, 0.5}
)

const (
	secondaryGainPerYear = 0.5
	tertiaryGainPerYear  = 0.3
	secondaryCap         = 105
)

// TradeEducationSeries produces a 2015-2023 series of trade openness and
// education metrics. Enrollment improves linearly over time; secondary
// enrollment is capped at 105% (gross rates can exceed 100).
func (g *Generator) TradeEducationSeries(c model.Country) []model.TradeEducationRecord {
	baseTrade := g.uniform(tradeBaseSpan)

	edu := eduSpans[c.IncomeGroup]
	baseSecondary := g.uniform(edu.secondary)
	baseTertiary := g.uniform(edu.tertiary)
	baseExpenditure := g.uniform(edu.expenditure)

	records := make([]model.TradeEducationRecord, 0, FinalYear-BaseYear+1)
	for year := BaseYear; year <= FinalYear; year++ {
		elapsed := float64(year - BaseYear)

		secondary := baseSecondary + elapsed*secondaryGainPerYear
		if secondary > secondaryCap {
			secondary = secondaryCap
		}

		records = append(records, model.TradeEducationRecord{
			CountryCode:         c.Code,
			Year:                year,
			TradePctGDP:         round2(baseTrade + g.uniform(tradeNoiseSpan)),
			SecondaryEnrollment: round2(secondary),
			TertiaryEnrollment:  round2(baseTertiary + elapsed*tertiaryGainPerYear),
			EduExpenditurePct:   round2(baseExpenditure + g.uniform(expNoiseSpan)),
		})
	}
	return records
}
