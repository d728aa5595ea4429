package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name     string
		ruleType RuleType
		cadence  Cadence
		want     Kind
	}{
		{"explicit solar wins over cadence", RuleTypeSolar, CadenceMonthlyLunar, KindSolar},
		{"explicit tithi wins over cadence", RuleTypeTithi, CadenceMonthlySolar, KindTithi},
		{"yearly lunar cadence", RuleTypeNone, CadenceYearlyLunar, KindYearlyLunar},
		{"yearly solar cadence", RuleTypeNone, CadenceYearlySolar, KindYearlySolar},
		{"monthly lunar cadence", RuleTypeNone, CadenceMonthlyLunar, KindMonthlyLunar},
		{"monthly solar cadence", RuleTypeNone, CadenceMonthlySolar, KindMonthlySolar},
		{"none cadence", RuleTypeNone, CadenceNone, KindNone},
		{"unknown cadence falls back to none", RuleTypeNone, Cadence("WEEKLY"), KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveKind(tt.ruleType, tt.cadence))
		})
	}
}

func TestRecommendedWindow(t *testing.T) {
	assert.Equal(t, 3, RecommendedWindow(KindYearlyLunar).YearsAhead)
	assert.Equal(t, 3, RecommendedWindow(KindSolar).YearsAhead)
	assert.Equal(t, 3, RecommendedWindow(KindTithi).YearsAhead)
	assert.Equal(t, 1, RecommendedWindow(KindMonthlyLunar).YearsAhead)
	assert.Equal(t, 1, RecommendedWindow(KindMonthlySolar).YearsAhead)
	assert.Equal(t, 0, RecommendedWindow(KindNone).YearsAhead)
	assert.NotEmpty(t, RecommendedWindow(KindNone).Description)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Solar", KindSolar.String())
	assert.Equal(t, "Tithi", KindTithi.String())
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "MonthlyLunar", KindMonthlyLunar.String())
}
