package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svenskadata/bolagskollen/internal/models"
)

func flagDescriptions(flags []models.RiskFlag) []string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.Description
	}
	return out
}

func TestClassifyHealthyCompany(t *testing.T) {
	m := &models.KeyMetrics{
		Revenue:      models.Int64Ptr(5_000_000),
		NetResult:    models.Int64Ptr(500_000),
		Equity:       models.Int64Ptr(2_000_000),
		TotalAssets:  models.Int64Ptr(4_000_000),
		Solvency:     models.Float64Ptr(50),
		ProfitMargin: models.Float64Ptr(10),
		Employees:    models.Int64Ptr(12),
	}

	flags := Classify(m, nil, nil)
	assert.Empty(t, flags)
	assert.Equal(t, models.RiskLow, Overall(flags))
	assert.Zero(t, Score(flags))
}

func TestClassifyNegativeEquity(t *testing.T) {
	m := &models.KeyMetrics{Equity: models.Int64Ptr(-100_000), Employees: models.Int64Ptr(4)}

	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, models.RiskCritical, flags[0].Level)
	assert.Equal(t, "Capital structure", flags[0].Category)
	assert.Equal(t, models.RiskCritical, Overall(flags))
}

func TestClassifyEquityBelowHalfShareCapital(t *testing.T) {
	m := &models.KeyMetrics{Equity: models.Int64Ptr(20_000), Employees: models.Int64Ptr(4)}
	bs := &models.BalanceSheet{ShareCapital: models.Int64Ptr(50_000)}

	flags := Classify(m, bs, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, "Equity below half the registered share capital", flags[0].Description)
	assert.Equal(t, models.RiskCritical, flags[0].Level)
}

func TestClassifyShareCapitalRuleSkippedWithoutBalanceSheet(t *testing.T) {
	m := &models.KeyMetrics{Equity: models.Int64Ptr(-100_000), Employees: models.Int64Ptr(4)}

	// Negative equity fires, but the share-capital rule needs the balance sheet
	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, "Negative equity", flags[0].Description)
}

func TestClassifySolvencyBands(t *testing.T) {
	tests := []struct {
		name     string
		solvency float64
		want     string
		level    models.RiskLevel
	}{
		{"negative is critical", -5, "Negative solvency", models.RiskCritical},
		{"below 20 is high", 12, "Low solvency", models.RiskHigh},
		{"exactly 20 is medium", 20, "Below-average solvency", models.RiskMedium},
		{"below 30 is medium", 29, "Below-average solvency", models.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &models.KeyMetrics{Solvency: models.Float64Ptr(tt.solvency), Employees: models.Int64Ptr(4)}
			flags := Classify(m, nil, nil)
			require.Len(t, flags, 1)
			assert.Equal(t, tt.want, flags[0].Description)
			assert.Equal(t, tt.level, flags[0].Level)
		})
	}

	m := &models.KeyMetrics{Solvency: models.Float64Ptr(30), Employees: models.Int64Ptr(4)}
	assert.Empty(t, Classify(m, nil, nil))
}

func TestClassifyLossAndMargin(t *testing.T) {
	m := &models.KeyMetrics{
		Revenue:      models.Int64Ptr(1_000_000),
		NetResult:    models.Int64Ptr(-150_000),
		ProfitMargin: models.Float64Ptr(-15),
		Employees:    models.Int64Ptr(4),
	}

	flags := Classify(m, nil, nil)
	assert.Equal(t, []string{"Loss for the year", "Heavily negative profit margin"}, flagDescriptions(flags))
}

func TestClassifyThinMargin(t *testing.T) {
	m := &models.KeyMetrics{ProfitMargin: models.Float64Ptr(1.5), Employees: models.Int64Ptr(4)}

	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, models.RiskMedium, flags[0].Level)
}

func TestClassifyLeverage(t *testing.T) {
	// (assets - equity) / equity = 3.0 exactly does not fire
	m := &models.KeyMetrics{
		Equity:      models.Int64Ptr(1_000_000),
		TotalAssets: models.Int64Ptr(4_000_000),
		Employees:   models.Int64Ptr(4),
	}
	assert.Empty(t, Classify(m, nil, nil))

	// 4.0 fires
	m.TotalAssets = models.Int64Ptr(5_000_000)
	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, "High debt-to-equity ratio", flags[0].Description)
	assert.Equal(t, "4.0x", flags[0].Value)
}

func TestClassifyLeverageSkippedOnNegativeEquity(t *testing.T) {
	m := &models.KeyMetrics{
		Equity:      models.Int64Ptr(-500_000),
		TotalAssets: models.Int64Ptr(2_000_000),
		Employees:   models.Int64Ptr(4),
	}

	flags := Classify(m, nil, nil)
	assert.Equal(t, []string{"Negative equity"}, flagDescriptions(flags))
}

func TestClassifyNoEmployees(t *testing.T) {
	m := &models.KeyMetrics{Employees: models.Int64Ptr(0)}

	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, models.RiskInfo, flags[0].Level)
	assert.Equal(t, "Workforce", flags[0].Category)
	assert.Equal(t, "0", flags[0].Value)

	// Info findings alone still report an overall level above "none found"
	assert.Equal(t, models.RiskInfo, Overall(flags))
}

func TestClassifyUntaggedEmployeesReadAsNone(t *testing.T) {
	m := &models.KeyMetrics{Revenue: models.Int64Ptr(1_000_000)}

	flags := Classify(m, nil, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, "No employees reported", flags[0].Description)
	assert.Equal(t, "not tagged", flags[0].Value)
}

func TestClassifyRuleSequence(t *testing.T) {
	// Loss always precedes the medium solvency finding
	m := &models.KeyMetrics{
		NetResult: models.Int64Ptr(-100_000),
		Solvency:  models.Float64Ptr(25),
		Employees: models.Int64Ptr(4),
	}
	assert.Equal(t, []string{"Loss for the year", "Below-average solvency"}, flagDescriptions(Classify(m, nil, nil)))

	// Leverage always precedes the thin-margin finding
	m = &models.KeyMetrics{
		Equity:       models.Int64Ptr(1_000_000),
		TotalAssets:  models.Int64Ptr(5_000_000),
		ProfitMargin: models.Float64Ptr(1.5),
		Employees:    models.Int64Ptr(4),
	}
	assert.Equal(t, []string{"High debt-to-equity ratio", "Thin profit margin"}, flagDescriptions(Classify(m, nil, nil)))
}

func TestClassifyRevenueTrend(t *testing.T) {
	overview := func(newest, oldest int64) models.Overview {
		return models.Overview{
			0: {Revenue: models.Int64Ptr(newest)},
			2: {Revenue: models.Int64Ptr(oldest)},
		}
	}

	tests := []struct {
		name   string
		newest int64
		oldest int64
		want   string
	}{
		{"minus 30 percent is high", 700_000, 1_000_000, "Sharp revenue decline"},
		{"minus 15 percent is medium", 850_000, 1_000_000, "Declining revenue"},
		{"minus 5 percent passes", 950_000, 1_000_000, ""},
		{"growth passes", 1_200_000, 1_000_000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &models.KeyMetrics{Employees: models.Int64Ptr(4)}
			flags := Classify(m, nil, overview(tt.newest, tt.oldest))
			if tt.want == "" {
				assert.Empty(t, flags)
				return
			}
			require.Len(t, flags, 1)
			assert.Equal(t, tt.want, flags[0].Description)
		})
	}
}

func TestClassifyTrendNeedsPositiveBase(t *testing.T) {
	overview := models.Overview{
		0: {Revenue: models.Int64Ptr(500_000)},
		3: {Revenue: models.Int64Ptr(0)},
	}

	assert.Empty(t, Classify(&models.KeyMetrics{Employees: models.Int64Ptr(4)}, nil, overview))
}

func TestClassifyTrendNeedsTwoPeriods(t *testing.T) {
	overview := models.Overview{
		0: {Revenue: models.Int64Ptr(500_000)},
	}

	assert.Empty(t, Classify(&models.KeyMetrics{Employees: models.Int64Ptr(4)}, nil, overview))
}

func TestScoreAndCounts(t *testing.T) {
	flags := []models.RiskFlag{
		{Level: models.RiskCritical},
		{Level: models.RiskCritical},
		{Level: models.RiskHigh},
		{Level: models.RiskMedium},
		{Level: models.RiskInfo},
	}

	assert.Equal(t, 23, Score(flags))

	critical, high := Counts(flags)
	assert.Equal(t, 2, critical)
	assert.Equal(t, 1, high)
	assert.Equal(t, models.RiskCritical, Overall(flags))
}
