package report

import (
	"math"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// CalculateRatios derives profit margin and return on equity from extracted
// metrics. A ratio is only produced when its inputs are present and its
// denominator is usable: zero revenue and non-positive equity both leave the
// ratio nil rather than producing a misleading number.
func CalculateRatios(m *models.KeyMetrics) {
	if m.NetResult != nil && m.Revenue != nil && *m.Revenue != 0 {
		m.ProfitMargin = models.Float64Ptr(round2(float64(*m.NetResult) / float64(*m.Revenue) * 100))
	}
	if m.NetResult != nil && m.Equity != nil && *m.Equity > 0 {
		m.ReturnOnEquity = models.Float64Ptr(round2(float64(*m.NetResult) / float64(*m.Equity) * 100))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
