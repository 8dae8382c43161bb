package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svenskadata/bolagskollen/internal/models"
)

func TestCalculateRatios(t *testing.T) {
	tests := []struct {
		name       string
		metrics    models.KeyMetrics
		wantMargin *float64
		wantROE    *float64
	}{
		{
			name: "both ratios derived",
			metrics: models.KeyMetrics{
				Revenue:   models.Int64Ptr(2_000_000),
				NetResult: models.Int64Ptr(150_000),
				Equity:    models.Int64Ptr(600_000),
			},
			wantMargin: models.Float64Ptr(7.5),
			wantROE:    models.Float64Ptr(25.0),
		},
		{
			name: "zero revenue leaves margin nil",
			metrics: models.KeyMetrics{
				Revenue:   models.Int64Ptr(0),
				NetResult: models.Int64Ptr(150_000),
			},
		},
		{
			name: "missing revenue leaves margin nil",
			metrics: models.KeyMetrics{
				NetResult: models.Int64Ptr(150_000),
			},
		},
		{
			name: "negative equity leaves ROE nil",
			metrics: models.KeyMetrics{
				Revenue:   models.Int64Ptr(1_000_000),
				NetResult: models.Int64Ptr(50_000),
				Equity:    models.Int64Ptr(-200_000),
			},
			wantMargin: models.Float64Ptr(5.0),
		},
		{
			name: "zero equity leaves ROE nil",
			metrics: models.KeyMetrics{
				NetResult: models.Int64Ptr(50_000),
				Equity:    models.Int64Ptr(0),
			},
		},
		{
			name: "rounding to two decimals",
			metrics: models.KeyMetrics{
				Revenue:   models.Int64Ptr(3_000_000),
				NetResult: models.Int64Ptr(100_000),
			},
			wantMargin: models.Float64Ptr(3.33),
		},
		{
			name: "negative result gives negative margin",
			metrics: models.KeyMetrics{
				Revenue:   models.Int64Ptr(1_000_000),
				NetResult: models.Int64Ptr(-125_000),
				Equity:    models.Int64Ptr(500_000),
			},
			wantMargin: models.Float64Ptr(-12.5),
			wantROE:    models.Float64Ptr(-25.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.metrics
			CalculateRatios(&m)

			if tt.wantMargin == nil {
				assert.Nil(t, m.ProfitMargin)
			} else {
				require.NotNil(t, m.ProfitMargin)
				assert.Equal(t, *tt.wantMargin, *m.ProfitMargin)
			}
			if tt.wantROE == nil {
				assert.Nil(t, m.ReturnOnEquity)
			} else {
				require.NotNil(t, m.ReturnOnEquity)
				assert.Equal(t, *tt.wantROE, *m.ReturnOnEquity)
			}
		})
	}
}
