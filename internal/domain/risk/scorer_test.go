package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func di(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestScore_BestCase(t *testing.T) {
	// 50 + 20 + 30 + 15 + 10 = 125, clamped to 100
	got := Score(Input{
		IdentityVerified:  true,
		DocumentsComplete: true,
		MonthlyIncome:     di(10000),
		MonthlyDebt:       di(1000), // dti 10%
		AnnualIncome:      di(120000),
		RequestedAmount:   di(50000), // lti < 2x
	})
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, TierLow, got.Tier)
}

func TestScore_WorstCase(t *testing.T) {
	// 50 - 10 - 15 = 25, no clamp needed but tier is high
	got := Score(Input{
		IdentityVerified:  false,
		DocumentsComplete: false,
		MonthlyIncome:     decimal.Zero,
		AnnualIncome:      decimal.Zero,
		RequestedAmount:   di(50000),
	})
	assert.Equal(t, 25, got.Score)
	assert.Equal(t, TierHigh, got.Tier)
}

func TestScore_DebtToIncomeBands(t *testing.T) {
	in := func(debt int64) Input {
		return Input{
			MonthlyIncome:   di(100),
			MonthlyDebt:     di(debt),
			AnnualIncome:    di(1200),
			RequestedAmount: di(1000), // lti < 2x => +10
		}
	}

	// dti 25% => +30: 50+30+10 = 90
	assert.Equal(t, 90, Score(in(25)).Score)
	// dti 33% => +20: 50+20+10 = 80
	assert.Equal(t, 80, Score(in(33)).Score)
	// dti 50% => -10: 50-10+10 = 50
	assert.Equal(t, 50, Score(in(50)).Score)
}

func TestScore_LoanToIncomeBands(t *testing.T) {
	in := func(amount int64) Input {
		return Input{
			MonthlyIncome:   di(100),
			MonthlyDebt:     di(20), // dti 20% => +30
			AnnualIncome:    di(1200),
			RequestedAmount: di(amount),
		}
	}

	// lti 2x => +10: 50+30+10 = 90
	assert.Equal(t, 90, Score(in(2400)).Score)
	// lti 3x => no delta: 50+30 = 80
	assert.Equal(t, 80, Score(in(3600)).Score)
	// lti 5x => -15: 50+30-15 = 65
	assert.Equal(t, 65, Score(in(6000)).Score)
}

func TestScore_ClampsToZero(t *testing.T) {
	got := Score(Input{
		MonthlyIncome:   decimal.Zero,
		AnnualIncome:    decimal.Zero,
		RequestedAmount: di(1),
	})
	assert.GreaterOrEqual(t, got.Score, 0)
	assert.LessOrEqual(t, got.Score, 100)
}

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, TierHigh, tierFor(0))
	assert.Equal(t, TierHigh, tierFor(39))
	assert.Equal(t, TierMedium, tierFor(40))
	assert.Equal(t, TierMedium, tierFor(69))
	assert.Equal(t, TierLow, tierFor(70))
	assert.Equal(t, TierLow, tierFor(100))
}
