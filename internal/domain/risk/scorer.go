package risk

import "github.com/shopspring/decimal"

// Tier buckets a score for reviewers. The score is advisory input to a human
// decision, never an autonomous approval gate.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

type Input struct {
	IdentityVerified  bool
	DocumentsComplete bool
	MonthlyIncome     decimal.Decimal
	MonthlyDebt       decimal.Decimal
	AnnualIncome      decimal.Decimal
	RequestedAmount   decimal.Decimal
}

type Result struct {
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

const base = 50

// Score is a deterministic weighted sum clamped to [0,100].
//
// Weights:
//
//	+20 verified identity
//	+30 / +20 / -10 for debt-to-income <=25% / <=33% / above
//	+15 all required documents verified
//	+10 / -15 for loan-to-annual-income <=2x / above 4x
func Score(in Input) Result {
	score := base

	if in.IdentityVerified {
		score += 20
	}

	if in.MonthlyIncome.IsPositive() {
		dti := in.MonthlyDebt.Div(in.MonthlyIncome)
		switch {
		case dti.LessThanOrEqual(decimal.NewFromFloat(0.25)):
			score += 30
		case dti.LessThanOrEqual(decimal.NewFromFloat(0.33)):
			score += 20
		default:
			score -= 10
		}
	} else {
		score -= 10
	}

	if in.DocumentsComplete {
		score += 15
	}

	if in.AnnualIncome.IsPositive() {
		lti := in.RequestedAmount.Div(in.AnnualIncome)
		switch {
		case lti.LessThanOrEqual(decimal.NewFromInt(2)):
			score += 10
		case lti.GreaterThan(decimal.NewFromInt(4)):
			score -= 15
		}
	} else {
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Result{Score: score, Tier: tierFor(score)}
}

func tierFor(score int) Tier {
	switch {
	case score >= 70:
		return TierLow
	case score >= 40:
		return TierMedium
	default:
		return TierHigh
	}
}
