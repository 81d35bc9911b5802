// Package amortization computes fixed-payment (annuity) loan schedules.
// Pure functions, no side effects; all money handling in decimal.
package amortization

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidTerm      = errors.New("term must be at least one month")
	ErrNegativeRate     = errors.New("rate must not be negative")
)

// Installment is one period of a schedule.
type Installment struct {
	Sequence  int
	DueDate   time.Time
	Total     decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Remaining decimal.Decimal
}

// MonthlyPayment returns the constant annuity payment for the given terms,
// rounded to 2 decimal places (half-up).
//
//	r = annualRatePct / 100 / 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// At zero rate the annuity formula divides by zero, so the straight-line
// split P/n is used instead.
func MonthlyPayment(principal decimal.Decimal, annualRatePct decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if err := validate(principal, annualRatePct, termMonths); err != nil {
		return decimal.Zero, err
	}

	if annualRatePct.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2), nil
	}

	// The power term needs float math; everything monetary stays decimal.
	monthlyRate := annualRatePct.InexactFloat64() / 100.0 / 12.0
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// TotalRepayable is the sum of all installment totals for the given terms.
func TotalRepayable(principal decimal.Decimal, annualRatePct decimal.Decimal, termMonths int, start time.Time) (decimal.Decimal, error) {
	schedule, err := Schedule(principal, annualRatePct, termMonths, start)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, inst := range schedule {
		total = total.Add(inst.Total)
	}
	return total, nil
}

// Schedule produces the full installment list. Due dates run monthly from
// start. Each period's interest is the remaining balance times the monthly
// rate, rounded half-up to 2 decimals; the final installment's principal
// absorbs accumulated rounding drift so the principal parts sum exactly to
// the original principal and the remaining balance lands on zero.
func Schedule(principal decimal.Decimal, annualRatePct decimal.Decimal, termMonths int, start time.Time) ([]Installment, error) {
	payment, err := MonthlyPayment(principal, annualRatePct, termMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := annualRatePct.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	schedule := make([]Installment, 0, termMonths)
	remaining := principal

	for seq := 1; seq <= termMonths; seq++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)

		// The final installment closes out exactly with whatever is left.
		// An earlier installment never pays down more than the outstanding
		// balance either, so the recorded splits always sum to the
		// principal even when the rounded constant payment overshoots.
		if seq == termMonths || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)

		schedule = append(schedule, Installment{
			Sequence:  seq,
			DueDate:   start.AddDate(0, seq-1, 0),
			Total:     principalPart.Add(interest),
			Principal: principalPart,
			Interest:  interest,
			Remaining: remaining,
		})
	}

	return schedule, nil
}

// RemainingAfter replays the schedule and returns the balance outstanding
// after the installment with the given sequence has been paid. Sequence 0
// returns the full principal.
func RemainingAfter(schedule []Installment, sequence int) decimal.Decimal {
	if sequence <= 0 {
		if len(schedule) == 0 {
			return decimal.Zero
		}
		return schedule[0].Principal.Add(schedule[0].Remaining)
	}
	if sequence > len(schedule) {
		sequence = len(schedule)
	}
	return schedule[sequence-1].Remaining
}

func validate(principal decimal.Decimal, annualRatePct decimal.Decimal, termMonths int) error {
	if !principal.IsPositive() {
		return ErrInvalidPrincipal
	}
	if termMonths < 1 {
		return ErrInvalidTerm
	}
	if annualRatePct.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}
