package servicing

import (
	"time"

	"github.com/shopspring/decimal"

	domain "credit-engine/internal/domain/contract"
)

type ContractDTO struct {
	ContractID         string          `json:"contract_id"`
	ContractNumber     string          `json:"contract_number"`
	Principal          decimal.Decimal `json:"principal"`
	RatePct            decimal.Decimal `json:"rate_pct"`
	TermMonths         int             `json:"term_months"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	SignedAt           *time.Time      `json:"signed_at,omitempty"`
	Status             string          `json:"status"`
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	SuspensionReason   string          `json:"suspension_reason,omitempty"`
}

type PaymentDTO struct {
	PaymentID string          `json:"payment_id"`
	Sequence  int             `json:"sequence"`
	DueDate   time.Time       `json:"due_date"`
	Total     decimal.Decimal `json:"total"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Status    string          `json:"status"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	Method    string          `json:"method,omitempty"`
}

// Payoff is the early-repayment breakdown. FromSequence is the first
// installment superseded by the payoff.
type Payoff struct {
	Principal    decimal.Decimal `json:"principal"`
	Interest     decimal.Decimal `json:"interest"`
	Total        decimal.Decimal `json:"total"`
	PayoffDate   time.Time       `json:"payoff_date"`
	FromSequence int             `json:"-"`
}

func toContractDTO(c *domain.Contract) ContractDTO {
	return ContractDTO{
		ContractID:         c.ContractID,
		ContractNumber:     c.ContractNumber,
		Principal:          c.Principal,
		RatePct:            c.RatePct,
		TermMonths:         c.TermMonths,
		MonthlyPayment:     c.MonthlyPayment,
		TotalAmount:        c.TotalAmount,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		SignedAt:           c.SignedAt,
		Status:             string(c.Status),
		RemainingPrincipal: c.RemainingPrincipal,
		SuspensionReason:   c.SuspensionReason,
	}
}

func toPaymentDTO(p *domain.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID,
		Sequence:  p.Sequence,
		DueDate:   p.DueDate,
		Total:     p.Total,
		Principal: p.Principal,
		Interest:  p.Interest,
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		Method:    p.Method,
	}
}

// payoffAt replays the schedule: the balance outstanding is the contract
// principal minus every principal part due strictly before the payoff date;
// interest accrues on that balance from the last elapsed due date at the
// contract's monthly rate, pro-rated by days.
func payoffAt(c *domain.Contract, payments []domain.Payment, payoffDate time.Time) (*Payoff, error) {
	monthlyRate := c.RatePct.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))

	remaining := c.Principal
	lastDue := c.StartDate
	fromSequence := 1
	var nextDue time.Time

	for i := range payments {
		p := &payments[i]
		if p.Status == domain.PaymentCancelled {
			continue
		}
		if p.DueDate.Before(payoffDate) {
			remaining = remaining.Sub(p.Principal)
			lastDue = p.DueDate
			fromSequence = p.Sequence + 1
		} else if nextDue.IsZero() {
			nextDue = p.DueDate
		}
	}
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	if nextDue.IsZero() {
		nextDue = lastDue.AddDate(0, 1, 0)
	}

	accrued := decimal.Zero
	if remaining.IsPositive() && monthlyRate.IsPositive() {
		periodDays := nextDue.Sub(lastDue).Hours() / 24
		elapsedDays := payoffDate.Sub(lastDue).Hours() / 24
		if periodDays > 0 {
			frac := elapsedDays / periodDays
			if frac < 0 {
				frac = 0
			}
			if frac > 1 {
				frac = 1
			}
			accrued = remaining.Mul(monthlyRate).Mul(decimal.NewFromFloat(frac)).Round(2)
		}
	}

	return &Payoff{
		Principal:    remaining,
		Interest:     accrued,
		Total:        remaining.Add(accrued),
		PayoffDate:   payoffDate,
		FromSequence: fromSequence,
	}, nil
}
