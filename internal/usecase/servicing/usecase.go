package servicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	appDomain "credit-engine/internal/domain/application"
	domain "credit-engine/internal/domain/contract"
	"credit-engine/internal/domain/notify"
	"credit-engine/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase services contracts after generation: signatures, payment
// settlement, overdue tracking, suspension and early payoff.
type Usecase struct {
	contracts domain.Repository
	payments  domain.PaymentRepository
	uow       uow.UnitOfWork
	notifier  notify.Notifier
	now       func() time.Time
}

func NewUsecase(contracts domain.Repository, payments domain.PaymentRepository, tx uow.UnitOfWork, n notify.Notifier) *Usecase {
	return &Usecase{
		contracts: contracts,
		payments:  payments,
		uow:       tx,
		notifier:  n,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock pins the clock, for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Sign activates a generated contract and moves the owning application to
// active in the same transaction. A contract is never active without a
// signature on record.
func (u *Usecase) Sign(ctx context.Context, contractID string, signedAt time.Time, actor string) (*ContractDTO, error) {
	var dto ContractDTO
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *domain.Contract) error {
		if c.Status != domain.StatusGenerated {
			return domain.ErrInvalidTransition
		}
		at := signedAt.UTC()
		c.SignedAt = &at
		c.Status = domain.StatusActive
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		if err := advanceApplication(ctx, r, c, appDomain.StatusActive); err != nil {
			return err
		}
		dto = toContractDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ContractEvent(ctx, dto.ContractID, notify.EventContractSigned)
	return &dto, nil
}

// MarkPaid settles a single installment. Only pending or late installments
// are payable; a paid one never changes again. The contract auto-completes
// when every installment is settled or cancelled; a missed installment keeps
// it open for collections until it is resolved by an early payoff.
func (u *Usecase) MarkPaid(ctx context.Context, paymentID string, paidAt time.Time, method string, actor string) (*PaymentDTO, error) {
	var (
		dto       PaymentDTO
		completed bool
		contract  string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPaymentNotFound
			}
			return err
		}
		if p.Status == domain.PaymentPaid {
			return domain.ErrAlreadyPaid
		}
		if !p.Payable() {
			return domain.ErrNotPayable
		}

		at := paidAt.UTC()
		p.Status = domain.PaymentPaid
		p.PaidAt = &at
		p.Method = method
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		c, err := r.Contracts.GetByIDForUpdate(ctx, p.ContractID)
		if err != nil {
			return err
		}
		c.RemainingPrincipal = c.RemainingPrincipal.Sub(p.Principal)
		if c.RemainingPrincipal.IsNegative() {
			c.RemainingPrincipal = decimal.Zero
		}

		open, err := openInstallments(ctx, r, c.ID)
		if err != nil {
			return err
		}
		if open == 0 {
			c.Status = domain.StatusCompleted
			c.RemainingPrincipal = decimal.Zero
			completed = true
		}
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		if completed {
			if err := advanceApplication(ctx, r, c, appDomain.StatusCompleted); err != nil {
				return err
			}
		}

		contract = c.ContractID
		dto = toPaymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ContractEvent(ctx, contract, notify.EventPaymentReceived)
	if completed {
		u.notifier.ContractEvent(ctx, contract, notify.EventContractCompleted)
	}
	return &dto, nil
}

// MarkMissed writes off a late installment for collections.
func (u *Usecase) MarkMissed(ctx context.Context, paymentID string, actor string) (*PaymentDTO, error) {
	var dto PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPaymentNotFound
			}
			return err
		}
		if p.Status == domain.PaymentPaid {
			return domain.ErrAlreadyPaid
		}
		if p.Status != domain.PaymentLate {
			return domain.ErrNotPayable
		}
		p.Status = domain.PaymentMissed
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}
		dto = toPaymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// DetectOverdue reclassifies every pending installment past due as late and
// returns the number of rows touched. Safe to run repeatedly.
func (u *Usecase) DetectOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return u.payments.MarkLateDueBefore(ctx, asOf.UTC())
}

// OverduePayments is the read-only variant for reporting: pending
// installments already past due, without mutation.
func (u *Usecase) OverduePayments(ctx context.Context, asOf time.Time) ([]PaymentDTO, error) {
	late, err := u.payments.ListDueBefore(ctx, asOf.UTC(), domain.PaymentPending)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(late))
	for i := range late {
		out = append(out, toPaymentDTO(&late[i]))
	}
	return out, nil
}

// SimulateEarlyRepayment computes the payoff breakdown for an arbitrary date
// without touching state. The remaining principal is derived by replaying the
// schedule up to the last installment settled before the payoff date; accrued
// interest covers the days since then at the contract's monthly rate.
func (u *Usecase) SimulateEarlyRepayment(ctx context.Context, contractID string, payoffDate time.Time) (*Payoff, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if c.Status != domain.StatusActive && c.Status != domain.StatusSuspended {
		return nil, domain.ErrInvalidTransition
	}
	payments, err := u.payments.ListByContractID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return payoffAt(c, payments, payoffDate.UTC())
}

// ProcessEarlyRepayment commits the payoff: every still-open installment is
// cancelled, the contract completes and its remaining principal drops to
// zero, atomically.
func (u *Usecase) ProcessEarlyRepayment(ctx context.Context, contractID string, payoffDate time.Time, method string, actor string) (*Payoff, error) {
	var out *Payoff
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *domain.Contract) error {
		if c.Status != domain.StatusActive && c.Status != domain.StatusSuspended {
			return domain.ErrInvalidTransition
		}
		payments, err := r.Payments.ListByContractID(ctx, c.ID)
		if err != nil {
			return err
		}
		payoff, err := payoffAt(c, payments, payoffDate.UTC())
		if err != nil {
			return err
		}

		if _, err := r.Payments.CancelPending(ctx, c.ID, payoff.FromSequence); err != nil {
			return err
		}
		c.Status = domain.StatusCompleted
		c.RemainingPrincipal = decimal.Zero
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		if err := advanceApplication(ctx, r, c, appDomain.StatusCompleted); err != nil {
			return err
		}
		out = payoff
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ContractEvent(ctx, contractID, notify.EventEarlyRepaymentSettled)
	u.notifier.ContractEvent(ctx, contractID, notify.EventContractCompleted)
	return out, nil
}

// Suspend flags an active contract; the schedule is untouched.
func (u *Usecase) Suspend(ctx context.Context, contractID string, reason string, actor string) (*ContractDTO, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: suspension reason is required", domain.ErrValidation)
	}
	var dto ContractDTO
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *domain.Contract) error {
		if c.Status != domain.StatusActive {
			return domain.ErrInvalidTransition
		}
		c.Status = domain.StatusSuspended
		c.SuspensionReason = reason
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		dto = toContractDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ContractEvent(ctx, dto.ContractID, notify.EventContractSuspended)
	return &dto, nil
}

func (u *Usecase) Reactivate(ctx context.Context, contractID string, actor string) (*ContractDTO, error) {
	var dto ContractDTO
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *domain.Contract) error {
		if c.Status != domain.StatusSuspended {
			return domain.ErrInvalidTransition
		}
		c.Status = domain.StatusActive
		c.SuspensionReason = ""
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		dto = toContractDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ContractEvent(ctx, dto.ContractID, notify.EventContractReactivated)
	return &dto, nil
}

func (u *Usecase) GetContract(ctx context.Context, contractID string) (*ContractDTO, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := toContractDTO(c)
	return &dto, nil
}

func (u *Usecase) GetSchedule(ctx context.Context, contractID string) ([]PaymentDTO, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	payments, err := u.payments.ListByContractID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentDTO(&payments[i]))
	}
	return out, nil
}

// GetPayment returns a single installment by its public id.
func (u *Usecase) GetPayment(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	dto := toPaymentDTO(p)
	return &dto, nil
}

// openInstallments counts rows still standing between the contract and
// completion: anything not yet paid or cancelled, including missed rows
// awaiting collections.
func openInstallments(ctx context.Context, r uow.Repos, contractPK uint64) (int, error) {
	all, err := r.Payments.ListByContractID(ctx, contractPK)
	if err != nil {
		return 0, err
	}
	open := 0
	for i := range all {
		switch all[i].Status {
		case domain.PaymentPaid, domain.PaymentCancelled:
		default:
			open++
		}
	}
	return open, nil
}

// advanceApplication keeps the owning application's lifecycle in step with
// its contract: signing activates it, final settlement completes it.
func advanceApplication(ctx context.Context, r uow.Repos, c *domain.Contract, next appDomain.Status) error {
	a, err := r.Applications.GetByIDForUpdate(ctx, c.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appDomain.ErrNotFound
		}
		return err
	}
	if err := a.Transition(next); err != nil {
		return err
	}
	return r.Applications.Save(ctx, a)
}
