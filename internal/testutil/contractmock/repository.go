package contractmock

import (
	"context"
	"time"

	domain "credit-engine/internal/domain/contract"
)

var (
	_ domain.Repository        = (*Repo)(nil)
	_ domain.PaymentRepository = (*PaymentRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn          func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByIDForUpdateFn         func(ctx context.Context, id uint64) (*domain.Contract, error)
	GetByApplicationIDFn       func(ctx context.Context, applicationID uint64) (*domain.Contract, error)
	SaveFn                     func(ctx context.Context, c *domain.Contract) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Contract, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID uint64) (*domain.Contract, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

// PaymentRepo is a function-backed mock that satisfies domain.PaymentRepository.
type PaymentRepo struct {
	GetByPaymentIDFn          func(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetByPaymentIDForUpdateFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByContractIDFn        func(ctx context.Context, contractID uint64) ([]domain.Payment, error)
	ListDueBeforeFn           func(ctx context.Context, asOf time.Time, status domain.PaymentStatus) ([]domain.Payment, error)
	SaveFn                    func(ctx context.Context, p *domain.Payment) error
	MarkLateDueBeforeFn       func(ctx context.Context, asOf time.Time) (int64, error)
	CancelPendingFn           func(ctx context.Context, contractID uint64, fromSequence int) (int64, error)
}

func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *PaymentRepo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *PaymentRepo) ListByContractID(ctx context.Context, contractID uint64) ([]domain.Payment, error) {
	if m.ListByContractIDFn != nil {
		return m.ListByContractIDFn(ctx, contractID)
	}
	return nil, nil
}

func (m *PaymentRepo) ListDueBefore(ctx context.Context, asOf time.Time, status domain.PaymentStatus) ([]domain.Payment, error) {
	if m.ListDueBeforeFn != nil {
		return m.ListDueBeforeFn(ctx, asOf, status)
	}
	return nil, nil
}

func (m *PaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) MarkLateDueBefore(ctx context.Context, asOf time.Time) (int64, error) {
	if m.MarkLateDueBeforeFn != nil {
		return m.MarkLateDueBeforeFn(ctx, asOf)
	}
	return 0, nil
}

func (m *PaymentRepo) CancelPending(ctx context.Context, contractID uint64, fromSequence int) (int64, error) {
	if m.CancelPendingFn != nil {
		return m.CancelPendingFn(ctx, contractID, fromSequence)
	}
	return 0, nil
}
