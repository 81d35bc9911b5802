package contract

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists the contract together with its payment rows; the
	// caller's transaction makes this all-or-nothing.
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Contract, error)
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Contract, error)
	Save(ctx context.Context, c *Contract) error
}

type PaymentRepository interface {
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Payment, error)
	ListByContractID(ctx context.Context, contractID uint64) ([]Payment, error)
	ListDueBefore(ctx context.Context, asOf time.Time, status PaymentStatus) ([]Payment, error)
	Save(ctx context.Context, p *Payment) error
	// MarkLateDueBefore reclassifies pending payments past due in one
	// statement and reports how many rows changed.
	MarkLateDueBefore(ctx context.Context, asOf time.Time) (int64, error)
	// CancelPending closes every still-open installment of a contract from
	// fromSequence onward. Used by early-repayment processing.
	CancelPending(ctx context.Context, contractID uint64, fromSequence int) (int64, error)
}
