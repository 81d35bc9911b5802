package mysql

import (
	"context"
	"time"

	contractDomain "credit-engine/internal/domain/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*contractDomain.Payment, error) {
	var out contractDomain.Payment
	res := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*contractDomain.Payment, error) {
	var out contractDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_id = ?", paymentID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByContractID(ctx context.Context, contractID uint64) ([]contractDomain.Payment, error) {
	var out []contractDomain.Payment
	res := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("sequence ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListDueBefore(ctx context.Context, asOf time.Time, status contractDomain.PaymentStatus) ([]contractDomain.Payment, error) {
	var out []contractDomain.Payment
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", status, asOf).
		Order("due_date ASC, sequence ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *contractDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) MarkLateDueBefore(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&contractDomain.Payment{}).
		Where("status = ? AND due_date < ?", contractDomain.PaymentPending, asOf).
		Update("status", contractDomain.PaymentLate)
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) CancelPending(ctx context.Context, contractID uint64, fromSequence int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&contractDomain.Payment{}).
		Where("contract_id = ? AND sequence >= ? AND status IN ?",
			contractID, fromSequence,
			[]contractDomain.PaymentStatus{contractDomain.PaymentPending, contractDomain.PaymentLate}).
		Update("status", contractDomain.PaymentCancelled)
	return res.RowsAffected, res.Error
}
