package contract

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("contract not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrDuplicateContract = errors.New("contract already exists for application")
	ErrAlreadyPaid       = errors.New("payment already settled")
	ErrInvalidTransition = errors.New("invalid contract state transition")
	ErrNotPayable        = errors.New("payment is not in a payable state")
	ErrValidation        = errors.New("contract validation failed")
	ErrGeneration        = errors.New("contract generation failed")
)

type Status string

const (
	StatusGenerated Status = "generated"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentLate      PaymentStatus = "late"
	PaymentMissed    PaymentStatus = "missed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type Contract struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	ContractID     string          `gorm:"size:32;uniqueIndex:ux_contracts_contract_id" json:"contract_id"`
	ContractNumber string          `gorm:"size:32;uniqueIndex:ux_contracts_number" json:"contract_number"`
	ApplicationID  uint64          `gorm:"column:application_id;uniqueIndex:ux_contracts_application" json:"-"`
	Principal      decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	RatePct        decimal.Decimal `gorm:"type:decimal(6,3)" json:"rate_pct"`
	TermMonths     int             `gorm:"column:term_months" json:"term_months"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	StartDate      time.Time       `gorm:"type:date" json:"start_date"`
	EndDate        time.Time       `gorm:"type:date" json:"end_date"`
	SignedAt       *time.Time      `json:"signed_at,omitempty"`
	Status         Status          `gorm:"size:32;default:'generated'" json:"status"`
	// RemainingPrincipal only ever decreases after signing-time initialization.
	RemainingPrincipal decimal.Decimal `gorm:"type:decimal(18,2)" json:"remaining_principal"`
	SuspensionReason   string          `gorm:"type:text" json:"suspension_reason,omitempty"`

	Payments []Payment `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contract) TableName() string { return "loan_contracts" }

type Payment struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string          `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	ContractID uint64          `gorm:"column:contract_id;index;uniqueIndex:ux_payments_contract_seq,priority:1" json:"-"`
	Sequence   int             `gorm:"column:sequence;uniqueIndex:ux_payments_contract_seq,priority:2" json:"sequence"`
	DueDate    time.Time       `gorm:"type:date" json:"due_date"`
	Total      decimal.Decimal `gorm:"type:decimal(18,2)" json:"total"`
	Principal  decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	Interest   decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest"`
	Status     PaymentStatus   `gorm:"size:16;default:'pending'" json:"status"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	Method     string          `gorm:"size:32" json:"method,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "loan_payments" }

// Payable reports whether the installment can still be settled.
func (p *Payment) Payable() bool {
	return p.Status == PaymentPending || p.Status == PaymentLate
}
