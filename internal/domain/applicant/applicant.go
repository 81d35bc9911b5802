package applicant

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("applicant not found")

// Profile is the read model of the identity collaborator. The engine never
// mutates it except through MarkVerified, the verification-completion
// callback.
type Profile struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID   string          `gorm:"size:32;uniqueIndex:ux_applicants_applicant_id" json:"applicant_id"`
	AccountType   string          `gorm:"size:32" json:"account_type"`
	IsVerified    bool            `json:"is_verified"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_income"`
	MonthlyDebt   decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_debt"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "applicants" }

func (p *Profile) AnnualIncome() decimal.Decimal {
	return p.MonthlyIncome.Mul(decimal.NewFromInt(12))
}

type Repository interface {
	GetByApplicantID(ctx context.Context, applicantID string) (*Profile, error)
	// MarkVerified flips the global verification flag; invoked once all
	// pending document verifications clear.
	MarkVerified(ctx context.Context, applicantID string) error
}
