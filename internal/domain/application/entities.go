package application

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid state transition")
)

type Application struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string          `gorm:"size:32;uniqueIndex:ux_applications_app_id_active" json:"application_id"`
	ApplicantID   string          `gorm:"size:32;index:idx_applications_applicant" json:"applicant_id"`
	LoanType      string          `gorm:"size:32" json:"loan_type"`
	Principal     decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	RatePct       decimal.Decimal `gorm:"type:decimal(6,3)" json:"rate_pct"`
	TermMonths    int             `gorm:"column:term_months" json:"term_months"`
	// Recomputed by the state machine on approval; zero until then.
	MonthlyPayment  decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	TotalRepayable  decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_repayable"`
	Purpose         string          `gorm:"type:text" json:"purpose"`
	Status          Status          `gorm:"size:32;default:'draft'" json:"status"`
	Snapshot        Snapshot        `gorm:"type:json;serializer:json" json:"snapshot,omitempty"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	RejectedAt      *time.Time      `json:"rejected_at,omitempty"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	SubmittedBy     string          `gorm:"size:32" json:"-"`
	ReviewedBy      string          `gorm:"size:32" json:"-"`
	DecidedBy       string          `gorm:"size:32" json:"-"`

	Documents []Document `gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }

// Snapshot holds the structured personal/financial details captured with the
// request, immutable after submission.
type Snapshot map[string]string

// Transition moves the application to next, or fails with
// ErrInvalidTransition leaving it untouched.
func (a *Application) Transition(next Status) error {
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}

// Document is owned by exactly one application; it never outlives it.
type Document struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	DocumentID    string     `gorm:"size:32;uniqueIndex:ux_documents_doc_id" json:"document_id"`
	ApplicationID uint64     `gorm:"column:application_id;index" json:"-"`
	Kind          string     `gorm:"size:64" json:"kind"`
	FileName      string     `gorm:"size:255" json:"file_name"`
	Verified      bool       `json:"verified"`
	VerifiedBy    string     `gorm:"size:32" json:"-"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "loan_application_documents" }

// DocumentsComplete reports whether every required kind for the loan type is
// attached and verified. This is the document-gate signal consumed by the
// risk scorer and the approval precondition.
func (a *Application) DocumentsComplete(required []string) bool {
	verified := make(map[string]bool, len(a.Documents))
	for _, d := range a.Documents {
		if d.Verified {
			verified[d.Kind] = true
		}
	}
	for _, kind := range required {
		if !verified[kind] {
			return false
		}
	}
	return true
}
