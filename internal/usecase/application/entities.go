package application

import (
	"time"

	"github.com/shopspring/decimal"

	domain "credit-engine/internal/domain/application"
)

type CreateDraftInput struct {
	ApplicantID string
	LoanType    string
	Principal   decimal.Decimal
	TermMonths  int
	Purpose     string
	Snapshot    map[string]string
}

type UpdateDraftInput struct {
	Principal  *decimal.Decimal
	TermMonths *int
	Purpose    *string
	Snapshot   map[string]string
}

// ApproveTerms optionally overrides the requested terms; every override must
// stay within the loan type's bounds.
type ApproveTerms struct {
	Principal  *decimal.Decimal
	RatePct    *decimal.Decimal
	TermMonths *int
}

type AttachDocumentInput struct {
	Kind     string
	FileName string
}

type ApplicationDTO struct {
	ApplicationID   string            `json:"application_id"`
	ApplicantID     string            `json:"applicant_id"`
	LoanType        string            `json:"loan_type"`
	Principal       decimal.Decimal   `json:"principal"`
	RatePct         decimal.Decimal   `json:"rate_pct"`
	TermMonths      int               `json:"term_months"`
	MonthlyPayment  decimal.Decimal   `json:"monthly_payment"`
	TotalRepayable  decimal.Decimal   `json:"total_repayable"`
	Purpose         string            `json:"purpose"`
	Status          string            `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Snapshot        map[string]string `json:"snapshot,omitempty"`
	SubmittedAt     *time.Time        `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
	RejectedAt      *time.Time        `json:"rejected_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type ApprovalDTO struct {
	Application    ApplicationDTO `json:"application"`
	ContractID     string         `json:"contract_id"`
	ContractNumber string         `json:"contract_number"`
}

type DocumentDTO struct {
	DocumentID string     `json:"document_id"`
	Kind       string     `json:"kind"`
	FileName   string     `json:"file_name"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

func toDTO(a *domain.Application) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		ApplicantID:     a.ApplicantID,
		LoanType:        a.LoanType,
		Principal:       a.Principal,
		RatePct:         a.RatePct,
		TermMonths:      a.TermMonths,
		MonthlyPayment:  a.MonthlyPayment,
		TotalRepayable:  a.TotalRepayable,
		Purpose:         a.Purpose,
		Status:          string(a.Status),
		RejectionReason: a.RejectionReason,
		Snapshot:        a.Snapshot,
		SubmittedAt:     a.SubmittedAt,
		ApprovedAt:      a.ApprovedAt,
		RejectedAt:      a.RejectedAt,
		CreatedAt:       a.CreatedAt,
	}
}

func toDocumentDTO(d *domain.Document) DocumentDTO {
	return DocumentDTO{
		DocumentID: d.DocumentID,
		Kind:       d.Kind,
		FileName:   d.FileName,
		Verified:   d.Verified,
		VerifiedAt: d.VerifiedAt,
	}
}
