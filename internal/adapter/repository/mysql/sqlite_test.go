package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no MySQL column types) ---

type applicationSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ApplicationID   string         `gorm:"size:32;column:application_id"`
	ApplicantID     string         `gorm:"size:32;column:applicant_id"`
	LoanType        string         `gorm:"column:loan_type"`
	Principal       string         `gorm:"column:principal"`
	RatePct         string         `gorm:"column:rate_pct"`
	TermMonths      int            `gorm:"column:term_months"`
	MonthlyPayment  string         `gorm:"column:monthly_payment"`
	TotalRepayable  string         `gorm:"column:total_repayable"`
	Purpose         string         `gorm:"column:purpose"`
	Status          string         `gorm:"type:text;column:status"`
	Snapshot        string         `gorm:"column:snapshot"`
	SubmittedAt     *time.Time     `gorm:"column:submitted_at"`
	ReviewedAt      *time.Time     `gorm:"column:reviewed_at"`
	ApprovedAt      *time.Time     `gorm:"column:approved_at"`
	RejectedAt      *time.Time     `gorm:"column:rejected_at"`
	RejectionReason string         `gorm:"column:rejection_reason"`
	SubmittedBy     string         `gorm:"column:submitted_by"`
	ReviewedBy      string         `gorm:"column:reviewed_by"`
	DecidedBy       string         `gorm:"column:decided_by"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type documentSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	DocumentID    string     `gorm:"size:32;column:document_id"`
	ApplicationID uint64     `gorm:"column:application_id"`
	Kind          string     `gorm:"column:kind"`
	FileName      string     `gorm:"column:file_name"`
	Verified      bool       `gorm:"column:verified"`
	VerifiedBy    string     `gorm:"column:verified_by"`
	VerifiedAt    *time.Time `gorm:"column:verified_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (documentSQLite) TableName() string { return "loan_application_documents" }

type contractSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	ContractID         string         `gorm:"size:32;column:contract_id"`
	ContractNumber     string         `gorm:"column:contract_number"`
	ApplicationID      uint64         `gorm:"column:application_id"`
	Principal          string         `gorm:"column:principal"`
	RatePct            string         `gorm:"column:rate_pct"`
	TermMonths         int            `gorm:"column:term_months"`
	MonthlyPayment     string         `gorm:"column:monthly_payment"`
	TotalAmount        string         `gorm:"column:total_amount"`
	StartDate          time.Time      `gorm:"column:start_date"`
	EndDate            time.Time      `gorm:"column:end_date"`
	SignedAt           *time.Time     `gorm:"column:signed_at"`
	Status             string         `gorm:"type:text;column:status"`
	RemainingPrincipal string         `gorm:"column:remaining_principal"`
	SuspensionReason   string         `gorm:"column:suspension_reason"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (contractSQLite) TableName() string { return "loan_contracts" }

type paymentSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	PaymentID  string     `gorm:"size:32;column:payment_id"`
	ContractID uint64     `gorm:"column:contract_id"`
	Sequence   int        `gorm:"column:sequence"`
	DueDate    time.Time  `gorm:"column:due_date"`
	Total      string     `gorm:"column:total"`
	Principal  string     `gorm:"column:principal"`
	Interest   string     `gorm:"column:interest"`
	Status     string     `gorm:"type:text;column:status"`
	PaidAt     *time.Time `gorm:"column:paid_at"`
	Method     string     `gorm:"column:method"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (paymentSQLite) TableName() string { return "loan_payments" }

type applicantSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ApplicantID   string    `gorm:"size:32;column:applicant_id"`
	AccountType   string    `gorm:"column:account_type"`
	IsVerified    bool      `gorm:"column:is_verified"`
	MonthlyIncome string    `gorm:"column:monthly_income"`
	MonthlyDebt   string    `gorm:"column:monthly_debt"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicantSQLite) TableName() string { return "applicants" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{}, &documentSQLite{},
		&contractSQLite{}, &paymentSQLite{}, &applicantSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
