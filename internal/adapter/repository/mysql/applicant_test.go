package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"credit-engine/pkg/id"
)

func TestApplicant_GetAndMarkVerified(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicantRepository(db)
	ctx := context.Background()

	applicantID := id.NewID32()
	seed := &applicantSQLite{
		ApplicantID:   applicantID,
		AccountType:   "personal",
		MonthlyIncome: "8000",
		MonthlyDebt:   "1000",
	}
	if err := db.Create(seed).Error; err != nil {
		t.Fatalf("seed applicant: %v", err)
	}

	got, err := repo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		t.Fatalf("GetByApplicantID: %v", err)
	}
	if got.AccountType != "personal" || got.IsVerified {
		t.Errorf("unexpected profile: %+v", got)
	}
	if got.MonthlyIncome.String() != "8000" {
		t.Errorf("monthly income = %s", got.MonthlyIncome)
	}

	if err := repo.MarkVerified(ctx, applicantID); err != nil {
		t.Fatalf("MarkVerified: %v", err)
	}
	got, err = repo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsVerified {
		t.Error("verification flag not persisted")
	}
}

func TestApplicant_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicantRepository(db)

	if _, err := repo.GetByApplicantID(context.Background(), id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
