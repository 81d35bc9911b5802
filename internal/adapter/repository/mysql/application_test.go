package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appDomain "credit-engine/internal/domain/application"
	"credit-engine/pkg/id"
)

func makeApplication(applicationID, applicantID string) *appDomain.Application {
	return &appDomain.Application{
		ApplicationID: applicationID,
		ApplicantID:   applicantID,
		LoanType:      "personal",
		Principal:     decimal.NewFromInt(5000),
		RatePct:       decimal.NewFromFloat(9.5),
		TermMonths:    24,
		Purpose:       "debt consolidation",
		Status:        appDomain.StatusDraft,
		Snapshot:      appDomain.Snapshot{"employer": "Acme"},
	}
}

func TestApplication_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	appID := id.NewID32()
	applicant := id.NewID32()

	a := makeApplication(appID, applicant)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.ApplicantID != applicant || got.Status != appDomain.StatusDraft {
		t.Errorf("unexpected application: %+v", got)
	}
	if !got.Principal.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("principal = %s", got.Principal)
	}
	if got.Snapshot["employer"] != "Acme" {
		t.Errorf("snapshot not round-tripped: %v", got.Snapshot)
	}
}

func TestApplication_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)

	_, err := repo.GetByApplicationID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestApplication_GetByIDForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		got, err := NewApplicationRepository(tx).GetByIDForUpdate(ctx, a.ID)
		if err != nil {
			return err
		}
		if got.ApplicationID != a.ApplicationID {
			t.Errorf("application_id = %s, want %s", got.ApplicationID, a.ApplicationID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	if _, err := repo.GetByIDForUpdate(ctx, 999999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestApplication_SaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a.Status = appDomain.StatusSubmitted
	a.Purpose = "updated purpose"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != appDomain.StatusSubmitted || got.Purpose != "updated purpose" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestApplication_GetDraftByApplicantID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	applicant := id.NewID32()

	old := makeApplication(id.NewID32(), applicant)
	old.Status = appDomain.StatusRejected
	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("seed rejected: %v", err)
	}
	draft := makeApplication(id.NewID32(), applicant)
	if err := repo.Create(ctx, draft); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	got, err := repo.GetDraftByApplicantID(ctx, applicant)
	if err != nil {
		t.Fatalf("GetDraftByApplicantID: %v", err)
	}
	if got.ApplicationID != draft.ApplicationID {
		t.Errorf("got %s, want the draft %s", got.ApplicationID, draft.ApplicationID)
	}
}

func TestApplication_Documents(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	doc := &appDomain.Document{
		DocumentID:    id.NewID32(),
		ApplicationID: a.ID,
		Kind:          "identity",
		FileName:      "passport.pdf",
	}
	if err := repo.AddDocument(ctx, doc); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	// preloaded on the application getter
	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if len(got.Documents) != 1 || got.Documents[0].Kind != "identity" {
		t.Fatalf("documents not preloaded: %+v", got.Documents)
	}

	// single-document getter and verification round-trip
	d, err := repo.GetDocument(ctx, a.ID, doc.DocumentID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	d.Verified = true
	if err := repo.SaveDocument(ctx, d); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	d2, err := repo.GetDocument(ctx, a.ID, doc.DocumentID)
	if err != nil {
		t.Fatalf("reload document: %v", err)
	}
	if !d2.Verified {
		t.Error("verification flag not persisted")
	}

	// wrong application never sees the document
	if _, err := repo.GetDocument(ctx, a.ID+1, doc.DocumentID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
