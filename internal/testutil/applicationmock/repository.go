package applicationmock

import (
	"context"

	domain "credit-engine/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields you need in a test; unfilled getters report
// not-found, unfilled writers succeed.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByIDForUpdateFn            func(ctx context.Context, id uint64) (*domain.Application, error)
	GetDraftByApplicantIDFn       func(ctx context.Context, applicantID string) (*domain.Application, error)
	SaveFn                        func(ctx context.Context, a *domain.Application) error

	AddDocumentFn  func(ctx context.Context, d *domain.Document) error
	GetDocumentFn  func(ctx context.Context, applicationID uint64, documentID string) (*domain.Document, error)
	SaveDocumentFn func(ctx context.Context, d *domain.Document) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetDraftByApplicantID(ctx context.Context, applicantID string) (*domain.Application, error) {
	if m.GetDraftByApplicantIDFn != nil {
		return m.GetDraftByApplicantIDFn(ctx, applicantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) AddDocument(ctx context.Context, d *domain.Document) error {
	if m.AddDocumentFn != nil {
		return m.AddDocumentFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetDocument(ctx context.Context, applicationID uint64, documentID string) (*domain.Document, error) {
	if m.GetDocumentFn != nil {
		return m.GetDocumentFn(ctx, applicationID, documentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SaveDocument(ctx context.Context, d *domain.Document) error {
	if m.SaveDocumentFn != nil {
		return m.SaveDocumentFn(ctx, d)
	}
	return nil
}
