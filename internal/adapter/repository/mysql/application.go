package mysql

import (
	"context"

	appDomain "credit-engine/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Omit("Documents").Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Preload("Documents").
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Documents").
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *ApplicationRepository) GetDraftByApplicantID(ctx context.Context, applicantID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("applicant_id = ? AND status = ?", applicantID, appDomain.StatusDraft).
		Order("updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) AddDocument(ctx context.Context, d *appDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ApplicationRepository) GetDocument(ctx context.Context, applicationID uint64, documentID string) (*appDomain.Document, error) {
	var out appDomain.Document
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND document_id = ?", applicationID, documentID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) SaveDocument(ctx context.Context, d *appDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}
