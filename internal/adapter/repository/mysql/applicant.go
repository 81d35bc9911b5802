package mysql

import (
	"context"

	applicantDomain "credit-engine/internal/domain/applicant"

	"gorm.io/gorm"
)

type ApplicantRepository struct{ db *gorm.DB }

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) GetByApplicantID(ctx context.Context, applicantID string) (*applicantDomain.Profile, error) {
	var out applicantDomain.Profile
	res := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicantRepository) MarkVerified(ctx context.Context, applicantID string) error {
	return r.db.WithContext(ctx).
		Model(&applicantDomain.Profile{}).
		Where("applicant_id = ?", applicantID).
		Update("is_verified", true).Error
}
