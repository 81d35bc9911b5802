package applicantmock

import (
	"context"

	domain "credit-engine/internal/domain/applicant"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByApplicantIDFn func(ctx context.Context, applicantID string) (*domain.Profile, error)
	MarkVerifiedFn     func(ctx context.Context, applicantID string) error
}

func (m *Repo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Profile, error) {
	if m.GetByApplicantIDFn != nil {
		return m.GetByApplicantIDFn(ctx, applicantID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) MarkVerified(ctx context.Context, applicantID string) error {
	if m.MarkVerifiedFn != nil {
		return m.MarkVerifiedFn(ctx, applicantID)
	}
	return nil
}
