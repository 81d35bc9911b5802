package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row for the duration of the
	// surrounding transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	// GetByIDForUpdate locks by numeric primary key; contract servicing uses
	// it to advance the owning application inside its own transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	GetDraftByApplicantID(ctx context.Context, applicantID string) (*Application, error)
	Save(ctx context.Context, a *Application) error

	AddDocument(ctx context.Context, d *Document) error
	GetDocument(ctx context.Context, applicationID uint64, documentID string) (*Document, error)
	SaveDocument(ctx context.Context, d *Document) error
}
