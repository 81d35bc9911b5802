package uow

import (
	"context"

	"credit-engine/internal/domain/applicant"
	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/contract"
)

type Repos struct {
	Applications application.Repository
	Contracts    contract.Repository
	Payments     contract.PaymentRepository
	Applicants   applicant.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
	// convenience: lock the contract row first, then pass it in
	WithinContractTx(ctx context.Context, contractID string, fn func(r Repos, c *contract.Contract) error) error
}
