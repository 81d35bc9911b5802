package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainApplication "credit-engine/internal/domain/application"
	domainContract "credit-engine/internal/domain/contract"
	"credit-engine/internal/domain/uow"
	"credit-engine/pkg/amortization"
	"credit-engine/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Generator materializes a contract plus its payment schedule from an
// approved application. It always runs inside the caller's transaction so a
// half-written schedule can never survive.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator { return &Generator{now: func() time.Time { return time.Now().UTC() }} }

// NewGeneratorAt pins the clock, for tests.
func NewGeneratorAt(now func() time.Time) *Generator { return &Generator{now: now} }

// ContractNumber is deterministic per application, so regeneration attempts
// collide on the unique index instead of minting a second number.
func ContractNumber(year int, applicationPK uint64) string {
	return fmt.Sprintf("CONT-%d-%06d", year, applicationPK)
}

// Generate creates the contract and its schedule for app using the repos of
// the enclosing transaction. Fails with ErrDuplicateContract when a contract
// already exists for the application.
func (g *Generator) Generate(ctx context.Context, r uow.Repos, app *domainApplication.Application) (*domainContract.Contract, error) {
	existing, err := r.Contracts.GetByApplicationID(ctx, app.ID)
	switch {
	case err == nil && existing != nil:
		return nil, domainContract.ErrDuplicateContract
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, domainContract.ErrNotFound):
		return nil, err
	}

	now := g.now()
	// First day of the month following generation.
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	schedule, err := amortization.Schedule(app.Principal, app.RatePct, app.TermMonths, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainContract.ErrGeneration, err)
	}

	total := decimal.Zero
	payments := make([]domainContract.Payment, 0, len(schedule))
	for _, inst := range schedule {
		total = total.Add(inst.Total)
		payments = append(payments, domainContract.Payment{
			PaymentID: id.NewID32(),
			Sequence:  inst.Sequence,
			DueDate:   inst.DueDate,
			Total:     inst.Total,
			Principal: inst.Principal,
			Interest:  inst.Interest,
			Status:    domainContract.PaymentPending,
		})
	}

	monthly, err := amortization.MonthlyPayment(app.Principal, app.RatePct, app.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainContract.ErrGeneration, err)
	}

	c := &domainContract.Contract{
		ContractID:         id.NewID32(),
		ContractNumber:     ContractNumber(now.Year(), app.ID),
		ApplicationID:      app.ID,
		Principal:          app.Principal,
		RatePct:            app.RatePct,
		TermMonths:         app.TermMonths,
		MonthlyPayment:     monthly,
		TotalAmount:        total,
		StartDate:          start,
		EndDate:            start.AddDate(0, app.TermMonths-1, 0),
		Status:             domainContract.StatusGenerated,
		RemainingPrincipal: app.Principal,
		Payments:           payments,
	}

	if err := r.Contracts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %v", domainContract.ErrGeneration, err)
	}
	return c, nil
}
