package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainApplication "credit-engine/internal/domain/application"
	domainContract "credit-engine/internal/domain/contract"
	"credit-engine/internal/domain/uow"
	"credit-engine/internal/testutil/contractmock"
)

var testClock = func() time.Time { return time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func approvedApp() *domainApplication.Application {
	return &domainApplication.Application{
		ID:         42,
		LoanType:   "vehicle",
		Principal:  dec("12000"),
		RatePct:    dec("6"),
		TermMonths: 12,
		Status:     domainApplication.StatusApproved,
	}
}

func TestContractNumber(t *testing.T) {
	if got := ContractNumber(2026, 42); got != "CONT-2026-000042" {
		t.Fatalf("got %q", got)
	}
	if got := ContractNumber(2027, 1234567); got != "CONT-2027-1234567" {
		t.Fatalf("wide ids must not be truncated, got %q", got)
	}
}

func TestGenerate(t *testing.T) {
	contracts := &contractmock.Repo{}
	var created *domainContract.Contract
	contracts.CreateFn = func(ctx context.Context, c *domainContract.Contract) error {
		created = c
		return nil
	}
	r := uow.Repos{Contracts: contracts}

	g := NewGeneratorAt(testClock)
	c, err := g.Generate(context.Background(), r, approvedApp())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if created != c {
		t.Fatal("contract must be persisted through the transaction repos")
	}

	if c.ContractNumber != "CONT-2026-000042" {
		t.Errorf("number = %s", c.ContractNumber)
	}
	// schedule starts on the first day of the month after generation
	wantStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !c.StartDate.Equal(wantStart) {
		t.Errorf("start = %v, want %v", c.StartDate, wantStart)
	}
	if !c.EndDate.Equal(wantStart.AddDate(0, 11, 0)) {
		t.Errorf("end = %v", c.EndDate)
	}
	if len(c.Payments) != 12 {
		t.Fatalf("payments = %d, want 12", len(c.Payments))
	}
	if !c.MonthlyPayment.Equal(dec("1032.80")) {
		t.Errorf("monthly = %s, want 1032.80", c.MonthlyPayment)
	}
	if !c.RemainingPrincipal.Equal(dec("12000")) {
		t.Errorf("remaining = %s, want 12000", c.RemainingPrincipal)
	}
	if c.Status != domainContract.StatusGenerated {
		t.Errorf("status = %s", c.Status)
	}

	sum := decimal.Zero
	for i, p := range c.Payments {
		if p.Sequence != i+1 {
			t.Errorf("sequence %d at index %d", p.Sequence, i)
		}
		if p.Status != domainContract.PaymentPending {
			t.Errorf("payment %d status = %s", p.Sequence, p.Status)
		}
		if len(p.PaymentID) != 32 {
			t.Errorf("payment %d id = %q", p.Sequence, p.PaymentID)
		}
		sum = sum.Add(p.Principal)
	}
	if !sum.Equal(dec("12000")) {
		t.Errorf("principal parts sum = %s, want 12000", sum)
	}
	if !c.TotalAmount.GreaterThan(dec("12000")) {
		t.Errorf("total = %s must exceed principal", c.TotalAmount)
	}
}

func TestGenerate_Duplicate(t *testing.T) {
	contracts := &contractmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id uint64) (*domainContract.Contract, error) {
			return &domainContract.Contract{ApplicationID: id}, nil
		},
	}
	g := NewGeneratorAt(testClock)
	if _, err := g.Generate(context.Background(), uow.Repos{Contracts: contracts}, approvedApp()); !errors.Is(err, domainContract.ErrDuplicateContract) {
		t.Fatalf("expected ErrDuplicateContract, got %v", err)
	}
}

func TestGenerate_PersistFailure(t *testing.T) {
	contracts := &contractmock.Repo{
		CreateFn: func(ctx context.Context, c *domainContract.Contract) error {
			return errors.New("insert failed")
		},
	}
	g := NewGeneratorAt(testClock)
	if _, err := g.Generate(context.Background(), uow.Repos{Contracts: contracts}, approvedApp()); !errors.Is(err, domainContract.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGenerate_InvalidTerms(t *testing.T) {
	g := NewGeneratorAt(testClock)
	app := approvedApp()
	app.TermMonths = 0
	if _, err := g.Generate(context.Background(), uow.Repos{Contracts: &contractmock.Repo{}}, app); !errors.Is(err, domainContract.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}
