package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainApplicant "credit-engine/internal/domain/applicant"
	domain "credit-engine/internal/domain/application"
	domainContract "credit-engine/internal/domain/contract"
	"credit-engine/internal/domain/notify"
	"credit-engine/internal/domain/risk"
	"credit-engine/internal/domain/uow"
	contractuc "credit-engine/internal/usecase/contract"
	"credit-engine/pkg/amortization"
	"credit-engine/pkg/id"

	"gorm.io/gorm"
)

// Usecase drives the application lifecycle. Every transition runs in one
// transaction; collaborators that may fail independently (notifications) are
// only invoked after commit.
type Usecase struct {
	repo       domain.Repository
	applicants domainApplicant.Repository
	uow        uow.UnitOfWork
	generator  *contractuc.Generator
	notifier   notify.Notifier
	now        func() time.Time
}

func NewUsecase(repo domain.Repository, applicants domainApplicant.Repository, tx uow.UnitOfWork, gen *contractuc.Generator, n notify.Notifier) *Usecase {
	return &Usecase{
		repo:       repo,
		applicants: applicants,
		uow:        tx,
		generator:  gen,
		notifier:   n,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock pins the clock, for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) CreateDraft(ctx context.Context, in CreateDraftInput) (*ApplicationDTO, error) {
	if in.ApplicantID == "" || len(in.ApplicantID) != 32 {
		return nil, fmt.Errorf("%w: applicant_id must be 32-char hex", domain.ErrValidation)
	}
	if _, err := domain.LoanTypeByCode(in.LoanType); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !in.Principal.IsPositive() {
		return nil, fmt.Errorf("%w: principal must be positive", domain.ErrValidation)
	}
	if in.TermMonths < 1 {
		return nil, fmt.Errorf("%w: term must be at least one month", domain.ErrValidation)
	}
	// One open draft per applicant; edits go through the existing one.
	if existing, err := u.repo.GetDraftByApplicantID(ctx, in.ApplicantID); err == nil {
		return nil, fmt.Errorf("%w: applicant already has draft application %s",
			domain.ErrValidation, existing.ApplicationID)
	} else if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := &domain.Application{
		ApplicationID: id.NewID32(),
		ApplicantID:   in.ApplicantID,
		LoanType:      in.LoanType,
		Principal:     in.Principal,
		TermMonths:    in.TermMonths,
		Purpose:       in.Purpose,
		Snapshot:      in.Snapshot,
		Status:        domain.StatusDraft,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := toDTO(a)
	return &dto, nil
}

// UpdateDraft applies applicant edits. Only DRAFT applications are mutable by
// the applicant; anything later belongs to the reviewers.
func (u *Usecase) UpdateDraft(ctx context.Context, applicationID string, in UpdateDraftInput, actor string) (*ApplicationDTO, error) {
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.ApplicantID != actor {
			return fmt.Errorf("%w: only the applicant may edit a draft", domain.ErrValidation)
		}
		if !a.Status.ApplicantMutable() {
			return domain.ErrInvalidTransition
		}
		if in.Principal != nil {
			if !in.Principal.IsPositive() {
				return fmt.Errorf("%w: principal must be positive", domain.ErrValidation)
			}
			a.Principal = *in.Principal
		}
		if in.TermMonths != nil {
			if *in.TermMonths < 1 {
				return fmt.Errorf("%w: term must be at least one month", domain.ErrValidation)
			}
			a.TermMonths = *in.TermMonths
		}
		if in.Purpose != nil {
			a.Purpose = *in.Purpose
		}
		if in.Snapshot != nil {
			a.Snapshot = in.Snapshot
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Submit validates the request against its loan type and the applicant's
// account type, then moves DRAFT to SUBMITTED.
func (u *Usecase) Submit(ctx context.Context, applicationID string, actor string) (*ApplicationDTO, error) {
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if !a.Status.CanTransitionTo(domain.StatusSubmitted) {
			return domain.ErrInvalidTransition
		}
		lt, err := domain.LoanTypeByCode(a.LoanType)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if strings.TrimSpace(a.Purpose) == "" {
			return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
		}
		if !lt.AmountInBounds(a.Principal) {
			return fmt.Errorf("%w: principal outside loan type bounds [%s, %s]",
				domain.ErrValidation, lt.MinAmount, lt.MaxAmount)
		}
		if !lt.TermInBounds(a.TermMonths) {
			return fmt.Errorf("%w: term outside loan type bounds [%d, %d] months",
				domain.ErrValidation, lt.MinTermMonths, lt.MaxTermMonths)
		}

		profile, err := r.Applicants.GetByApplicantID(ctx, a.ApplicantID)
		if err != nil {
			return fmt.Errorf("%w: unknown applicant", domain.ErrValidation)
		}
		if !lt.AllowsAccountType(profile.AccountType) {
			return fmt.Errorf("%w: account type %q may not apply for %s",
				domain.ErrValidation, profile.AccountType, lt.Code)
		}

		// Rate is fixed at submission from the product default unless a
		// reviewer overrides it at approval time.
		a.RatePct = lt.DefaultRatePct
		if err := a.Transition(domain.StatusSubmitted); err != nil {
			return err
		}
		now := u.now()
		a.SubmittedAt = &now
		a.SubmittedBy = actor
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, dto.ApplicationID, notify.EventApplicationSubmitted)
	return &dto, nil
}

func (u *Usecase) BeginReview(ctx context.Context, applicationID string, actor string) (*ApplicationDTO, error) {
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusSubmitted {
			return domain.ErrInvalidTransition
		}
		if err := a.Transition(domain.StatusUnderReview); err != nil {
			return err
		}
		now := u.now()
		a.ReviewedAt = &now
		a.ReviewedBy = actor
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, dto.ApplicationID, notify.EventApplicationInReview)
	return &dto, nil
}

// Approve recomputes the payment terms, marks the application approved and
// generates the contract with its schedule, all inside one transaction. A
// generation failure rolls the approval back; the application is left exactly
// as it was.
func (u *Usecase) Approve(ctx context.Context, applicationID string, terms ApproveTerms, actor string) (*ApprovalDTO, error) {
	var out ApprovalDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusSubmitted && a.Status != domain.StatusUnderReview {
			return domain.ErrInvalidTransition
		}
		if a.RejectedAt != nil {
			return domain.ErrInvalidTransition
		}

		lt, err := domain.LoanTypeByCode(a.LoanType)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if err := applyTerms(a, lt, terms); err != nil {
			return err
		}
		if !a.DocumentsComplete(lt.RequiredDocs) {
			return fmt.Errorf("%w: required documents incomplete", domain.ErrValidation)
		}

		monthly, err := amortization.MonthlyPayment(a.Principal, a.RatePct, a.TermMonths)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		total, err := amortization.TotalRepayable(a.Principal, a.RatePct, a.TermMonths, u.now())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		a.MonthlyPayment = monthly
		a.TotalRepayable = total

		if err := a.Transition(domain.StatusApproved); err != nil {
			return err
		}
		now := u.now()
		a.ApprovedAt = &now
		a.DecidedBy = actor

		c, err := u.generator.Generate(ctx, r, a)
		if err != nil {
			if errors.Is(err, domainContract.ErrDuplicateContract) {
				return err
			}
			return fmt.Errorf("%w: %v", domainContract.ErrGeneration, err)
		}

		if err := a.Transition(domain.StatusContractGenerated); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		out = ApprovalDTO{
			Application:    toDTO(a),
			ContractID:     c.ContractID,
			ContractNumber: c.ContractNumber,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, out.Application.ApplicationID, notify.EventApplicationApproved)
	u.notifier.ContractEvent(ctx, out.ContractID, notify.EventContractGenerated)
	return &out, nil
}

func (u *Usecase) Reject(ctx context.Context, applicationID string, reason string, actor string) (*ApplicationDTO, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusSubmitted && a.Status != domain.StatusUnderReview {
			return domain.ErrInvalidTransition
		}
		if a.ApprovedAt != nil {
			return domain.ErrInvalidTransition
		}
		if err := a.Transition(domain.StatusRejected); err != nil {
			return err
		}
		now := u.now()
		a.RejectedAt = &now
		a.RejectionReason = reason
		a.DecidedBy = actor
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, dto.ApplicationID, notify.EventApplicationRejected)
	return &dto, nil
}

// RequestDocuments sends the application back to the applicant for missing
// paperwork. The requested kinds are recorded in the snapshot for the
// applicant-facing surface to display.
func (u *Usecase) RequestDocuments(ctx context.Context, applicationID string, kinds []string, actor string) (*ApplicationDTO, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: at least one document kind is required", domain.ErrValidation)
	}
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusUnderReview {
			return domain.ErrInvalidTransition
		}
		if err := a.Transition(domain.StatusDocumentsRequested); err != nil {
			return err
		}
		if a.Snapshot == nil {
			a.Snapshot = domain.Snapshot{}
		}
		a.Snapshot["requested_documents"] = strings.Join(kinds, ",")
		a.ReviewedBy = actor
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, dto.ApplicationID, notify.EventDocumentsRequested)
	return &dto, nil
}

func (u *Usecase) ResubmitDocuments(ctx context.Context, applicationID string, actor string) (*ApplicationDTO, error) {
	var dto ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status != domain.StatusDocumentsRequested {
			return domain.ErrInvalidTransition
		}
		if a.ApplicantID != actor {
			return fmt.Errorf("%w: only the applicant may resubmit", domain.ErrValidation)
		}
		if err := a.Transition(domain.StatusUnderReview); err != nil {
			return err
		}
		delete(a.Snapshot, "requested_documents")
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.notifier.ApplicationEvent(ctx, dto.ApplicationID, notify.EventDocumentsResubmitted)
	return &dto, nil
}

// AttachDocument is allowed while the applicant can still act on the file:
// drafting, submitted, or answering a document request.
func (u *Usecase) AttachDocument(ctx context.Context, applicationID string, in AttachDocumentInput, actor string) (*DocumentDTO, error) {
	if in.Kind == "" || in.FileName == "" {
		return nil, fmt.Errorf("%w: kind and file_name are required", domain.ErrValidation)
	}
	var dto DocumentDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		switch a.Status {
		case domain.StatusDraft, domain.StatusSubmitted, domain.StatusDocumentsRequested:
		default:
			return domain.ErrInvalidTransition
		}
		if a.ApplicantID != actor {
			return fmt.Errorf("%w: only the applicant may attach documents", domain.ErrValidation)
		}
		d := &domain.Document{
			DocumentID:    id.NewID32(),
			ApplicationID: a.ID,
			Kind:          in.Kind,
			FileName:      in.FileName,
		}
		if err := r.Applications.AddDocument(ctx, d); err != nil {
			return err
		}
		dto = toDocumentDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// VerifyDocument records a reviewer's verification. When it clears the last
// unverified document of the application, the applicant's global verification
// flag is flipped (the identity collaborator callback).
func (u *Usecase) VerifyDocument(ctx context.Context, applicationID, documentID string, actor string) (*DocumentDTO, error) {
	var dto DocumentDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		d, err := r.Applications.GetDocument(ctx, a.ID, documentID)
		if err != nil {
			return err
		}
		if d.Verified {
			return nil // idempotent
		}
		now := u.now()
		d.Verified = true
		d.VerifiedBy = actor
		d.VerifiedAt = &now
		if err := r.Applications.SaveDocument(ctx, d); err != nil {
			return err
		}

		allVerified := true
		for i := range a.Documents {
			if a.Documents[i].DocumentID == d.DocumentID {
				continue
			}
			if !a.Documents[i].Verified {
				allVerified = false
				break
			}
		}
		if allVerified {
			if err := r.Applicants.MarkVerified(ctx, a.ApplicantID); err != nil {
				return err
			}
		}
		dto = toDocumentDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(a)
	return &dto, nil
}

// Score computes the advisory risk score for reviewers.
func (u *Usecase) Score(ctx context.Context, applicationID string) (*risk.Result, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	lt, err := domain.LoanTypeByCode(a.LoanType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	profile, err := u.applicants.GetByApplicantID(ctx, a.ApplicantID)
	if err != nil {
		return nil, domainApplicant.ErrNotFound
	}

	res := risk.Score(risk.Input{
		IdentityVerified:  profile.IsVerified,
		DocumentsComplete: a.DocumentsComplete(lt.RequiredDocs),
		MonthlyIncome:     profile.MonthlyIncome,
		MonthlyDebt:       profile.MonthlyDebt,
		AnnualIncome:      profile.AnnualIncome(),
		RequestedAmount:   a.Principal,
	})
	return &res, nil
}

func applyTerms(a *domain.Application, lt domain.LoanType, terms ApproveTerms) error {
	if terms.Principal != nil {
		if !lt.AmountInBounds(*terms.Principal) {
			return fmt.Errorf("%w: override principal outside loan type bounds", domain.ErrValidation)
		}
		a.Principal = *terms.Principal
	}
	if terms.TermMonths != nil {
		if !lt.TermInBounds(*terms.TermMonths) {
			return fmt.Errorf("%w: override term outside loan type bounds", domain.ErrValidation)
		}
		a.TermMonths = *terms.TermMonths
	}
	if terms.RatePct != nil {
		if terms.RatePct.IsNegative() {
			return fmt.Errorf("%w: override rate must not be negative", domain.ErrValidation)
		}
		a.RatePct = *terms.RatePct
	}
	return nil
}
