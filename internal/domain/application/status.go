package application

type Status string

const (
	StatusDraft              Status = "draft"
	StatusSubmitted          Status = "submitted"
	StatusUnderReview        Status = "under_review"
	StatusDocumentsRequested Status = "documents_requested"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
	StatusContractGenerated  Status = "contract_generated"
	StatusActive             Status = "active"
	StatusCompleted          Status = "completed"
)

// transitions is the whole lifecycle as data. Every mutating operation on an
// application consults this table; anything not listed is ErrInvalidTransition.
var transitions = map[Status][]Status{
	StatusDraft:              {StatusSubmitted},
	StatusSubmitted:          {StatusUnderReview, StatusApproved, StatusRejected},
	StatusUnderReview:        {StatusApproved, StatusRejected, StatusDocumentsRequested},
	StatusDocumentsRequested: {StatusUnderReview},
	StatusApproved:           {StatusContractGenerated},
	StatusContractGenerated:  {StatusActive},
	StatusActive:             {StatusCompleted},
	StatusRejected:           {},
	StatusCompleted:          {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextPossible returns a copy of the allowed successor states.
func (s Status) NextPossible() []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

func (s Status) IsTerminal() bool { return len(transitions[s]) == 0 }

// ApplicantMutable reports whether the applicant may still edit the
// application's fields. Once submitted it belongs to the reviewers.
func (s Status) ApplicantMutable() bool { return s == StatusDraft }
