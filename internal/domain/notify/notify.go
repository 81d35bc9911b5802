package notify

import "context"

// EventKind identifies a lifecycle transition worth telling the outside world
// about. Delivery is fire-and-forget; the engine never depends on it
// succeeding and only calls it after the owning transaction committed.
type EventKind string

const (
	EventApplicationSubmitted  EventKind = "application.submitted"
	EventApplicationInReview   EventKind = "application.in_review"
	EventApplicationApproved   EventKind = "application.approved"
	EventApplicationRejected   EventKind = "application.rejected"
	EventDocumentsRequested    EventKind = "application.documents_requested"
	EventDocumentsResubmitted  EventKind = "application.documents_resubmitted"
	EventContractGenerated     EventKind = "contract.generated"
	EventContractSigned        EventKind = "contract.signed"
	EventContractSuspended     EventKind = "contract.suspended"
	EventContractReactivated   EventKind = "contract.reactivated"
	EventContractCompleted     EventKind = "contract.completed"
	EventPaymentReceived       EventKind = "payment.received"
	EventEarlyRepaymentSettled EventKind = "contract.early_repayment"
)

type Notifier interface {
	ApplicationEvent(ctx context.Context, applicationID string, kind EventKind)
	ContractEvent(ctx context.Context, contractID string, kind EventKind)
}
