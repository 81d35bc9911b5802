package notifier

import (
	"context"
	"log"

	"credit-engine/internal/domain/notify"
)

// LogNotifier is the default delivery collaborator: it just records the
// event. The engine treats delivery as fire-and-forget, so a real transport
// can be swapped in without touching any usecase.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) ApplicationEvent(_ context.Context, applicationID string, kind notify.EventKind) {
	log.Printf("notify: application=%s event=%s", applicationID, kind)
}

func (n *LogNotifier) ContractEvent(_ context.Context, contractID string, kind notify.EventKind) {
	log.Printf("notify: contract=%s event=%s", contractID, kind)
}
