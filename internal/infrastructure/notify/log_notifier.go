package notify

import (
	"context"
	"log"
	"strings"

	"gestao_igreja/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LogNotifier only logs the notification. It is used when no e-mail provider is
// configured so the notify flow still works in development.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Send(_ context.Context, msg interfaces.Notification) (string, error) {
	id := "log-" + uuid.NewString()
	log.Printf("[notify][log] message_id=%s to=%s subject=%q", id, strings.Join(msg.To, ","), msg.Subject)
	return id, nil
}

// New returns a Resend notifier when apiKey is set, LogNotifier otherwise.
func New(apiKey, from string) interfaces.INotifier {
	if apiKey == "" {
		log.Printf("[notify] RESEND_API_KEY not set, notifications will only be logged")
		return LogNotifier{}
	}
	n, err := NewResendNotifier(apiKey, from)
	if err != nil {
		return LogNotifier{}
	}
	return n
}
