package interfaces

import "context"

// Notification is a single e-mail sent to roster volunteers.
type Notification struct {
	To      []string
	Subject string
	HTML    string
}

// INotifier abstracts e-mail delivery (Resend, or a logging no-op in development).
type INotifier interface {
	Send(ctx context.Context, n Notification) (messageID string, err error)
}
