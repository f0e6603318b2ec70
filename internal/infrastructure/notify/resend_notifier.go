package notify

import (
	"context"
	"errors"
	"log"

	"gestao_igreja/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier delivers roster notifications through the Resend API.
type ResendNotifier struct {
	emails emailSender
	from   string
}

var _ interfaces.INotifier = (*ResendNotifier)(nil)

func NewResendNotifier(apiKey, from string) (*ResendNotifier, error) {
	if apiKey == "" {
		log.Printf("[notify][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	client := resend.NewClient(apiKey)
	log.Printf("[notify][resend] client initialized from=%q", from)
	return &ResendNotifier{emails: client.Emails, from: from}, nil
}

func (n *ResendNotifier) Send(ctx context.Context, msg interfaces.Notification) (string, error) {
	log.Printf("[notify][resend] send start recipients=%d", len(msg.To))
	resp, err := n.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		log.Printf("[notify][resend] send failed err=%v", err)
		return "", err
	}
	log.Printf("[notify][resend] send success message_id=%s", resp.Id)
	return resp.Id, nil
}
