package response

import (
	"time"

	"gestao_igreja/internal/domain/entities"
)

// InsightResponse exposes the stored text verbatim plus its rendered HTML.
// Display is what a client should show: the fallback message after a failure.
type InsightResponse struct {
	Topic       string     `json:"topic"`
	Status      string     `json:"status"`
	Text        string     `json:"text"`
	HTML        string     `json:"html"`
	Display     string     `json:"display"`
	DisplayHTML string     `json:"display_html"`
	Message     string     `json:"message,omitempty"`
	Generating  bool       `json:"generating"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// FromInsight renders with render; a render failure leaves the HTML fields empty.
func FromInsight(i entities.Insight, render func(string) (string, error)) InsightResponse {
	resp := InsightResponse{
		Topic:      string(i.Topic),
		Status:     string(i.Status),
		Text:       i.Text,
		Display:    i.Display(),
		Message:    i.Message,
		Generating: i.Status == entities.InsightStatusPending,
	}
	if !i.UpdatedAt.IsZero() {
		at := i.UpdatedAt
		resp.UpdatedAt = &at
	}
	if render != nil {
		if html, err := render(i.Text); err == nil {
			resp.HTML = html
		}
		if html, err := render(resp.Display); err == nil {
			resp.DisplayHTML = html
		}
	}
	return resp
}
