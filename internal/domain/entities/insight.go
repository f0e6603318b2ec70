package entities

import "time"

type AdvisoryTopic string

const (
	AdvisoryTopicDashboard AdvisoryTopic = "dashboard"
	AdvisoryTopicFinancial AdvisoryTopic = "financial"
	AdvisoryTopicReport    AdvisoryTopic = "report"
	AdvisoryTopicLessons   AdvisoryTopic = "lessons"
)

// AdvisoryTopics lists every topic in display order.
var AdvisoryTopics = []AdvisoryTopic{
	AdvisoryTopicDashboard,
	AdvisoryTopicFinancial,
	AdvisoryTopicReport,
	AdvisoryTopicLessons,
}

func (t AdvisoryTopic) Valid() bool {
	for _, known := range AdvisoryTopics {
		if t == known {
			return true
		}
	}
	return false
}

type InsightStatus string

const (
	InsightStatusIdle    InsightStatus = "idle"
	InsightStatusPending InsightStatus = "pending"
	InsightStatusReady   InsightStatus = "ready"
	InsightStatusFailed  InsightStatus = "failed"
)

// Insight is the last advisory text produced for a topic. Text survives a failed
// attempt; Message then carries the fallback shown instead.
type Insight struct {
	Topic     AdvisoryTopic `json:"topic"`
	Status    InsightStatus `json:"status"`
	Text      string        `json:"text"`
	Message   string        `json:"message,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Display is what the user sees: the fallback message after a failure, the text otherwise.
func (i Insight) Display() string {
	if i.Status == InsightStatusFailed && i.Message != "" {
		return i.Message
	}
	return i.Text
}
