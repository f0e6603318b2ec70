package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var (
	ErrAdvisoryBusy         = errors.New("advisory generation already in progress")
	ErrUnknownAdvisoryTopic = errors.New("unknown advisory topic")
	ErrAdvisoryUnavailable  = errors.New("advisory gateway not configured")
)

// Fixed texts shown when generation fails.
const (
	FallbackDashboard = "Não foi possível gerar insights no momento."
	FallbackFinancial = "Não foi possível gerar a análise financeira."
	FallbackReport    = "Não foi possível gerar o resumo."
	FallbackLessons   = "Não foi possível gerar sugestões no momento."
)

var advisoryFallbacks = map[entities.AdvisoryTopic]string{
	entities.AdvisoryTopicDashboard: FallbackDashboard,
	entities.AdvisoryTopicFinancial: FallbackFinancial,
	entities.AdvisoryTopicReport:    FallbackReport,
	entities.AdvisoryTopicLessons:   FallbackLessons,
}

// recentTransactionsInPrompt bounds the ledger excerpt sent for the financial analysis.
const recentTransactionsInPrompt = 10

// LessonRequest is the input of the lessons topic.
type LessonRequest struct {
	ClassProfile string `json:"class_profile" validate:"required"`
	Theme        string `json:"theme" validate:"required"`
}

type IAdvisoryUseCase interface {
	Get(ctx context.Context, topic entities.AdvisoryTopic) (entities.Insight, error)
	List(ctx context.Context) ([]entities.Insight, error)
	Generate(ctx context.Context, topic entities.AdvisoryTopic, lesson LessonRequest) (entities.Insight, error)
}

// AdvisoryUseCase keeps one Insight per topic. A failed generation is not an error
// for the caller: the returned Insight is marked failed and carries the fallback.
type AdvisoryUseCase struct {
	gateway   interfaces.IAdvisoryGateway
	dashboard IDashboardUseCase
	now       func() time.Time

	mu       sync.Mutex
	insights map[entities.AdvisoryTopic]entities.Insight
}

var _ IAdvisoryUseCase = (*AdvisoryUseCase)(nil)

// NewAdvisoryUseCase accepts a nil gateway; every generation then fails with the
// topic fallback.
func NewAdvisoryUseCase(gateway interfaces.IAdvisoryGateway, dashboard IDashboardUseCase, now func() time.Time) *AdvisoryUseCase {
	if now == nil {
		now = time.Now
	}
	insights := make(map[entities.AdvisoryTopic]entities.Insight, len(entities.AdvisoryTopics))
	for _, t := range entities.AdvisoryTopics {
		insights[t] = entities.Insight{Topic: t, Status: entities.InsightStatusIdle}
	}
	return &AdvisoryUseCase{gateway: gateway, dashboard: dashboard, now: now, insights: insights}
}

func (u *AdvisoryUseCase) Get(_ context.Context, topic entities.AdvisoryTopic) (entities.Insight, error) {
	if !topic.Valid() {
		return entities.Insight{}, ErrUnknownAdvisoryTopic
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.insights[topic], nil
}

func (u *AdvisoryUseCase) List(_ context.Context) ([]entities.Insight, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.Insight, 0, len(entities.AdvisoryTopics))
	for _, t := range entities.AdvisoryTopics {
		out = append(out, u.insights[t])
	}
	return out, nil
}

// Generate requests fresh text for topic. A second call while one is pending
// returns ErrAdvisoryBusy. The topic never stays pending after Generate returns.
func (u *AdvisoryUseCase) Generate(ctx context.Context, topic entities.AdvisoryTopic, lesson LessonRequest) (entities.Insight, error) {
	if !topic.Valid() {
		return entities.Insight{}, ErrUnknownAdvisoryTopic
	}
	if topic == entities.AdvisoryTopicLessons {
		if err := validateForm(lesson); err != nil {
			return entities.Insight{}, err
		}
	}

	if err := u.begin(topic); err != nil {
		return entities.Insight{}, err
	}

	text, err := u.generate(ctx, topic, lesson)
	if err != nil {
		log.Printf("[advisory][usecase] generate failed topic=%s err=%v", topic, err)
		return u.finish(topic, "", err), nil
	}
	log.Printf("[advisory][usecase] generated topic=%s chars=%d", topic, len(text))
	return u.finish(topic, text, nil), nil
}

func (u *AdvisoryUseCase) begin(topic entities.AdvisoryTopic) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	current := u.insights[topic]
	if current.Status == entities.InsightStatusPending {
		return ErrAdvisoryBusy
	}
	current.Status = entities.InsightStatusPending
	u.insights[topic] = current
	return nil
}

func (u *AdvisoryUseCase) finish(topic entities.AdvisoryTopic, text string, genErr error) entities.Insight {
	u.mu.Lock()
	defer u.mu.Unlock()
	current := u.insights[topic]
	current.UpdatedAt = u.now()
	if genErr != nil {
		current.Status = entities.InsightStatusFailed
		current.Message = advisoryFallbacks[topic]
	} else {
		current.Status = entities.InsightStatusReady
		current.Text = text
		current.Message = ""
	}
	u.insights[topic] = current
	return current
}

func (u *AdvisoryUseCase) generate(ctx context.Context, topic entities.AdvisoryTopic, lesson LessonRequest) (string, error) {
	if u.gateway == nil {
		return "", ErrAdvisoryUnavailable
	}
	prompt, err := u.prompt(ctx, topic, lesson)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}
	text, err := u.gateway.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty advisory response")
	}
	return text, nil
}

func (u *AdvisoryUseCase) prompt(ctx context.Context, topic entities.AdvisoryTopic, lesson LessonRequest) (string, error) {
	switch topic {
	case entities.AdvisoryTopicLessons:
		return LessonTopicsPrompt(lesson.ClassProfile, lesson.Theme), nil
	case entities.AdvisoryTopicFinancial:
		recent, err := u.dashboard.RecentTransactions(ctx, recentTransactionsInPrompt)
		if err != nil {
			return "", err
		}
		snap, err := u.dashboard.Snapshot(ctx)
		if err != nil {
			return "", err
		}
		return FinancialAnalysisPrompt(recent, snap.MonthlyFlow)
	}

	snap, err := u.dashboard.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	if topic == entities.AdvisoryTopicReport {
		return ReportSummaryPrompt(snap)
	}
	return DashboardInsightPrompt(snap)
}

func DashboardInsightPrompt(snap DashboardSnapshot) (string, error) {
	general, err := json.Marshal(map[string]any{
		"membros":      snap.Members,
		"financeiro":   snap.Finance,
		"eventos":      snap.Events,
		"celulas":      snap.Groups,
		"ebd":          snap.EBD,
		"congregacoes": snap.Congregations,
	})
	if err != nil {
		return "", err
	}
	growth, err := json.Marshal(snap.MemberGrowth)
	if err != nil {
		return "", err
	}
	social, err := json.Marshal(snap.Social)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Atue como um consultor estratégico de igreja. Analise os seguintes dados do dashboard e gere um insight curto e acionável (máximo 2 frases) sobre uma tendência positiva ou um ponto de atenção. Fale diretamente com o pastor.

Dados:
Estatísticas Gerais: %s
Crescimento de Membros: %s
Ação Social: %s`, general, growth, social), nil
}

func FinancialAnalysisPrompt(recent []entities.Transaction, monthly []MonthFlow) (string, error) {
	if len(recent) > recentTransactionsInPrompt {
		recent = recent[:recentTransactionsInPrompt]
	}
	txs, err := json.Marshal(recent)
	if err != nil {
		return "", err
	}
	flow, err := json.Marshal(monthly)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Atue como um consultor financeiro de igreja. Analise as transações recentes e o fluxo de caixa mensal. Gere uma análise curta (máximo 3 frases) identificando padrões de gastos ou oportunidades de economia.

Transações Recentes: %s
Fluxo de Caixa Mensal: %s`, txs, flow), nil
}

func ReportSummaryPrompt(snap DashboardSnapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Atue como um consultor de gestão eclesiástica. Analise os seguintes dados da igreja e gere um resumo executivo curto (máximo 3 frases) destacando crescimento, finanças e pontos de atenção. Use negrito para números importantes. Dados: %s", data), nil
}

func LessonTopicsPrompt(classProfile, theme string) string {
	return fmt.Sprintf(`Atue como um coordenador pedagógico de Escola Bíblica Dominical. Gere 3 sugestões de tópicos de aula para uma classe com o seguinte perfil: "%s". O tema geral é "%s". Para cada sugestão, inclua um título cativante e uma breve descrição de 1 frase. Retorne em formato de lista markdown.`,
		strings.TrimSpace(classProfile), strings.TrimSpace(theme))
}
