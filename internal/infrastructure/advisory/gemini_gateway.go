package advisory

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")
var ErrEmptyGeminiResponse = errors.New("gemini returned no text")

const mockAdvisoryText = "**Modo demonstração:** os dados mostram uma igreja estável. " +
	"Acompanhe as despesas **pendentes** e valorize o crescimento da **EBD**."

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Mock    bool
}

type GeminiGateway struct {
	models   contentGenerator
	model    string
	timeout  time.Duration
	mockMode bool
}

func NewGeminiGateway(ctx context.Context, cfg GeminiConfig) (*GeminiGateway, error) {
	if cfg.Mock {
		log.Printf("[advisory][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}

	if cfg.APIKey == "" {
		log.Printf("[advisory][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[advisory][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[advisory][gateway] Gemini client initialized model=%s", cfg.Model)

	return newGeminiGateway(client.Models, cfg.Model, cfg.Timeout), nil
}

func newGeminiGateway(models contentGenerator, model string, timeout time.Duration) *GeminiGateway {
	return &GeminiGateway{models: models, model: model, timeout: timeout}
}

// Generate sends prompt as a single user turn and returns the concatenated text.
func (g *GeminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[advisory][gateway] mock generate prompt_len=%d", len(prompt))
		return mockAdvisoryText, nil
	}

	if g == nil || g.models == nil {
		log.Printf("[advisory][gateway] gateway not configured")
		return "", ErrGeminiGatewayNotConfigured
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	log.Printf("[advisory][gateway] generate start model=%s prompt_len=%d", g.model, len(prompt))
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[advisory][gateway] sdk generate failed err=%v", err)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		log.Printf("[advisory][gateway] empty response")
		return "", ErrEmptyGeminiResponse
	}
	log.Printf("[advisory][gateway] generate success chars=%d", len(text))
	return text, nil
}
