package advisory

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"
)

type fakeModels struct {
	gotModel  string
	gotPrompt string
	deadline  bool
	resp      *genai.GenerateContentResponse
	err       error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	_, f.deadline = ctx.Deadline()
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func TestNewGeminiGateway(t *testing.T) {
	t.Run("mock mode needs no key", func(t *testing.T) {
		g, err := NewGeminiGateway(context.Background(), GeminiConfig{Mock: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := g.Generate(context.Background(), "qualquer")
		if err != nil || text != mockAdvisoryText {
			t.Fatalf("unexpected mock result: %q %v", text, err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := NewGeminiGateway(context.Background(), GeminiConfig{}); !errors.Is(err, ErrMissingGeminiAPIKey) {
			t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
		}
	})
}

func TestGeminiGateway_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns trimmed text", func(t *testing.T) {
		fake := &fakeModels{resp: textResponse("  Insight **forte**.\n")}
		g := newGeminiGateway(fake, "gemini-2.0-flash", 0)

		text, err := g.Generate(ctx, "prompt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Insight **forte**." {
			t.Fatalf("unexpected text %q", text)
		}
		if fake.gotModel != "gemini-2.0-flash" || fake.gotPrompt != "prompt" {
			t.Fatalf("unexpected request: %q %q", fake.gotModel, fake.gotPrompt)
		}
		if fake.deadline {
			t.Fatalf("no deadline expected without timeout")
		}
	})

	t.Run("applies timeout", func(t *testing.T) {
		fake := &fakeModels{resp: textResponse("ok")}
		g := newGeminiGateway(fake, "m", time.Second)
		if _, err := g.Generate(ctx, "prompt"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fake.deadline {
			t.Fatalf("expected a deadline on the context")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := newGeminiGateway(&fakeModels{err: errors.New("quota")}, "m", 0)
		if _, err := g.Generate(ctx, "prompt"); err == nil || err.Error() != "quota" {
			t.Fatalf("expected quota error, got %v", err)
		}
	})

	t.Run("empty response", func(t *testing.T) {
		g := newGeminiGateway(&fakeModels{resp: &genai.GenerateContentResponse{}}, "m", 0)
		if _, err := g.Generate(ctx, "prompt"); !errors.Is(err, ErrEmptyGeminiResponse) {
			t.Fatalf("expected ErrEmptyGeminiResponse, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *GeminiGateway
		if _, err := g.Generate(ctx, "prompt"); !errors.Is(err, ErrGeminiGatewayNotConfigured) {
			t.Fatalf("expected ErrGeminiGatewayNotConfigured, got %v", err)
		}
	})
}
