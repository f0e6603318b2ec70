package interfaces

import "context"

// IAdvisoryGateway abstracts the external text-generation provider (e.g. Gemini).
//
// The returned text is opaque prose meant for display only; callers never parse it.
type IAdvisoryGateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
