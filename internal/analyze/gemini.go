// gemini.go — Gemini-backed text generation.
package analyze

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// generationModel is the Gemini model used for report analysis.
const generationModel = "gemini-2.5-flash"

// New builds an Analyzer backed by the Gemini API. It never fails: without
// an API key, or when the client cannot be constructed, the analyzer comes
// up in degraded mode and Summarize returns MsgUnavailable.
func New(ctx context.Context, apiKey string, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	if apiKey == "" {
		return newAnalyzer(nil, log)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Warn("gemini client init failed, analysis disabled", zap.Error(err))
		return newAnalyzer(nil, log)
	}
	return newAnalyzer(&geminiGenerator{client: client}, log)
}

type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, generationModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
