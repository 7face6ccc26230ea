// Package advisor fetches an optional paragraph of generated planning
// advice. Every failure is folded into an Unavailable result.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/config"
)

// MaxOutputTokens caps the length of the generated suggestion.
const MaxOutputTokens int32 = 200

// Reasons recorded on Unavailable results.
const (
	ReasonNotConfigured = "advisor not configured"
	ReasonEmpty         = "empty response"
)

// Generator sends a single prompt to a text model.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int32) (string, error)
}

// Advisor wraps an optional Generator.
type Advisor struct {
	gen    Generator
	logger *zap.Logger
}

// New builds an advisor backed by Gemini when cfg carries a key. Without a
// key, or if the client cannot be built, the advisor is still usable and
// reports every suggestion as unavailable.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.AdvisoryConfigured() {
		logger.Info("advisory text disabled: GEMINI_API_KEY not set")
		return &Advisor{logger: logger}
	}

	gen, err := NewGeminiGenerator(ctx, GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		logger.Warn("advisory text disabled", zap.Error(err))
		return &Advisor{logger: logger}
	}

	logger.Info("advisory text enabled", zap.String("model", gen.Model()))
	return &Advisor{gen: gen, logger: logger}
}

// NewWithGenerator builds an advisor around gen. A nil gen gives an
// advisor that is never available.
func NewWithGenerator(gen Generator, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{gen: gen, logger: logger}
}

// Available reports whether Suggest can ever return text.
func (a *Advisor) Available() bool {
	return a != nil && a.gen != nil
}

// BuildPrompt is the text sent to the model for the user's notes.
func BuildPrompt(notes string) string {
	return "Create a balanced weekly plan. User routine: " + notes
}

// Suggest makes at most one model call for notes. It never returns an
// error and never panics.
func (a *Advisor) Suggest(ctx context.Context, notes string) (res Result) {
	if !a.Available() {
		return Unavailable(ReasonNotConfigured)
	}

	defer func() {
		if p := recover(); p != nil {
			res = Unavailable(fmt.Sprintf("generator panic: %v", p))
		}
		if !res.OK() {
			a.logger.Warn("advisory text unavailable", zap.String("reason", res.Reason))
		}
	}()

	text, err := a.gen.Generate(ctx, BuildPrompt(notes), MaxOutputTokens)
	if err != nil {
		return Unavailable(err.Error())
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Unavailable(ReasonEmpty)
	}
	return Available(text)
}
