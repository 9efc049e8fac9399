// Package translate adapts marketing copy into a target language and
// dialect via an AI text generator.
package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dmarchal/arbsuite/internal/pricing"
)

const DefaultModel = "claude-sonnet-4-20250514"

// chunkSize bounds one generation request; longer content is split and the
// pieces rejoined with blank lines.
const chunkSize = 8000

// TextGenerator produces text for a prompt. Implementations wrap a model
// provider; tests substitute a fake.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicGenerator struct {
	messages AnthropicMessager
	model    string
}

type anthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient anthropicClientCreator = defaultAnthropicCreator

func NewAnthropicGeneratorFromEnv() (*AnthropicGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	model := strings.TrimSpace(os.Getenv("TRANSLATE_MODEL"))
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicGenerator{messages: newAnthropicClient(apiKey), model: model}, nil
}

func (a *AnthropicGenerator) ModelName() string { return a.model }

func (a *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// Translator localizes copy for a dialect market. Dialect guidance comes
// from the pricing dialect table so copy and price localization agree.
type Translator struct {
	gen TextGenerator
}

func NewTranslator(gen TextGenerator) *Translator {
	return &Translator{gen: gen}
}

// Translate adapts one piece of content. kind describes the content to the
// model ("headline", "bullet points", "product content").
func (t *Translator) Translate(ctx context.Context, content, language, dialect, kind string) (string, error) {
	prompt := buildPrompt(content, language, dialect, kind)
	out, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("translate %s: %w", kind, err)
	}
	return strings.TrimSpace(out), nil
}

// TranslateLong splits content exceeding the chunk size and translates each
// piece separately.
func (t *Translator) TranslateLong(ctx context.Context, content, language, dialect, kind string) (string, error) {
	if len(content) <= chunkSize {
		return t.Translate(ctx, content, language, dialect, kind)
	}
	var parts []string
	for start := 0; start < len(content); start += chunkSize {
		end := start + chunkSize
		if end > len(content) {
			end = len(content)
		}
		part, err := t.Translate(ctx, content[start:end], language, dialect, kind)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n\n"), nil
}

func buildPrompt(content, language, dialect, kind string) string {
	profile := pricing.ProfileFor(language, dialect)

	dialectInstruction := ""
	if dialect != "" && dialect != "standard" {
		dialectInstruction = fmt.Sprintf(`
IMPORTANT DIALECT REQUIREMENTS:
- Target dialect: %s
- %s
- Examples: %s
- Make it sound authentic to native speakers of this specific dialect
`, profile.FullName, profile.Notes, profile.Examples)
	}

	return fmt.Sprintf(`You are an expert translator and native copywriter for %s.

Your job is to adapt this %s into %s in a way that sounds COMPLETELY NATURAL and PERSUASIVE to native speakers.
%s
TRANSLATION PHILOSOPHY:
1. Sound natural and native, like a native copywriter wrote it from scratch
2. Maintain emotional impact and persuasiveness
3. Preserve the core meaning and intent

WHEN IN DOUBT: Choose what sounds better and more persuasive to a native speaker over literal word-for-word accuracy.

REQUIREMENTS:
- Use expressions and idioms native speakers actually use
- Adapt cultural references to the target audience
- Avoid awkward literal translations that sound robotic
- Keep formatting (bullets, numbers, headings, line breaks)

CONTENT TO TRANSLATE:
%s

Provide ONLY the translated content. No explanations, no meta-commentary.`, profile.FullName, kind, profile.FullName, dialectInstruction, content)
}
