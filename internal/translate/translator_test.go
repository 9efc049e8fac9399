package translate

import (
	"context"
	"strings"
	"testing"
)

type fakeGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "translated", nil
}

func (f *fakeGenerator) ModelName() string { return "fake" }

func TestTranslatePromptCarriesDialectGuidelines(t *testing.T) {
	gen := &fakeGenerator{}
	tr := NewTranslator(gen)

	out, err := tr.Translate(context.Background(), "Sleep better tonight", "portuguese", "brazilian", "headline")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if out != "translated" {
		t.Fatalf("out = %q", out)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	for _, want := range []string{
		"Brazilian Portuguese",
		"informal \"você\" form",
		"Sleep better tonight",
		"headline",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestTranslateStandardDialectSkipsDialectBlock(t *testing.T) {
	gen := &fakeGenerator{}
	tr := NewTranslator(gen)
	if _, err := tr.Translate(context.Background(), "hello", "italian", "standard", "headline"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if strings.Contains(gen.prompts[0], "IMPORTANT DIALECT REQUIREMENTS") {
		t.Fatal("standard dialect must not add dialect requirements")
	}
}

func TestTranslateLongChunksContent(t *testing.T) {
	gen := &fakeGenerator{reply: "chunk"}
	tr := NewTranslator(gen)

	content := strings.Repeat("a", chunkSize*2+100)
	out, err := tr.TranslateLong(context.Background(), content, "spanish", "mexican", "product content")
	if err != nil {
		t.Fatalf("TranslateLong: %v", err)
	}
	if len(gen.prompts) != 3 {
		t.Fatalf("generator called %d times, want 3", len(gen.prompts))
	}
	if out != "chunk\n\nchunk\n\nchunk" {
		t.Fatalf("out = %q", out)
	}
}

func TestTranslateLongShortContentSingleCall(t *testing.T) {
	gen := &fakeGenerator{}
	tr := NewTranslator(gen)
	if _, err := tr.TranslateLong(context.Background(), "short", "french", "", "product content"); err != nil {
		t.Fatalf("TranslateLong: %v", err)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.prompts))
	}
}
