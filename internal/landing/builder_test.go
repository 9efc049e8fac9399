package landing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleBlueprint() Blueprint {
	return Blueprint{
		Topic:       "Sleep Better",
		Language:    "pt",
		Headline:    "Durma Melhor em 7 Dias",
		Subheadline: "O método completo",
		Bullets:     []string{"Técnica 1", "Técnica 2"},
		CTA:         "Quero Dormir Melhor",
		Price:       "R$37",
	}
}

func TestBuildHTMLContainsComponents(t *testing.T) {
	html, err := BuildHTML(sampleBlueprint())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	for _, want := range []string{
		`<html lang="pt">`,
		"Durma Melhor em 7 Dias",
		"O método completo",
		"Técnica 1",
		"Técnica 2",
		"Quero Dormir Melhor",
		"R$37",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}

func TestBuildHTMLEscapesCopy(t *testing.T) {
	bp := sampleBlueprint()
	bp.Headline = `<script>alert("x")</script>`
	html, err := BuildHTML(bp)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Fatal("headline not escaped")
	}
}

func TestBuildHTMLRendersMarkdownBody(t *testing.T) {
	bp := sampleBlueprint()
	bp.Body = "## Module 1\n\nSome **bold** claim."
	html, err := BuildHTML(bp)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(html, "<h2>Module 1</h2>") {
		t.Fatal("body markdown heading not rendered")
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatal("body markdown emphasis not rendered")
	}
}

func TestBuildHTMLOmitsEmptySections(t *testing.T) {
	bp := sampleBlueprint()
	bp.Subheadline = ""
	bp.Testimonials = nil
	html, err := BuildHTML(bp)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(html, "What People Are Saying") {
		t.Fatal("testimonial section rendered without testimonials")
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages", "sleep.html")
	if err := WriteFile(sampleBlueprint(), path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(blob), "Durma Melhor") {
		t.Fatal("written file missing headline")
	}
}
