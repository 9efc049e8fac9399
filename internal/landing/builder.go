// Package landing renders sales landing pages from a blueprint and can
// capture a rendered screenshot for review.
package landing

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmarchal/arbsuite/internal/fetch"
)

// Blueprint holds the copy components of one landing page. Body is optional
// markdown rendered below the bullets.
type Blueprint struct {
	Topic        string   `json:"topic"`
	Language     string   `json:"language"`
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline,omitempty"`
	Bullets      []string `json:"bullets"`
	CTA          string   `json:"cta"`
	Price        string   `json:"price"`
	Body         string   `json:"body,omitempty"`
	Testimonials []string `json:"testimonials,omitempty"`
}

var pageTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Topic}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; background: #f5f5f7; }
.container { max-width: 800px; margin: 0 auto; padding: 20px; }
.hero { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; padding: 60px 40px; border-radius: 10px; text-align: center; }
.hero h1 { font-size: 2.2em; margin-bottom: 15px; }
.hero p { font-size: 1.2em; opacity: 0.95; }
.content { background: #fff; padding: 40px; border-radius: 10px; margin-top: 20px; }
.content h2 { color: #667eea; margin-bottom: 20px; }
.bullets { list-style: none; margin-bottom: 30px; }
.bullets li { padding: 10px 0 10px 30px; position: relative; }
.bullets li:before { content: "✓"; position: absolute; left: 0; color: #667eea; font-weight: bold; }
.price { font-size: 2.5em; font-weight: bold; color: #667eea; text-align: center; margin: 30px 0; }
.cta { display: block; width: fit-content; margin: 0 auto; background: #667eea; color: #fff; padding: 18px 50px; border-radius: 8px; font-size: 1.2em; font-weight: bold; text-decoration: none; }
.body-copy { margin-top: 30px; }
.testimonials { margin-top: 40px; }
.testimonial { background: #f9f9f9; padding: 20px; border-radius: 8px; margin-bottom: 15px; font-style: italic; }
</style>
</head>
<body>
<div class="container">
<div class="hero">
<h1>{{.Headline}}</h1>
{{if .Subheadline}}<p>{{.Subheadline}}</p>{{end}}
</div>
<div class="content">
<h2>What You'll Get:</h2>
<ul class="bullets">
{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>
{{if .BodyHTML}}<div class="body-copy">{{.BodyHTML}}</div>{{end}}
<div class="price">{{.Price}}</div>
<a href="#checkout" class="cta">{{.CTA}}</a>
{{if .Testimonials}}<div class="testimonials">
<h2 style="text-align: center;">What People Are Saying</h2>
{{range .Testimonials}}<div class="testimonial"><p>{{.}}</p></div>
{{end}}</div>{{end}}
</div>
</div>
</body>
</html>
`))

type pageData struct {
	Lang         string
	Topic        string
	Headline     string
	Subheadline  string
	Bullets      []string
	BodyHTML     template.HTML
	Price        string
	CTA          string
	Testimonials []string
}

// BuildHTML renders the blueprint into a standalone HTML document. The body
// markdown is converted with GFM extensions enabled.
func BuildHTML(bp Blueprint) (string, error) {
	var bodyHTML template.HTML
	if strings.TrimSpace(bp.Body) != "" {
		var converted strings.Builder
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		if err := md.Convert([]byte(bp.Body), &converted); err != nil {
			return "", fmt.Errorf("markdown convert: %w", err)
		}
		bodyHTML = template.HTML(converted.String())
	}

	lang := bp.Language
	if lang == "" {
		lang = "en"
	}
	data := pageData{
		Lang:         lang,
		Topic:        bp.Topic,
		Headline:     bp.Headline,
		Subheadline:  bp.Subheadline,
		Bullets:      bp.Bullets,
		BodyHTML:     bodyHTML,
		Price:        bp.Price,
		CTA:          bp.CTA,
		Testimonials: bp.Testimonials,
	}
	var out strings.Builder
	if err := pageTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render landing page: %w", err)
	}
	return out.String(), nil
}

// WriteFile builds the page and writes it to path, creating parent
// directories.
func WriteFile(bp Blueprint, path string) error {
	html, err := BuildHTML(bp)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}

// Screenshot renders the HTML in a headless browser and captures a full
// page PNG.
func Screenshot(ctx context.Context, html, chromePath string) ([]byte, error) {
	browserCtx, cancel := fetch.NewBrowserContext(ctx, chromePath)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancelTimeout()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
	var png []byte
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&png, 90),
	); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return png, nil
}
