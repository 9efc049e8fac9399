package translate

import (
	"context"

	"github.com/dmarchal/arbsuite/internal/landing"
	"github.com/dmarchal/arbsuite/internal/market"
)

// LocalizeBlueprint translates the copy components of a landing page
// blueprint and returns the localized copy with Language set to the target
// market's language code. The price string is left alone; price localization
// is the pricing package's concern.
func (t *Translator) LocalizeBlueprint(ctx context.Context, bp landing.Blueprint, language, dialect string) (landing.Blueprint, error) {
	out := bp
	var err error

	if bp.Headline != "" {
		if out.Headline, err = t.Translate(ctx, bp.Headline, language, dialect, "headline"); err != nil {
			return landing.Blueprint{}, err
		}
	}
	if bp.Subheadline != "" {
		if out.Subheadline, err = t.Translate(ctx, bp.Subheadline, language, dialect, "subheadline"); err != nil {
			return landing.Blueprint{}, err
		}
	}
	if len(bp.Bullets) > 0 {
		bullets := make([]string, len(bp.Bullets))
		for i, bullet := range bp.Bullets {
			if bullets[i], err = t.Translate(ctx, bullet, language, dialect, "bullet point"); err != nil {
				return landing.Blueprint{}, err
			}
		}
		out.Bullets = bullets
	}
	if bp.CTA != "" {
		if out.CTA, err = t.Translate(ctx, bp.CTA, language, dialect, "call to action"); err != nil {
			return landing.Blueprint{}, err
		}
	}
	if bp.Body != "" {
		if out.Body, err = t.TranslateLong(ctx, bp.Body, language, dialect, "product content"); err != nil {
			return landing.Blueprint{}, err
		}
	}
	if len(bp.Testimonials) > 0 {
		testimonials := make([]string, len(bp.Testimonials))
		for i, quote := range bp.Testimonials {
			if testimonials[i], err = t.Translate(ctx, quote, language, dialect, "customer testimonial"); err != nil {
				return landing.Blueprint{}, err
			}
		}
		out.Testimonials = testimonials
	}

	if info, ok := market.InfoFor(language); ok {
		out.Language = info.Code
	}
	return out, nil
}
