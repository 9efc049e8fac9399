// Package pricing converts competitor pricing signals into a recommended
// sale price, including dialect-aware localization of price and currency.
package pricing

import "strings"

// DialectProfile describes a regional market variant: the language it
// belongs to, its currency, and a purchasing-power multiplier applied to
// source-market prices. Profiles are static configuration; look them up with
// ProfileFor.
type DialectProfile struct {
	Language        string
	FullName        string
	Notes           string
	Examples        string
	CurrencyCode    string
	CurrencySymbol  string
	PriceMultiplier float64
}

var Dialects = map[string]DialectProfile{
	"brazilian": {
		Language:        "portuguese",
		FullName:        "Brazilian Portuguese",
		Notes:           "Use Brazilian Portuguese with informal \"você\" form, Brazilian idioms and local expressions",
		Examples:        "Use \"tá\" instead of \"está\", \"legal\" for \"cool\", Brazilian vocabulary and slang",
		CurrencyCode:    "BRL",
		CurrencySymbol:  "R$",
		PriceMultiplier: 0.4,
	},
	"european": {
		Language:        "portuguese",
		FullName:        "European Portuguese",
		Notes:           "Use European Portuguese with more formal register, Portuguese idioms",
		Examples:        "Use more formal constructions, \"está\" instead of \"tá\", European vocabulary",
		CurrencyCode:    "EUR",
		CurrencySymbol:  "€",
		PriceMultiplier: 0.65,
	},
	"latin_american": {
		Language:        "spanish",
		FullName:        "Latin American Spanish",
		Notes:           "Use neutral Latin American Spanish, avoid Spain-specific terms like \"vosotros\"",
		Examples:        "Use \"computadora\" not \"ordenador\", \"ustedes\" not \"vosotros\", Latin American vocabulary",
		CurrencyCode:    "USD",
		CurrencySymbol:  "$",
		PriceMultiplier: 0.5,
	},
	"european_spanish": {
		Language:        "spanish",
		FullName:        "European Spanish (Spain)",
		Notes:           "Use European Spanish with vosotros form, Spain-specific terms",
		Examples:        "Use \"ordenador\" not \"computadora\", vosotros conjugations, Spanish vocabulary",
		CurrencyCode:    "EUR",
		CurrencySymbol:  "€",
		PriceMultiplier: 0.7,
	},
	"mexican": {
		Language:        "spanish",
		FullName:        "Mexican Spanish",
		Notes:           "Use Mexican Spanish with local slang and cultural references",
		Examples:        "Use Mexican vocabulary, local expressions, familiar tone",
		CurrencyCode:    "MXN",
		CurrencySymbol:  "$",
		PriceMultiplier: 0.45,
	},
	"canadian": {
		Language:        "french",
		FullName:        "Canadian French (Québécois)",
		Notes:           "Use Québécois expressions and Canadian French vocabulary",
		Examples:        "Use Québécois terms, Canadian French expressions, local idioms",
		CurrencyCode:    "CAD",
		CurrencySymbol:  "$",
		PriceMultiplier: 0.75,
	},
	"european_french": {
		Language:        "french",
		FullName:        "European French",
		Notes:           "Use standard European French without regional variations",
		Examples:        "Standard French vocabulary and grammar",
		CurrencyCode:    "EUR",
		CurrencySymbol:  "€",
		PriceMultiplier: 0.9,
	},
	"swiss": {
		Language:        "german",
		FullName:        "Swiss German (Standard)",
		Notes:           "Use Standard German with Swiss vocabulary preferences, avoid pure Schwiizerdütsch",
		Examples:        "Swiss German vocabulary in Standard German, avoid dialect forms",
		CurrencyCode:    "CHF",
		CurrencySymbol:  "CHF",
		PriceMultiplier: 1.1,
	},
	"standard": {
		FullName:        "Standard",
		Notes:           "Use standard form of the language",
		Examples:        "Standard vocabulary and grammar",
		CurrencyCode:    "EUR",
		CurrencySymbol:  "€",
		PriceMultiplier: 0.85,
	},
}

// ProfileFor resolves a dialect profile. Unknown dialects fall back to a
// per-language standard profile with a conservative 0.8 multiplier.
func ProfileFor(language, dialect string) DialectProfile {
	if p, ok := Dialects[dialect]; ok {
		if p.Language == "" {
			p.Language = language
		}
		return p
	}
	return DialectProfile{
		Language:        language,
		FullName:        titleCase(language),
		Notes:           "Use standard " + language,
		Examples:        "Standard vocabulary",
		CurrencyCode:    "EUR",
		CurrencySymbol:  "€",
		PriceMultiplier: 0.8,
	}
}

// DialectsForLanguage filters the table by language. Dialects without a
// fixed language (the standard profile) match every language.
func DialectsForLanguage(language string) map[string]DialectProfile {
	out := map[string]DialectProfile{}
	for name, p := range Dialects {
		if p.Language == language || p.Language == "" {
			out[name] = p
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
