package competitor

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Price tokens: currency symbol before or after a number with an optional
// two-digit decimal part, either separator. "R$" covers Brazilian listings.
var (
	pricePrefixRe = regexp.MustCompile(`(?:R\$|[$€£])\s*(\d+(?:[.,]\d{2})?)`)
	priceSuffixRe = regexp.MustCompile(`(\d+(?:[.,]\d{2})?)\s*[$€£]`)
)

// ParsePrice extracts the first recognizable price token from free text.
// Unparsable text yields nil, never an error.
func ParsePrice(text string) *float64 {
	if text == "" {
		return nil
	}
	for _, re := range []*regexp.Regexp{pricePrefixRe, priceSuffixRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}

// Stats computes the average and range over all present prices. With no
// priced records both collapse to zero; AvgPrice==0 therefore signals
// "no pricing signal", not "free".
func Stats(records []Record) (avg float64, rng PriceRange) {
	rng = PriceRange{Min: math.Inf(1), Max: 0}
	sum := 0.0
	n := 0
	for _, rec := range records {
		if rec.Price == nil {
			continue
		}
		p := *rec.Price
		sum += p
		n++
		if p < rng.Min {
			rng.Min = p
		}
		if p > rng.Max {
			rng.Max = p
		}
	}
	if n == 0 {
		return 0, PriceRange{}
	}
	return sum / float64(n), rng
}
