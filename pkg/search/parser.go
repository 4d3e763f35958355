package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultSinglePriceBand = 0.10

// priceContextRunes is how far before a lone price we look for "menos", "más", etc.
const priceContextRunes = 15

var priceRegex = regexp.MustCompile(`(\d+)(?:\s*(?:a|y|hasta|entre|soles?|s/\.?|dolares?|\$)\s*(\d+)?)?`)

// QueryFilters is what a free-text product question boils down to.
type QueryFilters struct {
	Keywords   []string
	Categories []string
	PriceMin   *float64
	PriceMax   *float64
}

// HasPrice reports whether at least one price bound was extracted.
func (f QueryFilters) HasPrice() bool {
	return f.PriceMin != nil || f.PriceMax != nil
}

// HasTerms reports whether keywords or categories were extracted.
func (f QueryFilters) HasTerms() bool {
	return len(f.Keywords) > 0 || len(f.Categories) > 0
}

// IsEmpty is true when nothing searchable was found.
func (f QueryFilters) IsEmpty() bool {
	return !f.HasPrice() && !f.HasTerms()
}

// Parser extracts QueryFilters. SinglePriceBand is the fraction used to build
// a band around a single price with no direction words.
type Parser struct {
	SinglePriceBand float64
}

// ParseQueryFilters parses with the default ±10% single-price band.
func ParseQueryFilters(text string) QueryFilters {
	return Parser{SinglePriceBand: DefaultSinglePriceBand}.Parse(text)
}

func (p Parser) Parse(text string) QueryFilters {
	lower := strings.ToLower(text)

	filters := QueryFilters{}
	filters.PriceMin, filters.PriceMax = p.parsePrice(lower)
	filters.Keywords = extractKeywords(lower)
	filters.Categories = detectCategories(lower, filters.Keywords)
	return filters
}

func (p Parser) parsePrice(lower string) (*float64, *float64) {
	loc := priceRegex.FindStringSubmatchIndex(lower)
	if loc == nil {
		return nil, nil
	}

	first, err := strconv.Atoi(lower[loc[2]:loc[3]])
	if err != nil {
		return nil, nil
	}

	if loc[4] >= 0 {
		second, err := strconv.Atoi(lower[loc[4]:loc[5]])
		if err == nil {
			lo, hi := float64(first), float64(second)
			if lo > hi {
				lo, hi = hi, lo
			}
			return &lo, &hi
		}
	}

	price := float64(first)
	before := precedingRunes(lower, loc[0], priceContextRunes)

	switch {
	case containsAny(before, upperBoundHints) || strings.Contains(lower, "menos de") || strings.Contains(lower, "máximo"):
		return nil, &price
	case containsAny(before, lowerBoundHints) || strings.Contains(lower, "más de") || strings.Contains(lower, "mínimo"):
		return &price, nil
	}

	band := RoundHalfEven(price * p.SinglePriceBand)
	lo := math.Max(0, price-band)
	hi := price + band
	return &lo, &hi
}

// RoundHalfEven rounds the way the price heuristics always have: ties go to
// the even neighbour.
func RoundHalfEven(v float64) float64 {
	return math.RoundToEven(v)
}

func extractKeywords(lower string) []string {
	var keywords []string
	for _, field := range strings.Fields(lower) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

func detectCategories(lower string, keywords []string) []string {
	var found []string
	for _, cat := range Categories {
		if strings.Contains(lower, cat) {
			found = append(found, cat)
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(kw, cat) {
				found = append(found, cat)
				break
			}
		}
	}
	return found
}

func precedingRunes(s string, end int, n int) string {
	start := end
	for i := 0; i < n && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:start])
		start -= size
	}
	return s[start:end]
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
