package ranker

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultTopN = 5

// priceTolerance is the relative distance at which a number in a chunk
// counts as matching a number in the query.
const priceTolerance = 0.1

var numberRegex = regexp.MustCompile(`\d+`)

var stopWords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {}, "unos": {}, "unas": {},
	"y": {}, "o": {}, "a": {}, "ante": {}, "bajo": {}, "con": {}, "de": {}, "desde": {},
	"en": {}, "entre": {}, "hacia": {}, "hasta": {}, "para": {}, "por": {}, "según": {},
	"sin": {}, "sobre": {}, "tras": {},
}

type ScoredChunk struct {
	Text  string
	Score float64
	Index int // position in the input, kept for stable ordering
}

// RankChunks returns the topN chunks most relevant to query. Chunks that
// score the same keep their input order.
func RankChunks(chunks []string, query string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	scored := ScoreChunks(chunks, query)
	if len(scored) > topN {
		scored = scored[:topN]
	}

	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Text)
	}
	return out
}

// ScoreChunks scores every chunk and returns them best first.
func ScoreChunks(chunks []string, query string) []ScoredChunk {
	if len(chunks) == 0 {
		return nil
	}

	lowerQuery := strings.ToLower(query)
	terms := queryTerms(lowerQuery)
	prices := extractNumbers(lowerQuery)

	scored := make([]ScoredChunk, len(chunks))
	for i, chunk := range chunks {
		scored[i] = ScoredChunk{
			Text:  chunk,
			Score: scoreChunk(strings.ToLower(chunk), terms, prices),
			Index: i,
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

func scoreChunk(lowerChunk string, terms []string, prices []int) float64 {
	score := 0.0
	matched := 0

	for _, term := range terms {
		n := strings.Count(lowerChunk, term)
		if n == 0 {
			continue
		}
		matched++
		score += float64(n) * float64(utf8.RuneCountInString(term)) / 3
	}

	if len(prices) > 0 {
		for _, c := range extractNumbers(lowerChunk) {
			for _, p := range prices {
				if math.Abs(float64(c-p)) <= priceTolerance*float64(p) {
					score += 2
				}
			}
		}
	}

	if matched > 1 {
		score *= 1 + float64(matched)/float64(len(terms))
	}
	return score
}

// queryTerms lower-cases, strips punctuation and stop words, and keeps the
// distinct terms longer than two runes in first-seen order.
func queryTerms(lowerQuery string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, field := range strings.Fields(lowerQuery) {
		term := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(term) <= 2 {
			continue
		}
		if _, stop := stopWords[term]; stop {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

func extractNumbers(s string) []int {
	var nums []int
	for _, m := range numberRegex.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}
