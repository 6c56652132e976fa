package trends

import (
	"sort"
	"strings"
)

// defaultStopwords are common English function words plus a few domain
// fillers ("use", "get", "make") that carry no signal in developer
// prompts.
var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "i", "you", "this", "can", "do",
	"how", "what", "when", "where", "which", "who", "why", "my", "me",
	"am", "im", "get", "make", "use", "using", "used", "does", "did",
}

// KeywordCount is one ranked keyword with its total occurrence count.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordConfig configures a KeywordExtractor. A nil Stopwords slice
// means the default list.
type KeywordConfig struct {
	Stopwords []string
	MinLength int // tokens shorter than this are dropped; 0 means 3
}

// KeywordExtractor tokenizes question prompts and counts keyword
// frequencies. Construct with NewKeywordExtractor; the stopword list
// is fixed at construction.
type KeywordExtractor struct {
	stopwords map[string]struct{}
	minLength int
}

// NewKeywordExtractor creates an extractor from explicit configuration.
func NewKeywordExtractor(cfg KeywordConfig) *KeywordExtractor {
	words := cfg.Stopwords
	if words == nil {
		words = defaultStopwords
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = 3
	}
	return &KeywordExtractor{stopwords: set, minLength: minLength}
}

// Extract returns the top-N most frequent keywords across all prompts.
// Tokens are lowercased and split on runs of non-alphanumeric
// characters; tokens shorter than the minimum length, purely numeric
// tokens, and stopwords are dropped. Ties rank in first-encountered
// order.
func (e *KeywordExtractor) Extract(prompts []string, limit int) []KeywordCount {
	counts := make(map[string]int)
	var order []string // first-encounter order, for stable tie-breaks

	for _, prompt := range prompts {
		for _, word := range tokenize(prompt) {
			if len(word) < e.minLength || isNumeric(word) {
				continue
			}
			if _, stop := e.stopwords[word]; stop {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	ranked := make([]KeywordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, KeywordCount{Keyword: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// tokenize lowercases s and splits it on any run of characters outside
// [a-z0-9].
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
