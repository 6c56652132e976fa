package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *KeywordExtractor {
	return NewKeywordExtractor(KeywordConfig{})
}

func TestKeywordExtract_Fixture(t *testing.T) {
	// "how", "do", "i", "use", "and", "in" are stopwords; the content
	// words survive in first-encountered order.
	got := newExtractor().Extract([]string{"How do I use async and await in JavaScript?"}, 20)
	assert.Equal(t, []KeywordCount{
		{Keyword: "async", Count: 1},
		{Keyword: "await", Count: 1},
		{Keyword: "javascript", Count: 1},
	}, got)
}

func TestKeywordExtract_Filters(t *testing.T) {
	got := newExtractor().Extract([]string{"Go is at 42 100% of the db ops"}, 20)
	for _, kw := range got {
		assert.GreaterOrEqual(t, len(kw.Keyword), 3, "short tokens must be dropped")
		assert.NotRegexp(t, `^\d+$`, kw.Keyword, "purely numeric tokens must be dropped")
	}
	// "is", "at", "the" are stopwords; "go", "db" too short; "42",
	// "100" numeric; only "ops" survives.
	assert.Equal(t, []KeywordCount{{Keyword: "ops", Count: 1}}, got)
}

func TestKeywordExtract_CountsAcrossPrompts(t *testing.T) {
	prompts := []string{
		"debug the goroutine leak",
		"goroutine deadlock in channel select",
		"why does my goroutine panic",
	}
	got := newExtractor().Extract(prompts, 20)
	require.NotEmpty(t, got)
	assert.Equal(t, KeywordCount{Keyword: "goroutine", Count: 3}, got[0])
}

func TestKeywordExtract_Limit(t *testing.T) {
	prompts := []string{"alpha beta gamma delta epsilon"}
	got := newExtractor().Extract(prompts, 2)
	assert.Len(t, got, 2)
}

func TestKeywordExtract_TiesKeepFirstEncounteredOrder(t *testing.T) {
	got := newExtractor().Extract([]string{"zebra yak zebra yak xerus"}, 20)
	assert.Equal(t, []KeywordCount{
		{Keyword: "zebra", Count: 2},
		{Keyword: "yak", Count: 2},
		{Keyword: "xerus", Count: 1},
	}, got)
}

func TestKeywordExtract_CaseAndPunctuation(t *testing.T) {
	got := newExtractor().Extract([]string{"React.useEffect(); REACT hooks!"}, 20)
	assert.Equal(t, []KeywordCount{
		{Keyword: "react", Count: 2},
		{Keyword: "useeffect", Count: 1},
		{Keyword: "hooks", Count: 1},
	}, got)
}

func TestKeywordExtract_CustomStopwords(t *testing.T) {
	e := NewKeywordExtractor(KeywordConfig{Stopwords: []string{"kubernetes"}})
	got := e.Extract([]string{"kubernetes operator basics"}, 20)
	assert.Equal(t, []KeywordCount{
		{Keyword: "operator", Count: 1},
		{Keyword: "basics", Count: 1},
	}, got)
}

func TestKeywordExtract_NoPrompts(t *testing.T) {
	assert.Empty(t, newExtractor().Extract(nil, 20))
}
