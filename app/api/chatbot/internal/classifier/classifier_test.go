package classifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

type stubGenerator struct {
	answer string
	err    error
}

func (g stubGenerator) Generate(context.Context, string) (string, error) {
	return g.answer, g.err
}

func TestShortCircuits(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"hola", true},
		{"gracias", true},
		{"bye", true},
		{"si", true},
		{"ok", true},
		{"123", true},
		{"!!!", true},
		{"¿qué sabores de torta tienen?", false},
		{"quiero una torta de cumpleaños", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, shortCircuits(tc.message), tc.message)
	}
}

func TestClassifyGreeting(t *testing.T) {
	c := New(Config{}, nil)

	res := c.Classify(context.Background(), "Hola")
	assert.Equal(t, CategoryInvalid, res.Category())
	assert.Equal(t, DefaultShortCircuitConfidence, res.Confidence())
	assert.Equal(t, ReasonShortCircuit, res.Reason())
	assert.NotEmpty(t, res.Suggestions())
}

func TestClassifyShortCircuitConfidenceConfigurable(t *testing.T) {
	c := New(Config{ShortCircuitConfidence: 0.95}, nil)

	res := c.Classify(context.Background(), "hola")
	assert.Equal(t, 0.95, res.Confidence())
}

func TestClassifyProductsQuestion(t *testing.T) {
	c := New(Config{}, nil)

	res := c.Classify(context.Background(), "¿Qué sabores de torta tienen disponibles?")
	assert.Equal(t, CategoryProducts, res.Category())
	assert.Equal(t, ReasonKeywordMatch, res.Reason())
	assert.Greater(t, res.Confidence(), 0.0)

	kr, ok := res.(KeywordResult)
	require.True(t, ok)
	assert.Contains(t, kr.Matches, "sabores")
	assert.Contains(t, kr.Matches, "torta")
	assert.Len(t, kr.Scores, len(CategoryOrder))
}

func TestClassifyNoKeywordMatch(t *testing.T) {
	c := New(Config{}, nil)

	res := c.Classify(context.Background(), "necesito ayuda con otra cosa distinta")
	assert.Equal(t, CategoryInvalid, res.Category())
	assert.Equal(t, 0.8, res.Confidence())
	assert.Equal(t, ReasonNoKeywordMatch, res.Reason())
	assert.Len(t, res.Suggestions(), 4)
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(Config{}, nil)

	first := c.Classify(context.Background(), "¿Cuánto cuesta el envío a Palermo?")
	for i := 0; i < 20; i++ {
		res := c.Classify(context.Background(), "¿Cuánto cuesta el envío a Palermo?")
		assert.Equal(t, first.Category(), res.Category())
		assert.Equal(t, first.Confidence(), res.Confidence())
	}
}

func TestScoreWeighting(t *testing.T) {
	// "sabores" (7 chars) weighs 1.2, "torta" (5 chars) weighs 1.0.
	scores, matches := Score("sabores")
	long := scores[CategoryProducts]
	assert.Equal(t, []string{"sabor", "sabores"}, matches[CategoryProducts])

	scores, _ = Score("torta")
	short := scores[CategoryProducts]

	n := float64(len(categoryKeywords[CategoryProducts]))
	assert.InDelta(t, 2.2/n, long, 1e-9)
	assert.InDelta(t, 1.0/n, short, 1e-9)
}

func TestScoreWeightingCountsCharacters(t *testing.T) {
	// "envío" is 5 characters but 6 bytes; the 1.2 weight applies to
	// keywords longer than 5 characters, not bytes.
	n := float64(len(categoryKeywords[CategoryShipping]))

	scores, matches := Score("envío")
	assert.Equal(t, []string{"envío"}, matches[CategoryShipping])
	assert.InDelta(t, 1.0/n, scores[CategoryShipping], 1e-9)

	// "rápido" is 6 characters and gets the long-keyword weight.
	scores, _ = Score("rápido")
	assert.InDelta(t, 1.2/n, scores[CategoryShipping], 1e-9)
}

func TestBestCategoryTieBreak(t *testing.T) {
	scores := map[string]float64{
		CategoryProducts:   0.5,
		CategoryShipping:   0.5,
		CategoryPayments:   0.5,
		CategoryCakeDesign: 0.5,
	}
	best, score := bestCategory(scores)
	assert.Equal(t, CategoryProducts, best)
	assert.Equal(t, 0.5, score)
}

func TestClassifyEscalatesToFallback(t *testing.T) {
	fb := NewFallback(logx.WithContext(context.Background()), stubGenerator{answer: "envios"})
	c := New(Config{}, fb)

	// single short keyword, score well under the 0.3 threshold
	res := c.Classify(context.Background(), "me interesa una torta")
	assert.Equal(t, CategoryShipping, res.Category())
	assert.Equal(t, 0.7, res.Confidence())
	assert.Equal(t, ReasonFallback, res.Reason())
}

func TestClassifyLowScoreWithoutFallback(t *testing.T) {
	c := New(Config{}, nil)

	res := c.Classify(context.Background(), "me interesa una torta")
	assert.Equal(t, CategoryProducts, res.Category())
	assert.Equal(t, ReasonKeywordMatch, res.Reason())
}

func TestFallbackOutOfVocabulary(t *testing.T) {
	fb := NewFallback(logx.WithContext(context.Background()), stubGenerator{answer: "banana"})

	res := fb.Classify(context.Background(), "mensaje ambiguo")
	assert.Equal(t, CategoryInvalid, res.Category())
	assert.Equal(t, 0.6, res.Confidence())
	assert.Equal(t, ReasonFallbackUnparseable, res.Reason())
	assert.NotEmpty(t, res.Suggestions())
}

func TestFallbackGenerationError(t *testing.T) {
	fb := NewFallback(logx.WithContext(context.Background()), stubGenerator{err: fmt.Errorf("model down")})

	res := fb.Classify(context.Background(), "mensaje ambiguo")
	assert.Equal(t, CategoryInvalid, res.Category())
	assert.Equal(t, 0.4, res.Confidence())
	assert.Equal(t, ReasonFallbackError, res.Reason())
}

func TestFallbackAnswerNormalization(t *testing.T) {
	fb := NewFallback(logx.WithContext(context.Background()), stubGenerator{answer: "  Productos \n"})

	res := fb.Classify(context.Background(), "¿qué venden?")
	assert.Equal(t, CategoryProducts, res.Category())
	assert.Equal(t, 0.7, res.Confidence())
}

func TestNewFallbackNilGenerator(t *testing.T) {
	assert.Nil(t, NewFallback(logx.WithContext(context.Background()), nil))
}
