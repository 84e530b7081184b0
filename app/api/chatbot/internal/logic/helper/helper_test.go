package helper

import (
	"database/sql"
	"strings"
	"testing"

	"DulceAI/app/api/chatbot/internal/cake"
	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/dal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMessage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hola\x00\x1f mundo", "hola mundo"},
		{"<script>alert(1)</script>¿qué tortas tienen?", "¿qué tortas tienen?"},
		{"javascript:alert(1)", "alert(1)"},
		{"onclick=evil() hola", "evil() hola"},
		{"  torta de chocolate  ", "torta de chocolate"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeMessage(tc.in), tc.in)
	}
}

func TestValidateMessage(t *testing.T) {
	assert.Error(t, ValidateMessage(""))
	assert.NoError(t, ValidateMessage("a"))
	assert.NoError(t, ValidateMessage(strings.Repeat("a", MaxMessageLength)))
	assert.Error(t, ValidateMessage(strings.Repeat("a", MaxMessageLength+1)))
	// runes, not bytes
	assert.NoError(t, ValidateMessage(strings.Repeat("ñ", MaxMessageLength)))
}

func TestToProductMapsNullColumns(t *testing.T) {
	p := ToProduct(&product.Productos{
		Id:     7,
		Nombre: "Cheesecake",
		Precio: 1200,
		Sabor:  sql.NullString{String: "frutilla", Valid: true},
	})
	assert.Equal(t, int64(7), p.Id)
	assert.Equal(t, "frutilla", p.Flavor)
	assert.Empty(t, p.Description)
}

func TestToClassificationKeywordPath(t *testing.T) {
	res := classifier.KeywordResult{
		Label:   classifier.CategoryProducts,
		Score:   0.42,
		Matches: []string{"torta", "sabores"},
		Scores:  map[string]float64{classifier.CategoryProducts: 0.42},
	}
	out := ToClassification(res)
	assert.Equal(t, classifier.CategoryProducts, out.Category)
	assert.Equal(t, 0.42, out.Confidence)
	require.NotNil(t, out.KeywordMatches)
	assert.Equal(t, []string{"torta", "sabores"}, out.KeywordMatches[classifier.CategoryProducts])
	assert.NotEmpty(t, out.AllScores)
}

func TestToClassificationFallbackPath(t *testing.T) {
	out := ToClassification(classifier.FallbackResult{Label: classifier.CategoryShipping, Conf: 0.7})
	assert.Equal(t, classifier.ReasonFallback, out.Reason)
	assert.Nil(t, out.KeywordMatches)
	assert.Nil(t, out.AllScores)
}

func TestToPriceEstimateConsult(t *testing.T) {
	out := ToPriceEstimate(cake.PriceEstimate{Consult: true, Complexity: cake.ComplexityLow, Note: cake.ConsultNote})
	assert.Equal(t, cake.ConsultEstimate, out.TotalEstimated)
	assert.Nil(t, out.PriceRange)
}

func TestDetectZone(t *testing.T) {
	assert.Equal(t, "palermo", DetectZone("¿Llegan a Palermo Soho?"))
	assert.Equal(t, "", DetectZone("¿hacen envíos?"))
}

func TestDetectPaymentTipo(t *testing.T) {
	assert.Equal(t, "tarjeta", DetectPaymentTipo("¿aceptan Visa?"))
	assert.Equal(t, "digital", DetectPaymentTipo("¿puedo usar mercadopago?"))
	assert.Equal(t, "", DetectPaymentTipo("¿qué formas de pago aceptan?"))
}

func TestBuildProductContext(t *testing.T) {
	ctx := BuildProductContext(nil)
	assert.Contains(t, ctx, "No se pudo obtener información")

	ctx = BuildProductContext(ToProducts([]*product.Productos{
		{Nombre: "Torta de limón", Precio: 950},
	}))
	assert.Contains(t, ctx, "Torta de limón")
	assert.Contains(t, ctx, "$950")
}
