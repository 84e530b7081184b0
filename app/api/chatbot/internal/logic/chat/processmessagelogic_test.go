package chat

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/api/chatbot/internal/config"
	"DulceAI/app/api/chatbot/internal/llm"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/api/chatbot/internal/types"
	"DulceAI/app/dal/payment"
	"DulceAI/app/dal/product"
	"DulceAI/app/dal/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	result classifier.Result
}

func (s stubClassifier) Classify(context.Context, string) classifier.Result {
	return s.result
}

type stubTextGen struct {
	answer string
	err    error
}

func (g stubTextGen) Generate(context.Context, string) (string, error) {
	return g.answer, g.err
}

type stubImageGen struct {
	url string
	err error
}

func (g stubImageGen) GenerateImage(context.Context, string) (string, error) {
	return g.url, g.err
}

type fakeProductosModel struct {
	rows []*product.Productos
	err  error
}

func (m fakeProductosModel) Insert(context.Context, *product.Productos) (sql.Result, error) {
	return nil, nil
}
func (m fakeProductosModel) FindOne(context.Context, int64) (*product.Productos, error) {
	return nil, product.ErrNotFound
}
func (m fakeProductosModel) Update(context.Context, *product.Productos) error { return nil }
func (m fakeProductosModel) Delete(context.Context, int64) error              { return nil }
func (m fakeProductosModel) FindAllActive(context.Context) ([]*product.Productos, error) {
	return m.rows, m.err
}
func (m fakeProductosModel) FindBySabor(context.Context, string) ([]*product.Productos, error) {
	return m.rows, m.err
}

type fakeZonasModel struct {
	rows []*shipping.ZonasEntrega
	err  error
}

func (m fakeZonasModel) Insert(context.Context, *shipping.ZonasEntrega) (sql.Result, error) {
	return nil, nil
}
func (m fakeZonasModel) FindOne(context.Context, int64) (*shipping.ZonasEntrega, error) {
	return nil, shipping.ErrNotFound
}
func (m fakeZonasModel) Update(context.Context, *shipping.ZonasEntrega) error { return nil }
func (m fakeZonasModel) Delete(context.Context, int64) error                  { return nil }
func (m fakeZonasModel) FindAllActive(context.Context) ([]*shipping.ZonasEntrega, error) {
	return m.rows, m.err
}
func (m fakeZonasModel) FindByNombre(context.Context, string) (*shipping.ZonasEntrega, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.rows) == 0 {
		return nil, shipping.ErrNotFound
	}
	return m.rows[0], nil
}

type fakeMediosModel struct {
	rows []*payment.MediosPago
	err  error
}

func (m fakeMediosModel) Insert(context.Context, *payment.MediosPago) (sql.Result, error) {
	return nil, nil
}
func (m fakeMediosModel) FindOne(context.Context, int64) (*payment.MediosPago, error) {
	return nil, payment.ErrNotFound
}
func (m fakeMediosModel) Update(context.Context, *payment.MediosPago) error { return nil }
func (m fakeMediosModel) Delete(context.Context, int64) error               { return nil }
func (m fakeMediosModel) FindAllActive(context.Context) ([]*payment.MediosPago, error) {
	return m.rows, m.err
}
func (m fakeMediosModel) FindByTipo(context.Context, string) ([]*payment.MediosPago, error) {
	return m.rows, m.err
}

func newTestContext(result classifier.Result) *svc.ServiceContext {
	return &svc.ServiceContext{
		Config:     config.Config{},
		Classifier: stubClassifier{result: result},
		TextGen:    stubTextGen{answer: "respuesta generada"},
		ProductosModel: fakeProductosModel{rows: []*product.Productos{
			{Id: 1, Nombre: "Torta de chocolate", Precio: 1500, Sabor: sql.NullString{String: "chocolate", Valid: true}},
		}},
		ZonasEntregaModel: fakeZonasModel{rows: []*shipping.ZonasEntrega{
			{Id: 1, Nombre: "Palermo", CostoBase: 500, TiempoEstimado: sql.NullString{String: "24 horas", Valid: true}},
		}},
		MediosPagoModel: fakeMediosModel{rows: []*payment.MediosPago{
			{Id: 1, Nombre: "Tarjeta de crédito", Tipo: "tarjeta"},
		}},
	}
}

func TestProcessMessageProductsBranch(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryProducts, Score: 0.5})
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "¿qué tortas tienen?", UserId: "user_1"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, classifier.CategoryProducts, resp.Category)
	assert.Equal(t, 0.5, resp.Confidence)
	assert.Equal(t, "respuesta generada", resp.Message)
	require.NotNil(t, resp.AdditionalInfo)
	assert.Equal(t, "products", resp.AdditionalInfo.Service)
	require.Len(t, resp.AdditionalInfo.Products, 1)
	assert.Equal(t, "Torta de chocolate", resp.AdditionalInfo.Products[0].Name)
	assert.NotEmpty(t, resp.Metadata.ReplyId)
	assert.Equal(t, "user_1", resp.Metadata.UserId)
}

func TestProcessMessageProductsDegraded(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryProducts, Score: 0.5})
	sc.ProductosModel = fakeProductosModel{err: fmt.Errorf("connection refused")}
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "¿qué tortas tienen?"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, apologyProducts, resp.Message)
	require.NotNil(t, resp.AdditionalInfo)
	assert.True(t, resp.AdditionalInfo.Degraded)
	assert.Empty(t, resp.AdditionalInfo.Products)
}

func TestProcessMessageShippingZoneDetection(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryShipping, Score: 0.4})
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "¿hacen envíos a palermo?"})
	require.NoError(t, err)

	require.NotNil(t, resp.AdditionalInfo)
	assert.Equal(t, "shipping", resp.AdditionalInfo.Service)
	require.Len(t, resp.AdditionalInfo.Zones, 1)
	assert.Equal(t, "Palermo", resp.AdditionalInfo.Zones[0].Name)
}

func TestProcessMessagePaymentsBranch(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryPayments, Score: 0.4})
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "¿puedo pagar con tarjeta?"})
	require.NoError(t, err)

	require.NotNil(t, resp.AdditionalInfo)
	assert.Equal(t, "payments", resp.AdditionalInfo.Service)
	require.Len(t, resp.AdditionalInfo.Methods, 1)
	assert.Equal(t, "tarjeta", resp.AdditionalInfo.Methods[0].Type)
}

func TestProcessMessageCakeCreation(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryCakeDesign, Score: 0.6})
	sc.ImageGen = stubImageGen{url: "https://cdn.example.com/torta.png"}
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{
		Message: "torta de cumpleaños rosa con flores de azúcar para 20 personas",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.AdditionalInfo)
	info := resp.AdditionalInfo
	assert.Equal(t, "cake_creation", info.Service)
	assert.Equal(t, "https://cdn.example.com/torta.png", info.ImageUrl)

	require.NotNil(t, info.Design)
	assert.Equal(t, "birthday", info.Design.Attributes.Occasion)
	assert.Equal(t, []string{"pink"}, info.Design.Attributes.Colors)
	assert.Equal(t, "large", info.Design.Attributes.Size)

	require.NotNil(t, info.EstimatedPrice)
	assert.Equal(t, int64(7053), info.EstimatedPrice.TotalEstimated)

	require.NotNil(t, info.Specifications)
	assert.Equal(t, "20-25 personas", info.Specifications.Portions)
}

func TestProcessMessageCakeImageFailureUsesPlaceholder(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryCakeDesign, Score: 0.6})
	sc.ImageGen = stubImageGen{err: fmt.Errorf("image api down")}
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "quiero una torta de boda"})
	require.NoError(t, err)

	require.NotNil(t, resp.AdditionalInfo)
	assert.Equal(t, llm.PlaceholderImageURL, resp.AdditionalInfo.ImageUrl)
}

func TestProcessMessageCakeTextFailureStillSucceeds(t *testing.T) {
	sc := newTestContext(classifier.KeywordResult{Label: classifier.CategoryCakeDesign, Score: 0.6})
	sc.TextGen = stubTextGen{err: fmt.Errorf("model down")}
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "quiero una torta de boda"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, apologyCakes, resp.Message)
	require.NotNil(t, resp.AdditionalInfo.EstimatedPrice)
}

func TestProcessMessageInvalidGreeting(t *testing.T) {
	sc := newTestContext(classifier.ShortCircuitResult{Conf: 0.9, Hints: []string{"sugerencia"}})
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "hola"})
	require.NoError(t, err)

	assert.Equal(t, classifier.CategoryInvalid, resp.Category)
	assert.Equal(t, greetingMessage, resp.Message)
	require.NotNil(t, resp.AdditionalInfo)
	assert.Equal(t, []string{"sugerencia"}, resp.AdditionalInfo.Suggestions)
	assert.Len(t, resp.AdditionalInfo.Categories, 4)
}

func TestProcessMessageGeneralBranch(t *testing.T) {
	sc := newTestContext(classifier.FallbackResult{Label: classifier.CategoryGeneral, Conf: 0.7})
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "cuéntame sobre la tienda"})
	require.NoError(t, err)

	assert.Equal(t, "general", resp.AdditionalInfo.Service)
	assert.Equal(t, "respuesta generada", resp.Message)
}

func TestProcessMessageGeneralWithoutTextGen(t *testing.T) {
	sc := newTestContext(classifier.FallbackResult{Label: classifier.CategoryGeneral, Conf: 0.7})
	sc.TextGen = nil
	l := NewProcessMessageLogic(context.Background(), sc)

	resp, err := l.ProcessMessage(&types.ChatRequest{Message: "cuéntame sobre la tienda"})
	require.NoError(t, err)
	assert.Equal(t, generalMessage, resp.Message)
}

func TestProcessMessageRejectsEmpty(t *testing.T) {
	sc := newTestContext(classifier.NoMatchResult{})
	l := NewProcessMessageLogic(context.Background(), sc)

	_, err := l.ProcessMessage(&types.ChatRequest{Message: "   "})
	assert.Error(t, err)
}

func TestProcessMessageSanitizesScripts(t *testing.T) {
	sc := newTestContext(classifier.NoMatchResult{Hints: []string{"hint"}})
	l := NewProcessMessageLogic(context.Background(), sc)

	_, err := l.ProcessMessage(&types.ChatRequest{Message: "<script>alert(1)</script>"})
	// nothing classifiable survives sanitization
	assert.Error(t, err)
}
