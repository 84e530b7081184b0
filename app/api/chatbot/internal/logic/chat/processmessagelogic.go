// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"
	"strconv"
	"time"

	"DulceAI/app/api/chatbot/internal/cake"
	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/api/chatbot/internal/llm"
	"DulceAI/app/api/chatbot/internal/logic/helper"
	"DulceAI/app/api/chatbot/internal/mq"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/api/chatbot/internal/types"
	"DulceAI/app/common/snowflake"
	"DulceAI/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	apologyProducts = "Disculpa, tengo problemas para acceder a la información de productos en este momento. ¿Podrías intentar de nuevo?"
	apologyShipping = "Disculpa, no puedo acceder a la información de envíos ahora. Te recomiendo contactarnos directamente para obtener detalles de entrega."
	apologyPayments = "Tengo dificultades para acceder a la información de medios de pago. Por favor, contáctanos directamente para conocer las opciones disponibles."
	apologyCakes    = "Me gustaría ayudarte a diseñar tu torta personalizada, pero tengo problemas técnicos en este momento. ¿Podrías describirme qué tipo de torta necesitas y te ayudo con ideas generales?"

	greetingMessage = "¡Hola! Soy tu asistente virtual para tortas y repostería. ¿En qué puedo ayudarte hoy?"
	invalidMessage  = "No logré entender tu pregunta. ¿Podrías ser más específico?"
	generalMessage  = "¡Hola! Soy tu asistente virtual especializado en tortas y repostería. Puedo ayudarte con información sobre productos, envíos, medios de pago y diseño de tortas personalizadas. ¿En qué te gustaría que te ayude?"
)

var helpTopics = []string{
	"Información sobre productos",
	"Detalles de envío",
	"Medios de pago",
	"Diseño de tortas personalizadas",
}

type ProcessMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewProcessMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProcessMessageLogic {
	return &ProcessMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ProcessMessage classifies one customer message and answers it from the
// matching branch. Branch failures degrade into apologies inside a
// successful response; only invalid input surfaces as an error.
func (l *ProcessMessageLogic) ProcessMessage(req *types.ChatRequest) (*types.ChatResponse, error) {
	start := time.Now()

	message := helper.SanitizeMessage(req.Message)
	if err := helper.ValidateMessage(message); err != nil {
		return nil, err
	}

	result := l.svcCtx.Classifier.Classify(l.ctx, message)
	l.Infow("message classified",
		logx.Field("category", result.Category()),
		logx.Field("confidence", result.Confidence()),
		logx.Field("reason", result.Reason()))

	var (
		answer string
		info   *types.AdditionalInfo
	)
	switch result.Category() {
	case classifier.CategoryProducts:
		answer, info = l.handleProducts(message)
	case classifier.CategoryShipping:
		answer, info = l.handleShipping(message)
	case classifier.CategoryPayments:
		answer, info = l.handlePayments(message)
	case classifier.CategoryCakeDesign:
		answer, info = l.handleCakeCreation(message)
	case classifier.CategoryInvalid:
		answer, info = l.handleInvalid(result)
	default:
		answer, info = l.handleGeneral(message)
	}

	replyId := snowflake.Next()
	elapsed := time.Since(start).Milliseconds()

	resp := &types.ChatResponse{
		Success:        true,
		Message:        answer,
		Category:       result.Category(),
		Confidence:     result.Confidence(),
		AdditionalInfo: info,
		Metadata: types.Metadata{
			ReplyId:          strconv.FormatInt(replyId, 10),
			ProcessingTimeMs: elapsed,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			UserId:           req.UserId,
			SessionId:        req.SessionId,
		},
	}

	service := ""
	if info != nil {
		service = info.Service
	}
	if err := mq.PublishChatEvent(l.svcCtx, mq.ChatEvent{
		ReplyId:    replyId,
		UserId:     req.UserId,
		SessionId:  req.SessionId,
		Category:   result.Category(),
		Confidence: result.Confidence(),
		Service:    service,
		ElapsedMs:  elapsed,
		Timestamp:  time.Now().Unix(),
	}); err != nil {
		l.Errorf("publish chat event failed: %v", err)
	}

	return resp, nil
}

func (l *ProcessMessageLogic) handleProducts(message string) (string, *types.AdditionalInfo) {
	var rows []*product.Productos
	if sabor := helper.DetectSabor(message); sabor != "" {
		if found, err := l.svcCtx.ProductosModel.FindBySabor(l.ctx, sabor); err == nil && len(found) > 0 {
			rows = found
		}
	}
	if len(rows) == 0 {
		var err error
		rows, err = l.svcCtx.ProductosModel.FindAllActive(l.ctx)
		if err != nil {
			l.Errorf("load products failed: %v", err)
			return apologyProducts, &types.AdditionalInfo{Service: "products", Degraded: true}
		}
	}

	products := helper.ToProducts(rows)
	answer := l.generate(
		llm.ComposeContextual(llm.PromptProducts, helper.BuildProductContext(products), message),
		apologyProducts)

	return answer, &types.AdditionalInfo{
		Service:  "products",
		Products: products,
	}
}

func (l *ProcessMessageLogic) handleShipping(message string) (string, *types.AdditionalInfo) {
	var zones []types.DeliveryZone
	if zone := helper.DetectZone(message); zone != "" {
		if row, err := l.svcCtx.ZonasEntregaModel.FindByNombre(l.ctx, zone); err == nil && row != nil {
			zones = append(zones, helper.ToZone(row))
		}
	}
	if len(zones) == 0 {
		rows, err := l.svcCtx.ZonasEntregaModel.FindAllActive(l.ctx)
		if err != nil {
			l.Errorf("load delivery zones failed: %v", err)
			return apologyShipping, &types.AdditionalInfo{Service: "shipping", Degraded: true}
		}
		zones = helper.ToZones(rows)
	}

	answer := l.generate(
		llm.ComposeContextual(llm.PromptShipping, helper.BuildShippingContext(zones), message),
		apologyShipping)

	return answer, &types.AdditionalInfo{
		Service: "shipping",
		Zones:   zones,
	}
}

func (l *ProcessMessageLogic) handlePayments(message string) (string, *types.AdditionalInfo) {
	var methods []types.PaymentMethod
	if tipo := helper.DetectPaymentTipo(message); tipo != "" {
		if found, err := l.svcCtx.MediosPagoModel.FindByTipo(l.ctx, tipo); err == nil && len(found) > 0 {
			methods = helper.ToMethods(found)
		}
	}
	if len(methods) == 0 {
		found, err := l.svcCtx.MediosPagoModel.FindAllActive(l.ctx)
		if err != nil {
			l.Errorf("load payment methods failed: %v", err)
			return apologyPayments, &types.AdditionalInfo{Service: "payments", Degraded: true}
		}
		methods = helper.ToMethods(found)
	}

	answer := l.generate(
		llm.ComposeContextual(llm.PromptPayments, helper.BuildPaymentContext(methods), message),
		apologyPayments)

	return answer, &types.AdditionalInfo{
		Service: "payments",
		Methods: methods,
	}
}

func (l *ProcessMessageLogic) handleCakeCreation(message string) (string, *types.AdditionalInfo) {
	set := cake.Extract(message)
	estimate := cake.Estimate(set)
	specs := cake.BuildSpecifications(set)

	description := l.generate(llm.ComposeCakeDescription(message), apologyCakes)

	imageUrl := llm.PlaceholderImageURL
	if l.svcCtx.ImageGen != nil {
		if url, err := l.svcCtx.ImageGen.GenerateImage(l.ctx, message); err != nil {
			l.Errorf("cake image generation failed: %v", err)
		} else {
			imageUrl = url
		}
	}

	return description, &types.AdditionalInfo{
		Service: "cake_creation",
		Design: &types.CakeDesign{
			Attributes:  helper.ToCakeAttributes(set),
			Description: description,
			Suggestions: cake.DesignSuggestions(set),
		},
		Specifications: helper.ToSpecifications(specs),
		EstimatedPrice: helper.ToPriceEstimate(estimate),
		ImageUrl:       imageUrl,
	}
}

func (l *ProcessMessageLogic) handleInvalid(result classifier.Result) (string, *types.AdditionalInfo) {
	answer := invalidMessage
	if result.Reason() == classifier.ReasonShortCircuit {
		answer = greetingMessage
	}

	return answer, &types.AdditionalInfo{
		Service:     "invalid_handler",
		Suggestions: result.Suggestions(),
		Categories: []string{
			"Productos y sabores",
			"Envíos y entregas",
			"Medios de pago",
			"Tortas personalizadas",
		},
	}
}

func (l *ProcessMessageLogic) handleGeneral(message string) (string, *types.AdditionalInfo) {
	answer := l.generate(llm.ComposeGeneral(message), generalMessage)

	return answer, &types.AdditionalInfo{
		Service:     "general",
		Suggestions: helpTopics,
	}
}

// generate runs the prompt through the configured text model, falling back
// to the canned answer when no model is wired or generation fails.
func (l *ProcessMessageLogic) generate(prompt, fallback string) string {
	if l.svcCtx.TextGen == nil {
		return fallback
	}
	text, err := l.svcCtx.TextGen.Generate(l.ctx, prompt)
	if err != nil {
		l.Errorf("text generation failed: %v", err)
		return fallback
	}
	return text
}
