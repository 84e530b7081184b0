package classifier

import (
	"context"
	"fmt"
	"strings"

	"DulceAI/app/api/chatbot/internal/llm"

	"github.com/zeromicro/go-zero/core/logx"
)

// validLabels is the closed vocabulary the model may answer with.
var validLabels = map[string]bool{
	CategoryProducts:   true,
	CategoryShipping:   true,
	CategoryPayments:   true,
	CategoryCakeDesign: true,
	CategoryInvalid:    true,
}

// Fallback resolves messages the keyword pass could not settle by asking
// the text-generation model for a single label out of the closed set.
type Fallback struct {
	log logx.Logger
	gen llm.TextGenerator
}

func NewFallback(logger logx.Logger, gen llm.TextGenerator) *Fallback {
	if gen == nil {
		return nil
	}
	return &Fallback{log: logger, gen: gen}
}

// Classify asks the model for a category label and validates the answer.
// It degrades instead of failing: an out-of-vocabulary answer yields
// CategoryInvalid at confidence 0.6, a generation error CategoryInvalid at
// 0.4 with the error detail attached.
func (f *Fallback) Classify(ctx context.Context, message string) Result {
	answer, err := f.gen.Generate(ctx, buildFallbackPrompt(message))
	if err != nil {
		f.log.Errorf("fallback classification failed: %v", err)
		return FallbackResult{
			Label:     CategoryInvalid,
			Conf:      0.4,
			ErrDetail: err.Error(),
		}
	}

	label := strings.ToLower(strings.TrimSpace(answer))
	if !validLabels[label] {
		f.log.Infof("fallback returned out-of-vocabulary label %q", label)
		return FallbackResult{
			Label:       CategoryInvalid,
			Conf:        0.6,
			RawAnswer:   answer,
			Unparseable: true,
		}
	}

	return FallbackResult{
		Label:     label,
		Conf:      0.7,
		RawAnswer: answer,
	}
}

func buildFallbackPrompt(message string) string {
	return fmt.Sprintf(`Clasifica el siguiente mensaje de usuario en UNA de estas categorías exactas:
- productos: preguntas sobre tortas, sabores, ingredientes, precios de productos
- envios: preguntas sobre entregas, zonas, tiempos, costos de envío
- medios_pagos: preguntas sobre formas de pago, facturación, precios
- creacion_torta: solicitudes para diseñar tortas personalizadas
- pregunta_no_valida: mensajes poco claros, saludos, o no relacionados con el negocio

Mensaje: "%s"

Responde SOLO con el nombre de la categoría, sin explicaciones adicionales.`, message)
}
