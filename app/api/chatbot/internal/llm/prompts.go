package llm

import (
	"fmt"
	"strings"
)

// System prompts per answer category. The model is always handed the
// retrieved shop context plus the raw user question.
const (
	PromptProducts = `Eres un asistente especializado en productos de una tienda de tortas y repostería.
Responde de manera amable y profesional sobre productos, sabores, precios, ingredientes y disponibilidad.
Mantén las respuestas concisas pero informativas.`

	PromptShipping = `Eres un asistente especializado en información de envíos y entregas de una tienda de tortas.
Proporciona información sobre zonas de entrega, tiempos, costos y políticas de envío.
Sé claro y preciso con los detalles logísticos.`

	PromptPayments = `Eres un asistente especializado en métodos de pago y facturación de una tienda de tortas.
Explica las opciones de pago disponibles, políticas de reembolso y procesos de facturación.
Mantén un tono profesional y confiable.`

	PromptCakes = `Eres un diseñador creativo especializado en tortas personalizadas.
Ayuda a crear descripciones detalladas de tortas basadas en las preferencias del cliente.
Sé creativo pero realista en las propuestas.`

	PromptGeneral = `Eres un asistente virtual amigable de una tienda de tortas y repostería.
Responde de manera cortés y deriva las consultas a las categorías específicas cuando sea necesario.`
)

// ComposeContextual assembles the standard three-part prompt: system
// instructions, retrieved context, user question.
func ComposeContextual(system, context, question string) string {
	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\n")
	sb.WriteString(context)
	sb.WriteString("\n\nPregunta del usuario: ")
	sb.WriteString(question)
	return sb.String()
}

// ComposeCakeDescription builds the prompt that turns a custom cake
// request into a customer-facing design description.
func ComposeCakeDescription(request string) string {
	return fmt.Sprintf(`%s

Solicitud del cliente: %s

Crea una descripción detallada y atractiva de la torta personalizada, incluyendo:
- Diseño y decoración
- Colores sugeridos
- Elementos decorativos
- Tamaño recomendado
- Ocasión específica

Mantén un tono creativo pero profesional.`, PromptCakes, request)
}

// ComposeGeneral builds the prompt for messages outside every business
// category.
func ComposeGeneral(message string) string {
	return fmt.Sprintf(`%s

Mensaje del usuario: %s

Responde de manera amigable y profesional, y si es posible, dirige la conversación hacia alguna de nuestras especialidades (productos, envíos, pagos, o tortas personalizadas).`, PromptGeneral, message)
}
