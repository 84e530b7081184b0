package helper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"DulceAI/app/api/chatbot/internal/cake"
	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/api/chatbot/internal/types"
	"DulceAI/app/common/consts/errno"
	"DulceAI/app/dal/payment"
	"DulceAI/app/dal/product"
	"DulceAI/app/dal/shipping"

	"github.com/zeromicro/x/errors"
)

const MaxMessageLength = 1000

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	scriptBlocks  = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	jsUrls        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeMessage strips control characters and script fragments before the
// message touches the classifier or any prompt.
func SanitizeMessage(message string) string {
	message = controlChars.ReplaceAllString(message, "")
	message = scriptBlocks.ReplaceAllString(message, "")
	message = jsUrls.ReplaceAllString(message, "")
	message = eventHandlers.ReplaceAllString(message, "")
	return strings.TrimSpace(message)
}

// ValidateMessage enforces the 1..1000 character contract on the sanitized
// message.
func ValidateMessage(message string) error {
	if message == "" {
		return errors.New(errno.EmptyMessage, "el mensaje no puede estar vacío")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return errors.New(errno.MessageTooLong, "el mensaje no puede tener más de 1000 caracteres")
	}
	return nil
}

func ToProduct(in *product.Productos) types.Product {
	return types.Product{
		Id:          in.Id,
		Name:        in.Nombre,
		Description: in.Descripcion.String,
		Price:       in.Precio,
		Flavor:      in.Sabor.String,
		Ingredients: in.Ingredientes.String,
		Image:       in.Imagen.String,
	}
}

func ToProducts(in []*product.Productos) []types.Product {
	out := make([]types.Product, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, ToProduct(p))
	}
	return out
}

func ToZone(in *shipping.ZonasEntrega) types.DeliveryZone {
	return types.DeliveryZone{
		Id:            in.Id,
		Name:          in.Nombre,
		Description:   in.Descripcion.String,
		BaseCost:      in.CostoBase,
		EstimatedTime: in.TiempoEstimado.String,
	}
}

func ToZones(in []*shipping.ZonasEntrega) []types.DeliveryZone {
	out := make([]types.DeliveryZone, 0, len(in))
	for _, z := range in {
		if z == nil {
			continue
		}
		out = append(out, ToZone(z))
	}
	return out
}

func ToMethod(in *payment.MediosPago) types.PaymentMethod {
	return types.PaymentMethod{
		Id:          in.Id,
		Name:        in.Nombre,
		Description: in.Descripcion.String,
		Type:        in.Tipo,
		Commission:  in.Comision.Float64,
		Icon:        in.Icono.String,
	}
}

func ToMethods(in []*payment.MediosPago) []types.PaymentMethod {
	out := make([]types.PaymentMethod, 0, len(in))
	for _, m := range in {
		if m == nil {
			continue
		}
		out = append(out, ToMethod(m))
	}
	return out
}

func ToCakeAttributes(set cake.AttributeSet) types.CakeAttributes {
	return types.CakeAttributes{
		Occasion:    set.Occasion,
		Theme:       set.Theme,
		AgeGroup:    set.AgeGroup,
		Gender:      set.Gender,
		Style:       set.Style,
		Colors:      set.Colors,
		Decorations: set.Decorations,
		Flavors:     set.Flavors,
		Size:        set.Size,
	}
}

func ToSpecifications(spec cake.Specifications) *types.CakeSpecifications {
	return &types.CakeSpecifications{
		PreparationTime: spec.PreparationTime,
		AdvanceNotice:   spec.AdvanceNotice,
		Portions:        spec.Portions,
		Ingredients:     spec.Ingredients,
	}
}

func ToPriceEstimate(est cake.PriceEstimate) *types.PriceEstimate {
	if est.Consult {
		return &types.PriceEstimate{
			TotalEstimated: cake.ConsultEstimate,
			Complexity:     est.Complexity,
			Note:           est.Note,
		}
	}
	return &types.PriceEstimate{
		BasePrice:      est.BasePrice,
		TotalEstimated: est.TotalEstimated,
		PriceRange:     &types.PriceRange{Min: est.PriceRange.Min, Max: est.PriceRange.Max},
		Complexity:     est.Complexity,
		Note:           est.Note,
	}
}

// ToClassification flattens a classifier result into the wire DTO. Only the
// keyword path carries per-category scores and matches.
func ToClassification(res classifier.Result) types.Classification {
	out := types.Classification{
		Category:    res.Category(),
		Confidence:  res.Confidence(),
		Reason:      res.Reason(),
		Suggestions: res.Suggestions(),
	}
	if kr, ok := res.(classifier.KeywordResult); ok {
		out.AllScores = kr.Scores
		if len(kr.Matches) > 0 {
			out.KeywordMatches = map[string][]string{kr.Label: kr.Matches}
		}
	}
	return out
}

// BuildProductContext renders the catalog into the prompt context block.
func BuildProductContext(products []types.Product) string {
	if len(products) == 0 {
		return `INFORMACIÓN DE PRODUCTOS:
No se pudo obtener información específica de la base de datos.
Por favor, proporciona información general sobre productos de repostería.`
	}

	var sb strings.Builder
	sb.WriteString("INFORMACIÓN DE PRODUCTOS DISPONIBLES:\n\nPRODUCTOS:\n")
	for _, p := range products {
		sb.WriteString("- ")
		sb.WriteString(p.Name)
		sb.WriteString(": $")
		sb.WriteString(formatPrice(p.Price))
		desc := p.Description
		if desc == "" {
			desc = "Sin descripción"
		}
		sb.WriteString(" (")
		sb.WriteString(desc)
		sb.WriteString(")\n")
	}
	return sb.String()
}

// BuildShippingContext renders delivery zones into the prompt context block.
func BuildShippingContext(zones []types.DeliveryZone) string {
	if len(zones) == 0 {
		return `INFORMACIÓN DE ENVÍOS:
No se pudo obtener información específica de envíos.
Por favor, proporciona información general sobre entregas.`
	}

	var sb strings.Builder
	sb.WriteString("INFORMACIÓN DE ENVÍOS Y ENTREGAS:\n\nZONAS DE ENTREGA:\n")
	for _, z := range zones {
		sb.WriteString("- ")
		sb.WriteString(z.Name)
		sb.WriteString(": $")
		sb.WriteString(formatPrice(z.BaseCost))
		t := z.EstimatedTime
		if t == "" {
			t = "Tiempo a consultar"
		}
		sb.WriteString(" (")
		sb.WriteString(t)
		sb.WriteString(")\n")
	}
	return sb.String()
}

// BuildPaymentContext renders payment methods into the prompt context block.
func BuildPaymentContext(methods []types.PaymentMethod) string {
	if len(methods) == 0 {
		return `INFORMACIÓN DE MEDIOS DE PAGO:
No se pudo obtener información específica de medios de pago.
Por favor, proporciona información general sobre formas de pago.`
	}

	var sb strings.Builder
	sb.WriteString("INFORMACIÓN DE MEDIOS DE PAGO:\n\nMÉTODOS DE PAGO DISPONIBLES:\n")
	for _, m := range methods {
		sb.WriteString("- ")
		sb.WriteString(m.Name)
		if m.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(m.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatPrice(v float64) string {
	if v <= 0 {
		return "Consultar"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var knownZones = []string{
	"centro", "microcentro", "puerto madero", "san telmo", "la boca",
	"barracas", "constitución", "monserrat", "retiro", "recoleta",
	"palermo", "villa crespo", "almagro", "caballito", "flores",
	"once", "balvanera", "boedo", "parque chacabuco", "nueva pompeya",
}

// DetectZone returns the first known neighborhood mentioned in the message.
func DetectZone(message string) string {
	clean := strings.ToLower(message)
	for _, z := range knownZones {
		if strings.Contains(clean, z) {
			return z
		}
	}
	return ""
}

var saborWords = []string{
	"chocolate", "vainilla", "fresa", "frutilla", "red velvet", "zanahoria",
	"limón", "limon", "café", "dulce de leche", "tres leches", "coco",
	"banana", "manzana", "naranja", "maracuyá", "cheesecake",
}

// DetectSabor returns the first flavor word mentioned in the message, in
// the form stored in the catalog's sabor column.
func DetectSabor(message string) string {
	clean := strings.ToLower(message)
	for _, s := range saborWords {
		if strings.Contains(clean, s) {
			return s
		}
	}
	return ""
}

var paymentTipos = []struct {
	words []string
	tipo  string
}{
	{[]string{"tarjeta", "credito", "crédito", "debito", "débito", "visa", "mastercard"}, "tarjeta"},
	{[]string{"efectivo", "cash"}, "efectivo"},
	{[]string{"transferencia", "banco"}, "transferencia"},
	{[]string{"mercado pago", "mercadopago", "paypal"}, "digital"},
}

// DetectPaymentTipo maps payment vocabulary in the message to a stored
// method type, empty when the question is generic.
func DetectPaymentTipo(message string) string {
	clean := strings.ToLower(message)
	for _, pt := range paymentTipos {
		for _, w := range pt.words {
			if strings.Contains(clean, w) {
				return pt.tipo
			}
		}
	}
	return ""
}
