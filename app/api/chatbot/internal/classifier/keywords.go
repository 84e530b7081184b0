package classifier

// CategoryOrder fixes the iteration order for scoring and therefore the
// tie-break between categories with equal scores. Do not reorder.
var CategoryOrder = []string{
	CategoryProducts,
	CategoryShipping,
	CategoryPayments,
	CategoryCakeDesign,
}

// categoryKeywords maps each business category to its trigger words.
// Scores are normalized by list length, so adding a keyword to a category
// dilutes every other keyword in that category.
var categoryKeywords = map[string][]string{
	CategoryProducts: {
		"torta", "pastel", "tortas", "pasteles", "sabor", "sabores", "precio", "precios",
		"ingredientes", "chocolate", "vainilla", "fresa", "red velvet", "zanahoria",
		"sin gluten", "vegano", "dulce", "amargo", "tamaño", "porciones", "disponible",
		"stock", "catálogo", "menu", "opciones", "variedades", "especialidad",
		"recomendación", "popular", "mejor", "nuevo", "temporada",
	},
	CategoryShipping: {
		"envío", "envio", "entrega", "delivery", "domicilio", "enviar", "entregar",
		"zona", "zonas", "cobertura", "área", "tiempo", "horario", "cuando",
		"rápido", "urgente", "costo", "precio envío", "gratis", "distancia",
		"ubicación", "dirección", "barrio", "ciudad", "llevar", "recoger",
		"pickup", "logística", "transporte",
	},
	CategoryPayments: {
		"pagar", "pago", "pagos", "precio", "costo", "tarjeta", "efectivo",
		"transferencia", "débito", "crédito", "mercado pago", "paypal", "visa",
		"mastercard", "factura", "facturación", "recibo", "comprobante",
		"descuento", "promoción", "oferta", "anticipo", "seña", "cuotas",
		"financiación", "método", "forma", "modalidad",
	},
	CategoryCakeDesign: {
		"diseñar", "crear", "personalizada", "personalizado", "custom", "especial",
		"cumpleaños", "boda", "matrimonio", "aniversario", "graduación", "bautizo",
		"comunión", "quinceaños", "sweet 16", "baby shower", "género reveal",
		"temática", "tema", "decoración", "adorno", "figura", "muñeco",
		"floral", "flores", "rosas", "mariposas", "princesa", "superhéroe",
		"unicornio", "dinosaurio", "futbol", "deportes", "música", "arte",
		"colores", "rosa", "azul", "dorado", "plateado", "elegante", "moderno",
	},
}

func genericSuggestions() []string {
	return []string{
		"Intenta hacer una pregunta más específica sobre productos, envíos o medios de pago",
	}
}

func categorySuggestions() []string {
	return []string{
		`Pregunta sobre productos: "¿Qué sabores de torta tienen?"`,
		`Pregunta sobre envíos: "¿Hacen delivery?"`,
		`Pregunta sobre pagos: "¿Qué formas de pago aceptan?"`,
		`Creación de torta: "Quiero una torta de cumpleaños"`,
	}
}
