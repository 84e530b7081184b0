package cake

// Specifications are the production details quoted alongside an estimate.
type Specifications struct {
	PreparationTime string   `json:"preparationTime"`
	AdvanceNotice   string   `json:"advanceNotice"`
	Portions        string   `json:"portions"`
	Ingredients     []string `json:"ingredients"`
}

var portionsBySize = map[string]string{
	SizeSmall:      "6-8 personas",
	SizeMedium:     "12-15 personas",
	SizeLarge:      "20-25 personas",
	SizeExtraLarge: "30-40 personas",
}

// BuildSpecifications derives preparation lead times and portions from the
// extracted design. Heavily decorated or oversized cakes need the longer
// window.
func BuildSpecifications(set AttributeSet) Specifications {
	prep, notice := "24-48 horas", "48 horas"
	if len(set.Decorations) > 3 || set.Occasion == OccasionWedding || set.Size == SizeExtraLarge {
		prep, notice = "48-72 horas", "72 horas"
	}

	portions, ok := portionsBySize[set.Size]
	if !ok {
		portions = "A consultar"
	}

	return Specifications{
		PreparationTime: prep,
		AdvanceNotice:   notice,
		Portions:        portions,
		Ingredients:     SuggestedIngredients(set),
	}
}

// SuggestedIngredients lists the base pantry plus flavor- and
// decoration-specific additions.
func SuggestedIngredients(set AttributeSet) []string {
	ingredients := []string{"Harina premium", "Huevos frescos", "Mantequilla", "Azúcar"}

	for _, flavor := range set.Flavors {
		switch flavor {
		case "chocolate":
			ingredients = append(ingredients, "Cacao premium", "Chocolate belga")
		case "vanilla":
			ingredients = append(ingredients, "Esencia de vainilla natural")
		case "strawberry":
			ingredients = append(ingredients, "Fresas frescas", "Mermelada artesanal")
		}
	}

	for _, deco := range set.Decorations {
		switch deco {
		case "fondant":
			ingredients = append(ingredients, "Fondant premium")
		case "sugar flowers":
			ingredients = append(ingredients, "Azúcar glas", "Colorantes naturales")
		}
	}

	return ingredients
}

// DesignSuggestions proposes follow-ups based on what the request did and
// did not specify.
func DesignSuggestions(set AttributeSet) []string {
	var suggestions []string

	switch set.Occasion {
	case OccasionBirthday:
		suggestions = append(suggestions,
			"Considera agregar velas personalizadas",
			"¿Te gustaría incluir el nombre del festejado?")
	case OccasionWedding:
		suggestions = append(suggestions,
			"Podemos crear un topper personalizado con los nombres",
			"Las flores naturales dan un toque muy elegante")
	}

	switch len(set.Colors) {
	case 0:
		suggestions = append(suggestions, "Considera colores que combinen con la decoración del evento")
	case 1:
		suggestions = append(suggestions, "Podríamos agregar un color complementario para más contraste")
	}

	switch set.Theme {
	case "princess":
		suggestions = append(suggestions,
			"Podemos incluir una corona comestible como decoración",
			"Los tonos rosa y dorado quedan perfectos con este tema")
	case "superhero":
		suggestions = append(suggestions,
			"Podemos crear el logo del superhéroe favorito",
			"Los colores vibrantes son ideales para este tema")
	}

	if set.Size == "" {
		suggestions = append(suggestions, "Especifica la cantidad aproximada de personas para sugerir el tamaño ideal")
	}
	if len(set.Flavors) == 0 {
		suggestions = append(suggestions, "¿Tienes algún sabor favorito? Podemos sugerirte las mejores combinaciones")
	}

	return suggestions
}
