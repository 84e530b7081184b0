// Package cake extracts structured design attributes from custom cake
// requests and turns them into price estimates. Everything here is pure
// text scanning and arithmetic; no network or storage access.
package cake

// Canonical tags. Trigger words are the Spanish phrases customers write;
// tags are the stable values the pricing engine and API speak.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra_large"

	OccasionBirthday    = "birthday"
	OccasionWedding     = "wedding"
	OccasionAnniversary = "anniversary"
	OccasionGraduation  = "graduation"
	OccasionChristening = "christening"
	OccasionCommunion   = "communion"
	OccasionQuinceanera = "quinceanera"
	OccasionSweet16     = "sweet_16"
	OccasionBabyShower  = "baby_shower"
	OccasionGenderRev   = "gender_reveal"
	OccasionFarewell    = "farewell"

	ComplexityLow      = "low"
	ComplexityMedium   = "medium"
	ComplexityHigh     = "high"
	ComplexityVeryHigh = "very_high"
)

// AttributeSet is the structured reading of one custom cake request.
// Empty string means unset; multi-value fields keep first-detected order.
type AttributeSet struct {
	Occasion    string   `json:"occasion,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	AgeGroup    string   `json:"ageGroup,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Style       string   `json:"style,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Decorations []string `json:"decorations,omitempty"`
	Flavors     []string `json:"flavors,omitempty"`
	Size        string   `json:"size,omitempty"`
}

type trigger struct {
	word string
	tag  string
}

// Dictionary order is load-bearing: single-value domains scan the whole
// list and the LAST matching entry wins, so reordering entries changes
// extraction results. Kept exactly as the shop's historical tables.
var occasionTriggers = []trigger{
	{"cumpleaños", OccasionBirthday},
	{"boda", OccasionWedding},
	{"matrimonio", OccasionWedding},
	{"aniversario", OccasionAnniversary},
	{"graduación", OccasionGraduation},
	{"graduacion", OccasionGraduation},
	{"bautizo", OccasionChristening},
	{"comunión", OccasionCommunion},
	{"comunion", OccasionCommunion},
	{"quinceaños", OccasionQuinceanera},
	{"sweet 16", OccasionSweet16},
	{"baby shower", OccasionBabyShower},
	{"gender reveal", OccasionGenderRev},
	{"despedida", OccasionFarewell},
}

var themeTriggers = []trigger{
	{"princesa", "princess"},
	{"superhéroe", "superhero"},
	{"unicornio", "unicorn"},
	{"dinosaurio", "dinosaur"},
	{"futbol", "soccer"},
	{"deportes", "sports"},
	{"música", "music"},
	{"arte", "art"},
	{"flores", "flowers"},
	{"mariposas", "butterflies"},
	{"corazones", "hearts"},
	{"estrellas", "stars"},
	{"arco iris", "rainbow"},
	{"frozen", "frozen"},
	{"disney", "disney"},
	{"marvel", "marvel"},
	{"pokemon", "pokemon"},
	{"minecraft", "minecraft"},
	{"fortnite", "fortnite"},
	{"unicornios", "unicorn"},
	{"sirena", "mermaid"},
	{"pirata", "pirate"},
	{"carreras", "racing"},
	{"construcción", "construction"},
	{"jardín", "garden"},
	{"vintage", "vintage"},
	{"moderno", "modern"},
	{"elegante", "elegant"},
	{"rustico", "rustic"},
	{"tropical", "tropical"},
	{"navidad", "christmas"},
	{"halloween", "halloween"},
}

var colorTriggers = []trigger{
	{"rosa", "pink"},
	{"azul", "blue"},
	{"verde", "green"},
	{"amarillo", "yellow"},
	{"rojo", "red"},
	{"morado", "purple"},
	{"violeta", "violet"},
	{"naranja", "orange"},
	{"blanco", "white"},
	{"negro", "black"},
	{"dorado", "gold"},
	{"plateado", "silver"},
	{"celeste", "sky_blue"},
	{"fucsia", "fuchsia"},
	{"turquesa", "turquoise"},
	{"coral", "coral"},
	{"lavanda", "lavender"},
	{"mint", "mint"},
	{"beige", "beige"},
}

var decorationTriggers = []trigger{
	{"figuras", "figurines"},
	{"muñecos", "dolls"},
	{"flores naturales", "natural flowers"},
	{"flores de azúcar", "sugar flowers"},
	{"mariposas", "butterflies"},
	{"perlas", "pearls"},
	{"brillos", "sparkles"},
	{"glitter", "glitter"},
	{"fondant", "fondant"},
	{"buttercream", "buttercream"},
	{"merengue", "meringue"},
	{"chocolate", "chocolate"},
	{"frutas", "fruit"},
	{"velas", "candles"},
	{"topper", "topper"},
	{"banderines", "bunting"},
	{"globos", "balloons"},
	{"encaje", "lace"},
	{"lazos", "ribbons"},
}

var flavorTriggers = []trigger{
	{"chocolate", "chocolate"},
	{"vainilla", "vanilla"},
	{"fresa", "strawberry"},
	{"red velvet", "red velvet"},
	{"zanahoria", "carrot"},
	{"limón", "lemon"},
	{"café", "coffee"},
	{"dulce de leche", "dulce de leche"},
	{"tres leches", "tres leches"},
	{"coco", "coconut"},
	{"banana", "banana"},
	{"manzana", "apple"},
	{"naranja", "orange"},
	{"maracuyá", "passion fruit"},
	{"cheesecake", "cheesecake"},
}

var ageGroupTriggers = []trigger{
	{"niña", "child"},
	{"niño", "child"},
	{"infantil", "child"},
	{"bebé", "child"},
	{"adolescente", "teen"},
	{"teen", "teen"},
	{"adulto", "adult"},
	{"adulta", "adult"},
}

var genderTriggers = []trigger{
	{"niña", "female"},
	{"mujer", "female"},
	{"femenino", "female"},
	{"niño", "male"},
	{"hombre", "male"},
	{"masculino", "male"},
}

var styleTriggers = []trigger{
	{"elegante", "elegant"},
	{"sofisticado", "elegant"},
	{"divertido", "fun"},
	{"colorido", "fun"},
	{"sencillo", "simple"},
	{"minimalista", "simple"},
	{"rustico", "rustic"},
	{"campestre", "rustic"},
}

// sizeBranches run small→medium→large→extra_large; the first branch with
// any phrase hit wins. "extra grande" therefore lands on large because the
// large branch's "grande" matches first — historical behavior, kept.
var sizeBranches = []struct {
	tag     string
	phrases []string
}{
	{SizeSmall, []string{"chica", "pequeña", "6 personas", "personal"}},
	{SizeMedium, []string{"mediana", "12 personas", "familia"}},
	{SizeLarge, []string{"grande", "20 personas", "fiesta"}},
	{SizeExtraLarge, []string{"extra grande", "30 personas", "evento"}},
}
