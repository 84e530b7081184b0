package cake

import "math"

const (
	// EstimateNote accompanies every successful estimate.
	EstimateNote = "Precio estimado. El costo final puede variar según especificaciones exactas."
	// ConsultNote replaces the estimate when pricing degrades.
	ConsultNote = "Contáctanos para un presupuesto detallado"
	// ConsultEstimate is the degraded stand-in for a numeric total.
	ConsultEstimate = "A consultar"
)

var basePrices = map[string]float64{
	SizeSmall:      800,
	SizeMedium:     1200,
	SizeLarge:      1800,
	SizeExtraLarge: 2500,
}

const defaultBasePrice = 1000

var occasionFactors = map[string]float64{
	OccasionWedding:     2.0,
	OccasionQuinceanera: 1.8,
	OccasionGraduation:  1.5,
	OccasionBirthday:    1.2,
	OccasionChristening: 1.3,
}

var complexityFactors = map[string]float64{
	ComplexityLow:      1.0,
	ComplexityMedium:   1.4,
	ComplexityHigh:     2.0,
	ComplexityVeryHigh: 2.5,
}

var sizeFactors = map[string]float64{
	SizeSmall:      1.0,
	SizeMedium:     1.5,
	SizeLarge:      2.2,
	SizeExtraLarge: 3.0,
}

var decorationSurcharges = map[string]float64{
	"figurines":       300,
	"natural flowers": 200,
	"sugar flowers":   400,
	"fondant":         250,
	"chocolate":       150,
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// AppliedFactors records which multipliers shaped an estimate.
type AppliedFactors struct {
	Occasion    string `json:"occasion,omitempty"`
	Size        string `json:"size,omitempty"`
	Complexity  string `json:"complexity"`
	Decorations int    `json:"decorations"`
}

// PriceEstimate is the pricing engine output. When Consult is true the
// numbers are meaningless and callers must surface ConsultEstimate plus
// the note instead.
type PriceEstimate struct {
	BasePrice      int64
	TotalEstimated int64
	PriceRange     PriceRange
	Complexity     string
	Factors        AppliedFactors
	Note           string
	Consult        bool
}

// Complexity scores the design: 1 for a theme, 2 for a wedding, 1 per
// decoration, 0.5 per color, 2 for extra_large and 1 for large sizing.
// Bands: ≤2 low, ≤4 medium, ≤6 high, above very_high.
func Complexity(set AttributeSet) string {
	var score float64
	if set.Theme != "" {
		score++
	}
	if set.Occasion == OccasionWedding {
		score += 2
	}
	score += float64(len(set.Decorations))
	score += float64(len(set.Colors)) * 0.5
	switch set.Size {
	case SizeExtraLarge:
		score += 2
	case SizeLarge:
		score++
	}

	switch {
	case score <= 2:
		return ComplexityLow
	case score <= 4:
		return ComplexityMedium
	case score <= 6:
		return ComplexityHigh
	default:
		return ComplexityVeryHigh
	}
}

// BasePrice looks up the base price for a size tag; unset or unknown
// sizes fall back to the default.
func BasePrice(size string) float64 {
	if p, ok := basePrices[size]; ok {
		return p
	}
	return defaultBasePrice
}

// Estimate prices a design: base price by size, multiplied by occasion,
// complexity and size factors, plus flat surcharges per priced
// decoration. It never fails; anything that would produce a nonsensical
// total degrades into a consult estimate.
func Estimate(set AttributeSet) PriceEstimate {
	complexity := Complexity(set)
	base := BasePrice(set.Size)
	total := base

	if f, ok := occasionFactors[set.Occasion]; ok {
		total *= f
	}
	if f, ok := complexityFactors[complexity]; ok {
		total *= f
	}
	if f, ok := sizeFactors[set.Size]; ok {
		total *= f
	}

	for _, deco := range set.Decorations {
		total += decorationSurcharges[deco]
	}

	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return PriceEstimate{
			Complexity: complexity,
			Note:       ConsultNote,
			Consult:    true,
		}
	}

	rounded := int64(math.Round(total))
	return PriceEstimate{
		BasePrice:      int64(math.Round(base)),
		TotalEstimated: rounded,
		PriceRange: PriceRange{
			Min: int64(math.Round(total * 0.8)),
			Max: int64(math.Round(total * 1.2)),
		},
		Complexity: complexity,
		Factors: AppliedFactors{
			Occasion:    set.Occasion,
			Size:        set.Size,
			Complexity:  complexity,
			Decorations: len(set.Decorations),
		},
		Note: EstimateNote,
	}
}
