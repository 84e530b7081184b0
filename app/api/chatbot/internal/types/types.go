// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	Message   string `json:"message"`
	UserId    string `json:"userId,optional"`
	SessionId string `json:"sessionId,optional"`
	Context   string `json:"context,optional"`
}

type ChatResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Category       string          `json:"category"`
	Confidence     float64         `json:"confidence"`
	AdditionalInfo *AdditionalInfo `json:"additionalInfo,omitempty"`
	Metadata       Metadata        `json:"metadata"`
}

type Metadata struct {
	ReplyId          string `json:"replyId"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	Timestamp        string `json:"timestamp"`
	UserId           string `json:"userId,omitempty"`
	SessionId        string `json:"sessionId,omitempty"`
}

type AdditionalInfo struct {
	Service        string              `json:"service,omitempty"`
	Products       []Product           `json:"products,omitempty"`
	Zones          []DeliveryZone      `json:"zones,omitempty"`
	Methods        []PaymentMethod     `json:"methods,omitempty"`
	Suggestions    []string            `json:"suggestions,omitempty"`
	Categories     []string            `json:"categories,omitempty"`
	Design         *CakeDesign         `json:"design,omitempty"`
	Specifications *CakeSpecifications `json:"specifications,omitempty"`
	EstimatedPrice *PriceEstimate      `json:"estimatedPrice,omitempty"`
	ImageUrl       string              `json:"imageUrl,omitempty"`
	Degraded       bool                `json:"degraded,omitempty"`
}

type Product struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Flavor      string  `json:"flavor,omitempty"`
	Ingredients string  `json:"ingredients,omitempty"`
	Image       string  `json:"image,omitempty"`
}

type DeliveryZone struct {
	Id            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	BaseCost      float64 `json:"baseCost"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
}

type PaymentMethod struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Commission  float64 `json:"commission,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

type CakeAttributes struct {
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

type CakeDesign struct {
	Attributes  CakeAttributes `json:"attributes"`
	Description string         `json:"description,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

type CakeSpecifications struct {
	PreparationTime string   `json:"preparationTime"`
	AdvanceNotice   string   `json:"advanceNotice"`
	Portions        string   `json:"portions"`
	Ingredients     []string `json:"ingredients,omitempty"`
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// TotalEstimated carries a number for priced designs and the literal
// string "A consultar" when pricing degrades.
type PriceEstimate struct {
	BasePrice      int64       `json:"basePrice,omitempty"`
	TotalEstimated interface{} `json:"totalEstimated"`
	PriceRange     *PriceRange `json:"priceRange,omitempty"`
	Complexity     string      `json:"complexity"`
	Note           string      `json:"note"`
}

type ClassifyRequest struct {
	Message string `json:"message"`
}

type Classification struct {
	Category       string              `json:"category"`
	Confidence     float64             `json:"confidence"`
	Reason         string              `json:"reason,omitempty"`
	KeywordMatches map[string][]string `json:"keywordMatches,omitempty"`
	AllScores      map[string]float64  `json:"allScores,omitempty"`
	Suggestions    []string            `json:"suggestions,omitempty"`
}

type CategoryInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
