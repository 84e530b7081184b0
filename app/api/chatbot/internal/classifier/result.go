package classifier

// Categories a message can be routed to. Wire labels match the shop's
// public API contract.
const (
	CategoryProducts   = "productos"
	CategoryShipping   = "envios"
	CategoryPayments   = "medios_pagos"
	CategoryCakeDesign = "creacion_torta"
	CategoryInvalid    = "pregunta_no_valida"
	CategoryGeneral    = "general"
)

const (
	ReasonShortCircuit        = "short-circuit"
	ReasonNoKeywordMatch      = "no keyword match"
	ReasonKeywordMatch        = "keyword-match"
	ReasonFallback            = "ai-fallback"
	ReasonFallbackUnparseable = "ai-fallback-unparseable"
	ReasonFallbackError       = "ai-fallback-error"
)

// Result is the outcome of classifying one message. Each classification
// path produces its own variant so optional data (matched keywords, raw
// model output) lives only where it exists.
type Result interface {
	Category() string
	Confidence() float64
	Reason() string
	// Suggestions is non-empty whenever Category is CategoryInvalid.
	Suggestions() []string
}

// ShortCircuitResult is produced when the prefilter rejects a message
// before any scoring happens.
type ShortCircuitResult struct {
	Conf  float64
	Hints []string
}

func (r ShortCircuitResult) Category() string      { return CategoryInvalid }
func (r ShortCircuitResult) Confidence() float64   { return r.Conf }
func (r ShortCircuitResult) Reason() string        { return ReasonShortCircuit }
func (r ShortCircuitResult) Suggestions() []string { return r.Hints }

// NoMatchResult is produced when no category keyword appears in the
// message at all.
type NoMatchResult struct {
	Hints []string
}

func (r NoMatchResult) Category() string      { return CategoryInvalid }
func (r NoMatchResult) Confidence() float64   { return 0.8 }
func (r NoMatchResult) Reason() string        { return ReasonNoKeywordMatch }
func (r NoMatchResult) Suggestions() []string { return r.Hints }

// KeywordResult is the keyword-scoring path outcome.
type KeywordResult struct {
	Label   string
	Score   float64
	Matches []string
	// Scores holds the normalized score of every category, keyed by label.
	Scores map[string]float64
}

func (r KeywordResult) Category() string      { return r.Label }
func (r KeywordResult) Confidence() float64   { return r.Score }
func (r KeywordResult) Reason() string        { return ReasonKeywordMatch }
func (r KeywordResult) Suggestions() []string { return nil }

// FallbackResult is produced when keyword scoring was inconclusive and the
// text-generation model picked the label.
type FallbackResult struct {
	Label       string
	Conf        float64
	RawAnswer   string
	Unparseable bool
	ErrDetail   string
}

func (r FallbackResult) Category() string    { return r.Label }
func (r FallbackResult) Confidence() float64 { return r.Conf }

func (r FallbackResult) Reason() string {
	switch {
	case r.ErrDetail != "":
		return ReasonFallbackError
	case r.Unparseable:
		return ReasonFallbackUnparseable
	default:
		return ReasonFallback
	}
}

func (r FallbackResult) Suggestions() []string {
	if r.Label == CategoryInvalid {
		return genericSuggestions()
	}
	return nil
}
