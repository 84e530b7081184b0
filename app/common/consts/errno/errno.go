package errno

const (
	StatusOK = 10000
)

const (
	InvalidParam = 40000 + iota
	EmptyMessage
	MessageTooLong
	RateLimited
)

const (
	InternalError = 50000 + iota
	ClassificationError
	ExtractionError
	PricingError
	DataAccessError
	ExternalServiceError
)
