package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeePercent is the service fee charged on every conversion, as a percentage of the gross amount.
const FeePercent = 2.0

type ConversionRequest struct {
	Amount float64
	Source string
	Target string
}

type ConversionResult struct {
	GrossAmount    float64
	FeeAmount      float64
	NetAmount      float64
	TargetCurrency string
}

// Quote is a computed conversion kept around briefly so clients can fetch it again by ID.
type Quote struct {
	ID        uuid.UUID
	Request   ConversionRequest
	Rate      float64
	Result    ConversionResult
	CreatedAt time.Time
}
