package request

import (
	"github.com/shopspring/decimal"
)

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
