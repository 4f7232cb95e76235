package response

import (
	"time"

	"gavel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidResponse struct {
	ID         uuid.UUID       `json:"id"`
	AuctionID  uuid.UUID       `json:"auctionId"`
	BidderID   uuid.UUID       `json:"bidderId"`
	BidderName string          `json:"bidderName"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func FromBidView(v *commands.BidView) *BidResponse {
	return &BidResponse{
		ID:         v.ID,
		AuctionID:  v.AuctionID,
		BidderID:   v.BidderID,
		BidderName: v.BidderName,
		Amount:     v.Amount,
		CreatedAt:  v.CreatedAt,
	}
}
