package queue

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TaskAuctionWon     = "AUCTION_WON"
	TaskAuctionExpired = "AUCTION_EXPIRED"
)

// Envelope is the shared-queue wire format: one topic, variant payloads.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type AuctionWonPayload struct {
	AuctionID   uuid.UUID       `json:"auctionId"`
	WinnerID    uuid.UUID       `json:"winnerId"`
	WinnerEmail string          `json:"winnerEmail"`
	Amount      decimal.Decimal `json:"amount"`
	SellerEmail string          `json:"sellerEmail"`
	Title       string          `json:"title"`
}

type AuctionExpiredPayload struct {
	AuctionID   uuid.UUID `json:"auctionId"`
	SellerEmail string    `json:"sellerEmail"`
	Title       string    `json:"title"`
}

func NewEnvelope(taskType string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: taskType, Payload: raw}, nil
}

// UnwrapPayload decodes the variant payload of an envelope.
func UnwrapPayload[T any](raw json.RawMessage) (T, error) {
	var t T
	err := json.Unmarshal(raw, &t)
	return t, err
}
