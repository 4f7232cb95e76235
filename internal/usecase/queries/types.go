package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionView struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	SellerName    string
	SellerEmail   string
	Title         string
	Description   string
	Status        string
	StartingPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AuctionListItem struct {
	ID           uuid.UUID
	SellerName   string
	Title        string
	Status       string
	CurrentPrice decimal.Decimal
	EndTime      time.Time
	ImageURL     string
	CreatedAt    time.Time
}

type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type AuctionPage struct {
	Items []AuctionListItem
	Meta  PageMeta
}

// AuctionFilter is the explicit options struct the list query is built from;
// every optional field maps 1:1 to a SQL clause.
type AuctionFilter struct {
	Search   *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Normalize applies the paging defaults and bounds.
func (f AuctionFilter) Normalize() AuctionFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	return f
}

func (f AuctionFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
