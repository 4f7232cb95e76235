//go:build unit || e2e

package builder

import (
	"time"

	domauction "gavel/internal/domain/auction"
	reqdto "gavel/internal/handler/dto/request"
	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionBuilder struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	SellerName    string
	SellerEmail   string
	Title         string
	Description   string
	Status        domauction.Status
	StartingPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
	ImageURL      string
	Now           time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &AuctionBuilder{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		SellerName:    "Test Seller",
		SellerEmail:   "seller@example.com",
		Title:         "Vintage Camera",
		Description:   "A well-kept vintage camera",
		Status:        domauction.StatusActive,
		StartingPrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
		StartTime:     now.Add(-time.Hour),
		EndTime:       now.Add(24 * time.Hour),
		ImageURL:      "https://example.com/camera.jpg",
		Now:           now,
		CreatedAt:     now.Add(-time.Hour),
		UpdatedAt:     now.Add(-time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AuctionBuilder) BuildDomain() (*domauction.Auction, error) {
	return domauction.NewAuction(
		b.SellerID, b.Title, b.Description, b.StartingPrice,
		b.StartTime, b.EndTime, b.ImageURL, b.Now,
	)
}

func (b *AuctionBuilder) BuildReconstructed() *domauction.Auction {
	return domauction.Reconstruct(
		b.ID, b.SellerID, b.Title, b.Description, b.Status,
		b.StartingPrice, b.CurrentPrice, b.StartTime, b.EndTime,
		b.ImageURL, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *AuctionBuilder) BuildSnapshot() *commands.AuctionSnapshot {
	return &commands.AuctionSnapshot{
		ID:            b.ID,
		SellerID:      b.SellerID,
		Title:         b.Title,
		Description:   b.Description,
		Status:        b.Status,
		StartingPrice: b.StartingPrice,
		CurrentPrice:  b.CurrentPrice,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *AuctionBuilder) BuildViewQuery() *queries.AuctionView {
	return &queries.AuctionView{
		ID:            b.ID,
		SellerID:      b.SellerID,
		SellerName:    b.SellerName,
		SellerEmail:   b.SellerEmail,
		Title:         b.Title,
		Description:   b.Description,
		Status:        b.Status.String(),
		StartingPrice: b.StartingPrice,
		CurrentPrice:  b.CurrentPrice,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *AuctionBuilder) BuildCreateRequestDTO() reqdto.CreateAuctionRequest {
	return reqdto.CreateAuctionRequest{
		Title:         b.Title,
		Description:   b.Description,
		StartingPrice: b.StartingPrice,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		ImageURL:      b.ImageURL,
	}
}

func (b *AuctionBuilder) BuildExpired() commands.ExpiredAuction {
	return commands.ExpiredAuction{
		ID:          b.ID,
		Title:       b.Title,
		SellerEmail: b.SellerEmail,
	}
}
