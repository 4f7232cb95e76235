package request

import (
	"strings"
	"time"

	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAuctionRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	StartingPrice decimal.Decimal `json:"startingPrice" binding:"required"`
	StartTime     time.Time       `json:"startTime" binding:"required"`
	EndTime       time.Time       `json:"endTime" binding:"required"`
	ImageURL      string          `json:"imageUrl,omitempty"`
}

func (r CreateAuctionRequest) ToParams(sellerID uuid.UUID) commands.CreateAuctionParams {
	return commands.CreateAuctionParams{
		SellerID:      sellerID,
		Title:         strings.TrimSpace(r.Title),
		Description:   strings.TrimSpace(r.Description),
		StartingPrice: r.StartingPrice,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ImageURL:      strings.TrimSpace(r.ImageURL),
	}
}

type ListAuctionsQuery struct {
	Search   *string `form:"search"`
	MinPrice *string `form:"minPrice"`
	MaxPrice *string `form:"maxPrice"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

func (q ListAuctionsQuery) ToFilter() (queries.AuctionFilter, error) {
	f := queries.AuctionFilter{
		Page:  q.Page,
		Limit: q.Limit,
	}

	if q.Search != nil {
		if trimmed := strings.TrimSpace(*q.Search); trimmed != "" {
			f.Search = &trimmed
		}
	}

	if q.MinPrice != nil && *q.MinPrice != "" {
		min, err := decimal.NewFromString(*q.MinPrice)
		if err != nil {
			return queries.AuctionFilter{}, err
		}
		f.MinPrice = &min
	}

	if q.MaxPrice != nil && *q.MaxPrice != "" {
		max, err := decimal.NewFromString(*q.MaxPrice)
		if err != nil {
			return queries.AuctionFilter{}, err
		}
		f.MaxPrice = &max
	}

	return f.Normalize(), nil
}
