package response

import (
	"time"

	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID            uuid.UUID       `json:"id"`
	SellerID      uuid.UUID       `json:"sellerId"`
	SellerName    string          `json:"sellerName,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	StartingPrice decimal.Decimal `json:"startingPrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type AuctionListItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	SellerName   string          `json:"sellerName"`
	Title        string          `json:"title"`
	Status       string          `json:"status"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	EndTime      time.Time       `json:"endTime"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type PageMetaResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type AuctionPageResponse struct {
	Items []AuctionListItemResponse `json:"items"`
	Meta  PageMetaResponse          `json:"meta"`
}

func FromAuctionView(v *queries.AuctionView) *AuctionResponse {
	return &AuctionResponse{
		ID:            v.ID,
		SellerID:      v.SellerID,
		SellerName:    v.SellerName,
		Title:         v.Title,
		Description:   v.Description,
		Status:        v.Status,
		StartingPrice: v.StartingPrice,
		CurrentPrice:  v.CurrentPrice,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		ImageURL:      v.ImageURL,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromAuctionSnapshot(s *commands.AuctionSnapshot) *AuctionResponse {
	return &AuctionResponse{
		ID:            s.ID,
		SellerID:      s.SellerID,
		Title:         s.Title,
		Description:   s.Description,
		Status:        s.Status.String(),
		StartingPrice: s.StartingPrice,
		CurrentPrice:  s.CurrentPrice,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		ImageURL:      s.ImageURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromAuctionPage(p *queries.AuctionPage) *AuctionPageResponse {
	items := make([]AuctionListItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, AuctionListItemResponse{
			ID:           it.ID,
			SellerName:   it.SellerName,
			Title:        it.Title,
			Status:       it.Status,
			CurrentPrice: it.CurrentPrice,
			EndTime:      it.EndTime,
			ImageURL:     it.ImageURL,
			CreatedAt:    it.CreatedAt,
		})
	}
	return &AuctionPageResponse{
		Items: items,
		Meta: PageMetaResponse{
			Total:      p.Meta.Total,
			Page:       p.Meta.Page,
			Limit:      p.Meta.Limit,
			TotalPages: p.Meta.TotalPages,
		},
	}
}
