package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"gavel/internal/infra/events"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BidEventSource is the subscription surface the stream handler consumes.
type BidEventSource interface {
	Subscribe(ctx context.Context, auctionID uuid.UUID) (<-chan events.BidUpdate, func())
}

type StreamHandler struct {
	source         BidEventSource
	auctionQueries queries.AuctionQueries
}

func NewStreamHandler(source BidEventSource, auctionQueries queries.AuctionQueries) *StreamHandler {
	return &StreamHandler{
		source:         source,
		auctionQueries: auctionQueries,
	}
}

// @Summary Stream bid updates
// @Description Server-sent event stream of bid updates for one auction
// @Tags auctions
// @Produce text/event-stream
// @Param id path string true "Auction ID"
// @Success 200
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/stream [get]
func (h *StreamHandler) StreamBidUpdates(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	// Reject streams for unknown auctions before holding the connection open.
	if _, err := h.auctionQueries.GetAuction(c.Request.Context(), auctionID); err != nil {
		if errors.Is(err, errs.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	updates, cancel := h.source.Subscribe(c.Request.Context(), auctionID)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("bid_update", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
