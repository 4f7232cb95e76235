package api

import (
	"errors"
	"net/http"

	"gavel/internal/domain/auction"
	"gavel/internal/domain/bid"
	reqdto "gavel/internal/handler/dto/request"
	resdto "gavel/internal/handler/dto/response"
	"gavel/internal/handler/middleware"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BidHandler struct {
	bidCommands commands.BidCommands
}

func NewBidHandler(bidCommands commands.BidCommands) *BidHandler {
	return &BidHandler{
		bidCommands: bidCommands,
	}
}

// @Summary Place bid
// @Description Place a bid on an active auction
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param id path string true "Auction ID"
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 201 {object} resdto.BidResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auctions/{id}/bids [post]
func (h *BidHandler) PlaceBid(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PlaceBidRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bidCommands.PlaceBid(c.Request.Context(), auctionID, userID, req.Amount)
	if err != nil {
		h.writeBidError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBidView(view))
}

func (h *BidHandler) writeBidError(c *gin.Context, err error) {
	var priceErr *auction.PriceTooLowError

	switch {
	case errors.Is(err, errs.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Auction not found",
		})
	case errors.As(err, &priceErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "Bid must be higher than current price",
			"currentPrice": priceErr.CurrentPrice,
		})
	case errors.Is(err, auction.ErrSelfBid):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Seller cannot bid on own auction",
		})
	case errors.Is(err, auction.ErrNotStarted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Auction has not started yet",
		})
	case errors.Is(err, auction.ErrEnded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Auction has ended",
		})
	case errors.Is(err, bid.ErrNonPositiveAmount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Bid amount must be positive",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
