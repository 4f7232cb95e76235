package api

import (
	"errors"
	"net/http"

	"gavel/internal/domain/auction"
	reqdto "gavel/internal/handler/dto/request"
	resdto "gavel/internal/handler/dto/response"
	"gavel/internal/handler/middleware"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	auctionCommands commands.AuctionCommands
	auctionQueries  queries.AuctionQueries
}

func NewAuctionHandler(auctionCommands commands.AuctionCommands, auctionQueries queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{
		auctionCommands: auctionCommands,
		auctionQueries:  auctionQueries,
	}
}

// @Summary Create auction
// @Description Create a new auction listing
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionRequest true "Auction request"
// @Success 201 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auctions [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAuctionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snapshot, err := h.auctionCommands.CreateAuction(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, auction.ErrEmptyTitle),
			errors.Is(err, auction.ErrNonPositivePrice),
			errors.Is(err, auction.ErrInvalidTimeWindow),
			errors.Is(err, auction.ErrEndTimeInPast):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuctionSnapshot(snapshot))
}

// @Summary Get auction
// @Description Get auction by ID
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	view, err := h.auctionQueries.GetAuction(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionView(view))
}

// @Summary List auctions
// @Description List live auctions with optional search and price filters
// @Tags auctions
// @Produce json
// @Param search query string false "Text search on title and description"
// @Param minPrice query string false "Minimum current price"
// @Param maxPrice query string false "Maximum current price"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AuctionPageResponse
// @Failure 400 {object} map[string]string
// @Router /auctions [get]
func (h *AuctionHandler) ListAuctions(c *gin.Context) {
	var q reqdto.ListAuctionsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price filter format",
		})
		return
	}

	page, err := h.auctionQueries.ListAuctions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionPage(page))
}

// @Summary Delete auction
// @Description Remove an auction listing
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [delete]
func (h *AuctionHandler) DeleteAuction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	if err := h.auctionCommands.DeleteAuction(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
