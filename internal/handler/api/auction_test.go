//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"gavel/internal/domain/auction"
	"gavel/internal/handler/api"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/queries"
	"gavel/tests/common/builder"
	commonhttp "gavel/tests/common/httptest"
	"gavel/tests/common/testutil"
	commandsmock "gavel/tests/mock/commands"
	queriesmock "gavel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuctionHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	auctionCommands *commandsmock.MockAuctionCommands
	auctionQueries  *queriesmock.MockAuctionQueries
	router          *gin.Engine
	userID          uuid.UUID
}

func TestAuctionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}

func (s *AuctionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.auctionCommands = commandsmock.NewMockAuctionCommands(s.ctrl)
	s.auctionQueries = queriesmock.NewMockAuctionQueries(s.ctrl)
	s.userID = uuid.New()

	handler := api.NewAuctionHandler(s.auctionCommands, s.auctionQueries)
	s.router = gin.New()
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}
	s.router.POST("/api/auctions", authed, handler.CreateAuction)
	s.router.GET("/api/auctions", handler.ListAuctions)
	s.router.GET("/api/auctions/:id", handler.GetAuction)
	s.router.DELETE("/api/auctions/:id", authed, handler.DeleteAuction)
}

func (s *AuctionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuctionHandlerTestSuite) TestCreateAuction_Success() {
	b := builder.NewAuctionBuilder()
	snapshot := b.BuildSnapshot()

	s.auctionCommands.EXPECT().
		CreateAuction(gomock.Any(), gomock.Any()).
		Return(snapshot, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auctions",
		b.BuildCreateRequestDTO(), "")

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), snapshot.ID.String())
	s.Contains(w.Body.String(), b.Title)
}

func (s *AuctionHandlerTestSuite) TestCreateAuction_BindFailures() {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing title", testutil.Field("title", nil)},
		{"missing starting price", testutil.Field("startingPrice", nil)},
		{"malformed price", testutil.Field("startingPrice", "not-a-number")},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			body := testutil.DtoMap(s.T(), builder.NewAuctionBuilder().BuildCreateRequestDTO(), tt.mutate)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auctions", body, "")

			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *AuctionHandlerTestSuite) TestCreateAuction_DomainValidationIs422() {
	tests := []struct {
		name string
		err  error
	}{
		{"empty title", auction.ErrEmptyTitle},
		{"non-positive price", auction.ErrNonPositivePrice},
		{"invalid time window", auction.ErrInvalidTimeWindow},
		{"end time in past", auction.ErrEndTimeInPast},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.auctionCommands.EXPECT().
				CreateAuction(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auctions",
				builder.NewAuctionBuilder().BuildCreateRequestDTO(), "")

			s.Equal(http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func (s *AuctionHandlerTestSuite) TestGetAuction_Success() {
	b := builder.NewAuctionBuilder()
	view := b.BuildViewQuery()

	s.auctionQueries.EXPECT().
		GetAuction(gomock.Any(), b.ID).
		Return(view, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/"+b.ID.String(), nil, "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), b.ID.String())
	s.Contains(w.Body.String(), b.SellerName)
}

func (s *AuctionHandlerTestSuite) TestGetAuction_NotFound() {
	s.auctionQueries.EXPECT().
		GetAuction(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrAuctionNotFound)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/"+uuid.NewString(), nil, "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AuctionHandlerTestSuite) TestGetAuction_InvalidID() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/not-a-uuid", nil, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuctionHandlerTestSuite) TestListAuctions_PassesFilterThrough() {
	b := builder.NewAuctionBuilder()
	page := &queries.AuctionPage{
		Items: []queries.AuctionListItem{{
			ID:           b.ID,
			SellerName:   b.SellerName,
			Title:        b.Title,
			Status:       b.Status.String(),
			CurrentPrice: b.CurrentPrice,
			EndTime:      b.EndTime,
			ImageURL:     b.ImageURL,
			CreatedAt:    b.CreatedAt,
		}},
		Meta: queries.PageMeta{Total: 1, Page: 2, Limit: 5, TotalPages: 1},
	}

	s.auctionQueries.EXPECT().
		ListAuctions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f queries.AuctionFilter) (*queries.AuctionPage, error) {
			s.Require().NotNil(f.Search)
			s.Equal("camera", *f.Search)
			s.Require().NotNil(f.MinPrice)
			s.Equal("50", f.MinPrice.String())
			s.Equal(2, f.Page)
			s.Equal(5, f.Limit)
			return page, nil
		})

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/auctions?search=camera&minPrice=50&page=2&limit=5", nil, "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), b.Title)
	s.Contains(w.Body.String(), `"total":1`)
}

func (s *AuctionHandlerTestSuite) TestListAuctions_MalformedPriceFilter() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/auctions?minPrice=abc", nil, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuctionHandlerTestSuite) TestDeleteAuction_Success() {
	id := uuid.New()
	s.auctionCommands.EXPECT().
		DeleteAuction(gomock.Any(), id).
		Return(nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/auctions/"+id.String(), nil, "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AuctionHandlerTestSuite) TestDeleteAuction_NotFound() {
	s.auctionCommands.EXPECT().
		DeleteAuction(gomock.Any(), gomock.Any()).
		Return(errs.ErrAuctionNotFound)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/auctions/"+uuid.NewString(), nil, "")

	s.Equal(http.StatusNotFound, w.Code)
}
