//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"gavel/internal/domain/auction"
	"gavel/internal/infra/queue"
	"gavel/internal/pkg/clock"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/commands"
	"gavel/tests/common/builder"
	commandsmock "gavel/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LifecycleCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	auctions *commandsmock.MockAuctionRepository
	bids     *commandsmock.MockBidRepository
	tasks    *commandsmock.MockTaskEnqueuer
	clock    *clock.MockClock
	usecase  commands.LifecycleCommands
}

func (s *LifecycleCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.auctions = commandsmock.NewMockAuctionRepository(s.mockCtrl)
	s.bids = commandsmock.NewMockBidRepository(s.mockCtrl)
	s.tasks = commandsmock.NewMockTaskEnqueuer(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.NewAuctionBuilder().Now)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.usecase = commands.NewLifecycleCommands(s.auctions, s.bids, s.tasks, s.clock, logger)
}

func (s *LifecycleCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLifecycleCommandsSuite(t *testing.T) {
	suite.Run(t, new(LifecycleCommandsTestSuite))
}

func (s *LifecycleCommandsTestSuite) TestCloseExpiredAuctions() {
	s.Run("no expired auctions is a no-op", func() {
		s.SetupTest()
		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).Return(nil, nil)

		s.Require().NoError(s.usecase.CloseExpiredAuctions(context.Background()))
	})

	s.Run("auction with a winning bid is sold", func() {
		s.SetupTest()
		expired := builder.NewAuctionBuilder().BuildExpired()
		winner := &commands.HighestBid{
			BidderID:    uuid.New(),
			BidderEmail: "winner@example.com",
			Amount:      decimal.NewFromInt(250),
		}

		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).
			Return([]commands.ExpiredAuction{expired}, nil)
		s.bids.EXPECT().HighestForAuction(gomock.Any(), expired.ID).Return(winner, nil)
		// The handoff precedes the status transition.
		gomock.InOrder(
			s.tasks.EXPECT().EnqueueAuctionWon(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, payload queue.AuctionWonPayload) error {
					s.Equal(expired.ID, payload.AuctionID)
					s.Equal(winner.BidderID, payload.WinnerID)
					s.Equal("winner@example.com", payload.WinnerEmail)
					s.Equal(expired.SellerEmail, payload.SellerEmail)
					s.True(payload.Amount.Equal(winner.Amount))
					return nil
				}),
			s.auctions.EXPECT().MarkStatus(gomock.Any(), expired.ID, auction.StatusSold).Return(true, nil),
		)

		s.Require().NoError(s.usecase.CloseExpiredAuctions(context.Background()))
	})

	s.Run("auction without bids is closed", func() {
		s.SetupTest()
		expired := builder.NewAuctionBuilder().BuildExpired()

		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).
			Return([]commands.ExpiredAuction{expired}, nil)
		s.bids.EXPECT().HighestForAuction(gomock.Any(), expired.ID).Return(nil, nil)
		gomock.InOrder(
			s.tasks.EXPECT().EnqueueAuctionExpired(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, payload queue.AuctionExpiredPayload) error {
					s.Equal(expired.ID, payload.AuctionID)
					s.Equal(expired.SellerEmail, payload.SellerEmail)
					s.Equal(expired.Title, payload.Title)
					return nil
				}),
			s.auctions.EXPECT().MarkStatus(gomock.Any(), expired.ID, auction.StatusClosed).Return(true, nil),
		)

		s.Require().NoError(s.usecase.CloseExpiredAuctions(context.Background()))
	})

	s.Run("enqueue failure leaves the auction untouched and continues", func() {
		s.SetupTest()
		failing := builder.NewAuctionBuilder().BuildExpired()
		healthy := builder.NewAuctionBuilder().BuildExpired()

		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).
			Return([]commands.ExpiredAuction{failing, healthy}, nil)

		s.bids.EXPECT().HighestForAuction(gomock.Any(), failing.ID).Return(nil, nil)
		s.tasks.EXPECT().EnqueueAuctionExpired(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))
		// No MarkStatus for the failing auction: it stays ACTIVE for the
		// next tick.

		s.bids.EXPECT().HighestForAuction(gomock.Any(), healthy.ID).Return(nil, nil)
		s.tasks.EXPECT().EnqueueAuctionExpired(gomock.Any(), gomock.Any()).Return(nil)
		s.auctions.EXPECT().MarkStatus(gomock.Any(), healthy.ID, auction.StatusClosed).Return(true, nil)

		s.Require().NoError(s.usecase.CloseExpiredAuctions(context.Background()))
	})

	s.Run("already resolved auction is a harmless duplicate", func() {
		s.SetupTest()
		expired := builder.NewAuctionBuilder().BuildExpired()

		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).
			Return([]commands.ExpiredAuction{expired}, nil)
		s.bids.EXPECT().HighestForAuction(gomock.Any(), expired.ID).Return(nil, nil)
		s.tasks.EXPECT().EnqueueAuctionExpired(gomock.Any(), gomock.Any()).Return(nil)
		// Guarded update changed nothing: another run got there first.
		s.auctions.EXPECT().MarkStatus(gomock.Any(), expired.ID, auction.StatusClosed).Return(false, nil)

		s.Require().NoError(s.usecase.CloseExpiredAuctions(context.Background()))
	})

	s.Run("listing failure aborts the run", func() {
		s.SetupTest()
		s.auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		err := s.usecase.CloseExpiredAuctions(context.Background())
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
