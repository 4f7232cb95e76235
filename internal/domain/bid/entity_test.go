//go:build unit

package bid_test

import (
	"testing"
	"time"

	"gavel/internal/domain/bid"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBid(t *testing.T) {
	auctionID := uuid.New()
	bidderID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := bid.NewBid(auctionID, bidderID, decimal.NewFromInt(150), now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, auctionID, actual.AuctionID())
		assert.Equal(t, bidderID, actual.BidderID())
		assert.True(t, actual.Amount().Equal(decimal.NewFromInt(150)))
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("amount validation", func(t *testing.T) {
		_, err := bid.NewBid(auctionID, bidderID, decimal.Zero, now)
		require.ErrorIs(t, err, bid.ErrNonPositiveAmount)

		_, err = bid.NewBid(auctionID, bidderID, decimal.NewFromInt(-10), now)
		require.ErrorIs(t, err, bid.ErrNonPositiveAmount)

		_, err = bid.NewBid(auctionID, bidderID, decimal.RequireFromString("0.01"), now)
		require.NoError(t, err)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		a, err := bid.NewBid(auctionID, bidderID, decimal.NewFromInt(150), now)
		require.NoError(t, err)
		b, err := bid.NewBid(auctionID, bidderID, decimal.NewFromInt(150), now)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}
