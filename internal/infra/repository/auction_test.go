//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gavel/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow satisfies pgx.Row with canned column values.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.vals[i].(uuid.UUID)
		case *string:
			*p = r.vals[i].(string)
		case *time.Time:
			*p = r.vals[i].(time.Time)
		}
	}
	return nil
}

func auctionRow(status, startingPrice, currentPrice string) fakeRow {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return fakeRow{vals: []any{
		uuid.New(), uuid.New(), "Vintage Camera", "A well-kept vintage camera",
		status, startingPrice, currentPrice,
		now.Add(-time.Hour), now.Add(24 * time.Hour), "https://example.com/camera.jpg",
		now.Add(-time.Hour), now.Add(-time.Hour),
	}}
}

func TestScanAuctionSnapshot(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		snap, err := scanAuctionSnapshot(auctionRow("ACTIVE", "100", "150.50"))
		require.NoError(t, err)

		assert.Equal(t, auction.StatusActive, snap.Status)
		assert.Equal(t, "100", snap.StartingPrice.String())
		assert.Equal(t, "150.5", snap.CurrentPrice.String())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		snap, err := scanAuctionSnapshot(auctionRow("PENDING", "100", "100"))
		require.ErrorIs(t, err, auction.ErrInvalidStatus)
		assert.Nil(t, snap)
	})

	t.Run("malformed price", func(t *testing.T) {
		snap, err := scanAuctionSnapshot(auctionRow("ACTIVE", "not-a-number", "100"))
		require.Error(t, err)
		assert.Nil(t, snap)
	})

	t.Run("scan error passes through", func(t *testing.T) {
		scanErr := errors.New("broken connection")
		_, err := scanAuctionSnapshot(fakeRow{err: scanErr})
		require.ErrorIs(t, err, scanErr)
	})
}

func TestMarkStatusRejectsNonTerminalTarget(t *testing.T) {
	r := NewAuctionRepository(nil)

	changed, err := r.MarkStatus(context.Background(), uuid.New(), auction.StatusActive)

	assert.False(t, changed)
	require.ErrorIs(t, err, auction.ErrStatusNotTransitable)
}
