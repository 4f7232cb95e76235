package auction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle           = errors.New("title must not be empty")
	ErrNonPositivePrice     = errors.New("starting price must be positive")
	ErrInvalidTimeWindow    = errors.New("start time must be before end time")
	ErrEndTimeInPast        = errors.New("end time must be in the future")
	ErrSelfBid              = errors.New("seller cannot bid on own auction")
	ErrNotStarted           = errors.New("auction has not started yet")
	ErrEnded                = errors.New("auction has ended")
	ErrInvalidStatus        = errors.New("invalid auction status")
	ErrStatusNotTransitable = errors.New("auction status cannot transition")
)

// ErrPriceTooLow is the sentinel matched with errors.Is; the concrete
// *PriceTooLowError carries the price the bid failed to beat.
var ErrPriceTooLow = errors.New("bid must be higher than current price")

type PriceTooLowError struct {
	CurrentPrice decimal.Decimal
}

func (e *PriceTooLowError) Error() string {
	return "bid must be higher than current price: " + e.CurrentPrice.String()
}

func (e *PriceTooLowError) Is(target error) bool {
	return target == ErrPriceTooLow
}

type Auction struct {
	id            uuid.UUID
	sellerID      uuid.UUID
	title         string
	description   string
	status        Status
	startingPrice decimal.Decimal
	currentPrice  decimal.Decimal
	startTime     time.Time
	endTime       time.Time
	imageURL      string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAuction(
	sellerID uuid.UUID,
	title, description string,
	startingPrice decimal.Decimal,
	startTime, endTime time.Time,
	imageURL string,
	now time.Time,
) (*Auction, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !startingPrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if !startTime.Before(endTime) {
		return nil, ErrInvalidTimeWindow
	}
	if !endTime.After(now) {
		return nil, ErrEndTimeInPast
	}

	return &Auction{
		id:            uuid.New(),
		sellerID:      sellerID,
		title:         title,
		description:   description,
		status:        StatusActive,
		startingPrice: startingPrice,
		currentPrice:  startingPrice,
		startTime:     startTime,
		endTime:       endTime,
		imageURL:      imageURL,
	}, nil
}

func Reconstruct(
	id, sellerID uuid.UUID,
	title, description string,
	status Status,
	startingPrice, currentPrice decimal.Decimal,
	startTime, endTime time.Time,
	imageURL string,
	createdAt, updatedAt time.Time,
) *Auction {
	return &Auction{
		id:            id,
		sellerID:      sellerID,
		title:         title,
		description:   description,
		status:        status,
		startingPrice: startingPrice,
		currentPrice:  currentPrice,
		startTime:     startTime,
		endTime:       endTime,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// CanAcceptBid applies the admission rules in their fixed order: self-bid,
// start time, end time, then price against the authoritative current price.
func (a *Auction) CanAcceptBid(bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	if bidderID == a.sellerID {
		return ErrSelfBid
	}
	if now.Before(a.startTime) {
		return ErrNotStarted
	}
	if a.status != StatusActive || a.HasExpired(now) {
		return ErrEnded
	}
	if amount.LessThanOrEqual(a.currentPrice) {
		return &PriceTooLowError{CurrentPrice: a.currentPrice}
	}
	return nil
}

// HasExpired treats the end time itself as already over; a bid at the exact
// end instant is rejected.
func (a *Auction) HasExpired(now time.Time) bool {
	return !now.Before(a.endTime)
}

func (a *Auction) ID() uuid.UUID                  { return a.id }
func (a *Auction) SellerID() uuid.UUID            { return a.sellerID }
func (a *Auction) Title() string                  { return a.title }
func (a *Auction) Description() string            { return a.description }
func (a *Auction) Status() Status                 { return a.status }
func (a *Auction) StartingPrice() decimal.Decimal { return a.startingPrice }
func (a *Auction) CurrentPrice() decimal.Decimal  { return a.currentPrice }
func (a *Auction) StartTime() time.Time           { return a.startTime }
func (a *Auction) EndTime() time.Time             { return a.endTime }
func (a *Auction) ImageURL() string               { return a.imageURL }
func (a *Auction) CreatedAt() time.Time           { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time           { return a.updatedAt }
