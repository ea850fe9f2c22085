package offer

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle        = errors.New("offer title cannot be empty")
	ErrInvalidWindow     = errors.New("offer start date must be before end date")
	ErrNegativePrice     = errors.New("offer price cannot be negative")
	ErrInvalidStock      = errors.New("offer stock must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Offer is a purchasable service slot published by a prestataire.
type Offer struct {
	id         int64
	providerID int64
	title      string
	details    string
	startDate  *time.Time
	endDate    *time.Time
	stock      int32
	priceCents int64
}

func NewOffer(providerID int64, title, details string, startDate, endDate *time.Time, stock int32, priceCents int64) (*Offer, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if startDate != nil && endDate != nil && !startDate.Before(*endDate) {
		return nil, ErrInvalidWindow
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if stock <= 0 {
		return nil, ErrInvalidStock
	}

	return &Offer{
		providerID: providerID,
		title:      title,
		details:    strings.TrimSpace(details),
		startDate:  startDate,
		endDate:    endDate,
		stock:      stock,
		priceCents: priceCents,
	}, nil
}

func ReconstructOffer(id, providerID int64, title, details string, startDate, endDate *time.Time, stock int32, priceCents int64) *Offer {
	return &Offer{
		id:         id,
		providerID: providerID,
		title:      title,
		details:    details,
		startDate:  startDate,
		endDate:    endDate,
		stock:      stock,
		priceCents: priceCents,
	}
}

// Reserve decrements the remaining stock for one checkout line item.
func (o *Offer) Reserve(quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidStock
	}
	if quantity > o.stock {
		return ErrInsufficientStock
	}
	o.stock -= quantity
	return nil
}

func (o *Offer) ID() int64          { return o.id }
func (o *Offer) ProviderID() int64  { return o.providerID }
func (o *Offer) Title() string      { return o.title }
func (o *Offer) Details() string    { return o.details }
func (o *Offer) StartDate() *time.Time { return o.startDate }
func (o *Offer) EndDate() *time.Time   { return o.endDate }
func (o *Offer) Stock() int32       { return o.stock }
func (o *Offer) PriceCents() int64  { return o.priceCents }
