package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound     = errs.New("offer not found")
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrEmptyOrder        = errs.New("order has no line item")
	ErrInvalidOffer      = errs.New("invalid offer")
)

type CheckoutItem struct {
	OfferID  int64
	Quantity int32
}

type CheckoutResult struct {
	PaymentID        int64
	PaymentReference string
	ReservationIDs   []int64
}

type CheckoutCommands interface {
	// CreateReservations books 1..n offer line items in one checkout: one
	// payment carrying a fresh reference, one reservation per line item.
	CreateReservations(ctx context.Context, clientID int64, items []CheckoutItem) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	offerRepo OfferRepository
}

func NewCheckoutCommands(offerRepo OfferRepository) CheckoutCommands {
	return &checkoutCommandsImpl{offerRepo: offerRepo}
}

func (c *checkoutCommandsImpl) CreateReservations(ctx context.Context, clientID int64, items []CheckoutItem) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.OfferID)
	}

	snapshots, err := c.offerRepo.FindForCheckout(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[int64]OfferSnapshot, len(snapshots))
	for _, snap := range snapshots {
		byID[snap.ID] = snap
	}

	var amountCents int64
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		snap, ok := byID[item.OfferID]
		if !ok {
			return nil, ErrOfferNotFound
		}

		// Optimistic stock check; CreateOrder re-checks inside its transaction.
		entity := offer.ReconstructOffer(snap.ID, snap.ProviderID, snap.Title, "", snap.StartDate, nil, snap.Stock, snap.PriceCents)
		if reserveErr := entity.Reserve(item.Quantity); reserveErr != nil {
			return nil, ErrInsufficientStock
		}

		amountCents += snap.PriceCents * int64(item.Quantity)
		lines = append(lines, OrderLine{OfferID: item.OfferID, Quantity: item.Quantity})
	}

	order := Order{
		ClientID:         clientID,
		PaymentReference: uuid.NewString(),
		AmountCents:      amountCents,
		Lines:            lines,
	}

	created, err := c.offerRepo.CreateOrder(ctx, order)
	if err != nil {
		// Stock may have moved since the optimistic check.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrInsufficientStock
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{
		PaymentID:        created.PaymentID,
		PaymentReference: created.PaymentReference,
		ReservationIDs:   created.ReservationIDs,
	}, nil
}

type CreateOfferInput struct {
	Title      string
	Details    string
	StartDate  *time.Time
	EndDate    *time.Time
	Stock      int32
	PriceCents int64
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, providerID int64, in CreateOfferInput) (int64, error)
}

type offerCommandsImpl struct {
	offerRepo OfferRepository
}

func NewOfferCommands(offerRepo OfferRepository) OfferCommands {
	return &offerCommandsImpl{offerRepo: offerRepo}
}

func (o *offerCommandsImpl) CreateOffer(ctx context.Context, providerID int64, in CreateOfferInput) (int64, error) {
	entity, err := offer.NewOffer(providerID, in.Title, in.Details, in.StartDate, in.EndDate, in.Stock, in.PriceCents)
	if err != nil {
		return 0, errs.Wrap(ErrInvalidOffer, err.Error())
	}

	id, err := o.offerRepo.Create(ctx, entity.ProviderID(), entity.Title(), entity.Details(), entity.StartDate(), entity.EndDate(), entity.Stock(), entity.PriceCents())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
