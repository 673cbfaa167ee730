package service

import (
	"context"
	"fmt"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

// OrderArchive persists confirmed orders together with a receipt QR code.
type OrderArchive struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	counter   PopularityCounter
}

func NewOrderArchive(repo OrderRepository, qr QRGenerator) *OrderArchive {
	return &OrderArchive{repo: repo, qrEncoder: qr}
}

// CountPopularity makes Record also feed the daily popularity counter.
func (a *OrderArchive) CountPopularity(counter PopularityCounter) *OrderArchive {
	a.counter = counter
	return a
}

func (a *OrderArchive) Record(ctx context.Context, order domain.OrderConfirmation) error {
	if err := a.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("store order %s: %w", order.ID, err)
	}

	if a.counter != nil {
		if err := a.counter.Increment(ctx, order); err != nil {
			logger.Warn().Err(err).Msgf("Failed to count order %s", order.ID)
		}
	}

	if a.qrEncoder != nil {
		qr, err := a.qrEncoder.Generate(order.ID)
		if err != nil {
			logger.Warn().Err(err).Msgf("Failed to generate QR code for order %s", order.ID)
			return nil
		}
		if err := a.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
			logger.Warn().Err(err).Msgf("Failed to store QR code for order %s", order.ID)
		}
	}

	return nil
}

func (a *OrderArchive) Get(ctx context.Context, orderID uuid.UUID) (*domain.OrderConfirmation, error) {
	return a.repo.GetOrder(ctx, orderID)
}

func (a *OrderArchive) List(ctx context.Context) ([]domain.OrderConfirmation, error) {
	return a.repo.ListOrders(ctx)
}

// QRCode returns the stored receipt code, regenerating it when the row has
// none.
func (a *OrderArchive) QRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	qr, err := a.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && a.qrEncoder != nil {
		if regenerated, err := a.qrEncoder.Generate(orderID); err == nil {
			if err := a.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
				logger.Warn().Err(err).Msgf("Failed to store regenerated QR code for order %s", orderID)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}
