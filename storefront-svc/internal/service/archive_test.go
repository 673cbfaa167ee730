package service_test

import (
	"context"
	"errors"
	"testing"

	"storefront/storefront-svc/internal/domain"
	"storefront/storefront-svc/internal/mocks"
	"storefront/storefront-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderArchive_Record(t *testing.T) {
	ctx := context.Background()
	order := domain.OrderConfirmation{ID: uuid.New(), ItemName: "Temaki", Quantity: 1}
	png := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name          string
		prepareMocks  func(repo *mocks.OrderRepository, qr *mocks.QRGenerator)
		expectedError bool
	}{
		{
			name: "success_with_qr",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("CreateOrder", ctx, order).Return(nil).Once()
				qr.On("Generate", order.ID).Return(png, nil).Once()
				repo.On("SaveQRCode", ctx, order.ID, png).Return(nil).Once()
			},
		},
		{
			name: "qr_failure_keeps_order",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("CreateOrder", ctx, order).Return(nil).Once()
				qr.On("Generate", order.ID).Return(nil, errors.New("encode failed")).Once()
			},
		},
		{
			name: "qr_store_failure_keeps_order",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("CreateOrder", ctx, order).Return(nil).Once()
				qr.On("Generate", order.ID).Return(png, nil).Once()
				repo.On("SaveQRCode", ctx, order.ID, png).Return(errors.New("db gone")).Once()
			},
		},
		{
			name: "error_insert_failure",
			prepareMocks: func(repo *mocks.OrderRepository, qr *mocks.QRGenerator) {
				repo.On("CreateOrder", ctx, order).Return(errors.New("db gone")).Once()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			qr := mocks.NewQRGenerator(t)
			tt.prepareMocks(repo, qr)

			err := service.NewOrderArchive(repo, qr).Record(ctx, order)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderArchive_Lookup(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	archive := service.NewOrderArchive(repo, qr)

	stored := domain.OrderConfirmation{ID: uuid.New(), ItemName: "Temaki"}
	missing := uuid.New()

	repo.On("GetOrder", ctx, stored.ID).Return(&stored, nil).Once()
	repo.On("GetOrder", ctx, missing).Return(nil, domain.ErrOrderNotFound).Once()
	repo.On("ListOrders", ctx).Return([]domain.OrderConfirmation{stored}, nil).Once()

	got, err := archive.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Temaki", got.ItemName)

	_, err = archive.Get(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	list, err := archive.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderArchive_QRCode(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	stored := []byte("stored")
	regenerated := []byte("regenerated")

	t.Run("stored", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		qr := mocks.NewQRGenerator(t)
		repo.On("GetQRCode", ctx, orderID).Return(stored, nil).Once()

		got, err := service.NewOrderArchive(repo, qr).QRCode(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("regenerated_when_empty", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		qr := mocks.NewQRGenerator(t)
		repo.On("GetQRCode", ctx, orderID).Return(nil, nil).Once()
		qr.On("Generate", orderID).Return(regenerated, nil).Once()
		repo.On("SaveQRCode", ctx, orderID, regenerated).Return(nil).Once()

		got, err := service.NewOrderArchive(repo, qr).QRCode(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, regenerated, got)
	})

	t.Run("unknown_order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetQRCode", ctx, orderID).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := service.NewOrderArchive(repo, nil).QRCode(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderArchive_CountPopularity(t *testing.T) {
	ctx := context.Background()
	order := domain.OrderConfirmation{ID: uuid.New(), ItemName: "Temaki", Quantity: 2}

	repo := mocks.NewOrderRepository(t)
	counter := mocks.NewPopularityCounter(t)
	repo.On("CreateOrder", ctx, order).Return(nil).Once()
	counter.On("Increment", ctx, order).Return(errors.New("redis down")).Once()

	err := service.NewOrderArchive(repo, nil).CountPopularity(counter).Record(ctx, order)

	assert.NoError(t, err)
}
