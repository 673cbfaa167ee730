package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logger
	logger = zerolog.New(&buf)
	t.Cleanup(func() { logger = previous })
	return &buf
}

type stubRepository struct {
	qr      []byte
	saveErr error
	saved   []byte
}

func (r *stubRepository) CreateOrder(context.Context, domain.OrderConfirmation) error { return nil }

func (r *stubRepository) SaveQRCode(_ context.Context, _ uuid.UUID, qr []byte) error {
	r.saved = qr
	return r.saveErr
}

func (r *stubRepository) GetOrder(context.Context, uuid.UUID) (*domain.OrderConfirmation, error) {
	return nil, domain.ErrOrderNotFound
}

func (r *stubRepository) ListOrders(context.Context) ([]domain.OrderConfirmation, error) {
	return nil, nil
}

func (r *stubRepository) GetQRCode(context.Context, uuid.UUID) ([]byte, error) { return r.qr, nil }

type stubQR struct{ png []byte }

func (g stubQR) Generate(uuid.UUID) ([]byte, error) { return g.png, nil }

func TestOrderService_SubmitLogsOncePerOrder(t *testing.T) {
	logs := captureLogs(t)
	svc := NewOrderService(NewPricingEngine(DeliveryFee), LogSink{})

	order, err := svc.Submit(context.Background(), domain.OrderDraft{
		Selection: domain.CartSelection{
			Item:     domain.Dish{Name: "Temaki", Price: decimal.RequireFromString("20.00")},
			Quantity: 2,
			Type:     domain.SelectionProduct,
		},
		DeliveryAddress: "Rua A",
		PaymentMethod:   domain.PaymentCash,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], order.ID.String())
	assert.Contains(t, lines[0], `"total":"45.00"`)
}

func TestOrderArchive_QRCodeRegenerationStoreFailureIsLogged(t *testing.T) {
	logs := captureLogs(t)
	repo := &stubRepository{saveErr: errors.New("db gone")}
	png := []byte{0x89, 'P', 'N', 'G'}
	orderID := uuid.New()

	qr, err := NewOrderArchive(repo, stubQR{png: png}).QRCode(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, png, qr)
	assert.Equal(t, png, repo.saved)
	assert.Contains(t, logs.String(), "Failed to store regenerated QR code for order "+orderID.String())
	assert.Contains(t, logs.String(), "db gone")
}
