package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrMissingAddress       = errors.New("delivery address is required")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownSelection     = errors.New("unknown selection type")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrOrderNotRecorded     = errors.New("order could not be recorded")
)

var paymentLabels = map[domain.PaymentMethod]string{
	domain.PaymentCredit: "Cartão de Crédito",
	domain.PaymentDebit:  "Cartão de Débito",
	domain.PaymentCash:   "Dinheiro",
}

func PaymentLabel(method domain.PaymentMethod) (string, error) {
	label, ok := paymentLabels[method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
	}
	return label, nil
}

// NewOrderDraft seeds the address from a resolved location and selects credit
// as the payment method.
func NewOrderDraft(selection domain.CartSelection, location domain.LocationResult) domain.OrderDraft {
	return domain.OrderDraft{
		Selection:       selection,
		DeliveryAddress: location.AddressOr(""),
		PaymentMethod:   domain.PaymentCredit,
	}
}

// AssembleOrder validates a draft and prices it. It performs no I/O.
func AssembleOrder(draft domain.OrderDraft, pricing *PricingEngine) (domain.OrderConfirmation, error) {
	address := strings.TrimSpace(draft.DeliveryAddress)
	if address == "" {
		return domain.OrderConfirmation{}, ErrMissingAddress
	}

	label, err := PaymentLabel(draft.PaymentMethod)
	if err != nil {
		return domain.OrderConfirmation{}, err
	}

	switch draft.Selection.Type {
	case domain.SelectionRestaurant, domain.SelectionProduct:
	default:
		return domain.OrderConfirmation{}, fmt.Errorf("%w: %q", ErrUnknownSelection, draft.Selection.Type)
	}

	if draft.Selection.Quantity < MinQuantity {
		return domain.OrderConfirmation{}, ErrInvalidQuantity
	}

	quote := pricing.Quote(draft.Selection)

	return domain.OrderConfirmation{
		ID:              uuid.New(),
		ItemName:        draft.Selection.Item.Name,
		Quantity:        quote.Quantity,
		DeliveryAddress: address,
		PaymentMethod:   draft.PaymentMethod,
		PaymentLabel:    label,
		Notes:           strings.TrimSpace(draft.Notes),
		UnitPrice:       quote.UnitPrice,
		LineTotal:       quote.LineTotal,
		DeliveryFee:     quote.DeliveryFee,
		Total:           quote.Total,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// ConfirmationSummary is the text shown in the confirmation dialog.
func ConfirmationSummary(order domain.OrderConfirmation) string {
	return "Seu pedido foi enviado com sucesso!\n\n" +
		"Item: " + order.ItemName + "\n" +
		"Endereço: " + order.DeliveryAddress + "\n" +
		"Pagamento: " + order.PaymentLabel + "\n" +
		"Total: R$ " + FormatAmount(order.Total)
}

type OrderService struct {
	pricing *PricingEngine
	sink    OrderSink
}

func NewOrderService(pricing *PricingEngine, sink OrderSink) *OrderService {
	return &OrderService{pricing: pricing, sink: sink}
}

func (s *OrderService) Quote(selection domain.CartSelection) (Quote, error) {
	if selection.Quantity < MinQuantity {
		return Quote{}, ErrInvalidQuantity
	}
	return s.pricing.Quote(selection), nil
}

func (s *OrderService) Submit(ctx context.Context, draft domain.OrderDraft) (*domain.OrderConfirmation, error) {
	order, err := AssembleOrder(draft, s.pricing)
	if err != nil {
		return nil, err
	}

	if s.sink != nil {
		if err := s.sink.Record(ctx, order); err != nil {
			logger.Error().Err(err).Msgf("Error recording order %s", order.ID)
			return nil, fmt.Errorf("%w: %v", ErrOrderNotRecorded, err)
		}
	}

	return &order, nil
}

// LogSink only logs the order. It is used when no archive or broker is
// configured.
type LogSink struct{}

func (LogSink) Record(_ context.Context, order domain.OrderConfirmation) error {
	logger.Info().
		Str("order_id", order.ID.String()).
		Str("item", order.ItemName).
		Int("quantity", order.Quantity).
		Str("payment", string(order.PaymentMethod)).
		Str("total", FormatAmount(order.Total)).
		Msg("order accepted without persistence")
	return nil
}
