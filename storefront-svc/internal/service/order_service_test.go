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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pizzaSelection(quantity int) domain.CartSelection {
	return domain.CartSelection{
		Item:     domain.Dish{ID: 7, Name: "Pizza Margherita", Price: dec("12.50")},
		Quantity: quantity,
		Type:     domain.SelectionProduct,
	}
}

func TestNewOrderDraft(t *testing.T) {
	draft := service.NewOrderDraft(pizzaSelection(1), domain.Resolved("Av. Paulista"))
	assert.Equal(t, "Av. Paulista", draft.DeliveryAddress)
	assert.Equal(t, domain.PaymentCredit, draft.PaymentMethod)

	draft = service.NewOrderDraft(pizzaSelection(1), domain.Denied())
	assert.Empty(t, draft.DeliveryAddress)

	draft = service.NewOrderDraft(pizzaSelection(1), domain.Failed())
	assert.Empty(t, draft.DeliveryAddress)
}

func TestAssembleOrder(t *testing.T) {
	engine := service.NewPricingEngine(service.DeliveryFee)

	tests := []struct {
		name          string
		draft         domain.OrderDraft
		expectedError error
		expectedLabel string
		expectedTotal string
	}{
		{
			name: "success_credit",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(3), DeliveryAddress: "Rua A, 10", PaymentMethod: domain.PaymentCredit,
			},
			expectedLabel: "Cartão de Crédito",
			expectedTotal: "42.50",
		},
		{
			name: "success_cash",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), DeliveryAddress: "Rua B", PaymentMethod: domain.PaymentCash,
			},
			expectedLabel: "Dinheiro",
			expectedTotal: "17.50",
		},
		{
			name: "success_debit",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(2), DeliveryAddress: "Rua C", PaymentMethod: domain.PaymentDebit,
			},
			expectedLabel: "Cartão de Débito",
			expectedTotal: "30.00",
		},
		{
			name: "error_missing_address",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), PaymentMethod: domain.PaymentCredit,
			},
			expectedError: service.ErrMissingAddress,
		},
		{
			name: "error_whitespace_address",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), DeliveryAddress: "  \t ", PaymentMethod: domain.PaymentCredit,
			},
			expectedError: service.ErrMissingAddress,
		},
		{
			name: "error_unknown_payment",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), DeliveryAddress: "Rua A", PaymentMethod: "pix",
			},
			expectedError: service.ErrUnknownPaymentMethod,
		},
		{
			name: "success_restaurant_selection",
			draft: domain.OrderDraft{
				Selection: domain.CartSelection{
					Item: domain.Dish{Name: "Pizza Margherita", Price: dec("12.50")}, Quantity: 1, Type: domain.SelectionRestaurant,
				},
				DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentCredit,
			},
			expectedLabel: "Cartão de Crédito",
			expectedTotal: "17.50",
		},
		{
			name: "error_unknown_selection_type",
			draft: domain.OrderDraft{
				Selection: domain.CartSelection{
					Item: domain.Dish{Name: "Pizza Margherita", Price: dec("12.50")}, Quantity: 1, Type: "bogus",
				},
				DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentCredit,
			},
			expectedError: service.ErrUnknownSelection,
		},
		{
			name: "error_missing_selection_type",
			draft: domain.OrderDraft{
				Selection:       domain.CartSelection{Item: domain.Dish{Name: "Pizza Margherita"}, Quantity: 1},
				DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentCredit,
			},
			expectedError: service.ErrUnknownSelection,
		},
		{
			name: "error_zero_quantity",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(0), DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentCredit,
			},
			expectedError: service.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.AssembleOrder(tt.draft, engine)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, order.ID)
			assert.Equal(t, tt.expectedLabel, order.PaymentLabel)
			assert.Equal(t, tt.expectedTotal, service.FormatAmount(order.Total))
			assert.Equal(t, "Pizza Margherita", order.ItemName)
			assert.False(t, order.CreatedAt.IsZero())
		})
	}
}

func TestAssembleOrder_TrimsAddressAndNotes(t *testing.T) {
	order, err := service.AssembleOrder(domain.OrderDraft{
		Selection:       pizzaSelection(1),
		DeliveryAddress: "  Rua das Flores, 42 ",
		PaymentMethod:   domain.PaymentCash,
		Notes:           " sem cebola ",
	}, service.NewPricingEngine(service.DeliveryFee))

	require.NoError(t, err)
	assert.Equal(t, "Rua das Flores, 42", order.DeliveryAddress)
	assert.Equal(t, "sem cebola", order.Notes)
}

func TestConfirmationSummary(t *testing.T) {
	order := domain.OrderConfirmation{
		ItemName:        "Pizza Margherita",
		DeliveryAddress: "Rua A, 10",
		PaymentLabel:    "Dinheiro",
		Total:           dec("45.5"),
	}

	expected := "Seu pedido foi enviado com sucesso!\n\n" +
		"Item: Pizza Margherita\n" +
		"Endereço: Rua A, 10\n" +
		"Pagamento: Dinheiro\n" +
		"Total: R$ 45.50"
	assert.Equal(t, expected, service.ConfirmationSummary(order))
}

func TestOrderService_Quote(t *testing.T) {
	svc := service.NewOrderService(service.NewPricingEngine(service.DeliveryFee), nil)

	quote, err := svc.Quote(pizzaSelection(3))
	require.NoError(t, err)
	assert.Equal(t, "42.50", quote.TotalDisplay)

	_, err = svc.Quote(pizzaSelection(0))
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func TestOrderService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		draft         domain.OrderDraft
		prepareMocks  func(sink *mocks.OrderSink)
		expectedError error
	}{
		{
			name: "success_records_order",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(2), DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentDebit,
			},
			prepareMocks: func(sink *mocks.OrderSink) {
				sink.On("Record", ctx, mock.MatchedBy(func(o domain.OrderConfirmation) bool {
					return o.Quantity == 2 && o.PaymentLabel == "Cartão de Débito" && o.Total.Equal(dec("30.00"))
				})).Return(nil).Once()
			},
		},
		{
			name: "error_sink_failure",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), DeliveryAddress: "Rua A", PaymentMethod: domain.PaymentCredit,
			},
			prepareMocks: func(sink *mocks.OrderSink) {
				sink.On("Record", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectedError: service.ErrOrderNotRecorded,
		},
		{
			name: "error_validation_skips_sink",
			draft: domain.OrderDraft{
				Selection: pizzaSelection(1), PaymentMethod: domain.PaymentCredit,
			},
			prepareMocks:  func(sink *mocks.OrderSink) {},
			expectedError: service.ErrMissingAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocks.NewOrderSink(t)
			tt.prepareMocks(sink)
			svc := service.NewOrderService(service.NewPricingEngine(service.DeliveryFee), sink)

			order, err := svc.Submit(ctx, tt.draft)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, "Rua A", order.DeliveryAddress)
		})
	}
}

func TestLogSink_Record(t *testing.T) {
	err := service.LogSink{}.Record(context.Background(), domain.OrderConfirmation{ID: uuid.New()})
	assert.NoError(t, err)
}
