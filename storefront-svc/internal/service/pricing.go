package service

import (
	"errors"

	"storefront/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// DeliveryFee is the flat charge added once per order unless the engine is
// configured with another value.
var DeliveryFee = decimal.RequireFromString("5.00")

const MinQuantity = 1

var ErrQuantityFloor = errors.New("quantity is already at the minimum")

// ComputeLineTotal returns unitPrice * quantity without rounding.
func ComputeLineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func ComputeOrderTotal(lineTotal, fee decimal.Decimal) decimal.Decimal {
	return lineTotal.Add(fee)
}

// FormatAmount rounds for display only.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

type Quote struct {
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

type PricingEngine struct {
	fee decimal.Decimal
}

func NewPricingEngine(fee decimal.Decimal) *PricingEngine {
	return &PricingEngine{fee: fee}
}

func (p *PricingEngine) DeliveryFee() decimal.Decimal {
	return p.fee
}

func (p *PricingEngine) Quote(selection domain.CartSelection) Quote {
	lineTotal := ComputeLineTotal(selection.Item.Price, selection.Quantity)
	total := ComputeOrderTotal(lineTotal, p.fee)
	return Quote{
		UnitPrice:    selection.Item.Price,
		Quantity:     selection.Quantity,
		LineTotal:    lineTotal,
		DeliveryFee:  p.fee,
		Total:        total,
		TotalDisplay: FormatAmount(total),
	}
}

// Quantity is the +/- stepper of the product view. The zero value is not
// usable; start from NewQuantity.
type Quantity struct {
	value int
}

func NewQuantity() Quantity {
	return Quantity{value: MinQuantity}
}

func (q Quantity) Value() int {
	return q.value
}

func (q *Quantity) Increment() {
	q.value++
}

// Decrement refuses to go below MinQuantity and leaves the value unchanged.
func (q *Quantity) Decrement() error {
	if q.value <= MinQuantity {
		return ErrQuantityFloor
	}
	q.value--
	return nil
}
