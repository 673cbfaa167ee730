package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

type Dish struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Rating      float64         `json:"rating"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Time        string          `json:"time"`
}

// User is a record of the remote user directory. Password is the plaintext
// field published by the upstream API.
type User struct {
	Email    string          `json:"email"`
	Password string          `json:"senha"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"saldo"`
}

type UserSession struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

type SelectionType string

const (
	SelectionRestaurant SelectionType = "restaurant"
	SelectionProduct    SelectionType = "product"
)

// CartSelection is the item handed from a detail view to the order form.
type CartSelection struct {
	Item     Dish          `json:"item"`
	Quantity int           `json:"quantity"`
	Type     SelectionType `json:"type"`
}

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCash   PaymentMethod = "cash"
)

type OrderDraft struct {
	Selection       CartSelection `json:"selection"`
	DeliveryAddress string        `json:"delivery_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Notes           string        `json:"notes"`
}

type OrderConfirmation struct {
	ID              uuid.UUID       `json:"id"`
	ItemName        string          `json:"item_name"`
	Quantity        int             `json:"quantity"`
	DeliveryAddress string          `json:"delivery_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentLabel    string          `json:"payment_label"`
	Notes           string          `json:"notes,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderMessage is the event carried on the orders topic.
type OrderMessage struct {
	Type      string            `json:"type"`
	Order     OrderConfirmation `json:"order"`
	Timestamp time.Time         `json:"timestamp"`
}

const OrderSubmittedEvent = "order_submitted"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationStatus string

const (
	LocationResolved LocationStatus = "resolved"
	LocationDenied   LocationStatus = "denied"
	LocationFailed   LocationStatus = "failed"
)

// LocationResult carries Address only when Status is LocationResolved.
type LocationResult struct {
	Status  LocationStatus `json:"status"`
	Address string         `json:"address,omitempty"`
}

func Resolved(address string) LocationResult {
	return LocationResult{Status: LocationResolved, Address: address}
}

func Denied() LocationResult { return LocationResult{Status: LocationDenied} }

func Failed() LocationResult { return LocationResult{Status: LocationFailed} }

func (l LocationResult) AddressOr(fallback string) string {
	if l.Status == LocationResolved {
		return l.Address
	}
	return fallback
}

var ErrOrderNotFound = errors.New("order not found")

// PopularItem is a dish ranked by how many units were ordered on a day.
type PopularItem struct {
	ItemName string  `json:"item_name"`
	Score    float64 `json:"score"`
}
