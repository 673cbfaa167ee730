package service

import (
	"context"
	"net/http"
	"time"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type CatalogReader interface {
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Dishes(ctx context.Context) ([]domain.Dish, error)
	Restaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	Dish(ctx context.Context, id int) (*domain.Dish, error)
}

type UserDirectory interface {
	Users(ctx context.Context) ([]domain.User, error)
}

// SessionStore holds one signed-in user blob per client session id. Load
// reports false when nothing has been saved under the id.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (domain.UserSession, bool, error)
	Save(ctx context.Context, sessionID string, session domain.UserSession) error
	Clear(ctx context.Context, sessionID string) error
}

// OrderSink receives every confirmed order.
type OrderSink interface {
	Record(ctx context.Context, order domain.OrderConfirmation) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.OrderConfirmation) error
	SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.OrderConfirmation, error)
	ListOrders(ctx context.Context) ([]domain.OrderConfirmation, error)
	GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

type PopularityCounter interface {
	Increment(ctx context.Context, order domain.OrderConfirmation) error
}

type PopularityCache interface {
	Top(ctx context.Context, day time.Time, limit int) ([]domain.PopularItem, error)
}

type PopularitySource interface {
	PopularItems(ctx context.Context, day time.Time, limit int) ([]domain.PopularItem, error)
}

type PopularityReader interface {
	TopToday(ctx context.Context, limit int) ([]domain.PopularItem, error)
}

type LocationResolver interface {
	Resolve(ctx context.Context, coords *domain.Coordinates) domain.LocationResult
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type OrderServiceInterface interface {
	Quote(selection domain.CartSelection) (Quote, error)
	Submit(ctx context.Context, draft domain.OrderDraft) (*domain.OrderConfirmation, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, *domain.UserSession, error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, sessionID string) (domain.UserSession, bool, error)
}

type OrderArchiveInterface interface {
	OrderSink
	Get(ctx context.Context, orderID uuid.UUID) (*domain.OrderConfirmation, error)
	List(ctx context.Context) ([]domain.OrderConfirmation, error)
	QRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ AuthServiceInterface  = (*AuthService)(nil)
	_ OrderArchiveInterface = (*OrderArchive)(nil)
	_ OrderSink             = LogSink{}
	_ LocationResolver      = (*ReverseGeocoder)(nil)
	_ QRGenerator           = DefaultQRGenerator{}
	_ PopularityReader      = (*PopularityService)(nil)
)
