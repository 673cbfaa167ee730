package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"storefront/storefront-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "catalog").Logger()

var validate = validator.New()

var (
	ErrUnavailable = errors.New("catalog unavailable")
	ErrNotFound    = errors.New("catalog record not found")
)

// DecodeError reports a payload that does not match the expected record shape.
// Index is -1 when the body as a whole could not be parsed.
type DecodeError struct {
	Resource string
	Index    int
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("decode %s[%d]: %v", e.Resource, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type rawRestaurant struct {
	ID          *int     `json:"id" validate:"required,min=1"`
	Name        *string  `json:"name" validate:"required"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
}

type rawDish struct {
	ID          *int             `json:"id" validate:"required,min=1"`
	Name        *string          `json:"name" validate:"required"`
	Rating      *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Time        *string          `json:"time"`
}

type rawUser struct {
	Email    *string          `json:"email" validate:"required"`
	Password *string          `json:"senha" validate:"required"`
	Name     *string          `json:"name"`
	Balance  *decimal.Decimal `json:"saldo"`
}

func (c *Client) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return fetchList(ctx, c, "restaurants", func(r rawRestaurant) (domain.Restaurant, error) {
		return domain.Restaurant{
			ID:          *r.ID,
			Name:        *r.Name,
			Rating:      deref(r.Rating),
			Description: deref(r.Description),
			Image:       deref(r.Image),
			Category:    deref(r.Category),
		}, nil
	})
}

func (c *Client) Dishes(ctx context.Context) ([]domain.Dish, error) {
	return fetchList(ctx, c, "foods", func(r rawDish) (domain.Dish, error) {
		if r.Price.IsNegative() {
			return domain.Dish{}, fmt.Errorf("price must not be negative, got %s", r.Price)
		}
		return domain.Dish{
			ID:          *r.ID,
			Name:        *r.Name,
			Rating:      deref(r.Rating),
			Description: deref(r.Description),
			Image:       deref(r.Image),
			Price:       *r.Price,
			Time:        deref(r.Time),
		}, nil
	})
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	return fetchList(ctx, c, "users", func(r rawUser) (domain.User, error) {
		return domain.User{
			Email:    *r.Email,
			Password: *r.Password,
			Name:     deref(r.Name),
			Balance:  deref(r.Balance),
		}, nil
	})
}

func (c *Client) Restaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurants, err := c.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
}

func (c *Client) Dish(ctx context.Context, id int) (*domain.Dish, error) {
	dishes, err := c.Dishes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, fmt.Errorf("dish %d: %w", id, ErrNotFound)
}

func fetchList[R any, T any](ctx context.Context, c *Client, resource string, convert func(R) (T, error)) ([]T, error) {
	body, err := c.get(ctx, resource)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching %s", resource)
		return nil, err
	}
	defer body.Close()

	records, err := decodeList(resource, body, convert)
	if err != nil {
		logger.Error().Err(err).Msgf("Error decoding %s", resource)
		return nil, err
	}

	logger.Debug().Msgf("fetched %d %s", len(records), resource)
	return records, nil
}

func (c *Client) get(ctx context.Context, resource string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, resource, resp.StatusCode)
	}

	return resp.Body, nil
}

func decodeList[R any, T any](resource string, body io.Reader, convert func(R) (T, error)) ([]T, error) {
	var raw []R
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, &DecodeError{Resource: resource, Index: -1, Err: err}
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		if err := validate.Struct(r); err != nil {
			return nil, &DecodeError{Resource: resource, Index: i, Err: err}
		}
		record, err := convert(r)
		if err != nil {
			return nil, &DecodeError{Resource: resource, Index: i, Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
