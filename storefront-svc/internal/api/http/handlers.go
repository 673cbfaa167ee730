package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/storefront-svc/internal/catalog"
	"storefront/storefront-svc/internal/domain"
	"storefront/storefront-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

type Handler struct {
	Catalog        service.CatalogReader
	Auth           service.AuthServiceInterface
	Orders         service.OrderServiceInterface
	Archive        service.OrderArchiveInterface
	Locator        service.LocationResolver
	Popular        service.PopularityReader
	DefaultAddress string
	LoginLimiter   *rate.Limiter
}

func NewHandler(catalogReader service.CatalogReader, auth service.AuthServiceInterface, orders service.OrderServiceInterface,
	locator service.LocationResolver, defaultAddress string) *Handler {
	return &Handler{
		Catalog:        catalogReader,
		Auth:           auth,
		Orders:         orders,
		Locator:        locator,
		DefaultAddress: defaultAddress,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.getDish).Methods("GET")
	r.HandleFunc("/api/search", h.search).Methods("GET")
	r.HandleFunc("/api/location", h.getLocation).Methods("GET")

	r.HandleFunc("/api/quote", h.quote).Methods("POST")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")

	if h.Archive != nil {
		r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
		r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
		r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	}
	if h.Popular != nil {
		r.HandleFunc("/api/popular", h.getPopular).Methods("GET")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeCatalogError maps catalog failures: unreachable or malformed upstream
// data is a bad gateway, an unknown id is a not found.
func writeCatalogError(w http.ResponseWriter, err error) {
	var decodeErr *catalog.DecodeError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrUnavailable), errors.As(err, &decodeErr):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "storefront_session"
)

// requestSessionID reads the client's session id from the header, which
// mobile clients send, or else from the cookie set at login.
func requestSessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func setSessionID(w http.ResponseWriter, sessionID string) {
	w.Header().Set(SessionHeader, sessionID)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if h.LoginLimiter != nil && !h.LoginLimiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	sessionID, session, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrShortPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			writeCatalogError(w, err)
		}
		return
	}

	if previous := requestSessionID(r); previous != "" && previous != sessionID {
		if err := h.Auth.Logout(r.Context(), previous); err != nil {
			logger.Warn().Err(err).Msg("Failed to clear previous session")
		}
	}

	setSessionID(w, sessionID)
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), requestSessionID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	session, ok, err := h.Auth.Profile(r.Context(), requestSessionID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no signed-in user")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

type restaurantDetail struct {
	Restaurant *domain.Restaurant `json:"restaurant"`
	Dishes     []domain.Dish      `json:"dishes"`
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	restaurant, err := h.Catalog.Restaurant(r.Context(), id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	dishes, err := h.Catalog.Dishes(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurantDetail{Restaurant: restaurant, Dishes: dishes})
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.Dishes(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dish, err := h.Catalog.Dish(r.Context(), id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

type searchResponse struct {
	Query       string              `json:"query"`
	Restaurants []domain.Restaurant `json:"restaurants"`
	Dishes      []domain.Dish       `json:"dishes"`
	NoResults   bool                `json:"no_results"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	restaurants, err := h.Catalog.Restaurants(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	dishes, err := h.Catalog.Dishes(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	restaurants, dishes = service.FilterCatalog(query, restaurants, dishes)
	writeJSON(w, http.StatusOK, searchResponse{
		Query:       query,
		Restaurants: restaurants,
		Dishes:      dishes,
		NoResults:   service.NoResults(query, restaurants, dishes),
	})
}

type locationResponse struct {
	domain.LocationResult
	DisplayAddress string `json:"display_address"`
}

func parseCoordinates(r *http.Request) (*domain.Coordinates, error) {
	latRaw, lonRaw := r.URL.Query().Get("lat"), r.URL.Query().Get("lon")
	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil, errors.New("invalid lon")
	}
	return &domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func (h *Handler) resolveLocation(r *http.Request) (domain.LocationResult, error) {
	coords, err := parseCoordinates(r)
	if err != nil {
		return domain.LocationResult{}, err
	}
	if h.Locator == nil {
		return domain.Denied(), nil
	}
	return h.Locator.Resolve(r.Context(), coords), nil
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	result, err := h.resolveLocation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, locationResponse{
		LocationResult: result,
		DisplayAddress: result.AddressOr(h.DefaultAddress),
	})
}

type quoteRequest struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = service.MinQuantity
	}

	dish, err := h.Catalog.Dish(r.Context(), req.DishID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	quote, err := h.Orders.Quote(domain.CartSelection{Item: *dish, Quantity: req.Quantity, Type: domain.SelectionProduct})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type orderRequest struct {
	DishID          int                  `json:"dish_id"`
	Quantity        int                  `json:"quantity"`
	Type            domain.SelectionType `json:"type"`
	DeliveryAddress *string              `json:"delivery_address"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method"`
	Notes           string               `json:"notes"`
	Latitude        *float64             `json:"latitude"`
	Longitude       *float64             `json:"longitude"`
}

type orderResponse struct {
	Order   *domain.OrderConfirmation `json:"order"`
	Summary string                    `json:"summary"`
	QRCode  string                    `json:"qr_code,omitempty"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = service.MinQuantity
	}
	if req.Type == "" {
		req.Type = domain.SelectionProduct
	}

	dish, err := h.Catalog.Dish(r.Context(), req.DishID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	location := domain.Denied()
	if req.DeliveryAddress == nil && req.Latitude != nil && req.Longitude != nil && h.Locator != nil {
		location = h.Locator.Resolve(r.Context(), &domain.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude})
	}

	draft := service.NewOrderDraft(domain.CartSelection{Item: *dish, Quantity: req.Quantity, Type: req.Type}, location)
	if req.DeliveryAddress != nil {
		draft.DeliveryAddress = *req.DeliveryAddress
	}
	if req.PaymentMethod != "" {
		draft.PaymentMethod = req.PaymentMethod
	}
	draft.Notes = req.Notes

	order, err := h.Orders.Submit(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingAddress),
			errors.Is(err, service.ErrUnknownPaymentMethod),
			errors.Is(err, service.ErrUnknownSelection),
			errors.Is(err, service.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	resp := orderResponse{Order: order, Summary: service.ConfirmationSummary(*order)}
	if h.Archive != nil {
		resp.QRCode = "/api/orders/" + order.ID.String() + "/qrcode"
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Archive.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func parseOrderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, false
	}
	return orderID, true
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}
	order, err := h.Archive.Get(r.Context(), orderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orderResponse{Order: order, Summary: service.ConfirmationSummary(*order)})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}
	qrCode, err := h.Archive.QRCode(r.Context(), orderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(qrCode) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	items, err := h.Popular.TopToday(r.Context(), limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading popular items")
		writeJSON(w, http.StatusOK, []domain.PopularItem{})
		return
	}
	writeJSON(w, http.StatusOK, items)
}
