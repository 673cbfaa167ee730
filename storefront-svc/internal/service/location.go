package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/storefront-svc/internal/domain"
)

// StreetNotFound is the address reported when a position resolves to a place
// without a street name.
const StreetNotFound = "Endereço não encontrado"

// ReverseGeocoder resolves coordinates through a Nominatim compatible
// /reverse endpoint.
type ReverseGeocoder struct {
	baseURL   string
	client    HTTPClient
	userAgent string
}

func NewReverseGeocoder(baseURL string, client HTTPClient) *ReverseGeocoder {
	return &ReverseGeocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		userAgent: "storefront-svc",
	}
}

type reverseResponse struct {
	Error   string `json:"error"`
	Address struct {
		Road       string `json:"road"`
		Pedestrian string `json:"pedestrian"`
	} `json:"address"`
}

// Resolve never fails outright: a nil position means the client did not grant
// location access, any lookup problem is reported as LocationFailed.
func (g *ReverseGeocoder) Resolve(ctx context.Context, coords *domain.Coordinates) domain.LocationResult {
	if coords == nil {
		return domain.Denied()
	}
	if coords.Latitude < -90 || coords.Latitude > 90 || coords.Longitude < -180 || coords.Longitude > 180 {
		logger.Warn().Msgf("coordinates out of range: %f,%f", coords.Latitude, coords.Longitude)
		return domain.Failed()
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		logger.Error().Err(err).Msg("Error building reverse geocode request")
		return domain.Failed()
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Error calling reverse geocoder")
		return domain.Failed()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Msgf("reverse geocoder answered %d", resp.StatusCode)
		return domain.Failed()
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error().Err(err).Msg("Error decoding reverse geocode response")
		return domain.Failed()
	}
	if body.Error != "" {
		logger.Warn().Msgf("reverse geocoder: %s", body.Error)
		return domain.Failed()
	}

	street := body.Address.Road
	if street == "" {
		street = body.Address.Pedestrian
	}
	if street == "" {
		street = StreetNotFound
	}
	return domain.Resolved(street)
}
