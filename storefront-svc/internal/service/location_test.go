package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/storefront-svc/internal/domain"
	"storefront/storefront-svc/internal/mocks"
	"storefront/storefront-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func geocoderServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "-23.5505", r.URL.Query().Get("lat"))
		assert.Equal(t, "-46.6333", r.URL.Query().Get("lon"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReverseGeocoder_Resolve(t *testing.T) {
	coords := &domain.Coordinates{Latitude: -23.5505, Longitude: -46.6333}

	tests := []struct {
		name     string
		status   int
		body     string
		expected domain.LocationResult
	}{
		{
			name:     "road",
			status:   http.StatusOK,
			body:     `{"address":{"road":"Praça da Sé","city":"São Paulo"}}`,
			expected: domain.Resolved("Praça da Sé"),
		},
		{
			name:     "pedestrian_fallback",
			status:   http.StatusOK,
			body:     `{"address":{"pedestrian":"Calçadão"}}`,
			expected: domain.Resolved("Calçadão"),
		},
		{
			name:     "no_street",
			status:   http.StatusOK,
			body:     `{"address":{"city":"São Paulo"}}`,
			expected: domain.Resolved(service.StreetNotFound),
		},
		{
			name:     "geocoder_error_body",
			status:   http.StatusOK,
			body:     `{"error":"Unable to geocode"}`,
			expected: domain.Failed(),
		},
		{
			name:     "upstream_status",
			status:   http.StatusServiceUnavailable,
			body:     `{}`,
			expected: domain.Failed(),
		},
		{
			name:     "malformed_body",
			status:   http.StatusOK,
			body:     `not json`,
			expected: domain.Failed(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geocoderServer(t, tt.status, tt.body)
			geocoder := service.NewReverseGeocoder(srv.URL+"/", srv.Client())

			result := geocoder.Resolve(context.Background(), coords)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReverseGeocoder_DeniedWithoutCoordinates(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	geocoder := service.NewReverseGeocoder("http://geocoder.invalid", client)

	result := geocoder.Resolve(context.Background(), nil)

	assert.Equal(t, domain.LocationDenied, result.Status)
	assert.Equal(t, "R. Rio Branco", result.AddressOr("R. Rio Branco"))
}

func TestReverseGeocoder_OutOfRange(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	geocoder := service.NewReverseGeocoder("http://geocoder.invalid", client)

	result := geocoder.Resolve(context.Background(), &domain.Coordinates{Latitude: 120, Longitude: 0})

	assert.Equal(t, domain.Failed(), result)
}

func TestReverseGeocoder_TransportError(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	client.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: timeout")).Once()
	geocoder := service.NewReverseGeocoder("http://geocoder.invalid", client)

	result := geocoder.Resolve(context.Background(), &domain.Coordinates{Latitude: 1, Longitude: 2})

	assert.Equal(t, domain.LocationFailed, result.Status)
	assert.Empty(t, result.Address)
}
