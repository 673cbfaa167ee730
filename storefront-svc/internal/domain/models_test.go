package domain_test

import (
	"encoding/json"
	"testing"

	"storefront/storefront-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationResult_AddressOr(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.LocationResult
		expected string
	}{
		{name: "resolved", result: domain.Resolved("Av. Paulista"), expected: "Av. Paulista"},
		{name: "denied", result: domain.Denied(), expected: "R. Rio Branco"},
		{name: "failed", result: domain.Failed(), expected: "R. Rio Branco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.AddressOr("R. Rio Branco"))
		})
	}
}

func TestUser_DecodesDirectoryFields(t *testing.T) {
	var user domain.User
	require.NoError(t, json.Unmarshal([]byte(`{"email":"ana@example.com","senha":"segredo123","name":"Ana","saldo":150.75}`), &user))

	assert.Equal(t, "segredo123", user.Password)
	assert.Equal(t, "150.75", user.Balance.String())
}
