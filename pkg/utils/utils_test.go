package utils

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 7.33, RoundToTwoDecimals(7.3333))
	assert.Equal(t, 4.67, RoundToTwoDecimals(4.666))
	assert.Equal(t, 3.5, RoundToOneDecimal(3.45001))
	assert.Equal(t, 0.0, RoundToOneDecimal(0))
}

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	id := uuid.Must(uuid.NewV4())

	token, err := GenerateToken(id, "manager", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims["user_id"])
	assert.Equal(t, "manager", claims["role"])
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(uuid.Must(uuid.NewV4()), "user", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestSetLocationFallsBackToUTC(t *testing.T) {
	SetLocation("Not/AZone")
	assert.Equal(t, time.UTC, AppLocation)

	SetLocation("")
	assert.Equal(t, time.UTC, AppLocation)
}
