package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateServiceJWT("bookings", RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateServiceJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "bookings", claims.Subject)

	_, err = ValidateServiceJWT(token, []byte("another secret"))
	require.Error(t, err)

	expired, err := GenerateServiceJWT("bookings", RoleService, -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateServiceJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = GenerateServiceJWT("bookings", "root", time.Hour, key)
	require.ErrorIs(t, err, ErrInvalidRole)
}
