package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret")
	userID := uuid.New()

	token, err := m.GenerateToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_ValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_ValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret")

	claims := Claims{
		UserID:   uuid.New().String(),
		Username: "alice",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.ValidateToken(expired)
	assert.Error(t, err)
}

func TestManager_ValidateToken_Garbage(t *testing.T) {
	_, err := NewManager("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
