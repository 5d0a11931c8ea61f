package dependencies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
)

func TestJWTUtility_RoundTrip(t *testing.T) {
	ju := NewJWTUtility(&config.JWTConfig{SecretKey: "k", Issuer: "mp_hub"})

	token, err := ju.GenerateServiceToken("order-service")
	require.NoError(t, err)

	claims, err := ju.ParseServiceToken(token)
	require.NoError(t, err)
	assert.Equal(t, "order-service", claims.Caller)
	assert.Equal(t, "order-service", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTUtility_RejectsWrongSecretAndIssuer(t *testing.T) {
	issuer := NewJWTUtility(&config.JWTConfig{SecretKey: "k", Issuer: "mp_hub"})
	token, err := issuer.GenerateServiceToken("svc")
	require.NoError(t, err)

	_, err = NewJWTUtility(&config.JWTConfig{SecretKey: "other", Issuer: "mp_hub"}).ParseServiceToken(token)
	assert.Error(t, err)

	_, err = NewJWTUtility(&config.JWTConfig{SecretKey: "k", Issuer: "someone-else"}).ParseServiceToken(token)
	assert.Error(t, err)
}

func TestJWTUtility_Expired(t *testing.T) {
	cfg := &config.JWTConfig{SecretKey: "k", Issuer: "mp_hub"}
	past := &JWTUtility{cfg: cfg, now: func() time.Time { return time.Now().Add(-constants.ServiceTokenTTL - time.Hour) }}
	token, err := past.GenerateServiceToken("svc")
	require.NoError(t, err)

	_, err = NewJWTUtility(cfg).ParseServiceToken(token)
	assert.Error(t, err)
}

func TestJWTUtility_EmptyCaller(t *testing.T) {
	_, err := NewJWTUtility(&config.JWTConfig{SecretKey: "k"}).GenerateServiceToken("")
	assert.Error(t, err)
}
