package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "caja-01", "ticketera", 5, jwt.ScopeRender)
	require.NoError(t, err)

	claims, err := jwt.Parse("s3cret", "ticketera", tok)
	require.NoError(t, err)
	assert.Equal(t, "caja-01", claims.ClientID)
	assert.True(t, claims.Has(jwt.ScopeRender))
	assert.False(t, claims.Has(jwt.ScopeMeasure))
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "caja-01", "ticketera", 5)
	require.NoError(t, err)
	_, err = jwt.Parse("otro", "ticketera", tok)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "caja-01", "otro-emisor", 5)
	require.NoError(t, err)
	_, err = jwt.Parse("s3cret", "ticketera", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "caja-01", "ticketera", -1)
	require.NoError(t, err)
	_, err = jwt.Parse("s3cret", "ticketera", tok)
	assert.Error(t, err)
}

func TestClaims_SinScopesConcedeTodo(t *testing.T) {
	assert.True(t, jwt.Claims{}.Has(jwt.ScopeMeasure))
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "caja-01", "ticketera", 5)
	assert.Error(t, err)
}
