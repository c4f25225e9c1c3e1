package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/localesapp/locales-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "locales-api-test"
)

func TestResetToken_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.GenerateResetToken(testSecret, "ana@example.com", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.ParseResetToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestResetToken_SecretEquivocado(t *testing.T) {
	tok, err := pkgjwt.GenerateResetToken(testSecret, "ana@example.com", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.ParseResetToken("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestResetToken_Expirado(t *testing.T) {
	// Vigencia negativa: el token nace expirado.
	tok, err := pkgjwt.GenerateResetToken(testSecret, "ana@example.com", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.ParseResetToken(testSecret, tok)
	assert.Error(t, err, "un token expirado no debe validar")

	// Control: con vigencia corta pero positiva sí valida.
	tok, err = pkgjwt.GenerateResetToken(testSecret, "ana@example.com", testIssuer, 1)
	require.NoError(t, err)
	_, err = pkgjwt.ParseResetToken(testSecret, tok)
	assert.NoError(t, err)
}

func TestResetToken_SecretVacio(t *testing.T) {
	_, err := pkgjwt.GenerateResetToken("", "ana@example.com", testIssuer, 60)
	assert.Error(t, err)

	_, err = pkgjwt.ParseResetToken("", "cualquier-token")
	assert.Error(t, err)
}
