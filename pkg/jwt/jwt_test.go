package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/estoque-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// Generar y parsear con el mismo secret devuelve los claims originales.
func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "admin", "estoque-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

// Un token firmado con otro secret se rechaza.
func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "admin", "estoque-api-test", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

// Un token expirado se rechaza.
func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "admin", "estoque-api-test", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

// Secret vacío se rechaza tanto al generar como al parsear.
func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "admin", "estoque-api-test", 60)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "cualquier-token")
	assert.Error(t, err)
}
