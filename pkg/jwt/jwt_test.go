package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15)

	token, err := m.GenerateToken("editor-1", "editor@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor-1", claims.Subject)
	assert.Equal(t, "editor@example.com", claims.Email)
}

func TestManagerRejectsWrongSecret(t *testing.T) {
	m := NewManager("right-secret", 15)
	token, err := m.GenerateToken("editor-1", "editor@example.com")
	require.NoError(t, err)

	other := NewManager("wrong-secret", 15)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestManagerRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1)
	token, err := m.GenerateToken("editor-1", "editor@example.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestManagerRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 15)
	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
