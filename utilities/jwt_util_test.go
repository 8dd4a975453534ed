package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	user := &model.User{ID: 42, Email: "coach@example.com", IsStaff: true}

	access, refresh, err := GenerateTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access, false)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "coach@example.com", claims.Email)
	assert.True(t, claims.IsStaff)

	// Each token family only validates against its own secret.
	_, err = ValidateToken(access, true)
	assert.Error(t, err)
	_, err = ValidateToken(refresh, false)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", false)
	assert.Error(t, err)
}

func TestRefreshTokens(t *testing.T) {
	user := &model.User{ID: 7, Email: "athlete@example.com"}
	_, refresh, err := GenerateTokens(user)
	require.NoError(t, err)

	newAccess, newRefresh, err := RefreshTokens(refresh)
	require.NoError(t, err)

	claims, err := ValidateToken(newAccess, false)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.False(t, claims.IsStaff)

	_, err = ValidateToken(newRefresh, true)
	assert.NoError(t, err)
}

func TestRefreshTokensRejectsAccessToken(t *testing.T) {
	access, _, err := GenerateTokens(&model.User{ID: 7, Email: "athlete@example.com"})
	require.NoError(t, err)

	_, _, err = RefreshTokens(access)
	assert.Error(t, err)
}
