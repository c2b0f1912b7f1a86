package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	mgr, err := NewJWTManager("test-secret", "conductor-server")
	require.NoError(t, err)

	userID, orgID := uuid.New(), uuid.New()
	token, err := mgr.IssueAccessToken(userID, orgID, "admin")
	require.NoError(t, err)

	claims, err := mgr.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.UserID)
	require.Equal(t, orgID.String(), claims.OrgID)
	require.Equal(t, "admin", claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	mgr, err := NewJWTManager("secret-a", "conductor-server")
	require.NoError(t, err)
	other, err := NewJWTManager("secret-b", "conductor-server")
	require.NoError(t, err)

	token, err := mgr.IssueAccessToken(uuid.New(), uuid.New(), "member")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	mgr, err := NewJWTManager("test-secret", "conductor-server")
	require.NoError(t, err)
	_, err = mgr.ValidateAccessToken("not-a-token")
	require.Error(t, err)
}

func TestJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", "conductor-server")
	require.Error(t, err)
}

func TestGenerateAPIKey(t *testing.T) {
	raw, hash, err := GenerateAPIKey()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(raw, "cnd_"))
	require.Len(t, hash, 64) // sha256 hex

	// Hashing is deterministic and matches the generated digest.
	require.Equal(t, hash, HashAPIKey(raw))

	// Keys are unique.
	raw2, hash2, err := GenerateAPIKey()
	require.NoError(t, err)
	require.NotEqual(t, raw, raw2)
	require.NotEqual(t, hash, hash2)
}
