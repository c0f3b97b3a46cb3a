package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-1", []string{RoleUser, RolePremium}, time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Contains(claims.Roles, RolePremium)
}

func TestToken_Expired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-1", []string{RoleUser}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestTierFromRoles(t *testing.T) {
	req := require.New(t)

	req.False(TierFromRoles([]string{RoleUser}).Bypass())
	req.True(TierFromRoles([]string{RoleUser, RolePremium}).IsPremium)
	req.True(TierFromRoles([]string{RoleDeveloper}).IsDeveloperOverride)
	req.False(TierFromRoles(nil).Bypass())
}

func TestStaticTierProvider(t *testing.T) {
	req := require.New(t)

	provider := NewStaticTierProvider([]string{"alice"}, []string{"dev-1"})

	tier, err := provider.GetTier("alice")
	req.NoError(err)
	req.True(tier.IsPremium)

	tier, err = provider.GetTier("dev-1")
	req.NoError(err)
	req.True(tier.IsDeveloperOverride)

	tier, err = provider.GetTier("nobody")
	req.NoError(err)
	req.False(tier.Bypass())
}
