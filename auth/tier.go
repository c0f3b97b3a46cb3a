package auth

import (
	"reward-lab/contract"
	"reward-lab/domain"
)

// TierFromRoles maps token roles to the engine's tier context.
// The tier travels with each call; the engine never caches it.
func TierFromRoles(roles []string) domain.TierContext {
	var tier domain.TierContext
	for _, role := range roles {
		switch role {
		case RolePremium:
			tier.IsPremium = true
		case RoleDeveloper:
			tier.IsDeveloperOverride = true
		}
	}
	return tier
}

// Ensure *StaticTierProvider satisfies the collaborator interface.
var _ contract.ITierProvider = (*StaticTierProvider)(nil)

// StaticTierProvider answers tier lookups from fixed membership sets.
// It stands in for the subscription service in single-process
// deployments and tests; a real deployment plugs its own
// contract.ITierProvider.
type StaticTierProvider struct {
	premium    domain.Set
	developers domain.Set
}

func NewStaticTierProvider(premiumIDs, developerIDs []string) *StaticTierProvider {
	premium := make(domain.Set, len(premiumIDs))
	for _, id := range premiumIDs {
		premium[id] = struct{}{}
	}
	developers := make(domain.Set, len(developerIDs))
	for _, id := range developerIDs {
		developers[id] = struct{}{}
	}
	return &StaticTierProvider{premium: premium, developers: developers}
}

func (p *StaticTierProvider) GetTier(userID string) (domain.TierContext, error) {
	_, isPremium := p.premium[userID]
	_, isDeveloper := p.developers[userID]
	return domain.TierContext{IsPremium: isPremium, IsDeveloperOverride: isDeveloper}, nil
}
