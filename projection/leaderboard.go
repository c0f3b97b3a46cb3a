// Package projection derives read-side views from session snapshots.
// Rankings are computed on demand by scanning a challenge's active set:
// correctness over cleverness, since sessions per challenge stay small
// and ranking is advisory, never used for money movement.
package projection

import "reward-lab/domain"

// TopByEngagement returns the active session with the highest total
// engagement. Ties go to the earliest started session: first to reach
// the value wins.
func TopByEngagement(snapshots []domain.SessionSnapshot) *domain.SessionSnapshot {
	return top(snapshots, func(s domain.SessionSnapshot) int64 {
		return s.TotalEngagement
	})
}

// TopByAudience is the audience-count analogue of TopByEngagement.
func TopByAudience(snapshots []domain.SessionSnapshot) *domain.SessionSnapshot {
	return top(snapshots, func(s domain.SessionSnapshot) int64 {
		return s.AudienceCount
	})
}

// CrossBonusEligible returns the owner of the session leading both
// rankings at once, or nil. Callers use this as a read-only signal;
// granting the extra unit stays with the rewards-settlement collaborator
// so that all minting goes through the accumulator policy.
func CrossBonusEligible(snapshots []domain.SessionSnapshot) *string {
	byEngagement := TopByEngagement(snapshots)
	byAudience := TopByAudience(snapshots)
	if byEngagement == nil || byAudience == nil {
		return nil
	}
	if byEngagement.SessionID != byAudience.SessionID {
		return nil
	}
	userID := byEngagement.UserID
	return &userID
}

func top(snapshots []domain.SessionSnapshot, key func(domain.SessionSnapshot) int64) *domain.SessionSnapshot {
	var best *domain.SessionSnapshot
	for i := range snapshots {
		candidate := &snapshots[i]
		if candidate.State != domain.Active {
			continue
		}
		switch {
		case best == nil:
			best = candidate
		case key(*candidate) > key(*best):
			best = candidate
		case key(*candidate) == key(*best) && candidate.StartedAt.Before(best.StartedAt):
			best = candidate
		}
	}
	if best == nil {
		return nil
	}
	result := *best
	return &result
}
