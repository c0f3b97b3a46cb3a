// Package visibility decides who may observe a session. The rules are
// pure; allow-list mutation stays in the runtime, behind the session lock.
package visibility

import "reward-lab/domain"

// CanView reports whether a viewer may attach to a session.
// Premium and developer tiers see everything. Public sessions are open
// to anyone. Private sessions are restricted to the owner and the
// allow list.
func CanView(viewerID string, session domain.SessionSnapshot, viewerTier domain.TierContext) bool {
	if viewerTier.Bypass() {
		return true
	}
	if session.Visibility == domain.Public {
		return true
	}
	if viewerID == session.UserID {
		return true
	}
	_, allowed := session.AllowList[viewerID]
	return allowed
}
