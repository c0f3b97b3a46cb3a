// Package domain contains core concepts of the reward engine.
// This file defines Session entities and their invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeID string

type SessionState int

const (
	Active SessionState = iota
	Ended
)

func (s SessionState) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Ended:
		return "ENDED"
	default:
		return "UNKNOWN"
	}
}

type Visibility int

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	if v == Private {
		return "PRIVATE"
	}
	return "PUBLIC"
}

type Set map[string]struct{}

// Session is one user's live engagement window tied to a challenge.
// All counters are monotonically non-decreasing while the session is Active.
// Sessions are owned by the runtime store; mutation happens only under the
// store's per-session lock, never directly by callers.
type Session struct {
	ID          uuid.UUID
	UserID      string
	ChallengeID ChallengeID
	State       SessionState
	StartedAt   time.Time
	EndedAt     *time.Time

	TotalEngagement      int64
	StableCurrencyEarned int64
	BonusCurrencyEarned  int64

	// LastBonusMintedAt is nil until the first free-tier mint and is
	// cleared again when a mint window lapses without a crossing.
	LastBonusMintedAt *time.Time
	// EngagementAtLastMint is the baseline snapshot taken at each mint
	// or window reset. Free-tier progress is measured against it.
	EngagementAtLastMint int64

	Visibility Visibility
	// AllowList is meaningful only when Visibility is Private.
	AllowList Set

	AudienceCount int64
}

func NewSession(userID string, challengeID ChallengeID, visibility Visibility, startedAt time.Time) *Session {
	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		ChallengeID: challengeID,
		State:       Active,
		StartedAt:   startedAt,
		Visibility:  visibility,
		AllowList:   make(Set),
	}
}

// Snapshot returns an immutable read view of the session.
// The allow list is copied so readers never observe in-flight mutation.
func (s *Session) Snapshot() SessionSnapshot {
	allowList := make(Set, len(s.AllowList))
	for viewerID := range s.AllowList {
		allowList[viewerID] = struct{}{}
	}
	return SessionSnapshot{
		SessionID:            s.ID,
		UserID:               s.UserID,
		ChallengeID:          s.ChallengeID,
		State:                s.State,
		StartedAt:            s.StartedAt,
		EndedAt:              s.EndedAt,
		TotalEngagement:      s.TotalEngagement,
		StableCurrencyEarned: s.StableCurrencyEarned,
		BonusCurrencyEarned:  s.BonusCurrencyEarned,
		LastBonusMintedAt:    s.LastBonusMintedAt,
		Visibility:           s.Visibility,
		AllowList:            allowList,
		AudienceCount:        s.AudienceCount,
	}
}

// SessionSnapshot is the read view handed to rankings, sinks and transports.
type SessionSnapshot struct {
	SessionID            uuid.UUID
	UserID               string
	ChallengeID          ChallengeID
	State                SessionState
	StartedAt            time.Time
	EndedAt              *time.Time
	TotalEngagement      int64
	StableCurrencyEarned int64
	BonusCurrencyEarned  int64
	LastBonusMintedAt    *time.Time
	Visibility           Visibility
	AllowList            Set
	AudienceCount        int64
}

// TierContext is supplied per call by the identity collaborator.
// It is never cached inside the engine.
type TierContext struct {
	IsPremium           bool
	IsDeveloperOverride bool
}

// Bypass reports whether the tier skips the free-tier mint window entirely.
func (t TierContext) Bypass() bool {
	return t.IsPremium || t.IsDeveloperOverride
}
