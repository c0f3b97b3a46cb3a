package event

import (
	"time"

	"github.com/google/uuid"

	"reward-lab/domain"
)

type DomainEvent interface {
	Challenge() domain.ChallengeID
}

type SessionStarted struct {
	SessionID   uuid.UUID
	UserID      string
	ChallengeID domain.ChallengeID
	Visibility  domain.Visibility
	At          time.Time
}

func (e SessionStarted) Challenge() domain.ChallengeID { return e.ChallengeID }

type EngagementRecorded struct {
	SessionID   uuid.UUID
	UserID      string
	ChallengeID domain.ChallengeID
	Delta       int64
	Total       int64
	At          time.Time
}

func (e EngagementRecorded) Challenge() domain.ChallengeID { return e.ChallengeID }

type BonusMinted struct {
	SessionID   uuid.UUID
	UserID      string
	ChallengeID domain.ChallengeID
	BonusTotal  int64
	At          time.Time
}

func (e BonusMinted) Challenge() domain.ChallengeID { return e.ChallengeID }

type AudienceUpdated struct {
	SessionID   uuid.UUID
	UserID      string
	ChallengeID domain.ChallengeID
	Count       int64
	At          time.Time
}

func (e AudienceUpdated) Challenge() domain.ChallengeID { return e.ChallengeID }

type ViewerGranted struct {
	SessionID   uuid.UUID
	OwnerID     string
	ViewerID    string
	ChallengeID domain.ChallengeID
	At          time.Time
}

func (e ViewerGranted) Challenge() domain.ChallengeID { return e.ChallengeID }

// SessionEnded carries the final snapshot so write-behind consumers
// can persist it without reaching back into live state.
type SessionEnded struct {
	Snapshot domain.SessionSnapshot
	At       time.Time
}

func (e SessionEnded) Challenge() domain.ChallengeID { return e.Snapshot.ChallengeID }
