package services

import (
	"github.com/google/uuid"

	"reward-lab/contract"
	"reward-lab/domain"
	"reward-lab/policy"
	"reward-lab/repositories"
)

type ISessionService interface {
	StartSession(userID string, challengeID domain.ChallengeID, visibility domain.Visibility) (domain.SessionSnapshot, error)
	EndSession(userID string) (domain.SessionSnapshot, error)
	RecordEngagement(userID string, delta int64) (domain.SessionSnapshot, error)
	SetAudience(userID string, count int64) (domain.SessionSnapshot, error)
	GrantViewer(ownerUserID, viewerID string) error
	CanView(viewerID string, sessionID uuid.UUID, viewerTier domain.TierContext) bool
	Progress(userID string) (policy.Progress, error)
	TopByEngagement(challengeID domain.ChallengeID) *domain.SessionSnapshot
	TopByAudience(challengeID domain.ChallengeID) *domain.SessionSnapshot
	CrossBonusEligible(challengeID domain.ChallengeID) *string
	HistoryForChallenge(challengeID domain.ChallengeID) ([]domain.SessionSnapshot, error)
}

var _ ISessionService = (*SessionService)(nil)

// SessionService is the ingestion-facing facade. It resolves the
// caller's tier through the identity collaborator on every call that
// needs one, then delegates to the engine.
type SessionService struct {
	engine  contract.IEngine
	tiers   contract.ITierProvider
	archive repositories.ISessionArchive
}

func NewSessionService(engine contract.IEngine, tiers contract.ITierProvider, archive repositories.ISessionArchive) *SessionService {
	return &SessionService{engine: engine, tiers: tiers, archive: archive}
}

func (s *SessionService) StartSession(userID string, challengeID domain.ChallengeID, visibility domain.Visibility) (domain.SessionSnapshot, error) {
	return s.engine.StartSession(userID, challengeID, visibility)
}

func (s *SessionService) EndSession(userID string) (domain.SessionSnapshot, error) {
	return s.engine.EndSession(userID)
}

func (s *SessionService) RecordEngagement(userID string, delta int64) (domain.SessionSnapshot, error) {
	tier, err := s.tiers.GetTier(userID)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	return s.engine.RecordEngagement(userID, delta, tier)
}

func (s *SessionService) SetAudience(userID string, count int64) (domain.SessionSnapshot, error) {
	return s.engine.SetAudience(userID, count)
}

func (s *SessionService) GrantViewer(ownerUserID, viewerID string) error {
	return s.engine.GrantViewer(ownerUserID, viewerID)
}

func (s *SessionService) CanView(viewerID string, sessionID uuid.UUID, viewerTier domain.TierContext) bool {
	return s.engine.CanView(viewerID, sessionID, viewerTier)
}

func (s *SessionService) Progress(userID string) (policy.Progress, error) {
	tier, err := s.tiers.GetTier(userID)
	if err != nil {
		return policy.Progress{}, err
	}
	return s.engine.Progress(userID, tier)
}

func (s *SessionService) TopByEngagement(challengeID domain.ChallengeID) *domain.SessionSnapshot {
	return s.engine.TopByEngagement(challengeID)
}

func (s *SessionService) TopByAudience(challengeID domain.ChallengeID) *domain.SessionSnapshot {
	return s.engine.TopByAudience(challengeID)
}

func (s *SessionService) CrossBonusEligible(challengeID domain.ChallengeID) *string {
	return s.engine.CrossBonusEligible(challengeID)
}

func (s *SessionService) HistoryForChallenge(challengeID domain.ChallengeID) ([]domain.SessionSnapshot, error) {
	return s.archive.HistoryForChallenge(challengeID)
}
