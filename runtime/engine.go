// Package runtime serializes mutation of session state and publishes
// the resulting domain events. It orchestrates without owning the
// reward rules: those live in policy and are evaluated under the
// per-session lock.
package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reward-lab/contract"
	"reward-lab/domain"
	"reward-lab/domain/event"
	"reward-lab/errors"
	"reward-lab/policy"
	"reward-lab/projection"
	"reward-lab/visibility"
)

// Ensure *Engine satisfies the lifecycle surface at compile time.
var _ contract.IEngine = (*Engine)(nil)

type Engine struct {
	log    *slog.Logger
	store  *SessionStore
	events chan event.DomainEvent

	// now is replaced in tests to drive the mint window.
	now func() time.Time
}

func NewEngine(log *slog.Logger, store *SessionStore, bufferSize int) *Engine {
	return &Engine{
		log:    log,
		store:  store,
		events: make(chan event.DomainEvent, bufferSize),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Events exposes the outbound event stream consumed by the fanout worker.
func (e *Engine) Events() chan event.DomainEvent {
	return e.events
}

// StartSession creates an Active session with zero counters. It fails
// with ErrAlreadyStreaming when the user is already live.
func (e *Engine) StartSession(userID string, challengeID domain.ChallengeID, vis domain.Visibility) (domain.SessionSnapshot, error) {
	session := domain.NewSession(userID, challengeID, vis, e.now())
	tracked := &TrackedSession{Session: session}

	if err := e.store.Insert(tracked); err != nil {
		return domain.SessionSnapshot{}, err
	}

	snapshot := session.Snapshot()
	e.publish(event.SessionStarted{
		SessionID:   snapshot.SessionID,
		UserID:      userID,
		ChallengeID: challengeID,
		Visibility:  vis,
		At:          snapshot.StartedAt,
	})
	return snapshot, nil
}

// EndSession transitions Active -> Ended exactly once. The state flip
// happens under the session lock, so an in-flight engagement tick for
// the same user either lands before the flip or fails afterwards; no
// engagement is ever recorded on an Ended session.
func (e *Engine) EndSession(userID string) (domain.SessionSnapshot, error) {
	tracked, ok := e.store.ByUser(userID)
	if !ok {
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}

	tracked.Lock()
	session := tracked.Session
	if session.State != domain.Active {
		tracked.Unlock()
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}
	endedAt := e.now()
	session.State = domain.Ended
	session.EndedAt = &endedAt
	snapshot := session.Snapshot()
	tracked.Unlock()

	e.store.Retire(snapshot)

	e.publish(event.SessionEnded{Snapshot: snapshot, At: endedAt})
	return snapshot, nil
}

// RecordEngagement adds delta stomps, updates the stable currency 1:1
// and runs one mint evaluation tick under the session lock.
func (e *Engine) RecordEngagement(userID string, delta int64, tier domain.TierContext) (domain.SessionSnapshot, error) {
	if delta <= 0 {
		return domain.SessionSnapshot{}, fmt.Errorf("%w: got %d", errors.ErrInvalidDelta, delta)
	}

	tracked, ok := e.store.ByUser(userID)
	if !ok {
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}

	tracked.Lock()
	session := tracked.Session
	if session.State != domain.Active {
		tracked.Unlock()
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}

	session.TotalEngagement += delta
	session.StableCurrencyEarned = session.TotalEngagement

	evaluation := policy.Evaluate(policy.Accumulator{
		TotalEngagement: session.TotalEngagement,
		BonusEarned:     session.BonusCurrencyEarned,
		LastMintedAt:    session.LastBonusMintedAt,
		Baseline:        session.EngagementAtLastMint,
	}, tier, e.now())

	session.BonusCurrencyEarned = evaluation.BonusEarned
	session.LastBonusMintedAt = evaluation.LastMintedAt
	session.EngagementAtLastMint = evaluation.Baseline

	snapshot := session.Snapshot()
	tracked.Unlock()

	e.publish(event.EngagementRecorded{
		SessionID:   snapshot.SessionID,
		UserID:      userID,
		ChallengeID: snapshot.ChallengeID,
		Delta:       delta,
		Total:       snapshot.TotalEngagement,
		At:          e.now(),
	})
	if evaluation.Minted {
		e.publish(event.BonusMinted{
			SessionID:   snapshot.SessionID,
			UserID:      userID,
			ChallengeID: snapshot.ChallengeID,
			BonusTotal:  snapshot.BonusCurrencyEarned,
			At:          e.now(),
		})
	}
	return snapshot, nil
}

// SetAudience overwrites the externally pushed audience count.
func (e *Engine) SetAudience(userID string, count int64) (domain.SessionSnapshot, error) {
	if count < 0 {
		return domain.SessionSnapshot{}, fmt.Errorf("%w: got %d", errors.ErrInvalidAudience, count)
	}

	tracked, ok := e.store.ByUser(userID)
	if !ok {
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}

	tracked.Lock()
	session := tracked.Session
	if session.State != domain.Active {
		tracked.Unlock()
		return domain.SessionSnapshot{}, errors.ErrNoActiveSession
	}
	session.AudienceCount = count
	snapshot := session.Snapshot()
	tracked.Unlock()

	e.publish(event.AudienceUpdated{
		SessionID:   snapshot.SessionID,
		UserID:      userID,
		ChallengeID: snapshot.ChallengeID,
		Count:       count,
		At:          e.now(),
	})
	return snapshot, nil
}

// GrantViewer adds a viewer to a private session's allow list.
// Granting the same viewer twice is a no-op, not an error.
func (e *Engine) GrantViewer(ownerUserID, viewerID string) error {
	tracked, ok := e.store.ByUser(ownerUserID)
	if !ok {
		return errors.ErrNoActiveSession
	}

	tracked.Lock()
	session := tracked.Session
	if session.State != domain.Active {
		tracked.Unlock()
		return errors.ErrNoActiveSession
	}
	if session.Visibility != domain.Private {
		tracked.Unlock()
		return errors.ErrNotPrivate
	}
	_, already := session.AllowList[viewerID]
	session.AllowList[viewerID] = struct{}{}
	snapshot := session.Snapshot()
	tracked.Unlock()

	if !already {
		e.publish(event.ViewerGranted{
			SessionID:   snapshot.SessionID,
			OwnerID:     ownerUserID,
			ViewerID:    viewerID,
			ChallengeID: snapshot.ChallengeID,
			At:          e.now(),
		})
	}
	return nil
}

// CanView evaluates the visibility rules against a point-in-time
// snapshot. Unknown session ids are simply not viewable.
func (e *Engine) CanView(viewerID string, sessionID uuid.UUID, viewerTier domain.TierContext) bool {
	tracked, ok := e.store.ByID(sessionID)
	if !ok {
		return false
	}

	tracked.Lock()
	snapshot := tracked.Session.Snapshot()
	tracked.Unlock()

	return visibility.CanView(viewerID, snapshot, viewerTier)
}

// Progress reports mint progress. A lapsed window is committed here:
// per the scheduling model there are no timers, expiry is applied at
// the next engagement tick or progress call, whichever comes first.
func (e *Engine) Progress(userID string, tier domain.TierContext) (policy.Progress, error) {
	tracked, ok := e.store.ByUser(userID)
	if !ok {
		return policy.Progress{}, errors.ErrNoActiveSession
	}

	now := e.now()

	tracked.Lock()
	session := tracked.Session
	if session.State != domain.Active {
		tracked.Unlock()
		return policy.Progress{}, errors.ErrNoActiveSession
	}
	if !tier.Bypass() && session.LastBonusMintedAt != nil && now.Sub(*session.LastBonusMintedAt) > policy.MintWindow {
		session.EngagementAtLastMint = session.TotalEngagement
		session.LastBonusMintedAt = nil
	}
	acc := policy.Accumulator{
		TotalEngagement: session.TotalEngagement,
		BonusEarned:     session.BonusCurrencyEarned,
		LastMintedAt:    session.LastBonusMintedAt,
		Baseline:        session.EngagementAtLastMint,
	}
	tracked.Unlock()

	return policy.ComputeProgress(acc, tier, now), nil
}

// TopByEngagement ranks the challenge's active sessions on demand.
// Snapshots are taken per session without a global lock, so the result
// is eventually consistent with in-flight engagement ticks.
func (e *Engine) TopByEngagement(challengeID domain.ChallengeID) *domain.SessionSnapshot {
	return projection.TopByEngagement(e.snapshotsFor(challengeID))
}

// TopByAudience is the audience analogue of TopByEngagement.
func (e *Engine) TopByAudience(challengeID domain.ChallengeID) *domain.SessionSnapshot {
	return projection.TopByAudience(e.snapshotsFor(challengeID))
}

// CrossBonusEligible signals when one session leads both rankings.
func (e *Engine) CrossBonusEligible(challengeID domain.ChallengeID) *string {
	return projection.CrossBonusEligible(e.snapshotsFor(challengeID))
}

func (e *Engine) snapshotsFor(challengeID domain.ChallengeID) []domain.SessionSnapshot {
	tracked := e.store.ActiveForChallenge(challengeID)
	snapshots := make([]domain.SessionSnapshot, 0, len(tracked))
	for _, t := range tracked {
		t.Lock()
		snapshots = append(snapshots, t.Session.Snapshot())
		t.Unlock()
	}
	return snapshots
}

// publish hands an event to the fanout pipeline. Delivery is
// best-effort: a full buffer drops the event rather than blocking the
// caller's engagement tick.
func (e *Engine) publish(evt event.DomainEvent) {
	select {
	case e.events <- evt:
	default:
		e.log.Warn(fmt.Sprintf("Event channel full for challenge %s, dropping event", evt.Challenge()))
	}
}
