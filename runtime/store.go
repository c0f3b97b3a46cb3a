package runtime

import (
	"sync"

	"github.com/google/uuid"

	"reward-lab/domain"
	"reward-lab/errors"
)

// TrackedSession pairs a session with its exclusive lock. Every
// read-modify-write of the counters happens with the lock held, so no
// two engagement ticks for the same user can interleave.
type TrackedSession struct {
	mu      sync.Mutex
	Session *domain.Session
}

// Lock acquires the per-session lock.
func (t *TrackedSession) Lock() { t.mu.Lock() }

// Unlock releases the per-session lock.
func (t *TrackedSession) Unlock() { t.mu.Unlock() }

// SessionStore owns all session records. The maps are guarded by a
// single lock held only for the duration of the map operation, never
// across a full engagement tick.
type SessionStore struct {
	mu          sync.RWMutex
	byUser      map[string]*TrackedSession
	byID        map[uuid.UUID]*TrackedSession
	byChallenge map[domain.ChallengeID]domain.Set // challenge -> user ids
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		byUser:      make(map[string]*TrackedSession),
		byID:        make(map[uuid.UUID]*TrackedSession),
		byChallenge: make(map[domain.ChallengeID]domain.Set),
	}
}

// Insert registers a new active session. The existence check and the
// insert happen under the same lock, so at most one active session per
// user can ever be admitted, whatever the call ordering.
func (s *SessionStore) Insert(tracked *TrackedSession) error {
	session := tracked.Session

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUser[session.UserID]; exists {
		return errors.ErrAlreadyStreaming
	}

	s.byUser[session.UserID] = tracked
	s.byID[session.ID] = tracked

	if _, ok := s.byChallenge[session.ChallengeID]; !ok {
		s.byChallenge[session.ChallengeID] = make(domain.Set)
	}
	s.byChallenge[session.ChallengeID][session.UserID] = struct{}{}

	return nil
}

// ByUser returns the active session for a user, if any.
func (s *SessionStore) ByUser(userID string) (*TrackedSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tracked, ok := s.byUser[userID]
	return tracked, ok
}

// ByID returns an active session by its id, if any.
func (s *SessionStore) ByID(sessionID uuid.UUID) (*TrackedSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tracked, ok := s.byID[sessionID]
	return tracked, ok
}

// Retire removes an ended session from the active indexes. Durable
// history is the archive's job, fed through the event pipeline. Empty
// challenge sets are cleaned up to avoid leaking entries over time.
func (s *SessionStore) Retire(snapshot domain.SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, snapshot.UserID)
	delete(s.byID, snapshot.SessionID)

	if members, ok := s.byChallenge[snapshot.ChallengeID]; ok {
		delete(members, snapshot.UserID)
		if len(members) == 0 {
			delete(s.byChallenge, snapshot.ChallengeID)
		}
	}
}

// ActiveForChallenge collects the active sessions of a challenge. The
// store lock is released before callers snapshot each session, so a
// ranking scan never blocks engagement ticks globally.
func (s *SessionStore) ActiveForChallenge(challengeID domain.ChallengeID) []*TrackedSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.byChallenge[challengeID]
	if !ok {
		return nil
	}
	var active []*TrackedSession
	for userID := range members {
		if tracked, exists := s.byUser[userID]; exists {
			active = append(active, tracked)
		}
	}
	return active
}
