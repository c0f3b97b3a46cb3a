package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reward-lab/domain"
)

func activeSnapshot(userID string, engagement, audience int64, startedAt time.Time) domain.SessionSnapshot {
	session := domain.NewSession(userID, "challenge-1", domain.Public, startedAt)
	session.TotalEngagement = engagement
	session.StableCurrencyEarned = engagement
	session.AudienceCount = audience
	return session.Snapshot()
}

func TestTopByEngagement(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should pick the highest engagement among concurrent sessions", func(t *testing.T) {
		req := require.New(t)

		snapshots := []domain.SessionSnapshot{
			activeSnapshot("alice", 10, 5, now),
			activeSnapshot("bob", 30, 1, now.Add(time.Second)),
			activeSnapshot("clara", 20, 9, now.Add(2*time.Second)),
		}

		best := TopByEngagement(snapshots)

		req.NotNil(best)
		req.Equal("bob", best.UserID)
	})

	t.Run("should break ties by earliest start", func(t *testing.T) {
		req := require.New(t)

		snapshots := []domain.SessionSnapshot{
			activeSnapshot("late", 30, 0, now.Add(time.Minute)),
			activeSnapshot("early", 30, 0, now),
		}

		best := TopByEngagement(snapshots)

		req.NotNil(best)
		req.Equal("early", best.UserID)
	})

	t.Run("should ignore ended sessions", func(t *testing.T) {
		req := require.New(t)

		ended := activeSnapshot("gone", 50, 0, now)
		ended.State = domain.Ended
		snapshots := []domain.SessionSnapshot{
			ended,
			activeSnapshot("alive", 10, 0, now),
		}

		best := TopByEngagement(snapshots)

		req.NotNil(best)
		req.Equal("alive", best.UserID)
	})

	t.Run("should return nil for an empty challenge", func(t *testing.T) {
		require.Nil(t, TopByEngagement(nil))
	})
}

func TestTopByAudience(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	snapshots := []domain.SessionSnapshot{
		activeSnapshot("alice", 10, 5, now),
		activeSnapshot("bob", 30, 1, now),
		activeSnapshot("clara", 20, 9, now),
	}

	best := TopByAudience(snapshots)

	req.NotNil(best)
	req.Equal("clara", best.UserID)
}

func TestCrossBonusEligible(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should return the owner leading both rankings", func(t *testing.T) {
		req := require.New(t)

		snapshots := []domain.SessionSnapshot{
			activeSnapshot("alice", 100, 50, now),
			activeSnapshot("bob", 30, 1, now),
		}

		userID := CrossBonusEligible(snapshots)

		req.NotNil(userID)
		req.Equal("alice", *userID)
	})

	t.Run("should return nil when the leaders differ", func(t *testing.T) {
		req := require.New(t)

		snapshots := []domain.SessionSnapshot{
			activeSnapshot("alice", 100, 1, now),
			activeSnapshot("bob", 30, 50, now),
		}

		req.Nil(CrossBonusEligible(snapshots))
	})

	t.Run("should return nil for an empty challenge", func(t *testing.T) {
		require.Nil(t, CrossBonusEligible(nil))
	})
}
