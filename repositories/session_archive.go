//go:generate go run go.uber.org/mock/mockgen -source=session_archive.go -destination=../mocks/mock_session_archive.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"reward-lab/domain"
)

type ISessionArchive interface {
	StoreEnded(snapshot domain.SessionSnapshot) error
	HistoryForChallenge(challengeID domain.ChallengeID) ([]domain.SessionSnapshot, error)
}

// SessionArchive persists ended sessions in BadgerDB. It is the
// write-behind side of the engine: it is fed by the event pipeline
// after a session has been committed as Ended, never consulted on the
// hot path.
type SessionArchive struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionArchive(db *badger.DB, log *slog.Logger) *SessionArchive {
	return &SessionArchive{db: db, log: log}
}

// ArchivedSession is the disk representation of an ended session.
type ArchivedSession struct {
	SessionID            string `json:"session_id"`
	UserID               string `json:"user_id"`
	ChallengeID          string `json:"challenge_id"`
	StartedAt            int64  `json:"started_at"`
	EndedAt              int64  `json:"ended_at"`
	TotalEngagement      int64  `json:"total_engagement"`
	StableCurrencyEarned int64  `json:"stable_currency_earned"`
	BonusCurrencyEarned  int64  `json:"bonus_currency_earned"`
	AudienceCount        int64  `json:"audience_count"`
	Visibility           string `json:"visibility"`
}

// StoreEnded persists an ended session snapshot.
// The key is formatted as "session:{challenge_id}:{ended_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the session UUID as a collision
//     disconnector if two sessions end at the same nanosecond.
func (a SessionArchive) StoreEnded(snapshot domain.SessionSnapshot) error {
	if snapshot.State != domain.Ended || snapshot.EndedAt == nil {
		return fmt.Errorf("refusing to archive a session that is not ended: %s", snapshot.SessionID)
	}

	key := fmt.Sprintf("session:%s:%019d:%s",
		snapshot.ChallengeID,
		snapshot.EndedAt.UnixNano(),
		snapshot.SessionID,
	)
	data, err := json.Marshal(toArchived(snapshot))
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// HistoryForChallenge retrieves the ended sessions of a challenge using
// a prefix scan. Thanks to the padded timestamp in the key, records come
// back ordered by end time.
func (a SessionArchive) HistoryForChallenge(challengeID domain.ChallengeID) ([]domain.SessionSnapshot, error) {
	var rows []ArchivedSession
	prefix := []byte(fmt.Sprintf("session:%s:", challengeID))

	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var row ArchivedSession
				if err := json.Unmarshal(value, &row); err != nil {
					return fmt.Errorf("corrupt archive row %s: %w", it.Item().Key(), err)
				}
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.SessionSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshot, err := fromArchived(row)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func toArchived(snapshot domain.SessionSnapshot) ArchivedSession {
	return ArchivedSession{
		SessionID:            snapshot.SessionID.String(),
		UserID:               snapshot.UserID,
		ChallengeID:          string(snapshot.ChallengeID),
		StartedAt:            snapshot.StartedAt.UnixNano(),
		EndedAt:              snapshot.EndedAt.UnixNano(),
		TotalEngagement:      snapshot.TotalEngagement,
		StableCurrencyEarned: snapshot.StableCurrencyEarned,
		BonusCurrencyEarned:  snapshot.BonusCurrencyEarned,
		AudienceCount:        snapshot.AudienceCount,
		Visibility:           snapshot.Visibility.String(),
	}
}

func fromArchived(row ArchivedSession) (domain.SessionSnapshot, error) {
	parsedID, err := uuid.Parse(row.SessionID)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	visibility := domain.Public
	if row.Visibility == domain.Private.String() {
		visibility = domain.Private
	}
	return domain.SessionSnapshot{
		SessionID:            parsedID,
		UserID:               row.UserID,
		ChallengeID:          domain.ChallengeID(row.ChallengeID),
		State:                domain.Ended,
		StartedAt:            time.Unix(0, row.StartedAt).UTC(),
		EndedAt:              lo.ToPtr(time.Unix(0, row.EndedAt).UTC()),
		TotalEngagement:      row.TotalEngagement,
		StableCurrencyEarned: row.StableCurrencyEarned,
		BonusCurrencyEarned:  row.BonusCurrencyEarned,
		AudienceCount:        row.AudienceCount,
		Visibility:           visibility,
	}, nil
}
