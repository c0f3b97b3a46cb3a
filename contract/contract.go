//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"reward-lab/domain"
	"reward-lab/domain/event"
	"reward-lab/policy"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ITierProvider is the identity collaborator. The engine never caches
// its answers; a tier is looked up fresh on every call that needs one.
type ITierProvider interface {
	GetTier(userID string) (domain.TierContext, error)
}

// IEngine is the synchronous lifecycle surface. All mutating calls are
// safe under concurrent invocation for the same user.
type IEngine interface {
	StartSession(userID string, challengeID domain.ChallengeID, visibility domain.Visibility) (domain.SessionSnapshot, error)
	EndSession(userID string) (domain.SessionSnapshot, error)
	RecordEngagement(userID string, delta int64, tier domain.TierContext) (domain.SessionSnapshot, error)
	SetAudience(userID string, count int64) (domain.SessionSnapshot, error)
	GrantViewer(ownerUserID, viewerID string) error
	CanView(viewerID string, sessionID uuid.UUID, viewerTier domain.TierContext) bool
	Progress(userID string, tier domain.TierContext) (policy.Progress, error)
	TopByEngagement(challengeID domain.ChallengeID) *domain.SessionSnapshot
	TopByAudience(challengeID domain.ChallengeID) *domain.SessionSnapshot
	CrossBonusEligible(challengeID domain.ChallengeID) *string
}
