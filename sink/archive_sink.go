package sink

import (
	"context"
	"log/slog"

	"reward-lab/domain/event"
	"reward-lab/repositories"
)

// ArchiveSink is the write-behind consumer: it persists ended sessions
// after the engine has committed the transition. Archive failures are
// surfaced to the fanout worker, never back to the engine caller.
type ArchiveSink struct {
	archive repositories.ISessionArchive
	log     *slog.Logger
}

func NewArchiveSink(archive repositories.ISessionArchive, log *slog.Logger) ArchiveSink {
	return ArchiveSink{archive: archive, log: log}
}

func (s ArchiveSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.SessionEnded:
		return s.archive.StoreEnded(evt.Snapshot)
	default:
		return nil
	}
}
