package sink

import (
	"context"

	"reward-lab/domain/event"
	"reward-lab/observability"
)

// StatsSink folds engine events into the in-process counters.
type StatsSink struct {
	stats *observability.EngagementStats
}

func NewStatsSink(stats *observability.EngagementStats) StatsSink {
	return StatsSink{stats: stats}
}

func (s StatsSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.SessionStarted:
		s.stats.IncrSessionsStarted()
	case event.SessionEnded:
		s.stats.IncrSessionsEnded()
	case event.EngagementRecorded:
		s.stats.AddEngagementUnits(uint64(evt.Delta))
	case event.BonusMinted:
		s.stats.IncrBonusMints()
	case event.AudienceUpdated:
		s.stats.IncrAudienceUpdates()
	case event.ViewerGranted:
		s.stats.IncrViewerGrants()
	}
	return nil
}
