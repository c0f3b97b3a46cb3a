// Package observability keeps cheap in-process counters about the
// engine's throughput. Counters are atomics updated from the event
// pipeline; snapshots feed the debug server.
package observability

import (
	"sync/atomic"
	"time"
)

type EngagementStats struct {
	startedAt time.Time

	SessionsStarted uint64
	SessionsEnded   uint64
	EngagementUnits uint64
	BonusMints      uint64
	AudienceUpdates uint64
	ViewerGrants    uint64
}

func NewEngagementStats() *EngagementStats {
	return &EngagementStats{startedAt: time.Now().UTC()}
}

func (s *EngagementStats) IncrSessionsStarted() {
	atomic.AddUint64(&s.SessionsStarted, 1)
}

func (s *EngagementStats) IncrSessionsEnded() {
	atomic.AddUint64(&s.SessionsEnded, 1)
}

func (s *EngagementStats) AddEngagementUnits(n uint64) {
	atomic.AddUint64(&s.EngagementUnits, n)
}

func (s *EngagementStats) IncrBonusMints() {
	atomic.AddUint64(&s.BonusMints, 1)
}

func (s *EngagementStats) IncrAudienceUpdates() {
	atomic.AddUint64(&s.AudienceUpdates, 1)
}

func (s *EngagementStats) IncrViewerGrants() {
	atomic.AddUint64(&s.ViewerGrants, 1)
}

// Snapshot returns the current counters in a shape the debug server
// can render directly.
func (s *EngagementStats) Snapshot() map[string]any {
	return map[string]any{
		"uptime":           time.Since(s.startedAt).Round(time.Second).String(),
		"sessions_started": atomic.LoadUint64(&s.SessionsStarted),
		"sessions_ended":   atomic.LoadUint64(&s.SessionsEnded),
		"engagement_units": atomic.LoadUint64(&s.EngagementUnits),
		"bonus_mints":      atomic.LoadUint64(&s.BonusMints),
		"audience_updates": atomic.LoadUint64(&s.AudienceUpdates),
		"viewer_grants":    atomic.LoadUint64(&s.ViewerGrants),
	}
}
