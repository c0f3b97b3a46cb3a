package workers

import (
	"context"
	"log/slog"

	"reward-lab/contract"
	"reward-lab/domain/event"
)

// Ensure *EventFanout implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts engine events to in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding
// delivery, ordering, durability, or retries. It is intended for
// persistence side effects and observability, not for reward logic:
// every counter the engine answers queries from is already committed
// before an event is published.
type EventFanout struct {
	log    *slog.Logger
	events chan event.DomainEvent
	sinks  []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, events: events, sinks: sinks}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel closed")
				return nil
			}
			w.fanout(ctx, evt)
		}
	}
}

// fanout delivers one event to every sink. A failing sink is logged
// and skipped; it never blocks the other consumers.
func (w *EventFanout) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Error("Sink failed to consume event",
				"challenge_id", evt.Challenge(),
				"error", err)
		}
	}
}
