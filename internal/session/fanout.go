package session

import (
	"log/slog"

	"github.com/ncdevice/ncdevice/internal/events"
)

// RunFanOut drains bus forever, delivering each PropertyChangedEvent
// to every session subscribed to its oid. It is the bus's single
// consumer and is meant to run in its own goroutine for the lifetime
// of the process; it returns once bus is closed and drained.
func RunFanOut(bus *events.Bus, registry *Registry, logger *slog.Logger) {
	for {
		event, ok := bus.Next()
		if !ok {
			return
		}
		subs := registry.SubscribersOf(event.Oid)
		for _, s := range subs {
			s.Notify(event)
		}
		if logger != nil {
			logger.Debug("fanned out property change", "oid", event.Oid, "subscribers", len(subs))
		}
	}
}
