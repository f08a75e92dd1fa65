package audit

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink records events as structured log lines. It backs the memory driver.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("audit")}
}

func (s *ZapSink) Write(_ context.Context, ev Event) error {
	s.log.Info(ev.Action,
		zap.Uint("actor_id", ev.ActorID),
		zap.String("actor_role", ev.ActorRole),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
		zap.String("metadata", encodeMetadata(ev.Metadata)),
	)
	return nil
}
