package notify

import (
	"context"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/redis"
)

// QueueNotifier publishes events to the Redis queue the dispatcher drains.
// Enqueue failures are logged and swallowed: notification never fails the
// write it follows.
type QueueNotifier struct {
	logger *slog.Logger
	queue  *redis.EventQueue
}

func NewQueueNotifier(logger *slog.Logger, queue *redis.EventQueue) *QueueNotifier {
	return &QueueNotifier{logger: logger, queue: queue}
}

func (n *QueueNotifier) Notify(ctx context.Context, evento domain.EventoSituacion) {
	if err := n.queue.Enqueue(ctx, evento); err != nil {
		n.logger.Error("enqueue event failed",
			slog.Any("error", err),
			slog.String("tipo", string(evento.Tipo)),
			slog.String("numero", evento.Situacion.Numero))
	}
}
