package notify

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/redis"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

// Dispatcher drains the Redis event queue and hands each event to the hub.
// It is the only consumer of the queue.
type Dispatcher struct {
	logger *slog.Logger
	queue  *redis.EventQueue
	hub    *Hub
}

func NewDispatcher(logger *slog.Logger, queue *redis.EventQueue, hub *Hub) *Dispatcher {
	return &Dispatcher{logger: logger, queue: queue, hub: hub}
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("event dispatcher STARTED")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("event dispatcher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		evento, err := d.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrEventoQueueVacia) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			d.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		d.logger.Info("dispatching event",
			slog.String("tipo", string(evento.Tipo)),
			slog.String("numero", evento.Situacion.Numero))
		d.hub.Broadcast(evento)
	}
}
