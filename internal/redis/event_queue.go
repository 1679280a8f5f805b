package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue buffers situation events between the service layer and the
// websocket dispatcher. Delivery is best-effort: a lost event never fails
// the write that produced it.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, evento domain.EventoSituacion) error {
	b, err := json.Marshal(evento)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.EventoSituacion, error) {
	var evento domain.EventoSituacion

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return evento, e.ErrEventoQueueVacia
		}
		return evento, err
	}
	if len(res) < 2 {
		return evento, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &evento); err != nil {
		return evento, err
	}
	return evento, nil
}
