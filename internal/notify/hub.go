package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/metrics"

	"github.com/coder/websocket"
)

// Hub fans situation events out to connected websocket clients. Slow
// clients are dropped rather than allowed to stall the broadcast.
type Hub struct {
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[chan domain.EventoSituacion]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[chan domain.EventoSituacion]struct{}),
	}
}

func (h *Hub) subscribe() chan domain.EventoSituacion {
	ch := make(chan domain.EventoSituacion, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	metrics.WebsocketSubscribers.Inc()
	return ch
}

func (h *Hub) unsubscribe(ch chan domain.EventoSituacion) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	metrics.WebsocketSubscribers.Dec()
}

// Broadcast delivers the event to every subscriber without blocking.
func (h *Hub) Broadcast(evento domain.EventoSituacion) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- evento:
		default:
			h.logger.Warn("dropping event for slow websocket subscriber",
				slog.String("tipo", string(evento.Tipo)),
				slog.Int64("situacion_id", evento.Situacion.ID))
		}
	}
}

// Subscribers reports the current connection count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// HandleWS upgrades the request and streams situation events as JSON text
// frames until the client goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin differs from host behind the panel proxy
	})
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer ws.CloseNow()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	h.logger.Info("websocket subscriber connected", slog.Int("subscribers", h.Subscribers()))

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			ws.Close(websocket.StatusNormalClosure, "server shutting down")
			return
		case evento := <-ch:
			b, err := json.Marshal(evento)
			if err != nil {
				h.logger.Error("marshal event failed", slog.Any("error", err))
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = ws.Write(writeCtx, websocket.MessageText, b)
			cancel()
			if err != nil {
				h.logger.Info("websocket subscriber disconnected", slog.Any("error", err))
				return
			}
		}
	}
}
