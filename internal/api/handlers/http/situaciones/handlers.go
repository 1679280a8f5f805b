package situaciones

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/metrics"
	"github.com/Yorfad/PROVIAL-sub003/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Situaciones interface {
	CrearCompleta(ctx context.Context, actor domain.Actor, req domain.CrearCompletaRequest) (*domain.SituacionPersistente, error)
	ActualizarCompleta(ctx context.Context, actor domain.Actor, id int64, req domain.ActualizarCompletaRequest) (*domain.SituacionPersistente, error)
	CambiarEstado(ctx context.Context, actor domain.Actor, id int64, evento domain.EventoEstado) (*domain.SituacionPersistente, error)
	Get(ctx context.Context, id int64) (*domain.SituacionPersistente, error)
	ListActivas(ctx context.Context) ([]domain.SituacionResumen, error)
	List(ctx context.Context, filtro domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error)
}

type Asignaciones interface {
	Asignar(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AsignarUnidadRequest) (*domain.Asignacion, error)
	Desasignar(ctx context.Context, actor domain.Actor, situacionID, unidadID int64, req domain.DesasignarUnidadRequest) (*domain.Asignacion, error)
	Activas(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	Historial(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	AgregarActualizacion(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AgregarActualizacionRequest) (*domain.Actualizacion, error)
	Actualizaciones(ctx context.Context, situacionID int64, limit, offset int) ([]*domain.Actualizacion, error)
}

type Catalogos interface {
	TiposEmergencia(ctx context.Context) ([]*domain.TipoEmergencia, error)
}

type Handler struct {
	logger       *slog.Logger
	Situaciones  Situaciones
	Asignaciones Asignaciones
	Catalogos    Catalogos
}

func NewHandler(logger *slog.Logger, situaciones Situaciones, asignaciones Asignaciones, catalogos Catalogos) *Handler {
	return &Handler{
		logger:       logger,
		Situaciones:  situaciones,
		Asignaciones: asignaciones,
		Catalogos:    catalogos,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "identidad no resuelta"})
	}
	return actor, ok
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Crear", slog.String("remote", r.RemoteAddr))

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CrearCompletaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	situacion, err := h.Situaciones.CrearCompleta(r.Context(), actor, req)
	metrics.ObserveOperation("crear_completa", err)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("situacion creada",
		slog.String("numero", situacion.Numero),
		slog.Int64("id", situacion.ID))
	h.writeJSON(w, http.StatusCreated, situacion)
}

func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Actualizar", slog.String("remote", r.RemoteAddr))

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ActualizarCompletaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	situacion, err := h.Situaciones.ActualizarCompleta(r.Context(), actor, id, req)
	metrics.ObserveOperation("actualizar_completa", err)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, situacion)
}

func (h *Handler) cambiarEstado(evento domain.EventoEstado) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := h.actor(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "id")
		if !ok {
			return
		}

		situacion, err := h.Situaciones.CambiarEstado(r.Context(), actor, id, evento)
		metrics.ObserveOperation(string(evento), err)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		h.log(r).Info("situacion cambio de estado",
			slog.String("numero", situacion.Numero),
			slog.String("estado", string(situacion.Estado)))
		h.writeJSON(w, http.StatusOK, situacion)
	}
}

func (h *Handler) Pausar(w http.ResponseWriter, r *http.Request) {
	h.cambiarEstado(domain.EventoPausar)(w, r)
}

func (h *Handler) Reactivar(w http.ResponseWriter, r *http.Request) {
	h.cambiarEstado(domain.EventoReactivar)(w, r)
}

func (h *Handler) Finalizar(w http.ResponseWriter, r *http.Request) {
	h.cambiarEstado(domain.EventoFinalizar)(w, r)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	situacion, err := h.Situaciones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, situacion)
}

func (h *Handler) ListActivas(w http.ResponseWriter, r *http.Request) {
	situaciones, err := h.Situaciones.ListActivas(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"situaciones": situaciones,
		"total":       len(situaciones),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	q := r.URL.Query()

	limit := parseInt(q.Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	filtro := domain.FiltroSituaciones{
		Estado:      domain.EstadoSituacion(q.Get("estado")),
		Importancia: domain.Importancia(q.Get("importancia")),
		Limit:       limit,
		Offset:      parseInt(q.Get("offset"), 0),
	}
	if rutaStr := q.Get("ruta_id"); rutaStr != "" {
		rutaID, err := strconv.ParseInt(rutaStr, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ruta_id invalido"})
			return
		}
		filtro.RutaID = &rutaID
	}

	situaciones, total, err := h.Situaciones.List(r.Context(), filtro)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"situaciones": situaciones,
		"total":       total,
		"limit":       filtro.Limit,
		"offset":      filtro.Offset,
	})
}

func (h *Handler) Asignar(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.AsignarUnidadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	asignacion, err := h.Asignaciones.Asignar(r.Context(), actor, id, req)
	metrics.ObserveOperation("asignar_unidad", err)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("unidad asignada",
		slog.Int64("situacion_id", id),
		slog.Int64("unidad_id", req.UnidadID))
	h.writeJSON(w, http.StatusCreated, asignacion)
}

func (h *Handler) Desasignar(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	unidadID, ok := h.pathID(w, r, "unidadId")
	if !ok {
		return
	}

	// Body is optional on release.
	var req domain.DesasignarUnidadRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	asignacion, err := h.Asignaciones.Desasignar(r.Context(), actor, id, unidadID, req)
	metrics.ObserveOperation("desasignar_unidad", err)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("unidad desasignada",
		slog.Int64("situacion_id", id),
		slog.Int64("unidad_id", unidadID))
	h.writeJSON(w, http.StatusOK, asignacion)
}

func (h *Handler) AsignacionesActivas(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	asignaciones, err := h.Asignaciones.Activas(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"asignaciones": asignaciones,
		"total":        len(asignaciones),
	})
}

func (h *Handler) AsignacionesHistorial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	asignaciones, err := h.Asignaciones.Historial(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"asignaciones": asignaciones,
		"total":        len(asignaciones),
	})
}

func (h *Handler) AgregarActualizacion(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.AgregarActualizacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	actualizacion, err := h.Asignaciones.AgregarActualizacion(r.Context(), actor, id, req)
	metrics.ObserveOperation("agregar_actualizacion", err)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, actualizacion)
}

func (h *Handler) Actualizaciones(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query()
	actualizaciones, err := h.Asignaciones.Actualizaciones(r.Context(), id,
		parseInt(q.Get("limit"), 50), parseInt(q.Get("offset"), 0))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"actualizaciones": actualizaciones,
		"total":           len(actualizaciones),
	})
}

func (h *Handler) TiposEmergencia(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.Catalogos.TiposEmergencia(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"tipos_emergencia": tipos})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.log(r).Warn("invalid id", slog.String("param", name), slog.String("value", raw))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id invalido"})
		return 0, false
	}
	return id, true
}
