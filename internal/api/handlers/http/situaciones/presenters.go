package situaciones

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrValidation):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": e.ErrValidation.Error()})
	case errors.Is(err, e.ErrSinPermisos):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": e.ErrSinPermisos.Error()})
	case errors.Is(err, e.ErrReferenciaNoExiste):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": e.ErrReferenciaNoExiste.Error()})
	case errors.Is(err, e.ErrSinAsignacionActiva):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": e.ErrSinAsignacionActiva.Error()})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "situacion no encontrada"})
	case errors.Is(err, e.ErrTransicionInvalida):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": e.ErrTransicionInvalida.Error()})
	case errors.Is(err, e.ErrSituacionNoActiva):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": e.ErrSituacionNoActiva.Error()})
	case errors.Is(err, e.ErrAsignacionDuplicada):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": e.ErrAsignacionDuplicada.Error()})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
