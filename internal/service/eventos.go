package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/storage/postgres"
)

const cacheActivasTTL = 30 * time.Second

// emitter carries the post-commit side effects shared by the mutating
// services: event publication and the active-list cache refresh. Neither
// may fail the write that triggered it.
type emitter struct {
	logger       *slog.Logger
	situaciones  postgres.SituacionRepository
	asignaciones postgres.AsignacionRepository
	cache        SituacionCache
	notifier     Notifier
}

func (em *emitter) emitir(ctx context.Context, tipo domain.TipoEvento, s *domain.SituacionPersistente) {
	unidades, err := em.asignaciones.CountActivas(ctx, s.ID)
	if err != nil {
		em.logger.Warn("count activas for event failed", slog.Any("error", err), slog.Int64("situacion_id", s.ID))
		unidades = 0
	}
	em.notifier.Notify(ctx, domain.EventoSituacion{
		Tipo:      tipo,
		Situacion: s.Resumen(unidades),
		EmitidoEn: time.Now().UTC(),
	})
}

func (em *emitter) refrescarActivas(ctx context.Context) {
	resumenes, err := em.cargarActivas(ctx)
	if err != nil {
		em.logger.Warn("refresh activas cache failed", slog.Any("error", err))
		return
	}
	if err := em.cache.SetActivas(ctx, resumenes, cacheActivasTTL); err != nil {
		em.logger.Warn("set activas cache failed", slog.Any("error", err))
	}
}

func (em *emitter) cargarActivas(ctx context.Context) ([]domain.SituacionResumen, error) {
	situaciones, err := em.situaciones.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	resumenes := make([]domain.SituacionResumen, 0, len(situaciones))
	for _, s := range situaciones {
		if s.Obstruccion != nil {
			s.Obstruccion.Descripcion = s.Obstruccion.Describir(s.Sentido)
		}
		unidades, err := em.asignaciones.CountActivas(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		resumenes = append(resumenes, s.Resumen(unidades))
	}
	return resumenes, nil
}
