package service

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/storage/postgres"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
	"github.com/Yorfad/PROVIAL-sub003/pkg/validator"
)

// AsignacionCore implements AsignacionService over the append-only
// assignment ledger.
type AsignacionCore struct {
	*emitter
	actualizaciones postgres.ActualizacionRepository
	locks           *Locks
}

func NewAsignacionService(
	logger *slog.Logger,
	situaciones postgres.SituacionRepository,
	asignaciones postgres.AsignacionRepository,
	actualizaciones postgres.ActualizacionRepository,
	cache SituacionCache,
	notifier Notifier,
	locks *Locks,
) *AsignacionCore {
	return &AsignacionCore{
		emitter: &emitter{
			logger:       logger,
			situaciones:  situaciones,
			asignaciones: asignaciones,
			cache:        cache,
			notifier:     notifier,
		},
		actualizaciones: actualizaciones,
		locks:           locks,
	}
}

func (s *AsignacionCore) Asignar(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AsignarUnidadRequest) (*domain.Asignacion, error) {
	const op = "service.Asignacion.Asignar"

	if !actor.Rol.PuedeGestionarSituaciones() {
		return nil, fmt.Errorf("%s: rol %s: %w", op, actor.Rol, e.ErrSinPermisos)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrValidation)
	}

	unlock := s.locks.Lock(situacionID)
	defer unlock()

	situacion, err := s.situaciones.Get(ctx, situacionID)
	if err != nil {
		return nil, err
	}
	if situacion.Estado != domain.EstadoActiva {
		return nil, fmt.Errorf("%s: situacion %s en estado %s: %w", op, situacion.Numero, situacion.Estado, e.ErrSituacionNoActiva)
	}

	asignacion := &domain.Asignacion{
		SituacionID:             situacionID,
		UnidadID:                req.UnidadID,
		ObservacionesAsignacion: req.Observaciones,
		AsignadoPor:             actor.UsuarioID,
	}
	if err := s.asignaciones.Crear(ctx, asignacion); err != nil {
		return nil, err
	}

	s.logger.Info("unidad asignada",
		slog.String("numero", situacion.Numero),
		slog.Int64("unidad_id", req.UnidadID),
		slog.Int64("asignado_por", actor.UsuarioID))

	s.emitir(ctx, domain.EventoActualizada, situacion)
	s.refrescarActivas(ctx)
	return asignacion, nil
}

func (s *AsignacionCore) Desasignar(ctx context.Context, actor domain.Actor, situacionID, unidadID int64, req domain.DesasignarUnidadRequest) (*domain.Asignacion, error) {
	const op = "service.Asignacion.Desasignar"

	if !actor.Rol.PuedeGestionarSituaciones() {
		return nil, fmt.Errorf("%s: rol %s: %w", op, actor.Rol, e.ErrSinPermisos)
	}

	unlock := s.locks.Lock(situacionID)
	defer unlock()

	situacion, err := s.situaciones.Get(ctx, situacionID)
	if err != nil {
		return nil, err
	}
	if situacion.Estado != domain.EstadoActiva {
		return nil, fmt.Errorf("%s: situacion %s en estado %s: %w", op, situacion.Numero, situacion.Estado, e.ErrSituacionNoActiva)
	}

	asignacion, err := s.asignaciones.Liberar(ctx, situacionID, unidadID, req.Observaciones, actor.UsuarioID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("unidad desasignada",
		slog.String("numero", situacion.Numero),
		slog.Int64("unidad_id", unidadID),
		slog.Int64("desasignado_por", actor.UsuarioID))

	s.emitir(ctx, domain.EventoActualizada, situacion)
	s.refrescarActivas(ctx)
	return asignacion, nil
}

func (s *AsignacionCore) Activas(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error) {
	if _, err := s.situaciones.Get(ctx, situacionID); err != nil {
		return nil, err
	}
	return s.asignaciones.Activas(ctx, situacionID)
}

func (s *AsignacionCore) Historial(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error) {
	if _, err := s.situaciones.Get(ctx, situacionID); err != nil {
		return nil, err
	}
	return s.asignaciones.Historial(ctx, situacionID)
}

func (s *AsignacionCore) AgregarActualizacion(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AgregarActualizacionRequest) (*domain.Actualizacion, error) {
	const op = "service.Asignacion.AgregarActualizacion"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrValidation)
	}

	situacion, err := s.situaciones.Get(ctx, situacionID)
	if err != nil {
		return nil, err
	}

	// Only a currently assigned unit may post to the feed.
	if _, err := s.asignaciones.ActivaPara(ctx, situacionID, req.UnidadID); err != nil {
		return nil, err
	}

	actualizacion := &domain.Actualizacion{
		SituacionID: situacionID,
		UnidadID:    req.UnidadID,
		UsuarioID:   actor.UsuarioID,
		Tipo:        req.Tipo,
		Contenido:   req.Contenido,
	}
	if err := s.actualizaciones.Agregar(ctx, actualizacion); err != nil {
		return nil, err
	}

	s.logger.Info("actualizacion agregada",
		slog.String("numero", situacion.Numero),
		slog.Int64("unidad_id", req.UnidadID),
		slog.String("tipo", req.Tipo))

	return actualizacion, nil
}

func (s *AsignacionCore) Actualizaciones(ctx context.Context, situacionID int64, limit, offset int) ([]*domain.Actualizacion, error) {
	if _, err := s.situaciones.Get(ctx, situacionID); err != nil {
		return nil, err
	}
	return s.actualizaciones.List(ctx, situacionID, limit, offset)
}
