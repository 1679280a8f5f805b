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

// SituacionCore implements SituacionService. Validation and catalog checks
// run before any persistence, so a rejected request never consumes a
// numero from the sequence.
type SituacionCore struct {
	*emitter
	catalogo postgres.CatalogoRepository
	locks    *Locks
}

func NewSituacionService(
	logger *slog.Logger,
	situaciones postgres.SituacionRepository,
	asignaciones postgres.AsignacionRepository,
	catalogo postgres.CatalogoRepository,
	cache SituacionCache,
	notifier Notifier,
	locks *Locks,
) *SituacionCore {
	return &SituacionCore{
		emitter: &emitter{
			logger:       logger,
			situaciones:  situaciones,
			asignaciones: asignaciones,
			cache:        cache,
			notifier:     notifier,
		},
		catalogo: catalogo,
		locks:    locks,
	}
}

func (s *SituacionCore) CrearCompleta(ctx context.Context, actor domain.Actor, req domain.CrearCompletaRequest) (*domain.SituacionPersistente, error) {
	const op = "service.Situacion.CrearCompleta"

	if !actor.Rol.PuedeGestionarSituaciones() {
		return nil, fmt.Errorf("%s: rol %s: %w", op, actor.Rol, e.ErrSinPermisos)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrValidation)
	}
	if err := validarKilometros(req.KmInicio, req.KmFin); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var obstruccion *domain.Obstruccion
	if req.Obstruccion != nil {
		obstruccion = req.Obstruccion.ToObstruccion()
		if err := obstruccion.Validar(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := s.catalogo.TipoEmergencia(ctx, req.TipoEmergenciaID); err != nil {
		return nil, fmt.Errorf("%s: tipo_emergencia_id %d: %w", op, req.TipoEmergenciaID, err)
	}
	if req.RutaID != nil {
		if _, err := s.catalogo.Ruta(ctx, *req.RutaID); err != nil {
			return nil, fmt.Errorf("%s: ruta_id %d: %w", op, *req.RutaID, err)
		}
	}

	situacion := &domain.SituacionPersistente{
		Titulo:           req.Titulo,
		Descripcion:      req.Descripcion,
		TipoEmergenciaID: req.TipoEmergenciaID,
		Importancia:      req.Importancia,
		RutaID:           req.RutaID,
		KmInicio:         req.KmInicio,
		KmFin:            req.KmFin,
		Sentido:          req.Sentido,
		Estado:           domain.EstadoActiva,
		Autoridades:      req.Autoridades,
		Socorro:          req.Socorro,
		CreadoPor:        actor.UsuarioID,
	}
	if obstruccion != nil {
		obstruccion.Descripcion = obstruccion.Describir(situacion.Sentido)
		situacion.Obstruccion = obstruccion
	}

	if err := s.situaciones.CrearCompleta(ctx, situacion); err != nil {
		return nil, err
	}

	s.logger.Info("situacion creada",
		slog.String("numero", situacion.Numero),
		slog.Int64("id", situacion.ID),
		slog.Int64("creado_por", actor.UsuarioID))

	s.emitir(ctx, domain.EventoCreada, situacion)
	s.refrescarActivas(ctx)
	return situacion, nil
}

func (s *SituacionCore) ActualizarCompleta(ctx context.Context, actor domain.Actor, id int64, req domain.ActualizarCompletaRequest) (*domain.SituacionPersistente, error) {
	const op = "service.Situacion.ActualizarCompleta"

	if !actor.Rol.PuedeGestionarSituaciones() {
		return nil, fmt.Errorf("%s: rol %s: %w", op, actor.Rol, e.ErrSinPermisos)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrValidation)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	situacion, err := s.situaciones.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if situacion.Estado == domain.EstadoFinalizada {
		return nil, fmt.Errorf("%s: situacion %s finalizada: %w", op, situacion.Numero, e.ErrSituacionNoActiva)
	}

	if req.Titulo != nil {
		situacion.Titulo = *req.Titulo
	}
	if req.Descripcion != nil {
		situacion.Descripcion = *req.Descripcion
	}
	if req.Importancia != nil {
		situacion.Importancia = *req.Importancia
	}
	if req.KmInicio != nil {
		situacion.KmInicio = req.KmInicio
	}
	if req.KmFin != nil {
		situacion.KmFin = req.KmFin
	}
	if req.Sentido != nil {
		situacion.Sentido = *req.Sentido
	}
	if err := validarKilometros(situacion.KmInicio, situacion.KmFin); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reemplazarObstruccion := req.Obstruccion != nil
	if reemplazarObstruccion {
		obstruccion := req.Obstruccion.ToObstruccion()
		if err := obstruccion.Validar(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		obstruccion.Descripcion = obstruccion.Describir(situacion.Sentido)
		situacion.Obstruccion = obstruccion
	} else if situacion.Obstruccion != nil {
		// direction may have changed; keep the derived text in step
		situacion.Obstruccion.Descripcion = situacion.Obstruccion.Describir(situacion.Sentido)
	}

	reemplazarAutoridades := req.Autoridades != nil
	if reemplazarAutoridades {
		situacion.Autoridades = req.Autoridades
	}
	reemplazarSocorro := req.Socorro != nil
	if reemplazarSocorro {
		situacion.Socorro = req.Socorro
	}

	if err := s.situaciones.ActualizarCompleta(ctx, situacion, true, reemplazarAutoridades, reemplazarSocorro); err != nil {
		return nil, err
	}

	s.logger.Info("situacion actualizada",
		slog.String("numero", situacion.Numero),
		slog.Int64("id", situacion.ID))

	s.emitir(ctx, domain.EventoActualizada, situacion)
	s.refrescarActivas(ctx)
	return situacion, nil
}

func (s *SituacionCore) CambiarEstado(ctx context.Context, actor domain.Actor, id int64, evento domain.EventoEstado) (*domain.SituacionPersistente, error) {
	const op = "service.Situacion.CambiarEstado"

	if !actor.Rol.PuedeGestionarSituaciones() {
		return nil, fmt.Errorf("%s: rol %s: %w", op, actor.Rol, e.ErrSinPermisos)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	situacion, err := s.situaciones.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	nuevo, err := domain.Transicion(situacion.Estado, evento)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cerradoPor *int64
	if nuevo == domain.EstadoFinalizada {
		cerradoPor = &actor.UsuarioID
	}
	if err := s.situaciones.CambiarEstado(ctx, id, nuevo, cerradoPor); err != nil {
		return nil, err
	}

	situacion, err = s.situaciones.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if situacion.Obstruccion != nil {
		situacion.Obstruccion.Descripcion = situacion.Obstruccion.Describir(situacion.Sentido)
	}

	s.logger.Info("situacion cambio de estado",
		slog.String("numero", situacion.Numero),
		slog.String("evento", string(evento)),
		slog.String("estado", string(situacion.Estado)))

	s.emitir(ctx, domain.EventoActualizada, situacion)
	s.refrescarActivas(ctx)
	return situacion, nil
}

func (s *SituacionCore) Get(ctx context.Context, id int64) (*domain.SituacionPersistente, error) {
	situacion, err := s.situaciones.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if situacion.Obstruccion != nil {
		situacion.Obstruccion.Descripcion = situacion.Obstruccion.Describir(situacion.Sentido)
	}
	return situacion, nil
}

func (s *SituacionCore) ListActivas(ctx context.Context) ([]domain.SituacionResumen, error) {
	cached, err := s.cache.GetActivas(ctx)
	if err != nil {
		s.logger.Warn("activas cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	resumenes, err := s.cargarActivas(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetActivas(ctx, resumenes, cacheActivasTTL); err != nil {
		s.logger.Warn("set activas cache failed", slog.Any("error", err))
	}
	return resumenes, nil
}

func (s *SituacionCore) List(ctx context.Context, filtro domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error) {
	situaciones, total, err := s.situaciones.List(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}
	for _, situacion := range situaciones {
		if situacion.Obstruccion != nil {
			situacion.Obstruccion.Descripcion = situacion.Obstruccion.Describir(situacion.Sentido)
		}
	}
	return situaciones, total, nil
}

func validarKilometros(inicio, fin *float64) error {
	if inicio != nil && fin != nil && *fin < *inicio {
		return fmt.Errorf("km_fin %.3f menor que km_inicio %.3f: %w", *fin, *inicio, e.ErrValidation)
	}
	return nil
}
