package postgres

import (
	"context"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
)

type SituacionRepository interface {
	// CrearCompleta persists the situation with its obstruction block and
	// rosters in one transaction, assigning id, uuid and numero.
	CrearCompleta(ctx context.Context, s *domain.SituacionPersistente) error
	Get(ctx context.Context, id int64) (*domain.SituacionPersistente, error)
	// ActualizarCompleta rewrites the base row and, when the flags are set,
	// replaces the obstruction block and rosters wholesale.
	ActualizarCompleta(ctx context.Context, s *domain.SituacionPersistente, reemplazarObstruccion, reemplazarAutoridades, reemplazarSocorro bool) error
	CambiarEstado(ctx context.Context, id int64, estado domain.EstadoSituacion, cerradoPor *int64) error
	ListActivas(ctx context.Context) ([]*domain.SituacionPersistente, error)
	List(ctx context.Context, filtro domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error)
}

type AsignacionRepository interface {
	Crear(ctx context.Context, a *domain.Asignacion) error
	Liberar(ctx context.Context, situacionID, unidadID int64, observaciones string, desasignadoPor int64) (*domain.Asignacion, error)
	ActivaPara(ctx context.Context, situacionID, unidadID int64) (*domain.Asignacion, error)
	Activas(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	Historial(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	CountActivas(ctx context.Context, situacionID int64) (int, error)
}

type ActualizacionRepository interface {
	Agregar(ctx context.Context, a *domain.Actualizacion) error
	List(ctx context.Context, situacionID int64, limit, offset int) ([]*domain.Actualizacion, error)
}

type CatalogoRepository interface {
	TipoEmergencia(ctx context.Context, id int64) (*domain.TipoEmergencia, error)
	TiposEmergencia(ctx context.Context) ([]*domain.TipoEmergencia, error)
	Ruta(ctx context.Context, id int64) (*domain.Ruta, error)
}
