package service

import (
	"context"
	"time"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocks
//go:generate mockgen -source=../storage/postgres/repository.go -destination=mocks/mock_repository.go -package=mocks

type SituacionService interface {
	CrearCompleta(ctx context.Context, actor domain.Actor, req domain.CrearCompletaRequest) (*domain.SituacionPersistente, error)
	ActualizarCompleta(ctx context.Context, actor domain.Actor, id int64, req domain.ActualizarCompletaRequest) (*domain.SituacionPersistente, error)
	CambiarEstado(ctx context.Context, actor domain.Actor, id int64, evento domain.EventoEstado) (*domain.SituacionPersistente, error)
	Get(ctx context.Context, id int64) (*domain.SituacionPersistente, error)
	ListActivas(ctx context.Context) ([]domain.SituacionResumen, error)
	List(ctx context.Context, filtro domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error)
}

type AsignacionService interface {
	Asignar(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AsignarUnidadRequest) (*domain.Asignacion, error)
	Desasignar(ctx context.Context, actor domain.Actor, situacionID, unidadID int64, req domain.DesasignarUnidadRequest) (*domain.Asignacion, error)
	Activas(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	Historial(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error)
	AgregarActualizacion(ctx context.Context, actor domain.Actor, situacionID int64, req domain.AgregarActualizacionRequest) (*domain.Actualizacion, error)
	Actualizaciones(ctx context.Context, situacionID int64, limit, offset int) ([]*domain.Actualizacion, error)
}

type CatalogoService interface {
	TiposEmergencia(ctx context.Context) ([]*domain.TipoEmergencia, error)
}

// Notifier publishes situation events after a successful commit. Delivery
// is best-effort: implementations log failures and never return them.
type Notifier interface {
	Notify(ctx context.Context, evento domain.EventoSituacion)
}

// SituacionCache is the read-side cache for the active-situation list.
type SituacionCache interface {
	GetActivas(ctx context.Context) ([]domain.SituacionResumen, error)
	SetActivas(ctx context.Context, situaciones []domain.SituacionResumen, ttl time.Duration) error
}

type Service struct {
	SituacionService  SituacionService
	AsignacionService AsignacionService
	CatalogoService   CatalogoService
}

func NewService(
	situacionService SituacionService,
	asignacionService AsignacionService,
	catalogoService CatalogoService,
) *Service {
	return &Service{
		SituacionService:  situacionService,
		AsignacionService: asignacionService,
		CatalogoService:   catalogoService,
	}
}
