package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/service"
	"github.com/Yorfad/PROVIAL-sub003/internal/service/mocks"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

type asignacionFixture struct {
	situaciones     *mocks.MockSituacionRepository
	asignaciones    *mocks.MockAsignacionRepository
	actualizaciones *mocks.MockActualizacionRepository
	cache           *mocks.MockSituacionCache
	notifier        *mocks.MockNotifier
	svc             *service.AsignacionCore
}

func newAsignacionFixture(t *testing.T) *asignacionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &asignacionFixture{
		situaciones:     mocks.NewMockSituacionRepository(ctrl),
		asignaciones:    mocks.NewMockAsignacionRepository(ctrl),
		actualizaciones: mocks.NewMockActualizacionRepository(ctrl),
		cache:           mocks.NewMockSituacionCache(ctrl),
		notifier:        mocks.NewMockNotifier(ctrl),
	}
	f.svc = service.NewAsignacionService(
		newTestLogger(),
		f.situaciones,
		f.asignaciones,
		f.actualizaciones,
		f.cache,
		f.notifier,
		service.NewLocks(),
	)
	return f
}

func (f *asignacionFixture) expectPostCommit() {
	f.asignaciones.EXPECT().CountActivas(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	f.situaciones.EXPECT().ListActivas(gomock.Any()).Return(nil, nil).AnyTimes()
	f.cache.EXPECT().SetActivas(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func situacionActiva(id int64) *domain.SituacionPersistente {
	return &domain.SituacionPersistente{
		ID:     id,
		Numero: fmt.Sprintf("SP-2026-%04d", id),
		Estado: domain.EstadoActiva,
	}
}

func TestAsignacionCore_Asignar_OK(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil)
	f.asignaciones.EXPECT().Crear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Asignacion) error {
			a.ID = 1
			return nil
		})
	f.expectPostCommit()

	got, err := f.svc.Asignar(context.Background(), actorCOP, 5, domain.AsignarUnidadRequest{UnidadID: 42})
	if err != nil {
		t.Fatalf("Asignar: %v", err)
	}
	if got.UnidadID != 42 || got.SituacionID != 5 {
		t.Errorf("asignacion = %+v", got)
	}
	if got.AsignadoPor != actorCOP.UsuarioID {
		t.Errorf("asignado_por = %d, want %d", got.AsignadoPor, actorCOP.UsuarioID)
	}
}

func TestAsignacionCore_Asignar_EnPausa(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).
		Return(&domain.SituacionPersistente{ID: 5, Numero: "SP-2026-0005", Estado: domain.EstadoEnPausa}, nil)

	_, err := f.svc.Asignar(context.Background(), actorCOP, 5, domain.AsignarUnidadRequest{UnidadID: 42})
	if !errors.Is(err, e.ErrSituacionNoActiva) {
		t.Fatalf("expected ErrSituacionNoActiva, got %v", err)
	}
}

func TestAsignacionCore_Asignar_Duplicada(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil)
	f.asignaciones.EXPECT().Crear(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("unidad 42 ya asignada: %w", e.ErrAsignacionDuplicada))

	_, err := f.svc.Asignar(context.Background(), actorCOP, 5, domain.AsignarUnidadRequest{UnidadID: 42})
	if !errors.Is(err, e.ErrAsignacionDuplicada) {
		t.Fatalf("expected ErrAsignacionDuplicada, got %v", err)
	}
}

func TestAsignacionCore_Asignar_RolBrigada(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	_, err := f.svc.Asignar(context.Background(), actorBrigada, 5, domain.AsignarUnidadRequest{UnidadID: 42})
	if !errors.Is(err, e.ErrSinPermisos) {
		t.Fatalf("expected ErrSinPermisos, got %v", err)
	}
}

// A unit released from a situation may be assigned to it again; only
// simultaneous active assignments are rejected.
func TestAsignacionCore_AsignarLiberarReasignar(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil).Times(3)
	f.expectPostCommit()

	gomock.InOrder(
		f.asignaciones.EXPECT().Crear(gomock.Any(), gomock.Any()).Return(nil),
		f.asignaciones.EXPECT().Liberar(gomock.Any(), int64(5), int64(42), "relevo de turno", actorCOP.UsuarioID).
			Return(&domain.Asignacion{ID: 1, SituacionID: 5, UnidadID: 42}, nil),
		f.asignaciones.EXPECT().Crear(gomock.Any(), gomock.Any()).Return(nil),
	)

	ctx := context.Background()
	if _, err := f.svc.Asignar(ctx, actorCOP, 5, domain.AsignarUnidadRequest{UnidadID: 42}); err != nil {
		t.Fatalf("primer Asignar: %v", err)
	}
	if _, err := f.svc.Desasignar(ctx, actorCOP, 5, 42, domain.DesasignarUnidadRequest{Observaciones: "relevo de turno"}); err != nil {
		t.Fatalf("Desasignar: %v", err)
	}
	if _, err := f.svc.Asignar(ctx, actorCOP, 5, domain.AsignarUnidadRequest{UnidadID: 42}); err != nil {
		t.Fatalf("segundo Asignar: %v", err)
	}
}

func TestAsignacionCore_Desasignar_SinAsignacionActiva(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil)
	f.asignaciones.EXPECT().Liberar(gomock.Any(), int64(5), int64(42), "", actorCOP.UsuarioID).
		Return(nil, fmt.Errorf("unidad 42: %w", e.ErrSinAsignacionActiva))

	_, err := f.svc.Desasignar(context.Background(), actorCOP, 5, 42, domain.DesasignarUnidadRequest{})
	if !errors.Is(err, e.ErrSinAsignacionActiva) {
		t.Fatalf("expected ErrSinAsignacionActiva, got %v", err)
	}
}

// Assignment and release share the same gate: a paused or finalized
// situation accepts neither, whatever the ledger holds.
func TestAsignacionCore_Desasignar_SituacionNoActiva(t *testing.T) {
	t.Parallel()

	for _, estado := range []domain.EstadoSituacion{domain.EstadoEnPausa, domain.EstadoFinalizada} {
		estado := estado
		t.Run(string(estado), func(t *testing.T) {
			t.Parallel()

			f := newAsignacionFixture(t)

			// No Liberar expectation: the gate rejects before the ledger.
			f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).
				Return(&domain.SituacionPersistente{ID: 5, Numero: "SP-2026-0005", Estado: estado}, nil)

			_, err := f.svc.Desasignar(context.Background(), actorCOP, 5, 42, domain.DesasignarUnidadRequest{})
			if !errors.Is(err, e.ErrSituacionNoActiva) {
				t.Fatalf("expected ErrSituacionNoActiva, got %v", err)
			}
		})
	}
}

func TestAsignacionCore_AgregarActualizacion_OK(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil)
	f.asignaciones.EXPECT().ActivaPara(gomock.Any(), int64(5), int64(42)).
		Return(&domain.Asignacion{ID: 1, SituacionID: 5, UnidadID: 42}, nil)
	f.actualizaciones.EXPECT().Agregar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Actualizacion) error {
			a.ID = 9
			return nil
		})

	got, err := f.svc.AgregarActualizacion(context.Background(), actorBrigada, 5, domain.AgregarActualizacionRequest{
		UnidadID:  42,
		Tipo:      "avance",
		Contenido: "maquinaria retirando material",
	})
	if err != nil {
		t.Fatalf("AgregarActualizacion: %v", err)
	}
	if got.UsuarioID != actorBrigada.UsuarioID {
		t.Errorf("usuario_id = %d, want %d", got.UsuarioID, actorBrigada.UsuarioID)
	}
}

func TestAsignacionCore_AgregarActualizacion_UnidadNoAsignada(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(situacionActiva(5), nil)
	f.asignaciones.EXPECT().ActivaPara(gomock.Any(), int64(5), int64(99)).
		Return(nil, fmt.Errorf("unidad 99: %w", e.ErrSinAsignacionActiva))

	_, err := f.svc.AgregarActualizacion(context.Background(), actorBrigada, 5, domain.AgregarActualizacionRequest{
		UnidadID: 99,
		Tipo:     "avance",
	})
	if !errors.Is(err, e.ErrSinAsignacionActiva) {
		t.Fatalf("expected ErrSinAsignacionActiva, got %v", err)
	}
}

func TestAsignacionCore_Actualizaciones_SituacionInexistente(t *testing.T) {
	t.Parallel()

	f := newAsignacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(77)).Return(nil, e.ErrNotFound)

	_, err := f.svc.Actualizaciones(context.Background(), 77, 50, 0)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
