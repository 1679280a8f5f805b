package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/service"
	"github.com/Yorfad/PROVIAL-sub003/internal/service/mocks"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func f64ptr(v float64) *float64 { return &v }

func strptr(v string) *string { return &v }

var (
	actorCOP     = domain.Actor{UsuarioID: 7, Rol: domain.RolCOP}
	actorBrigada = domain.Actor{UsuarioID: 3, Rol: domain.RolBrigada}
)

type situacionFixture struct {
	situaciones  *mocks.MockSituacionRepository
	asignaciones *mocks.MockAsignacionRepository
	catalogo     *mocks.MockCatalogoRepository
	cache        *mocks.MockSituacionCache
	notifier     *mocks.MockNotifier
	svc          *service.SituacionCore
}

func newSituacionFixture(t *testing.T) *situacionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &situacionFixture{
		situaciones:  mocks.NewMockSituacionRepository(ctrl),
		asignaciones: mocks.NewMockAsignacionRepository(ctrl),
		catalogo:     mocks.NewMockCatalogoRepository(ctrl),
		cache:        mocks.NewMockSituacionCache(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
	}
	f.svc = service.NewSituacionService(
		newTestLogger(),
		f.situaciones,
		f.asignaciones,
		f.catalogo,
		f.cache,
		f.notifier,
		service.NewLocks(),
	)
	return f
}

// expectPostCommit covers the best-effort side effects of a successful
// mutation: event publication and the active-list cache refresh.
func (f *situacionFixture) expectPostCommit() {
	f.asignaciones.EXPECT().CountActivas(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	f.situaciones.EXPECT().ListActivas(gomock.Any()).Return(nil, nil).AnyTimes()
	f.cache.EXPECT().SetActivas(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestSituacionCore_CrearCompleta_OK(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	req := domain.CrearCompletaRequest{
		Titulo:           "Derrumbe km 45 ruta al Pacifico",
		TipoEmergenciaID: 1,
		Importancia:      domain.ImportanciaAlta,
		Sentido:          domain.SentidoNorte,
		KmInicio:         f64ptr(45),
		KmFin:            f64ptr(46.5),
		Obstruccion: &domain.ObstruccionInput{
			TipoObstruccion: domain.ObstruccionParcial,
			SentidoPrincipal: &domain.GrupoCarriles{
				CantidadCarriles: 2,
				Carriles: []domain.CarrilObstruccion{
					{Nombre: "Carril izquierdo", Porcentaje: 100},
					{Nombre: "Carril derecho", Porcentaje: 0},
				},
			},
		},
	}

	f.catalogo.EXPECT().TipoEmergencia(gomock.Any(), int64(1)).Return(&domain.TipoEmergencia{ID: 1, Codigo: "DERRUMBE"}, nil)

	var persistida *domain.SituacionPersistente
	f.situaciones.EXPECT().CrearCompleta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.SituacionPersistente) error {
			s.ID = 11
			s.Numero = "SP-2026-0001"
			persistida = s
			return nil
		})
	f.expectPostCommit()

	got, err := f.svc.CrearCompleta(context.Background(), actorCOP, req)
	if err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}
	if got.Estado != domain.EstadoActiva {
		t.Errorf("estado = %s, want ACTIVA", got.Estado)
	}
	if got.CreadoPor != actorCOP.UsuarioID {
		t.Errorf("creado_por = %d, want %d", got.CreadoPor, actorCOP.UsuarioID)
	}
	if persistida.Obstruccion == nil || persistida.Obstruccion.Descripcion == "" {
		t.Fatal("expected derived obstruction description before persistence")
	}
	want := "Sentido principal: Carril izquierdo totalmente bloqueado, Carril derecho libre"
	if persistida.Obstruccion.Descripcion != want {
		t.Errorf("descripcion = %q, want %q", persistida.Obstruccion.Descripcion, want)
	}
}

func TestSituacionCore_CrearCompleta_SinTitulo(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	// No repository expectations: a request that fails validation must not
	// reach persistence nor consume a numero.
	_, err := f.svc.CrearCompleta(context.Background(), actorCOP, domain.CrearCompletaRequest{
		TipoEmergenciaID: 1,
	})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSituacionCore_CrearCompleta_RolBrigada(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	_, err := f.svc.CrearCompleta(context.Background(), actorBrigada, domain.CrearCompletaRequest{
		Titulo:           "Hundimiento",
		TipoEmergenciaID: 1,
	})
	if !errors.Is(err, e.ErrSinPermisos) {
		t.Fatalf("expected ErrSinPermisos, got %v", err)
	}
}

func TestSituacionCore_CrearCompleta_TipoEmergenciaInexistente(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	f.catalogo.EXPECT().TipoEmergencia(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("tipo_emergencia 99: %w", e.ErrReferenciaNoExiste))

	_, err := f.svc.CrearCompleta(context.Background(), actorCOP, domain.CrearCompletaRequest{
		Titulo:           "Inundacion",
		TipoEmergenciaID: 99,
	})
	if !errors.Is(err, e.ErrReferenciaNoExiste) {
		t.Fatalf("expected ErrReferenciaNoExiste, got %v", err)
	}
}

func TestSituacionCore_CrearCompleta_KilometrosInvertidos(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	_, err := f.svc.CrearCompleta(context.Background(), actorCOP, domain.CrearCompletaRequest{
		Titulo:           "Trabajos en via",
		TipoEmergenciaID: 1,
		KmInicio:         f64ptr(50),
		KmFin:            f64ptr(49),
	})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSituacionCore_CambiarEstado_Pausar(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	activa := &domain.SituacionPersistente{ID: 5, Numero: "SP-2026-0005", Estado: domain.EstadoActiva}
	pausada := &domain.SituacionPersistente{ID: 5, Numero: "SP-2026-0005", Estado: domain.EstadoEnPausa}

	gomock.InOrder(
		f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(activa, nil),
		f.situaciones.EXPECT().CambiarEstado(gomock.Any(), int64(5), domain.EstadoEnPausa, gomock.Nil()).Return(nil),
		f.situaciones.EXPECT().Get(gomock.Any(), int64(5)).Return(pausada, nil),
	)
	f.expectPostCommit()

	got, err := f.svc.CambiarEstado(context.Background(), actorCOP, 5, domain.EventoPausar)
	if err != nil {
		t.Fatalf("CambiarEstado: %v", err)
	}
	if got.Estado != domain.EstadoEnPausa {
		t.Errorf("estado = %s, want EN_PAUSA", got.Estado)
	}
}

func TestSituacionCore_CambiarEstado_FinalizarRegistraCierre(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	activa := &domain.SituacionPersistente{ID: 6, Numero: "SP-2026-0006", Estado: domain.EstadoActiva}
	finalizada := &domain.SituacionPersistente{ID: 6, Numero: "SP-2026-0006", Estado: domain.EstadoFinalizada}

	var cerradoPor *int64
	gomock.InOrder(
		f.situaciones.EXPECT().Get(gomock.Any(), int64(6)).Return(activa, nil),
		f.situaciones.EXPECT().CambiarEstado(gomock.Any(), int64(6), domain.EstadoFinalizada, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ domain.EstadoSituacion, cp *int64) error {
				cerradoPor = cp
				return nil
			}),
		f.situaciones.EXPECT().Get(gomock.Any(), int64(6)).Return(finalizada, nil),
	)
	f.expectPostCommit()

	if _, err := f.svc.CambiarEstado(context.Background(), actorCOP, 6, domain.EventoFinalizar); err != nil {
		t.Fatalf("CambiarEstado: %v", err)
	}
	if cerradoPor == nil || *cerradoPor != actorCOP.UsuarioID {
		t.Fatalf("cerrado_por = %v, want %d", cerradoPor, actorCOP.UsuarioID)
	}
}

func TestSituacionCore_CambiarEstado_TransicionInvalida(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(8)).
		Return(&domain.SituacionPersistente{ID: 8, Estado: domain.EstadoFinalizada}, nil)

	_, err := f.svc.CambiarEstado(context.Background(), actorCOP, 8, domain.EventoReactivar)
	if !errors.Is(err, e.ErrTransicionInvalida) {
		t.Fatalf("expected ErrTransicionInvalida, got %v", err)
	}
}

func TestSituacionCore_ActualizarCompleta_Finalizada(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	f.situaciones.EXPECT().Get(gomock.Any(), int64(9)).
		Return(&domain.SituacionPersistente{ID: 9, Numero: "SP-2026-0009", Estado: domain.EstadoFinalizada}, nil)

	_, err := f.svc.ActualizarCompleta(context.Background(), actorCOP, 9, domain.ActualizarCompletaRequest{
		Titulo: strptr("nuevo titulo"),
	})
	if !errors.Is(err, e.ErrSituacionNoActiva) {
		t.Fatalf("expected ErrSituacionNoActiva, got %v", err)
	}
}

func TestSituacionCore_ActualizarCompleta_RederivaDescripcion(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	existente := &domain.SituacionPersistente{
		ID:      10,
		Numero:  "SP-2026-0010",
		Estado:  domain.EstadoActiva,
		Sentido: domain.SentidoNorte,
		Obstruccion: &domain.Obstruccion{
			Tipo:        domain.ObstruccionTotalSentido,
			Descripcion: "Obstruccion total del sentido NORTE",
		},
	}
	f.situaciones.EXPECT().Get(gomock.Any(), int64(10)).Return(existente, nil)

	var actualizada *domain.SituacionPersistente
	f.situaciones.EXPECT().ActualizarCompleta(gomock.Any(), gomock.Any(), true, false, false).
		DoAndReturn(func(_ context.Context, s *domain.SituacionPersistente, _, _, _ bool) error {
			actualizada = s
			return nil
		})
	f.expectPostCommit()

	sur := domain.SentidoSur
	if _, err := f.svc.ActualizarCompleta(context.Background(), actorCOP, 10, domain.ActualizarCompletaRequest{
		Sentido: &sur,
	}); err != nil {
		t.Fatalf("ActualizarCompleta: %v", err)
	}
	if actualizada.Obstruccion.Descripcion != "Obstruccion total del sentido SUR" {
		t.Errorf("descripcion = %q, want derived for SUR", actualizada.Obstruccion.Descripcion)
	}
}

func TestSituacionCore_ListActivas_UsaCache(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	cached := []domain.SituacionResumen{{ID: 1, Numero: "SP-2026-0001"}}
	f.cache.EXPECT().GetActivas(gomock.Any()).Return(cached, nil)

	got, err := f.svc.ListActivas(context.Background())
	if err != nil {
		t.Fatalf("ListActivas: %v", err)
	}
	if len(got) != 1 || got[0].Numero != "SP-2026-0001" {
		t.Fatalf("got %+v, want cached list", got)
	}
}

func TestSituacionCore_ListActivas_CacheFrio(t *testing.T) {
	t.Parallel()

	f := newSituacionFixture(t)

	f.cache.EXPECT().GetActivas(gomock.Any()).Return(nil, nil)
	f.situaciones.EXPECT().ListActivas(gomock.Any()).Return([]*domain.SituacionPersistente{
		{ID: 2, Numero: "SP-2026-0002", Estado: domain.EstadoActiva},
	}, nil)
	f.asignaciones.EXPECT().CountActivas(gomock.Any(), int64(2)).Return(3, nil)
	f.cache.EXPECT().SetActivas(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.ListActivas(context.Background())
	if err != nil {
		t.Fatalf("ListActivas: %v", err)
	}
	if len(got) != 1 || got[0].UnidadesActivas != 3 {
		t.Fatalf("got %+v, want one entry with 3 active units", got)
	}
}

// fakeSituacionRepo hands out numeros from a guarded counter, mimicking the
// database sequence, so concurrent creates can be checked for uniqueness.
type fakeSituacionRepo struct {
	mu   sync.Mutex
	seq  int
	seen map[string]bool
}

func (f *fakeSituacionRepo) CrearCompleta(_ context.Context, s *domain.SituacionPersistente) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	s.ID = int64(f.seq)
	s.Numero = fmt.Sprintf("SP-2026-%04d", f.seq)
	if f.seen[s.Numero] {
		return fmt.Errorf("numero %s duplicado", s.Numero)
	}
	f.seen[s.Numero] = true
	return nil
}

func (f *fakeSituacionRepo) Get(context.Context, int64) (*domain.SituacionPersistente, error) {
	return nil, e.ErrNotFound
}

func (f *fakeSituacionRepo) ActualizarCompleta(context.Context, *domain.SituacionPersistente, bool, bool, bool) error {
	return nil
}

func (f *fakeSituacionRepo) CambiarEstado(context.Context, int64, domain.EstadoSituacion, *int64) error {
	return nil
}

func (f *fakeSituacionRepo) ListActivas(context.Context) ([]*domain.SituacionPersistente, error) {
	return nil, nil
}

func (f *fakeSituacionRepo) List(context.Context, domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error) {
	return nil, 0, nil
}

func TestSituacionCore_CrearCompleta_NumerosUnicosConcurrentes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := &fakeSituacionRepo{seen: make(map[string]bool)}
	asignaciones := mocks.NewMockAsignacionRepository(ctrl)
	catalogo := mocks.NewMockCatalogoRepository(ctrl)
	cache := mocks.NewMockSituacionCache(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	catalogo.EXPECT().TipoEmergencia(gomock.Any(), gomock.Any()).Return(&domain.TipoEmergencia{ID: 1}, nil).AnyTimes()
	asignaciones.EXPECT().CountActivas(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	cache.EXPECT().SetActivas(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.NewSituacionService(newTestLogger(), repo, asignaciones, catalogo, cache, notifier, service.NewLocks())

	const n = 32
	numeros := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := svc.CrearCompleta(context.Background(), actorCOP, domain.CrearCompletaRequest{
				Titulo:           fmt.Sprintf("situacion %d", i),
				TipoEmergenciaID: 1,
			})
			if err != nil {
				t.Errorf("CrearCompleta %d: %v", i, err)
				return
			}
			numeros <- s.Numero
		}(i)
	}
	wg.Wait()
	close(numeros)

	unicos := make(map[string]bool, n)
	for numero := range numeros {
		if unicos[numero] {
			t.Fatalf("numero %s repetido", numero)
		}
		unicos[numero] = true
	}
	if len(unicos) != n {
		t.Fatalf("got %d numeros, want %d", len(unicos), n)
	}
}
