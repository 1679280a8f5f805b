//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
	"testing"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "provial_test",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres container: %v\n", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "container host: %v\n", err)
		os.Exit(1)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "container port: %v\n", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=provial_test sslmode=disable", host, port.Port())

	if err := migrateDSN(dsn); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgxpool: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func migrateDSN(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE actualizacion_situacion, asignacion_situacion, respondiente_situacion,
		 obstruccion_situacion, situacion_persistente RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func nuevaSituacion(titulo string) *domain.SituacionPersistente {
	return &domain.SituacionPersistente{
		Titulo:           titulo,
		TipoEmergenciaID: 1,
		Importancia:      domain.ImportanciaNormal,
		Sentido:          domain.SentidoNorte,
		Estado:           domain.EstadoActiva,
		CreadoPor:        7,
	}
}

func TestSituacionRepo_CrearCompleta(t *testing.T) {
	truncate(t)
	repo := NewSituacionRepo(testPool, testLogger())
	ctx := context.Background()

	s := nuevaSituacion("Derrumbe km 45")
	s.Obstruccion = &domain.Obstruccion{
		Tipo: domain.ObstruccionParcial,
		SentidoPrincipal: &domain.GrupoCarriles{
			CantidadCarriles: 2,
			Carriles: []domain.CarrilObstruccion{
				{Nombre: "Carril izquierdo", Porcentaje: 100},
				{Nombre: "Carril derecho", Porcentaje: 0},
			},
		},
		Descripcion: "Sentido principal: Carril izquierdo totalmente bloqueado, Carril derecho libre",
	}
	s.Autoridades = []domain.ResponderEntry{{TipoAgencia: "PNC"}}

	if err := repo.CrearCompleta(ctx, s); err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}
	if s.ID == 0 {
		t.Error("expected id assigned")
	}
	if s.UUID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected uuid assigned")
	}
	if ok, _ := regexp.MatchString(`^SP-\d{4}-\d{4}$`, s.Numero); !ok {
		t.Errorf("numero %q does not match SP-YYYY-NNNN", s.Numero)
	}

	got, err := repo.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Titulo != "Derrumbe km 45" || got.Estado != domain.EstadoActiva {
		t.Errorf("got %+v", got)
	}
	if got.Obstruccion == nil || got.Obstruccion.Tipo != domain.ObstruccionParcial {
		t.Fatalf("obstruccion = %+v", got.Obstruccion)
	}
	if len(got.Obstruccion.SentidoPrincipal.Carriles) != 2 {
		t.Errorf("carriles = %+v", got.Obstruccion.SentidoPrincipal.Carriles)
	}
	if len(got.Autoridades) != 1 || got.Autoridades[0].TipoAgencia != "PNC" {
		t.Errorf("autoridades = %+v", got.Autoridades)
	}
}

func TestSituacionRepo_NumerosConsecutivosUnicos(t *testing.T) {
	truncate(t)
	repo := NewSituacionRepo(testPool, testLogger())
	ctx := context.Background()

	vistos := map[string]bool{}
	for i := 0; i < 5; i++ {
		s := nuevaSituacion(fmt.Sprintf("situacion %d", i))
		if err := repo.CrearCompleta(ctx, s); err != nil {
			t.Fatalf("CrearCompleta %d: %v", i, err)
		}
		if vistos[s.Numero] {
			t.Fatalf("numero %s repetido", s.Numero)
		}
		vistos[s.Numero] = true
	}
}

func TestSituacionRepo_CambiarEstadoFinalizada(t *testing.T) {
	truncate(t)
	repo := NewSituacionRepo(testPool, testLogger())
	ctx := context.Background()

	s := nuevaSituacion("Hundimiento")
	if err := repo.CrearCompleta(ctx, s); err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}

	cerradoPor := int64(9)
	if err := repo.CambiarEstado(ctx, s.ID, domain.EstadoFinalizada, &cerradoPor); err != nil {
		t.Fatalf("CambiarEstado: %v", err)
	}

	got, err := repo.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Estado != domain.EstadoFinalizada {
		t.Errorf("estado = %s, want FINALIZADA", got.Estado)
	}
	if got.FechaFinReal == nil {
		t.Error("expected fecha_fin_real stamped")
	}
	if got.CerradoPor == nil || *got.CerradoPor != 9 {
		t.Errorf("cerrado_por = %v, want 9", got.CerradoPor)
	}
}

func TestSituacionRepo_GetInexistente(t *testing.T) {
	truncate(t)
	repo := NewSituacionRepo(testPool, testLogger())

	if _, err := repo.Get(context.Background(), 99999); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSituacionRepo_ListActivasOrdenadas(t *testing.T) {
	truncate(t)
	repo := NewSituacionRepo(testPool, testLogger())
	ctx := context.Background()

	baja := nuevaSituacion("baja")
	baja.Importancia = domain.ImportanciaBaja
	critica := nuevaSituacion("critica")
	critica.Importancia = domain.ImportanciaCritica
	pausada := nuevaSituacion("pausada")

	for _, s := range []*domain.SituacionPersistente{baja, critica, pausada} {
		if err := repo.CrearCompleta(ctx, s); err != nil {
			t.Fatalf("CrearCompleta: %v", err)
		}
	}
	if err := repo.CambiarEstado(ctx, pausada.ID, domain.EstadoEnPausa, nil); err != nil {
		t.Fatalf("CambiarEstado: %v", err)
	}

	activas, err := repo.ListActivas(ctx)
	if err != nil {
		t.Fatalf("ListActivas: %v", err)
	}
	if len(activas) != 2 {
		t.Fatalf("len = %d, want 2 (paused excluded)", len(activas))
	}
	if activas[0].Titulo != "critica" {
		t.Errorf("first = %s, want critica first", activas[0].Titulo)
	}
}

func TestAsignacionRepo_Ciclo(t *testing.T) {
	truncate(t)
	situaciones := NewSituacionRepo(testPool, testLogger())
	repo := NewAsignacionRepo(testPool, testLogger())
	ctx := context.Background()

	s := nuevaSituacion("Trabajos en via")
	if err := situaciones.CrearCompleta(ctx, s); err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}

	primera := &domain.Asignacion{SituacionID: s.ID, UnidadID: 42, AsignadoPor: 7}
	if err := repo.Crear(ctx, primera); err != nil {
		t.Fatalf("Crear: %v", err)
	}
	if primera.ID == 0 || primera.FechaAsignacion.IsZero() {
		t.Errorf("asignacion = %+v", primera)
	}

	// A second active assignment of the same unit trips the partial index.
	dup := &domain.Asignacion{SituacionID: s.ID, UnidadID: 42, AsignadoPor: 7}
	if err := repo.Crear(ctx, dup); !errors.Is(err, e.ErrAsignacionDuplicada) {
		t.Fatalf("expected ErrAsignacionDuplicada, got %v", err)
	}

	liberada, err := repo.Liberar(ctx, s.ID, 42, "relevo", 7)
	if err != nil {
		t.Fatalf("Liberar: %v", err)
	}
	if liberada.FechaDesasignacion == nil {
		t.Error("expected fecha_hora_desasignacion stamped")
	}

	// Once released the unit can be assigned again; the ledger keeps both
	// entries.
	segunda := &domain.Asignacion{SituacionID: s.ID, UnidadID: 42, AsignadoPor: 7}
	if err := repo.Crear(ctx, segunda); err != nil {
		t.Fatalf("re-Crear: %v", err)
	}

	historial, err := repo.Historial(ctx, s.ID)
	if err != nil {
		t.Fatalf("Historial: %v", err)
	}
	if len(historial) != 2 {
		t.Errorf("historial len = %d, want 2", len(historial))
	}

	activas, err := repo.Activas(ctx, s.ID)
	if err != nil {
		t.Fatalf("Activas: %v", err)
	}
	if len(activas) != 1 {
		t.Errorf("activas len = %d, want 1", len(activas))
	}

	n, err := repo.CountActivas(ctx, s.ID)
	if err != nil || n != 1 {
		t.Errorf("CountActivas = %d, %v; want 1", n, err)
	}
}

func TestAsignacionRepo_LiberarSinActiva(t *testing.T) {
	truncate(t)
	situaciones := NewSituacionRepo(testPool, testLogger())
	repo := NewAsignacionRepo(testPool, testLogger())
	ctx := context.Background()

	s := nuevaSituacion("Inundacion")
	if err := situaciones.CrearCompleta(ctx, s); err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}

	if _, err := repo.Liberar(ctx, s.ID, 42, "", 7); !errors.Is(err, e.ErrSinAsignacionActiva) {
		t.Fatalf("expected ErrSinAsignacionActiva, got %v", err)
	}
}

func TestActualizacionRepo_AgregarYListar(t *testing.T) {
	truncate(t)
	situaciones := NewSituacionRepo(testPool, testLogger())
	asignaciones := NewAsignacionRepo(testPool, testLogger())
	repo := NewActualizacionRepo(testPool, testLogger())
	ctx := context.Background()

	s := nuevaSituacion("Puente danado")
	if err := situaciones.CrearCompleta(ctx, s); err != nil {
		t.Fatalf("CrearCompleta: %v", err)
	}
	if err := asignaciones.Crear(ctx, &domain.Asignacion{SituacionID: s.ID, UnidadID: 42, AsignadoPor: 7}); err != nil {
		t.Fatalf("Crear asignacion: %v", err)
	}

	for i := 0; i < 3; i++ {
		a := &domain.Actualizacion{
			SituacionID: s.ID,
			UnidadID:    42,
			UsuarioID:   7,
			Tipo:        "avance",
			Contenido:   fmt.Sprintf("reporte %d", i),
		}
		if err := repo.Agregar(ctx, a); err != nil {
			t.Fatalf("Agregar %d: %v", i, err)
		}
	}

	lista, err := repo.List(ctx, s.ID, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lista) != 2 {
		t.Fatalf("len = %d, want 2 (paginated)", len(lista))
	}
	// Newest first.
	if lista[0].Contenido != "reporte 2" {
		t.Errorf("first = %s, want reporte 2", lista[0].Contenido)
	}
}

func TestCatalogoRepo_TiposYRutas(t *testing.T) {
	repo := NewCatalogoRepo(testPool, testLogger())
	ctx := context.Background()

	tipos, err := repo.TiposEmergencia(ctx)
	if err != nil {
		t.Fatalf("TiposEmergencia: %v", err)
	}
	if len(tipos) == 0 {
		t.Fatal("expected seeded emergency types")
	}

	if _, err := repo.TipoEmergencia(ctx, 99999); !errors.Is(err, e.ErrReferenciaNoExiste) {
		t.Fatalf("expected ErrReferenciaNoExiste, got %v", err)
	}
	if _, err := repo.Ruta(ctx, 99999); !errors.Is(err, e.ErrReferenciaNoExiste) {
		t.Fatalf("expected ErrReferenciaNoExiste, got %v", err)
	}
}
