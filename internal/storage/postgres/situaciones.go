package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SituacionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSituacionRepo(pool *pgxpool.Pool, logger *slog.Logger) *SituacionRepo {
	return &SituacionRepo{pool: pool, logger: logger}
}

const situacionColumns = `
	id, uuid, numero, titulo, descripcion, tipo_emergencia_id, importancia,
	ruta_id, km_inicio, km_fin, sentido, estado,
	fecha_inicio, fecha_fin_real, creado_por, cerrado_por, created_at, updated_at
`

func (r *SituacionRepo) CrearCompleta(ctx context.Context, s *domain.SituacionPersistente) error {
	const op = "postgres.Situacion.CrearCompleta"

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// The sequence value is claimed outside any rollback path a caller can
	// trigger afterwards, so a numero is never reused even if this
	// transaction aborts downstream.
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('situacion_numero_seq')`).Scan(&seq); err != nil {
		r.logger.Error("nextval failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	s.Numero = fmt.Sprintf("SP-%d-%04d", time.Now().UTC().Year(), seq)
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}
	if s.Estado == "" {
		s.Estado = domain.EstadoActiva
	}
	if s.Importancia == "" {
		s.Importancia = domain.ImportanciaNormal
	}

	const insert = `
		INSERT INTO situacion_persistente (
			uuid, numero, titulo, descripcion, tipo_emergencia_id, importancia,
			ruta_id, km_inicio, km_fin, sentido, estado, creado_por
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, fecha_inicio, created_at, updated_at
	`
	err = tx.QueryRow(ctx, insert,
		s.UUID, s.Numero, s.Titulo, nullString(s.Descripcion), s.TipoEmergenciaID, s.Importancia,
		s.RutaID, s.KmInicio, s.KmFin, nullString(string(s.Sentido)), s.Estado, s.CreadoPor,
	).Scan(&s.ID, &s.FechaInicio, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		r.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if s.Obstruccion != nil {
		if err := upsertObstruccion(ctx, tx, s.ID, s.Obstruccion); err != nil {
			r.logger.Error("obstruccion upsert failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}
	if err := replaceRespondientes(ctx, tx, s.ID, "AUTORIDAD", s.Autoridades); err != nil {
		r.logger.Error("autoridades insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if err := replaceRespondientes(ctx, tx, s.ID, "SOCORRO", s.Socorro); err != nil {
		r.logger.Error("socorro insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *SituacionRepo) Get(ctx context.Context, id int64) (*domain.SituacionPersistente, error) {
	const op = "postgres.Situacion.Get"

	query := `SELECT ` + situacionColumns + ` FROM situacion_persistente WHERE id = $1`

	s, err := scanSituacion(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := r.cargarDetalle(ctx, s); err != nil {
		r.logger.Error("load detail failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *SituacionRepo) ActualizarCompleta(ctx context.Context, s *domain.SituacionPersistente, reemplazarObstruccion, reemplazarAutoridades, reemplazarSocorro bool) error {
	const op = "postgres.Situacion.ActualizarCompleta"

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const update = `
		UPDATE situacion_persistente
		SET titulo = $2, descripcion = $3, importancia = $4,
			km_inicio = $5, km_fin = $6, sentido = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := tx.Exec(ctx, update,
		s.ID, s.Titulo, nullString(s.Descripcion), s.Importancia,
		s.KmInicio, s.KmFin, nullString(string(s.Sentido)),
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", s.ID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	if reemplazarObstruccion {
		if s.Obstruccion != nil {
			if err := upsertObstruccion(ctx, tx, s.ID, s.Obstruccion); err != nil {
				return e.WrapError(ctx, op, err)
			}
		} else {
			if _, err := tx.Exec(ctx, `DELETE FROM obstruccion_situacion WHERE situacion_persistente_id = $1`, s.ID); err != nil {
				return e.WrapError(ctx, op, err)
			}
		}
	}
	if reemplazarAutoridades {
		if err := replaceRespondientes(ctx, tx, s.ID, "AUTORIDAD", s.Autoridades); err != nil {
			return e.WrapError(ctx, op, err)
		}
	}
	if reemplazarSocorro {
		if err := replaceRespondientes(ctx, tx, s.ID, "SOCORRO", s.Socorro); err != nil {
			return e.WrapError(ctx, op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *SituacionRepo) CambiarEstado(ctx context.Context, id int64, estado domain.EstadoSituacion, cerradoPor *int64) error {
	const op = "postgres.Situacion.CambiarEstado"

	var err error
	if estado == domain.EstadoFinalizada {
		const query = `
			UPDATE situacion_persistente
			SET estado = $2, fecha_fin_real = NOW(), cerrado_por = $3, updated_at = NOW()
			WHERE id = $1
		`
		cmd, execErr := r.pool.Exec(ctx, query, id, estado, cerradoPor)
		if execErr == nil && cmd.RowsAffected() == 0 {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		err = execErr
	} else {
		const query = `
			UPDATE situacion_persistente
			SET estado = $2, updated_at = NOW()
			WHERE id = $1
		`
		cmd, execErr := r.pool.Exec(ctx, query, id, estado)
		if execErr == nil && cmd.RowsAffected() == 0 {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		err = execErr
	}
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *SituacionRepo) ListActivas(ctx context.Context) ([]*domain.SituacionPersistente, error) {
	const op = "postgres.Situacion.ListActivas"

	query := `
		SELECT ` + situacionColumns + `
		FROM situacion_persistente
		WHERE estado = 'ACTIVA'
		ORDER BY
			CASE importancia
				WHEN 'CRITICA' THEN 1
				WHEN 'ALTA' THEN 2
				WHEN 'NORMAL' THEN 3
				WHEN 'BAJA' THEN 4
			END,
			fecha_inicio DESC
	`
	return r.queryList(ctx, op, query)
}

func (r *SituacionRepo) List(ctx context.Context, filtro domain.FiltroSituaciones) ([]*domain.SituacionPersistente, int64, error) {
	const op = "postgres.Situacion.List"

	where := ""
	args := []any{}
	n := 1
	appendCond := func(cond string, val any) {
		if where == "" {
			where = "WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, n)
		args = append(args, val)
		n++
	}
	if filtro.Estado != "" {
		appendCond("estado = $%d", filtro.Estado)
	}
	if filtro.Importancia != "" {
		appendCond("importancia = $%d", filtro.Importancia)
	}
	if filtro.RutaID != nil {
		appendCond("ruta_id = $%d", *filtro.RutaID)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM situacion_persistente ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	limit := filtro.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	offset := filtro.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + situacionColumns + `
		FROM situacion_persistente
		` + where + `
		ORDER BY
			CASE estado
				WHEN 'ACTIVA' THEN 1
				WHEN 'EN_PAUSA' THEN 2
				WHEN 'FINALIZADA' THEN 3
			END,
			CASE importancia
				WHEN 'CRITICA' THEN 1
				WHEN 'ALTA' THEN 2
				WHEN 'NORMAL' THEN 3
				WHEN 'BAJA' THEN 4
			END,
			fecha_inicio DESC
		LIMIT $` + fmt.Sprint(n) + ` OFFSET $` + fmt.Sprint(n+1)
	args = append(args, limit, offset)

	list, err := r.queryList(ctx, op, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *SituacionRepo) queryList(ctx context.Context, op, query string, args ...any) ([]*domain.SituacionPersistente, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var situaciones []*domain.SituacionPersistente
	for rows.Next() {
		s, err := scanSituacion(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		situaciones = append(situaciones, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	for _, s := range situaciones {
		if err := r.cargarDetalle(ctx, s); err != nil {
			r.logger.Error("load detail failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", s.ID))
			return nil, e.WrapError(ctx, op, err)
		}
	}
	return situaciones, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSituacion(row rowScanner) (*domain.SituacionPersistente, error) {
	var s domain.SituacionPersistente
	var descripcion, sentido *string
	err := row.Scan(
		&s.ID, &s.UUID, &s.Numero, &s.Titulo, &descripcion, &s.TipoEmergenciaID, &s.Importancia,
		&s.RutaID, &s.KmInicio, &s.KmFin, &sentido, &s.Estado,
		&s.FechaInicio, &s.FechaFinReal, &s.CreadoPor, &s.CerradoPor, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descripcion != nil {
		s.Descripcion = *descripcion
	}
	if sentido != nil {
		s.Sentido = domain.Sentido(*sentido)
	}
	return &s, nil
}

func (r *SituacionRepo) cargarDetalle(ctx context.Context, s *domain.SituacionPersistente) error {
	const obsQuery = `
		SELECT hay_vehiculo_fuera_via, tipo_obstruccion,
			   sentido_principal, sentido_contrario, descripcion_manual
		FROM obstruccion_situacion
		WHERE situacion_persistente_id = $1
	`
	var o domain.Obstruccion
	var principal, contrario []byte
	var manual *string
	err := r.pool.QueryRow(ctx, obsQuery, s.ID).Scan(
		&o.HayVehiculoFueraVia, &o.Tipo, &principal, &contrario, &manual,
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// no obstruction block
	case err != nil:
		return err
	default:
		if len(principal) > 0 {
			o.SentidoPrincipal = &domain.GrupoCarriles{}
			if err := json.Unmarshal(principal, o.SentidoPrincipal); err != nil {
				return err
			}
		}
		if len(contrario) > 0 {
			o.SentidoContrario = &domain.GrupoCarriles{}
			if err := json.Unmarshal(contrario, o.SentidoContrario); err != nil {
				return err
			}
		}
		if manual != nil {
			o.DescripcionManual = *manual
		}
		s.Obstruccion = &o
	}

	const respQuery = `
		SELECT id, categoria, tipo_agencia, hora_llegada, numero_unidad,
			   nombre_comandante, cantidad_elementos, cantidad_unidades,
			   subestacion, observaciones
		FROM respondiente_situacion
		WHERE situacion_persistente_id = $1
		ORDER BY categoria, orden, id
	`
	rows, err := r.pool.Query(ctx, respQuery, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.Autoridades = nil
	s.Socorro = nil
	for rows.Next() {
		var entry domain.ResponderEntry
		var categoria string
		if err := rows.Scan(
			&entry.ID, &categoria, &entry.TipoAgencia, &entry.HoraLlegada, &entry.NumeroUnidad,
			&entry.NombreComandante, &entry.CantidadElementos, &entry.CantidadUnidades,
			&entry.Subestacion, &entry.Observaciones,
		); err != nil {
			return err
		}
		if categoria == "SOCORRO" {
			s.Socorro = append(s.Socorro, entry)
		} else {
			s.Autoridades = append(s.Autoridades, entry)
		}
	}
	return rows.Err()
}

func upsertObstruccion(ctx context.Context, tx pgx.Tx, situacionID int64, o *domain.Obstruccion) error {
	var principal, contrario []byte
	var err error
	if o.SentidoPrincipal != nil {
		if principal, err = json.Marshal(o.SentidoPrincipal); err != nil {
			return err
		}
	}
	if o.SentidoContrario != nil {
		if contrario, err = json.Marshal(o.SentidoContrario); err != nil {
			return err
		}
	}

	const query = `
		INSERT INTO obstruccion_situacion (
			situacion_persistente_id, hay_vehiculo_fuera_via, tipo_obstruccion,
			sentido_principal, sentido_contrario, descripcion_manual, descripcion_generada
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (situacion_persistente_id)
		DO UPDATE SET
			hay_vehiculo_fuera_via = EXCLUDED.hay_vehiculo_fuera_via,
			tipo_obstruccion = EXCLUDED.tipo_obstruccion,
			sentido_principal = EXCLUDED.sentido_principal,
			sentido_contrario = EXCLUDED.sentido_contrario,
			descripcion_manual = EXCLUDED.descripcion_manual,
			descripcion_generada = EXCLUDED.descripcion_generada,
			updated_at = NOW()
	`
	_, err = tx.Exec(ctx, query,
		situacionID, o.HayVehiculoFueraVia, o.Tipo,
		principal, contrario, nullString(o.DescripcionManual), nullString(o.Descripcion),
	)
	return err
}

func replaceRespondientes(ctx context.Context, tx pgx.Tx, situacionID int64, categoria string, entries []domain.ResponderEntry) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM respondiente_situacion WHERE situacion_persistente_id = $1 AND categoria = $2`,
		situacionID, categoria,
	); err != nil {
		return err
	}

	const insert = `
		INSERT INTO respondiente_situacion (
			situacion_persistente_id, categoria, orden, tipo_agencia, hora_llegada,
			numero_unidad, nombre_comandante, cantidad_elementos, cantidad_unidades,
			subestacion, observaciones
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, entry := range entries {
		if _, err := tx.Exec(ctx, insert,
			situacionID, categoria, i, entry.TipoAgencia, entry.HoraLlegada,
			entry.NumeroUnidad, entry.NombreComandante, entry.CantidadElementos, entry.CantidadUnidades,
			entry.Subestacion, entry.Observaciones,
		); err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
