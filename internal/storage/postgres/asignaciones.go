package postgres

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AsignacionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAsignacionRepo(pool *pgxpool.Pool, logger *slog.Logger) *AsignacionRepo {
	return &AsignacionRepo{pool: pool, logger: logger}
}

const asignacionColumns = `
	id, situacion_persistente_id, unidad_id,
	fecha_hora_asignacion, fecha_hora_desasignacion,
	observaciones_asignacion, observaciones_desasignacion,
	asignado_por, desasignado_por
`

func (r *AsignacionRepo) Crear(ctx context.Context, a *domain.Asignacion) error {
	const op = "postgres.Asignacion.Crear"

	const query = `
		INSERT INTO asignacion_situacion (
			situacion_persistente_id, unidad_id, observaciones_asignacion, asignado_por
		) VALUES ($1, $2, $3, $4)
		RETURNING id, fecha_hora_asignacion
	`
	err := r.pool.QueryRow(ctx, query,
		a.SituacionID, a.UnidadID, nullString(a.ObservacionesAsignacion), a.AsignadoPor,
	).Scan(&a.ID, &a.FechaAsignacion)
	if err != nil {
		// The partial unique index on (situacion, unidad) with a null
		// release timestamp rejects a second concurrent active entry.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%s: %w", op, e.ErrAsignacionDuplicada)
		}
		r.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err),
			slog.Int64("situacion_id", a.SituacionID), slog.Int64("unidad_id", a.UnidadID))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *AsignacionRepo) Liberar(ctx context.Context, situacionID, unidadID int64, observaciones string, desasignadoPor int64) (*domain.Asignacion, error) {
	const op = "postgres.Asignacion.Liberar"

	const query = `
		UPDATE asignacion_situacion
		SET fecha_hora_desasignacion = NOW(),
			observaciones_desasignacion = $3,
			desasignado_por = $4
		WHERE situacion_persistente_id = $1
		  AND unidad_id = $2
		  AND fecha_hora_desasignacion IS NULL
		RETURNING ` + asignacionColumns

	a, err := scanAsignacion(r.pool.QueryRow(ctx, query,
		situacionID, unidadID, nullString(observaciones), desasignadoPor,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrSinAsignacionActiva)
		}
		r.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err),
			slog.Int64("situacion_id", situacionID), slog.Int64("unidad_id", unidadID))
		return nil, e.WrapError(ctx, op, err)
	}
	return a, nil
}

func (r *AsignacionRepo) ActivaPara(ctx context.Context, situacionID, unidadID int64) (*domain.Asignacion, error) {
	const op = "postgres.Asignacion.ActivaPara"

	query := `
		SELECT ` + asignacionColumns + `
		FROM asignacion_situacion
		WHERE situacion_persistente_id = $1
		  AND unidad_id = $2
		  AND fecha_hora_desasignacion IS NULL
	`
	a, err := scanAsignacion(r.pool.QueryRow(ctx, query, situacionID, unidadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrSinAsignacionActiva)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return a, nil
}

func (r *AsignacionRepo) Activas(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error) {
	const op = "postgres.Asignacion.Activas"

	query := `
		SELECT ` + asignacionColumns + `
		FROM asignacion_situacion
		WHERE situacion_persistente_id = $1
		  AND fecha_hora_desasignacion IS NULL
		ORDER BY fecha_hora_asignacion
	`
	return r.queryList(ctx, op, query, situacionID)
}

func (r *AsignacionRepo) Historial(ctx context.Context, situacionID int64) ([]*domain.Asignacion, error) {
	const op = "postgres.Asignacion.Historial"

	query := `
		SELECT ` + asignacionColumns + `
		FROM asignacion_situacion
		WHERE situacion_persistente_id = $1
		ORDER BY fecha_hora_asignacion
	`
	return r.queryList(ctx, op, query, situacionID)
}

func (r *AsignacionRepo) CountActivas(ctx context.Context, situacionID int64) (int, error) {
	const op = "postgres.Asignacion.CountActivas"

	const query = `
		SELECT COUNT(*)
		FROM asignacion_situacion
		WHERE situacion_persistente_id = $1
		  AND fecha_hora_desasignacion IS NULL
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, situacionID).Scan(&count); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}

func (r *AsignacionRepo) queryList(ctx context.Context, op, query string, args ...any) ([]*domain.Asignacion, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var list []*domain.Asignacion
	for rows.Next() {
		a, err := scanAsignacion(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return list, nil
}

func scanAsignacion(row rowScanner) (*domain.Asignacion, error) {
	var a domain.Asignacion
	var obsAsig, obsDesasig *string
	err := row.Scan(
		&a.ID, &a.SituacionID, &a.UnidadID,
		&a.FechaAsignacion, &a.FechaDesasignacion,
		&obsAsig, &obsDesasig,
		&a.AsignadoPor, &a.DesasignadoPor,
	)
	if err != nil {
		return nil, err
	}
	if obsAsig != nil {
		a.ObservacionesAsignacion = *obsAsig
	}
	if obsDesasig != nil {
		a.ObservacionesDesasignacion = *obsDesasig
	}
	return &a, nil
}
