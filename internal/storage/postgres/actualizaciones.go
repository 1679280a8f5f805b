package postgres

import (
	"context"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActualizacionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewActualizacionRepo(pool *pgxpool.Pool, logger *slog.Logger) *ActualizacionRepo {
	return &ActualizacionRepo{pool: pool, logger: logger}
}

func (r *ActualizacionRepo) Agregar(ctx context.Context, a *domain.Actualizacion) error {
	const op = "postgres.Actualizacion.Agregar"

	const query = `
		INSERT INTO actualizacion_situacion (
			situacion_persistente_id, unidad_id, usuario_id, tipo_actualizacion, contenido
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_hora
	`
	err := r.pool.QueryRow(ctx, query,
		a.SituacionID, a.UnidadID, a.UsuarioID, a.Tipo, nullString(a.Contenido),
	).Scan(&a.ID, &a.FechaHora)
	if err != nil {
		r.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err),
			slog.Int64("situacion_id", a.SituacionID))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ActualizacionRepo) List(ctx context.Context, situacionID int64, limit, offset int) ([]*domain.Actualizacion, error) {
	const op = "postgres.Actualizacion.List"

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
		SELECT id, situacion_persistente_id, unidad_id, usuario_id,
			   tipo_actualizacion, contenido, fecha_hora
		FROM actualizacion_situacion
		WHERE situacion_persistente_id = $1
		ORDER BY fecha_hora DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, situacionID, limit, offset)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var list []*domain.Actualizacion
	for rows.Next() {
		var a domain.Actualizacion
		var contenido *string
		if err := rows.Scan(
			&a.ID, &a.SituacionID, &a.UnidadID, &a.UsuarioID,
			&a.Tipo, &contenido, &a.FechaHora,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if contenido != nil {
			a.Contenido = *contenido
		}
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return list, nil
}
