package postgres

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogoRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogoRepo(pool *pgxpool.Pool, logger *slog.Logger) *CatalogoRepo {
	return &CatalogoRepo{pool: pool, logger: logger}
}

func (r *CatalogoRepo) TipoEmergencia(ctx context.Context, id int64) (*domain.TipoEmergencia, error) {
	const op = "postgres.Catalogo.TipoEmergencia"

	const query = `
		SELECT id, codigo, nombre, COALESCE(icono, ''), COALESCE(color, ''), activo
		FROM tipo_emergencia
		WHERE id = $1
	`
	var t domain.TipoEmergencia
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Codigo, &t.Nombre, &t.Icono, &t.Color, &t.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrReferenciaNoExiste)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &t, nil
}

func (r *CatalogoRepo) TiposEmergencia(ctx context.Context) ([]*domain.TipoEmergencia, error) {
	const op = "postgres.Catalogo.TiposEmergencia"

	const query = `
		SELECT id, codigo, nombre, COALESCE(icono, ''), COALESCE(color, ''), activo
		FROM tipo_emergencia
		WHERE activo
		ORDER BY nombre
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var tipos []*domain.TipoEmergencia
	for rows.Next() {
		var t domain.TipoEmergencia
		if err := rows.Scan(&t.ID, &t.Codigo, &t.Nombre, &t.Icono, &t.Color, &t.Activo); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		tipos = append(tipos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return tipos, nil
}

func (r *CatalogoRepo) Ruta(ctx context.Context, id int64) (*domain.Ruta, error) {
	const op = "postgres.Catalogo.Ruta"

	const query = `SELECT id, codigo, nombre FROM ruta WHERE id = $1`

	var ruta domain.Ruta
	err := r.pool.QueryRow(ctx, query, id).Scan(&ruta.ID, &ruta.Codigo, &ruta.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrReferenciaNoExiste)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &ruta, nil
}
