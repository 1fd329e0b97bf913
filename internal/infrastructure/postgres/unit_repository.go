package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, name, address, cnes_code, created_at, updated_at`

func scanUnit(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	if err := row.Scan(&u.ID, &u.Name, &u.Address, &u.CNESCode, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(ctx context.Context, u *entity.Unit) error {
	query := `INSERT INTO units (` + unitColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Name, u.Address, u.CNESCode, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return mapWriteError("insert unit", err)
	}
	return nil
}

// Upsert inserta o actualiza por nombre; deja en u.ID el ID persistido.
func (r *UnitRepo) Upsert(ctx context.Context, u *entity.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE
		SET address = EXCLUDED.address, cnes_code = EXCLUDED.cnes_code, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, u.ID, u.Name, u.Address, u.CNESCode, u.CreatedAt, u.UpdatedAt).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return mapWriteError("upsert unit", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. Devuelve nil, nil si no existe.
func (r *UnitRepo) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	u, err := scanUnit(r.q.QueryRow(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(ctx context.Context, u *entity.Unit) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE units SET name = $2, address = $3, cnes_code = $4, updated_at = $5 WHERE id = $1`,
		u.ID, u.Name, u.Address, u.CNESCode, u.UpdatedAt)
	if err != nil {
		return mapWriteError("update unit", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista unidades por nombre; search busca en nombre, dirección y código CNES.
func (r *UnitRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Unit, int, error) {
	var w whereBuilder
	if search != "" {
		w.add("(name ILIKE ? OR address ILIKE ? OR cnes_code::text ILIKE ?)", likePattern(search))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM units`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count units: %w", err)
	}

	pageSQL, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+unitColumns+` FROM units`+w.sql()+` ORDER BY name`+pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

// Delete elimina una unidad; las referencias quedan en NULL.
func (r *UnitRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
