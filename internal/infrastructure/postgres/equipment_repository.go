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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentColumns = `e.id, e.name, e.category_id, e.patrimony_number, e.description, e.notes,
	e.employee_id, e.unit_id, e.stock_quantity, e.status, e.created_at, e.updated_at`

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.CategoryID, &e.PatrimonyNumber, &e.Description, &e.Notes,
		&e.EmployeeID, &e.UnitID, &e.StockQuantity, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo equipo.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, category_id, patrimony_number, description, notes,
			employee_id, unit_id, stock_quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.CategoryID, e.PatrimonyNumber, e.Description, e.Notes,
		e.EmployeeID, e.UnitID, e.StockQuantity, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert equipment", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID. Devuelve nil, nil si no existe.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	return r.get(ctx, `SELECT `+equipmentColumns+` FROM equipment e WHERE e.id = $1`, id)
}

// GetForUpdate obtiene el equipo bloqueando la fila hasta el fin de la transacción.
// Solo tiene efecto cuando el repositorio está atado a una tx.
func (r *EquipmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Equipment, error) {
	return r.get(ctx, `SELECT `+equipmentColumns+` FROM equipment e WHERE e.id = $1 FOR UPDATE`, id)
}

func (r *EquipmentRepo) get(ctx context.Context, query, id string) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

// Update actualiza los datos editables del equipo, incluido el stock corregido a mano.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $2, category_id = $3, patrimony_number = $4, description = $5,
			notes = $6, employee_id = $7, unit_id = $8, stock_quantity = $9, status = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.CategoryID, e.PatrimonyNumber, e.Description,
		e.Notes, e.EmployeeID, e.UnitID, e.StockQuantity, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update equipment", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija stock y unidad tras un movimiento.
func (r *EquipmentRepo) UpdateStock(ctx context.Context, id string, quantity int, unitID *string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE equipment SET stock_quantity = $2, unit_id = $3, updated_at = NOW() WHERE id = $1`,
		id, quantity, unitID)
	if err != nil {
		return mapWriteError("update equipment stock", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista equipos ordenados por nombre. Search busca en nombre, patrimonio y nombre de categoría.
func (r *EquipmentRepo) List(ctx context.Context, f repository.EquipmentFilter) ([]*entity.Equipment, int, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(e.name ILIKE ? OR e.patrimony_number ILIKE ? OR c.name ILIKE ?)", likePattern(f.Search))
	}
	if f.CategoryID != "" {
		w.add("e.category_id = ?", f.CategoryID)
	}
	if f.Status != "" {
		w.add("e.status = ?", f.Status)
	}
	if f.EmployeeID != "" {
		w.add("e.employee_id = ?", f.EmployeeID)
	}
	if f.UnitID != "" {
		w.add("e.unit_id = ?", f.UnitID)
	}
	from := ` FROM equipment e JOIN categories c ON c.id = e.category_id`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count equipment: %w", err)
	}

	pageSQL, args := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+equipmentColumns+from+w.sql()+` ORDER BY e.name, e.id`+pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// Delete elimina un equipo; la FK borra sus movimientos en cascada.
func (r *EquipmentRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
