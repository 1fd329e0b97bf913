package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `m.id, m.equipment_id, m.date, m.origin_employee_id, m.destination_employee_id,
	m.origin_unit_id, m.destination_unit_id, m.quantity, m.notes, m.type, m.created_by`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var createdBy *string
	err := row.Scan(&m.ID, &m.EquipmentID, &m.Date, &m.OriginEmployeeID, &m.DestinationEmployeeID,
		&m.OriginUnitID, &m.DestinationUnitID, &m.Quantity, &m.Notes, &m.Type, &createdBy)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, equipment_id, date, origin_employee_id, destination_employee_id,
			origin_unit_id, destination_unit_id, quantity, notes, type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.EquipmentID, m.Date, m.OriginEmployeeID, m.DestinationEmployeeID,
		m.OriginUnitID, m.DestinationUnitID, m.Quantity, m.Notes, m.Type, createdBy,
	)
	if err != nil {
		return mapWriteError("insert movement", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements m WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos del más reciente al más antiguo.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	var w whereBuilder
	if f.EquipmentID != "" {
		w.add("m.equipment_id = ?", f.EquipmentID)
	}
	if f.Type != "" {
		w.add("m.type = ?", f.Type)
	}
	if f.From != nil {
		w.add("m.date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("m.date <= ?", *f.To)
	}
	if f.OriginUnitID != "" {
		w.add("m.origin_unit_id = ?", f.OriginUnitID)
	}
	if f.DestinationUnitID != "" {
		w.add("m.destination_unit_id = ?", f.DestinationUnitID)
	}
	if f.OriginEmployeeID != "" {
		w.add("m.origin_employee_id = ?", f.OriginEmployeeID)
	}
	if f.DestinationEmployeeID != "" {
		w.add("m.destination_employee_id = ?", f.DestinationEmployeeID)
	}
	if f.Search != "" {
		w.add("(e.name ILIKE ? OR e.patrimony_number ILIKE ?)", likePattern(f.Search))
	}
	from := ` FROM movements m JOIN equipment e ON e.id = m.equipment_id`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	pageSQL, args := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+movementColumns+from+w.sql()+` ORDER BY m.date DESC, m.id`+pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}
