package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

var errBoom = errors.New("fallo de base de datos")

// memStore estado confirmado. Run trabaja sobre una copia y solo la publica si fn no falla.
type memStore struct {
	mu         sync.Mutex
	equipment  map[string]entity.Equipment
	movements  []entity.Movement
	failUpdate bool
	failInsert bool
}

func newMemStore(items ...entity.Equipment) *memStore {
	s := &memStore{equipment: map[string]entity.Equipment{}}
	for _, e := range items {
		s.equipment[e.ID] = e
	}
	return s
}

func (s *memStore) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	equipmentRepo repository.EquipmentRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:     s,
		equipment: make(map[string]entity.Equipment, len(s.equipment)),
		movements: append([]entity.Movement(nil), s.movements...),
	}
	for k, v := range s.equipment {
		tx.equipment[k] = v
	}
	if err := fn(&memMovementRepo{tx: tx}, &memEquipmentRepo{tx: tx}); err != nil {
		return err
	}
	s.equipment = tx.equipment
	s.movements = tx.movements
	return nil
}

func (s *memStore) get(id string) entity.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.equipment[id]
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

type memTx struct {
	store     *memStore
	equipment map[string]entity.Equipment
	movements []entity.Movement
}

type memMovementRepo struct{ tx *memTx }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.tx.store.failInsert {
		return errBoom
	}
	r.tx.movements = append(r.tx.movements, *m)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.tx.movements {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	var out []*entity.Movement
	for _, m := range r.tx.movements {
		if f.EquipmentID != "" && m.EquipmentID != f.EquipmentID {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, len(out), nil
}

type memEquipmentRepo struct{ tx *memTx }

func (r *memEquipmentRepo) Create(_ context.Context, e *entity.Equipment) error {
	r.tx.equipment[e.ID] = *e
	return nil
}

func (r *memEquipmentRepo) GetByID(_ context.Context, id string) (*entity.Equipment, error) {
	e, ok := r.tx.equipment[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memEquipmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Equipment, error) {
	return r.GetByID(ctx, id)
}

func (r *memEquipmentRepo) Update(_ context.Context, e *entity.Equipment) error {
	r.tx.equipment[e.ID] = *e
	return nil
}

func (r *memEquipmentRepo) UpdateStock(_ context.Context, id string, quantity int, unitID *string) error {
	if r.tx.store.failUpdate {
		return errBoom
	}
	e := r.tx.equipment[id]
	e.StockQuantity = quantity
	e.UnitID = unitID
	r.tx.equipment[id] = e
	return nil
}

func (r *memEquipmentRepo) List(context.Context, repository.EquipmentFilter) ([]*entity.Equipment, int, error) {
	return nil, 0, nil
}

func (r *memEquipmentRepo) Delete(_ context.Context, id string) error {
	delete(r.tx.equipment, id)
	return nil
}

// Repos de referencia: existen los ids cargados en el mapa.
type memEmployees map[string]bool

func (m memEmployees) Create(context.Context, *entity.Employee) error { return nil }
func (m memEmployees) Update(context.Context, *entity.Employee) error { return nil }
func (m memEmployees) Delete(context.Context, string) error           { return nil }
func (m memEmployees) List(context.Context, repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	return nil, 0, nil
}
func (m memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	if !m[id] {
		return nil, nil
	}
	return &entity.Employee{ID: id}, nil
}

type memUnits map[string]bool

func (m memUnits) Create(context.Context, *entity.Unit) error { return nil }
func (m memUnits) Update(context.Context, *entity.Unit) error { return nil }
func (m memUnits) Upsert(context.Context, *entity.Unit) error { return nil }
func (m memUnits) Delete(context.Context, string) error       { return nil }
func (m memUnits) List(context.Context, string, int, int) ([]*entity.Unit, int, error) {
	return nil, 0, nil
}
func (m memUnits) GetByID(_ context.Context, id string) (*entity.Unit, error) {
	if !m[id] {
		return nil, nil
	}
	return &entity.Unit{ID: id}, nil
}

// memUsers usuarios existentes por id.
type memUsers map[string]*entity.User

func (m memUsers) Create(context.Context, *entity.User) error { return nil }
func (m memUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (m memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m[id], nil
}
