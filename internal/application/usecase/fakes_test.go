package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

const (
	categoryA      = "5a0c1d2e-0000-4000-8000-0000000000c1"
	categoryAbsent = "5a0c1d2e-0000-4000-8000-0000000004c4"
	unitA          = "5a0c1d2e-0000-4000-8000-0000000000a1"
	unitAbsent     = "5a0c1d2e-0000-4000-8000-0000000004a4"
	employeeA      = "5a0c1d2e-0000-4000-8000-0000000000e1"
	employeeB      = "5a0c1d2e-0000-4000-8000-0000000000e2"
	employeeAbsent = "5a0c1d2e-0000-4000-8000-0000000004e4"
)

type memCategories struct {
	mu    sync.Mutex
	items map[string]*entity.Category
}

func newMemCategories(items ...*entity.Category) *memCategories {
	m := &memCategories{items: map[string]*entity.Category{}}
	for _, c := range items {
		m.items[c.ID] = c
	}
	return m
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) List(_ context.Context, search string, limit, offset int) ([]*entity.Category, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Category
	for _, c := range m.items {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memUnits map[string]*entity.Unit

func (m memUnits) Create(_ context.Context, u *entity.Unit) error {
	m[u.ID] = u
	return nil
}

func (m memUnits) GetByID(_ context.Context, id string) (*entity.Unit, error) {
	return m[id], nil
}

func (m memUnits) Update(_ context.Context, u *entity.Unit) error {
	m[u.ID] = u
	return nil
}

func (m memUnits) Upsert(_ context.Context, u *entity.Unit) error {
	m[u.ID] = u
	return nil
}

func (m memUnits) List(context.Context, string, int, int) ([]*entity.Unit, int, error) {
	out := make([]*entity.Unit, 0, len(m))
	for _, u := range m {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (m memUnits) Delete(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

type memEmployees map[string]*entity.Employee

func (m memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m[e.ID] = e
	return nil
}

func (m memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := m[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m[e.ID] = e
	return nil
}

func (m memEmployees) List(_ context.Context, f repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	var out []*entity.Employee
	for _, e := range m {
		if f.UnitID != "" && (e.UnitID == nil || *e.UnitID != f.UnitID) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m memEmployees) Delete(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

type memEquipment struct {
	items      map[string]*entity.Equipment
	lastFilter repository.EquipmentFilter
}

func newMemEquipment() *memEquipment {
	return &memEquipment{items: map[string]*entity.Equipment{}}
}

func (m *memEquipment) Create(_ context.Context, e *entity.Equipment) error {
	if e.PatrimonyNumber != nil {
		for _, existing := range m.items {
			if existing.PatrimonyNumber != nil && *existing.PatrimonyNumber == *e.PatrimonyNumber {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *e
	m.items[e.ID] = &cp
	return nil
}

func (m *memEquipment) GetByID(_ context.Context, id string) (*entity.Equipment, error) {
	e, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEquipment) GetForUpdate(ctx context.Context, id string) (*entity.Equipment, error) {
	return m.GetByID(ctx, id)
}

func (m *memEquipment) Update(_ context.Context, e *entity.Equipment) error {
	cp := *e
	m.items[e.ID] = &cp
	return nil
}

func (m *memEquipment) UpdateStock(_ context.Context, id string, quantity int, unitID *string) error {
	e, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.StockQuantity = quantity
	e.UnitID = unitID
	return nil
}

func (m *memEquipment) List(_ context.Context, f repository.EquipmentFilter) ([]*entity.Equipment, int, error) {
	m.lastFilter = f
	out := make([]*entity.Equipment, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(out), nil
}

func (m *memEquipment) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
