package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/patrimonio-api/internal/application/dto"
	"github.com/jhoicas/patrimonio-api/internal/application/usecase"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEquipmentFixture() (*usecase.EquipmentUseCase, *memEquipment) {
	equipment := newMemEquipment()
	categories := newMemCategories(&entity.Category{ID: categoryA, Name: "Notebooks"})
	employees := memEmployees{employeeA: {ID: employeeA, Name: "Ana"}}
	units := memUnits{unitA: {ID: unitA, Name: "UBS Centro", CNESCode: 1}}
	return usecase.NewEquipmentUseCase(equipment, categories, employees, units), equipment
}

func TestEquipmentUseCase_CreateDefaults(t *testing.T) {
	uc, _ := newEquipmentFixture()

	created, err := uc.Create(context.Background(), dto.CreateEquipmentRequest{
		Name:            "Notebook Dell",
		CategoryID:      categoryA,
		PatrimonyNumber: strPtr("  "),
		StockQuantity:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentStatusWorking, created.Status)
	assert.Nil(t, created.PatrimonyNumber)
	assert.Equal(t, 3, created.StockQuantity)
	assert.Equal(t, "Notebook Dell (Patrimônio: Sem número)", created.DisplayName)
}

func TestEquipmentUseCase_CreateReferencias(t *testing.T) {
	uc, _ := newEquipmentFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryAbsent})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, EmployeeID: strPtr(employeeAbsent)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, UnitID: strPtr(unitAbsent)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, Status: "LOST"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, StockQuantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEquipmentUseCase_PatrimonioDuplicado(t *testing.T) {
	uc, _ := newEquipmentFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEquipmentRequest{Name: "A", CategoryID: categoryA, PatrimonyNumber: strPtr("P-1")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "B", CategoryID: categoryA, PatrimonyNumber: strPtr("P-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEquipmentUseCase_UpdateParcial(t *testing.T) {
	uc, store := newEquipmentFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateEquipmentRequest{
		Name: "Monitor", CategoryID: categoryA, PatrimonyNumber: strPtr("P-9"), StockQuantity: 4, UnitID: strPtr(unitA),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateEquipmentRequest{
		Status:        strPtr(entity.EquipmentStatusMaintenance),
		StockQuantity: intPtr(2),
		EmployeeID:    strPtr(employeeA),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentStatusMaintenance, updated.Status)
	assert.Equal(t, 2, updated.StockQuantity)
	require.NotNil(t, updated.UnitID)
	assert.Equal(t, unitA, *updated.UnitID)
	assert.Equal(t, employeeA, *store.items[created.ID].EmployeeID)

	_, err = uc.Update(ctx, created.ID, dto.UpdateEquipmentRequest{StockQuantity: intPtr(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 2, store.items[created.ID].StockQuantity)

	untracked, err := uc.Update(ctx, created.ID, dto.UpdateEquipmentRequest{PatrimonyNumber: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, untracked.PatrimonyNumber)
}

func TestEquipmentUseCase_ListPasaFiltros(t *testing.T) {
	uc, store := newEquipmentFixture()

	_, err := uc.List(context.Background(), dto.EquipmentListRequest{
		Search: "dell", Status: entity.EquipmentStatusBroken, UnitID: unitA,
	})
	require.NoError(t, err)
	assert.Equal(t, "dell", store.lastFilter.Search)
	assert.Equal(t, entity.EquipmentStatusBroken, store.lastFilter.Status)
	assert.Equal(t, unitA, store.lastFilter.UnitID)
	assert.Equal(t, 20, store.lastFilter.Limit)

	_, err = uc.List(context.Background(), dto.EquipmentListRequest{Status: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// countingEquipment registra las consultas que llegan al repositorio.
type countingEquipment struct {
	*memEquipment
	calls int
}

func (c *countingEquipment) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	c.calls++
	return c.memEquipment.GetByID(ctx, id)
}

func (c *countingEquipment) Delete(ctx context.Context, id string) error {
	c.calls++
	return c.memEquipment.Delete(ctx, id)
}

func TestEquipmentUseCase_IDMalFormado(t *testing.T) {
	ctx := context.Background()
	repo := &countingEquipment{memEquipment: newMemEquipment()}
	uc := usecase.NewEquipmentUseCase(repo, newMemCategories(), memEmployees{}, memUnits{})

	for _, id := range []string{"abc", "1", "' OR 1=1 --", "5a0c1d2e00004000800000000000000c1"} {
		got, err := uc.GetByID(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, got, id)

		updated, err := uc.Update(ctx, id, dto.UpdateEquipmentRequest{Name: strPtr("x")})
		require.NoError(t, err, id)
		assert.Nil(t, updated, id)

		assert.ErrorIs(t, uc.Delete(ctx, id), domain.ErrNotFound, id)
	}
	assert.Zero(t, repo.calls)
}

func TestEquipmentUseCase_ReferenciasYFiltrosMalFormados(t *testing.T) {
	uc, store := newEquipmentFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, UnitID: strPtr("u-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, dto.EquipmentListRequest{EmployeeID: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, dto.EquipmentListRequest{CategoryID: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.items)
}

func TestEquipmentUseCase_StockFueraDeRango(t *testing.T) {
	uc, store := newEquipmentFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, StockQuantity: entity.MaxQuantity + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	created, err := uc.Create(ctx, dto.CreateEquipmentRequest{Name: "X", CategoryID: categoryA, StockQuantity: entity.MaxQuantity})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, created.StockQuantity)

	_, err = uc.Update(ctx, created.ID, dto.UpdateEquipmentRequest{StockQuantity: intPtr(entity.MaxQuantity + 1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.MaxQuantity, store.items[created.ID].StockQuantity)
}
