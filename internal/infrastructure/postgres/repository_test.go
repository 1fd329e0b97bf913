package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
	"github.com/jhoicas/patrimonio-api/internal/infrastructure/postgres"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentRepo_GetByID_NoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment e WHERE e.id = $1")).
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	got, err := postgres.NewEquipmentRepository(mock).GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepo_List_Filtros(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM equipment e JOIN categories c ON c.id = e.category_id WHERE (e.name ILIKE $1 OR e.patrimony_number ILIKE $1 OR c.name ILIKE $1) AND e.status = $2")).
		WithArgs("%dell%", "WORKING").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY e.name, e.id LIMIT $3 OFFSET $4")).
		WithArgs("%dell%", "WORKING", 2, 4).
		WillReturnRows(equipmentRow("eq-1", sp("P-1"), 1, sp("u-1")))

	list, total, err := postgres.NewEquipmentRepository(mock).List(context.Background(), repository.EquipmentFilter{
		Search: " dell ", Status: "WORKING", Limit: 2, Offset: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, list, 1)
	assert.Equal(t, "P-1", *list[0].PatrimonyNumber)
	assert.Equal(t, "u-1", *list[0].UnitID)
	assert.Nil(t, list[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepo_Create_PatrimonioDuplicado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO equipment")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "equipment_patrimony_number_key"})

	err = postgres.NewEquipmentRepository(mock).Create(context.Background(), &entity.Equipment{ID: "eq-1", Name: "X", CategoryID: "c-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepo_Create_CategoriaInexistente(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO equipment")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err = postgres.NewEquipmentRepository(mock).Create(context.Background(), &entity.Equipment{ID: "eq-1", Name: "X", CategoryID: "c-404"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEquipmentRepo_UpdateStock_CheckViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET stock_quantity")).
		WillReturnError(&pgconn.PgError{Code: "23514"})

	err = postgres.NewEquipmentRepository(mock).UpdateStock(context.Background(), "eq-1", -1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Valores fuera de rango (22003) o ids mal formados (22P02) son errores de entrada, no 500.
func TestMovementRepo_Create_ErroresDeEntrada(t *testing.T) {
	for _, code := range []string{"22003", "22P02"} {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO movements")).
			WillReturnError(&pgconn.PgError{Code: code})

		err = postgres.NewMovementRepository(mock).Create(context.Background(), &entity.Movement{
			ID: "m-1", EquipmentID: "eq-1", Type: entity.MovementTypeEntry, Quantity: 1, Date: time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "código %s", code)
		mock.Close()
	}
}

func TestCategoryRepo_Delete_NoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
		WithArgs("c-404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = postgres.NewCategoryRepository(mock).Delete(context.Background(), "c-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRepo_Upsert_DevuelveIDExistente(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (name) DO UPDATE")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("u-existente", created))

	unit := &entity.Unit{ID: "u-nuevo", Name: "UBS Centro", CNESCode: 2077485, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, postgres.NewUnitRepository(mock).Upsert(context.Background(), unit))
	assert.Equal(t, "u-existente", unit.ID)
	assert.Equal(t, created, unit.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementRepo_List_Filtros(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM movements m JOIN equipment e ON e.id = m.equipment_id WHERE m.equipment_id = $1 AND m.type = $2 AND m.date >= $3")).
		WithArgs("eq-1", "EXIT", from).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY m.date DESC, m.id LIMIT $4 OFFSET $5")).
		WithArgs("eq-1", "EXIT", from, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "equipment_id", "date", "origin_employee_id", "destination_employee_id",
			"origin_unit_id", "destination_unit_id", "quantity", "notes", "type", "created_by",
		}).AddRow("m-1", "eq-1", date, (*string)(nil), (*string)(nil), sp("u-1"), (*string)(nil), 2, (*string)(nil), "EXIT", sp("u-admin")))

	list, total, err := postgres.NewMovementRepository(mock).List(context.Background(), repository.MovementFilter{
		EquipmentID: "eq-1", Type: "EXIT", From: &from, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "u-admin", list[0].CreatedBy)
	assert.Equal(t, "u-1", *list[0].OriginUnitID)
	assert.Equal(t, 2, list[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementRepo_Create_SinUsuario(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO movements")).
		WithArgs("m-1", "eq-1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), 1, pgxmock.AnyArg(), "ENTRY", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = postgres.NewMovementRepository(mock).Create(context.Background(), &entity.Movement{
		ID: "m-1", EquipmentID: "eq-1", Date: time.Now(), Quantity: 1, Type: "ENTRY",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_EmailDuplicado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = postgres.NewUserRepository(mock).Create(context.Background(), &entity.User{ID: "u-1", Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
		WithArgs("Admin@Example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "status", "created_at", "updated_at"}).
			AddRow("u-1", "admin@example.com", "hash", "Admin", "admin", "active", now, now))

	u, err := postgres.NewUserRepository(mock).GetByEmail(context.Background(), "Admin@Example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
