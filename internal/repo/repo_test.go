package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestor-xarxa/internal/core/database"
	"gestor-xarxa/internal/domain"
)

func setupTestDB(t *testing.T, foreignKeys bool) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:      "sqlite",
		DSN:         ":memory:",
		LogLevel:    "silent",
		ForeignKeys: foreignKeys,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func str(s string) *string { return &s }

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	users := NewUserRepo(db)

	u := &domain.User{Name: str("Anna"), DNI: str("X123"), State: domain.StateActive}
	require.NoError(t, users.Create(ctx, u))
	require.NotZero(t, u.ID)

	active, err := users.ListByState(ctx, domain.StateActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Anna", *active[0].Name)
	assert.Equal(t, domain.StateActive, active[0].State)

	n, err := users.SetState(ctx, u.ID, domain.StateHistoric)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	active, err = users.ListByState(ctx, domain.StateActive)
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.NotNil(t, active, "empty lists must encode as []")

	historic, err := users.ListByState(ctx, domain.StateHistoric)
	require.NoError(t, err)
	require.Len(t, historic, 1)
	assert.Equal(t, u.ID, historic[0].ID)

	// Archiving twice still matches the row.
	n, err = users.SetState(ctx, u.ID, domain.StateHistoric)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = users.SetState(ctx, 9999, domain.StateActive)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = users.SetState(ctx, u.ID, domain.State("esborrat"))
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Zero(t, n)
	historic, err = users.ListByState(ctx, domain.StateHistoric)
	require.NoError(t, err)
	require.Len(t, historic, 1)
	assert.Equal(t, domain.StateHistoric, historic[0].State)
}

func TestUserDuplicateDNI(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	users := NewUserRepo(db)

	first := &domain.User{Name: str("Anna"), DNI: str("X123"), State: domain.StateActive}
	require.NoError(t, users.Create(ctx, first))
	_, err := users.SetState(ctx, first.ID, domain.StateHistoric)
	require.NoError(t, err)

	err = users.Create(ctx, &domain.User{Name: str("Altra"), DNI: str("X123"), State: domain.StateActive})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	assert.EqualValues(t, 1, countRows(t, db, &domain.User{}))

	// Users without a DNI do not clash with each other.
	require.NoError(t, users.Create(ctx, &domain.User{Name: str("Sense DNI 1"), State: domain.StateActive}))
	require.NoError(t, users.Create(ctx, &domain.User{Name: str("Sense DNI 2"), State: domain.StateActive}))
}

func TestEquipmentActiveListJoinsOwner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	users := NewUserRepo(db)
	equips := NewEquipmentRepo(db)

	owner := &domain.User{Name: str("Pere"), DNI: str("P1"), State: domain.StateActive}
	require.NoError(t, users.Create(ctx, owner))

	owned := &domain.Equipment{Name: str("PC-01"), IP: str("10.0.0.1"), OwnerID: &owner.ID, State: domain.StateActive}
	loose := &domain.Equipment{Name: str("PC-02"), State: domain.StateActive}
	require.NoError(t, equips.Create(ctx, owned))
	require.NoError(t, equips.Create(ctx, loose))

	active, err := equips.ListByState(ctx, domain.StateActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.NotNil(t, active[0].OwnerName)
	assert.Equal(t, "Pere", *active[0].OwnerName)
	assert.Equal(t, "PC-01", *active[0].Name)
	assert.Nil(t, active[1].OwnerName)

	_, err = equips.SetState(ctx, owned.ID, domain.StateHistoric)
	require.NoError(t, err)
	historic, err := equips.ListByState(ctx, domain.StateHistoric)
	require.NoError(t, err)
	require.Len(t, historic, 1)
	assert.Nil(t, historic[0].OwnerName, "historic listing is not enriched")
	assert.Equal(t, owner.ID, *historic[0].OwnerID)
}

func TestEquipmentConstraints(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	equips := NewEquipmentRepo(db)

	require.NoError(t, equips.Create(ctx, &domain.Equipment{Name: str("PC-01"), State: domain.StateActive}))
	err := equips.Create(ctx, &domain.Equipment{Name: str("PC-01"), State: domain.StateActive})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	missing := uint(42)
	err = equips.Create(ctx, &domain.Equipment{Name: str("PC-02"), OwnerID: &missing, State: domain.StateActive})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestEquipmentOrphanAllowedWithoutForeignKeys(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, false)
	equips := NewEquipmentRepo(db)

	missing := uint(42)
	require.NoError(t, equips.Create(ctx, &domain.Equipment{Name: str("PC-02"), OwnerID: &missing, State: domain.StateActive}))

	active, err := equips.ListByState(ctx, domain.StateActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].OwnerName)
}

func TestPrinterUniqueNameAndIP(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	printers := NewPrinterRepo(db)

	require.NoError(t, printers.Create(ctx, &domain.Printer{Name: "HP-1", IP: str("10.0.1.1"), State: domain.StateActive}))

	err := printers.Create(ctx, &domain.Printer{Name: "HP-1", IP: str("10.0.1.2"), State: domain.StateActive})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "nom_impressora")

	err = printers.Create(ctx, &domain.Printer{Name: "HP-2", IP: str("10.0.1.1"), State: domain.StateActive})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "ip")

	assert.EqualValues(t, 1, countRows(t, db, &domain.Printer{}))
}

func TestResources(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	resources := NewResourceRepo(db)

	list, err := resources.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	r := &domain.SharedResource{Name: str("Comptabilitat"), Path: str(`\\srv\compta`)}
	require.NoError(t, resources.Create(ctx, r))
	assert.NotZero(t, r.ID)

	err = resources.Create(ctx, &domain.SharedResource{Name: str("Altre"), Path: str(`\\srv\compta`)})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	err = resources.Create(ctx, &domain.SharedResource{Name: str("Comptabilitat"), Path: str(`\\srv\altre`)})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	list, err = resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, `\\srv\compta`, *list[0].Path)
}

func TestAssignments(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, true)
	users := NewUserRepo(db)
	resources := NewResourceRepo(db)
	assignments := NewAssignmentRepo(db)

	u := &domain.User{Name: str("Anna"), DNI: str("X1"), State: domain.StateActive}
	require.NoError(t, users.Create(ctx, u))
	r1 := &domain.SharedResource{Name: str("Docs"), Path: str(`\\srv\docs`)}
	r2 := &domain.SharedResource{Name: str("Fotos"), Path: str(`\\srv\fotos`)}
	require.NoError(t, resources.Create(ctx, r1))
	require.NoError(t, resources.Create(ctx, r2))

	a1 := &domain.Assignment{UserID: u.ID, ResourceID: r1.ID, Permission: str("lectura")}
	require.NoError(t, assignments.Assign(ctx, a1))
	require.NoError(t, assignments.Assign(ctx, &domain.Assignment{UserID: u.ID, ResourceID: r2.ID}))

	err := assignments.Assign(ctx, &domain.Assignment{UserID: u.ID, ResourceID: r1.ID, Permission: str("escriptura")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssignmentConflict)
	assert.Contains(t, err.Error(), "potser la relació ja existeix")

	err = assignments.Assign(ctx, &domain.Assignment{UserID: 999, ResourceID: r1.ID})
	assert.ErrorIs(t, err, domain.ErrAssignmentConflict)

	rows, err := assignments.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, a1.ID, rows[0].AssignmentID)
	assert.Equal(t, r1.ID, rows[0].ResourceID)
	assert.Equal(t, "Docs", *rows[0].ResourceName)
	assert.Equal(t, `\\srv\docs`, *rows[0].NetworkPath)
	assert.Equal(t, "lectura", *rows[0].Permission)
	assert.Nil(t, rows[1].Permission)

	none, err := assignments.ListForUser(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	n, err := assignments.Revoke(ctx, u.ID, 777)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = assignments.Revoke(ctx, u.ID, r1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rows, err = assignments.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	n, err = assignments.RevokeByID(ctx, rows[0].AssignmentID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = assignments.RevokeByID(ctx, rows[0].AssignmentID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRevokeRemovesEveryDuplicatePair(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, false)
	// Older databases were created without the pair index.
	require.NoError(t, db.Migrator().DropIndex(&domain.Assignment{}, "idx_usuari_recurs"))
	assignments := NewAssignmentRepo(db)

	require.NoError(t, assignments.Assign(ctx, &domain.Assignment{UserID: 1, ResourceID: 2}))
	require.NoError(t, assignments.Assign(ctx, &domain.Assignment{UserID: 1, ResourceID: 2}))

	n, err := assignments.Revoke(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Zero(t, countRows(t, db, &domain.Assignment{}))
}

func TestIsConstraintErr(t *testing.T) {
	constraint := []error{
		sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
		&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "idx_Usuaris_dni"`},
		&pgconn.PgError{Code: "23503"},
		&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'X1' for key 'idx_Usuaris_dni'"},
		&mysql.MySQLError{Number: 1452},
	}
	for _, err := range constraint {
		assert.True(t, isConstraintErr(err), err.Error())
		assert.ErrorIs(t, storeErr(err), domain.ErrConstraintViolation)
	}

	other := []error{
		sqlite3.Error{Code: sqlite3.ErrBusy},
		&pgconn.PgError{Code: "40001"},
		&mysql.MySQLError{Number: 1213},
		errString("duplicate rows in report"),
	}
	for _, err := range other {
		assert.False(t, isConstraintErr(err), err.Error())
		assert.Equal(t, domain.KindStore, domain.KindOf(storeErr(err)))
	}
	assert.NoError(t, storeErr(nil))
}

type errString string

func (e errString) Error() string { return string(e) }
