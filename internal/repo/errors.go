package repo

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"gestor-xarxa/internal/domain"
)

// storeErr classifies a store failure. Constraint failures keep the driver's
// message verbatim so callers see exactly what the database reported.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if isConstraintErr(err) {
		return domain.ConstraintViolation(err)
	}
	return &domain.Error{Kind: domain.KindStore, Err: err}
}

// MySQL integrity errors: duplicate entry, column cannot be null, and the
// two foreign key failures.
var mysqlConstraintErrs = map[uint16]bool{1062: true, 1048: true, 1451: true, 1452: true}

func isConstraintErr(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrConstraint
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return strings.HasPrefix(pe.Code, "23") // integrity_constraint_violation class
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return mysqlConstraintErrs[me.Number]
	}
	return false
}
