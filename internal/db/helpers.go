package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"log"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema.
// Connection errors read as "absent"; the caller's next statement surfaces them.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			log.Printf("[DB] action=has_table table=%s msg=bad connection", table)
		}
		return false
	}
	return name.Valid && name.String != ""
}
