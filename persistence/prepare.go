package persistence

import (
	"database/sql"
	"fmt"
	"strings"
)

// PrepareMysqlDatabase creates the schema named in the DSN when it does not
// exist yet. Sqlite needs no preparation; its file is created on open.
func PrepareMysqlDatabase(dsn string) error {
	idx := strings.LastIndex(dsn, "/")
	if idx < 0 {
		return fmt.Errorf("invalid mysql dsn")
	}
	name := dsn[idx+1:]
	if q := strings.Index(name, "?"); q >= 0 {
		name = name[:q]
	}
	if name == "" {
		return fmt.Errorf("mysql dsn has no database name")
	}

	db, err := sql.Open("mysql", dsn[:idx+1])
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec("CREATE DATABASE IF NOT EXISTS `" + name + "` CHARACTER SET utf8mb4")
	return err
}
