package testinfra

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"fieldreport/persistence"
)

type TestDatabase struct {
	DS  *persistence.DataSourceManager
	dir string
}

// StartSqliteTestDatabase opens a throwaway file-backed sqlite database so
// tests need no external database server.
func StartSqliteTestDatabase(name string) *TestDatabase {
	dir, err := ioutil.TempDir("", name)
	if err != nil {
		panic(err)
	}
	ds := &persistence.DataSourceManager{DatabaseConfig: &persistence.DatabaseConfig{
		DriverType: "sqlite3",
		DriverArgs: filepath.Join(dir, name+".db"),
	}}
	if err := ds.Start(); err != nil {
		panic(err)
	}
	return &TestDatabase{DS: ds, dir: dir}
}

func StopSqliteTestDatabase(t *TestDatabase) {
	if t == nil {
		return
	}
	t.DS.Stop()
	_ = os.RemoveAll(t.dir)
}
