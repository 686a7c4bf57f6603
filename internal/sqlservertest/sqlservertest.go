// Package sqlservertest starts a disposable SQL Server for integration tests.
package sqlservertest

import (
	"database/sql"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	// registers the "sqlserver" driver
	_ "github.com/microsoft/go-mssqldb"
)

const (
	repository = "mcr.microsoft.com/mssql/server"
	tag        = "2022-latest"
	password   = "TurboQuery#2024"
)

// Start runs a SQL Server container and returns a connection URL for it.
// The container is purged when the test finishes.
func Start(t testing.TB) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest.NewPool() failed: %v", err)
	}
	pool.MaxWait = 3 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: repository,
		Tag:        tag,
		Env: []string{
			"ACCEPT_EULA=Y",
			"MSSQL_SA_PASSWORD=" + password,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("pool.RunWithOptions() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("pool.Purge() failed: %v", err)
		}
	})

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword("sa", password),
		Host:     resource.GetHostPort("1433/tcp"),
		RawQuery: "database=master",
	}
	connStr := u.String()

	err = pool.Retry(func() error {
		db, err := sql.Open("sqlserver", connStr)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	})
	if err != nil {
		t.Fatalf("SQL Server at %s did not become ready: %v", u.Host, err)
	}

	return connStr
}

// CreateTable creates a table in the database behind connStr and drops it
// when the test finishes.
func CreateTable(t testing.TB, connStr, name, columns string) {
	t.Helper()

	db, err := sql.Open("sqlserver", connStr)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", name, columns)); err != nil {
		t.Fatalf("create table %s failed: %v", name, err)
	}
	t.Cleanup(func() {
		if _, err := db.Exec("DROP TABLE " + name); err != nil {
			t.Logf("drop table %s failed: %v", name, err)
		}
	})
}
