// Package integrationtest provides server and db helpers used in integration tests.
package integrationtest

import (
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"

	"github.com/go-petr/gold-vault/cmd/httpserver"
	"github.com/go-petr/gold-vault/internal/gateway"
	"github.com/go-petr/gold-vault/internal/middleware"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/go-petr/gold-vault/pkg/configpkg"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
)

// SetupServer returns a test server wired to the real database with a mock
// gateway and a mock price oracle. The database is flushed after each test.
func SetupServer(t *testing.T) (*httpserver.Server, *gateway.MockAdapter, *priceoracle.MockOracle) {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.GetLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	adapter := gateway.NewMockAdapter(ctrl)
	oracle := priceoracle.NewMockOracle(ctrl)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(db, logger, config, adapter, oracle, nil)
	if err != nil {
		t.Fatalf(`httpserver.New(db, logger, config, adapter, oracle, nil) returned error: %v`, err)
	}

	return server, adapter, oracle
}

// Flush flushes all db tables without dropping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}
