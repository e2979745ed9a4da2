package e2e

import (
	"net/http/httptest"
	"testing"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/pkg/registry"
	"todo-go-backend/testutil"

	"github.com/gavv/httpexpect/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SetupOption is an option of Setup
type SetupOption struct {
	TearDown func(t *testing.T, db *sqlx.DB)
}

// Setup starts the application against the e2e database and returns a client for it.
func Setup(t *testing.T, option SetupOption) (expect *httpexpect.Expect, db *sqlx.DB, teardown func()) {
	t.Helper()
	testutil.ReadConfigE2E()

	db = testutil.NewDBClient(t)
	ctrl := registry.New(db).NewController()

	e := router.New(ctrl, zap.NewNop(), router.Options{})
	srv := httptest.NewServer(e)

	return httpexpect.Default(t, srv.URL), db, func() {
		if option.TearDown != nil {
			option.TearDown(t, db)
		}
		srv.Close()
		db.Close()
	}
}
