package test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"

	"stoik.com/emailregistry/internal/storage"
)

// Postgres test database configuration
const (
	PostgresUser     = "emailregistry"
	PostgresPassword = "emailregistry_pwd"
	PostgresDB       = "emailregistry_test"
	PostgresHost     = "localhost"
)

// PostgresDSN returns the data source name for Postgres connection with dynamic port
func PostgresDSN(port string) string {
	return "postgres://" + PostgresUser + ":" + PostgresPassword + "@" + PostgresHost + ":" + port + "/" + PostgresDB + "?sslmode=disable"
}

// PostgresDockerEnv returns the environment variables for Postgres Docker container
func PostgresDockerEnv() []string {
	return []string{
		"POSTGRES_USER=" + PostgresUser,
		"POSTGRES_PASSWORD=" + PostgresPassword,
		"POSTGRES_DB=" + PostgresDB,
	}
}

// SetupPostgresDB starts a disposable Postgres container and waits until it
// accepts connections. The caller purges the returned resource.
func SetupPostgresDB(t *testing.T, pool *dockertest.Pool) (*sql.DB, string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env:        PostgresDockerEnv(),
	})
	if err != nil {
		t.Fatalf("Could not run postgres from docker: %s", err)
	}

	port := resource.GetPort("5432/tcp")

	var db *sql.DB
	if err = pool.Retry(func() error {
		var err error
		db, err = sql.Open("pgx", PostgresDSN(port))
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("Could not connect to postgres: %s", err)
	}

	return db, port, resource
}

// NewEmailsStorage connects the application storage to the test database and
// creates the schema.
func NewEmailsStorage(t *testing.T, port string) (*storage.PostgresDB, *storage.EmailsStorage) {
	ctx := context.Background()
	postgresDB, err := storage.NewPostgresDB(ctx, PostgresHost, port, PostgresUser, PostgresPassword, PostgresDB)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgresDB.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return postgresDB, storage.NewEmailsStorage(postgresDB)
}

// ResetEmails empties the emails table and restarts id numbering.
func ResetEmails(t *testing.T, db *sql.DB) {
	if _, err := db.Exec("TRUNCATE emails RESTART IDENTITY"); err != nil {
		t.Errorf("cannot reset emails table %v", err)
	}
}

func CountEmails(t *testing.T, db *sql.DB) int {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM emails").Scan(&count); err != nil {
		t.Errorf("cannot count emails %v", err)
	}
	return count
}
