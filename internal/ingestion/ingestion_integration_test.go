//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/salesledger/internal/storage"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "salesledger",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=salesledger sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "salesledger")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/ingestion → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func writeInputFile(t *testing.T, dir, name string, sales, itemsPerSale int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("SaleRef;Customer;Timestamp;Product;Quantity;UnitPrice;UnitCost\n")
	for i := 0; i < sales; i++ {
		for j := 0; j < itemsPerSale; j++ {
			// comma decimal separator, as exported by spreadsheet tools
			fmt.Fprintf(&b, "R%d;Customer %d;2025-10-05 1%d:00:00;Product %d;%d;%d,50;%d,25\n", i, i, j, j, j+1, 10+j, 5+j)
		}
	}
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return full
}

func TestIngestion_EndToEnd_ProcessDirectory(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	tdir := t.TempDir()
	writeInputFile(t, tdir, "2025-10-05.csv", 4, 3)
	writeInputFile(t, tdir, "2025-10-06.csv", 2, 1)

	repo := storage.NewSalesRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sum, err := ProcessDirectory(ctx, tdir, repo, 2)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}
	if sum.Sales != 6 || sum.Rows != 14 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	var sales, items int
	if err := db.QueryRow("SELECT COUNT(*) FROM sales").Scan(&sales); err != nil {
		t.Fatalf("count sales: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM sale_line_items").Scan(&items); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if sales != 6 || items != 14 {
		t.Fatalf("expected 6 sales / 14 items, got %d / %d", sales, items)
	}

	var exists bool
	if err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM import_log WHERE filename=$1 AND row_count=$2)", "2025-10-05.csv", 12).Scan(&exists); err != nil {
		t.Fatalf("check import_log: %v", err)
	}
	if !exists {
		t.Fatalf("expected import_log entry for 2025-10-05.csv")
	}

	// rerun is a no-op thanks to the import log
	sum, err = ProcessDirectory(ctx, tdir, repo, 2)
	if err != nil {
		t.Fatalf("second ProcessDirectory: %v", err)
	}
	if sum.Skipped != 2 || sum.Sales != 0 {
		t.Fatalf("expected both files skipped: %+v", sum)
	}
}
