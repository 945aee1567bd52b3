package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/salesledger/config"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	// The signal path is covered below; here Shutdown is called directly.
	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	// Use a server that responds immediately
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		ctx := context.Background()
		gracefulShutdown(ctx, srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	// Send SIGTERM to current process
	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
		// success
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	content := "SaleRef;Customer;Timestamp;Product;Quantity;UnitPrice;UnitCost\n" +
		"S1;Client A;2025-10-05T10:00:00Z;Prod A;10;10,00;5,00\n" +
		"S1;Client A;2025-10-05T10:00:00Z;Prod B;1;2,00;1,00\n" +
		"S2;Client B;2025-10-05T18:00:00Z;Prod B;1;100,75;0\n"
	if err := os.WriteFile(filepath.Join(dir, "sales.csv"), []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}, Import: config.ImportConfig{Parallelism: 2}}
	sum, err := runImport(context.Background(), cfg, dir, 0)
	if err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if sum.Files != 1 || sum.Sales != 2 || sum.Rows != 3 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if _, err := runImport(context.Background(), config.Config{Storage: config.StorageConfig{Driver: "bogus"}}, dir, 1); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestGracefulShutdown_ContextCanceled(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	ctx, cancel := context.WithCancel(context.Background())
	cleaned := make(chan struct{})
	go gracefulShutdown(ctx, srv, func() { close(cleaned) })

	cancel()
	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after context cancel")
	}
}
