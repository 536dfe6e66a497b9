package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher/internal/storage"
)

func TestSSHServerReturnsBindError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer taken.Close()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = taken.Addr().String()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	result := make(chan error, 1)
	go func() { result <- srv.ListenAndServe() }()

	select {
	case err := <-result:
		if err == nil {
			t.Fatal("expected an error for an address already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe kept waiting after the listener failed")
	}

	if _, err := srv.store.SaveRun(storage.Run{GameID: "dasher", Outcome: storage.OutcomeLost}); err == nil {
		t.Error("the runs database should be closed once the server stops")
	}
}

func TestSSHServerShutdownClosesStoreOnce(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	if _, err := srv.store.SaveRun(storage.Run{GameID: "dasher", Outcome: storage.OutcomeWon, Score: 12}); err != nil {
		t.Fatalf("SaveRun() before shutdown failed: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.SaveRun(storage.Run{GameID: "dasher", Outcome: storage.OutcomeLost}); err == nil {
		t.Error("the runs database should be closed after shutdown")
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("second Shutdown() failed: %v", err)
	}
}
