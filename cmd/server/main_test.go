package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bbernstein/console-core/internal/config"
)

func TestPrintBanner(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cfg := &config.Config{
		Env:          "test",
		Port:         "4000",
		ShowfilePath: "test.db",
	}

	printBanner(cfg)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	if !strings.Contains(output, "Console Core Server") {
		t.Error("Expected 'Console Core Server' in banner")
	}
	if !strings.Contains(output, "Version:") {
		t.Error("Expected 'Version:' in banner")
	}
	if !strings.Contains(output, "Environment: test") {
		t.Error("Expected 'Environment: test' in banner")
	}
	if !strings.Contains(output, "Port:        4000") {
		t.Error("Expected 'Port: 4000' in banner")
	}
	if !strings.Contains(output, "Database:    test.db") {
		t.Error("Expected 'Database: test.db' in banner")
	}
}

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if BuildTime == "" {
		t.Error("BuildTime should have a default value")
	}
	if GitCommit == "" {
		t.Error("GitCommit should have a default value")
	}
}

func TestOpenDatabase(t *testing.T) {
	cfg := &config.Config{ShowfilePath: ":memory:", Env: "test"}
	db, err := openDatabase(cfg)
	if err != nil {
		t.Fatalf("openDatabase failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying *sql.DB: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Errorf("expected a pingable database, got: %v", err)
	}
}
