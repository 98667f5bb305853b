// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bytes"
	"database/sql"
	"encoding/json"
	stdlog "log"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feed/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db, DialectPostgres, nil)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres, nil)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db, DialectSQLite, nil); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	// idempotent
	if err = Migrate(db, DialectSQLite, nil); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}

	for _, table := range []string{"users", "posts"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	var index string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_posts_user_created_id'`).Scan(&index)
	if err != nil {
		t.Errorf("keyset index not created: %v", err)
	}
}

func TestMigrate_LogsThroughZerolog(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	// стандартный log не должен получать вывод goose
	var std bytes.Buffer
	prev := stdlog.Writer()
	stdlog.SetOutput(&std)
	defer stdlog.SetOutput(prev)

	var out bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&out)}

	if err = Migrate(db, DialectSQLite, log); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	if std.Len() != 0 {
		t.Errorf("goose wrote to the standard logger: %q", std.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("expected goose progress in zerolog output")
	}
	for _, raw := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			t.Fatalf("not a JSON log line: %q", raw)
		}
		if entry["component"] != "goose" {
			t.Errorf("expected component=goose, got %v", entry["component"])
		}
	}
	if !strings.Contains(out.String(), "00001_create_users.sql") {
		t.Errorf("expected migration file name in output, got %q", out.String())
	}
}
