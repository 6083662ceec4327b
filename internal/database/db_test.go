package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestConnect_Validation(t *testing.T) {
	if _, err := Connect(context.Background(), "", 0); err == nil {
		t.Fatalf("expected error for empty dsn")
	}

	if _, err := Connect(context.Background(), "invalid-dsn", 0); err == nil {
		t.Fatalf("expected error for invalid dsn")
	}
}

func TestMigrateURL(t *testing.T) {
	tests := map[string]struct {
		dsn     string
		want    string
		wantErr bool
	}{
		"postgres scheme":   {dsn: "postgres://u:p@db:5432/travel", want: "pgx5://u:p@db:5432/travel"},
		"postgresql scheme": {dsn: "postgresql://u@db/travel?sslmode=disable", want: "pgx5://u@db/travel?sslmode=disable"},
		"already pgx5":      {dsn: "pgx5://db/travel", want: "pgx5://db/travel"},
		"empty":             {dsn: "", wantErr: true},
		"keyword form":      {dsn: "host=db user=u", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := migrateURL(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.dsn)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Fatalf("expected paired migrations, got %d up and %d down", ups, downs)
	}
}
