package database

import (
	"testing"

	"github.com/thenoetrevino/roster/internal/config"
)

func TestResolveDialect(t *testing.T) {
	tests := []struct {
		name    string
		store   config.Store
		dialect string
		dsn     string
	}{
		{"sqlite scheme", config.Store{URL: "sqlite:roster.db"}, "sqlite", "roster.db"},
		{"sqlite slashes", config.Store{URL: "sqlite:///tmp/roster.db"}, "sqlite", "/tmp/roster.db"},
		{"sqlite memory", config.Store{URL: "sqlite::memory:"}, "sqlite", ":memory:"},
		{"jdbc sqlite", config.Store{URL: "jdbc:sqlite:data/roster.db"}, "sqlite", "data/roster.db"},
		{"file uri", config.Store{URL: "file:roster.db?cache=shared"}, "sqlite", "file:roster.db?cache=shared"},
		{"bare path", config.Store{URL: "data/roster.db"}, "sqlite", "data/roster.db"},
		{"postgres", config.Store{URL: "postgres://db:5432/roster"}, "postgres", "postgres://db:5432/roster"},
		{
			"postgres credentials",
			config.Store{URL: "jdbc:postgresql://db/roster", User: "app", Password: "s3cret"},
			"postgres",
			"postgresql://app:s3cret@db/roster",
		},
		{
			"postgres url credentials win",
			config.Store{URL: "postgres://owner@db/roster", User: "app"},
			"postgres",
			"postgres://owner@db/roster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store
			d, dsn, err := resolveDialect(&store)
			if err != nil {
				t.Fatalf("resolveDialect failed: %v", err)
			}
			if d.Name != tt.dialect {
				t.Errorf("Dialect = %s, want %s", d.Name, tt.dialect)
			}
			if dsn != tt.dsn {
				t.Errorf("DSN = %s, want %s", dsn, tt.dsn)
			}
		})
	}
}

func TestResolveDialect_Unsupported(t *testing.T) {
	for _, raw := range []string{"", "mysql://localhost/db", "jdbc:mysql://localhost:3306/coursejdbc", "sqlite:"} {
		store := config.Store{URL: raw}
		if _, _, err := resolveDialect(&store); err == nil {
			t.Errorf("Expected error for %q", raw)
		}
	}
}

func TestRebind(t *testing.T) {
	query := `UPDATE seller SET Name = ?, Email = '?' WHERE Id = ?`

	if got := sqliteDialect.rebind(query); got != query {
		t.Errorf("sqlite should keep placeholders, got %s", got)
	}

	want := `UPDATE seller SET Name = $1, Email = '?' WHERE Id = $2`
	if got := postgresDialect.rebind(query); got != want {
		t.Errorf("postgres rebind = %s, want %s", got, want)
	}
}

func TestOrderByName(t *testing.T) {
	if got := sqliteDialect.orderByName("Name"); got != "Name" {
		t.Errorf("sqlite order = %s", got)
	}
	if got := postgresDialect.orderByName("seller.Name"); got != "LOWER(seller.Name), seller.Name" {
		t.Errorf("postgres order = %s", got)
	}
}
