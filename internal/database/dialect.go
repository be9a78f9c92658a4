package database

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/roster/internal/config"
)

// Dialect captures what differs between the supported stores.
type Dialect struct {
	Name       string
	driver     string
	dollarArgs bool
	pragmas    []string
	migrations []migration
	// nameOrder wraps a name column so ordering ignores case
	nameOrder func(column string) string
}

var sqliteDialect = &Dialect{
	Name:   "sqlite",
	driver: "sqlite",
	pragmas: []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	},
	migrations: sqliteMigrations,
	// columns are declared COLLATE NOCASE
	nameOrder: func(column string) string { return column },
}

var postgresDialect = &Dialect{
	Name:       "postgres",
	driver:     "pgx",
	dollarArgs: true,
	migrations: postgresMigrations,
	nameOrder:  func(column string) string { return "LOWER(" + column + "), " + column },
}

// resolveDialect picks the dialect from the store URL and builds the
// driver-specific data source name.
func resolveDialect(store *config.Store) (*Dialect, string, error) {
	raw := strings.TrimSpace(store.URL)
	raw = strings.TrimPrefix(raw, "jdbc:")

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		dsn, err := postgresDSN(raw, store.User, store.Password)
		if err != nil {
			return nil, "", err
		}
		return postgresDialect, dsn, nil

	case strings.HasPrefix(raw, "sqlite:"):
		path := strings.TrimPrefix(raw, "sqlite:")
		path = strings.TrimPrefix(path, "//")
		if path == "" {
			return nil, "", fmt.Errorf("sqlite url %q has no path", store.URL)
		}
		return sqliteDialect, path, nil

	case strings.HasPrefix(raw, "file:"):
		return sqliteDialect, raw, nil

	case raw == ":memory:":
		return sqliteDialect, raw, nil

	case raw != "" && !strings.Contains(raw, ":"):
		// bare file path
		return sqliteDialect, raw, nil
	}

	return nil, "", fmt.Errorf("unsupported store url %q", store.URL)
}

func postgresDSN(raw, user, password string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid postgres url: %w", err)
	}
	if u.User == nil && user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String(), nil
}

// rebind rewrites ? placeholders into the dialect's positional form.
func (d *Dialect) rebind(query string) string {
	if !d.dollarArgs || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (d *Dialect) orderByName(column string) string {
	return d.nameOrder(column)
}
