package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// IsRemote reports whether `target` names a libsql server rather than a file.
func IsRemote(target string) bool {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(target, scheme) {
			return true
		}
	}
	return false
}

// OpenDB opens `target` (a sqlite file path, ":memory:", or a libsql url) and
// makes sure the schema exists.
func OpenDB(target, authToken string) (*sql.DB, error) {
	var (
		database *sql.DB
		err      error
	)
	if IsRemote(target) {
		dsn := target
		if authToken != "" {
			values := url.Values{}
			values.Add("authToken", authToken)
			dsn += "?" + values.Encode()
		}
		database, err = sql.Open("libsql", dsn)
	} else {
		database, err = sql.Open("sqlite", sqliteDsn(target))
	}
	if err != nil {
		return nil, err
	}
	if !IsRemote(target) {
		// sqlite serializes writers anyway, and a second connection to
		// ":memory:" would see a different empty database.
		database.SetMaxOpenConns(1)
	}

	_, err = database.Exec(Schema)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return database, nil
}

func sqliteDsn(path string) string {
	if path == ":memory:" {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
}
