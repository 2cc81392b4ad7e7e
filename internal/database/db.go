package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Store namespace tables.  One table per entity type keeps the namespaces
// disjoint: an id reused across entity types can never collide.
const (
	TableEvents        = "events"
	TableTickets       = "tickets"
	TableUsers         = "users"
	TableMembers       = "members"
	TableContributions = "contributions"
	TableInvestments   = "investments"
	TableGroups        = "chama_groups"
)

var storeTables = []string{
	TableEvents,
	TableTickets,
	TableUsers,
	TableMembers,
	TableContributions,
	TableInvestments,
	TableGroups,
}

// EnsureSchema creates the namespace tables if they do not exist.  Every
// table has the same shape: the record id, a seq column that fixes
// first-insert iteration order (an overwrite keeps the row's seq), and the
// JSON document itself.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range storeTables {
		stmt := "CREATE TABLE IF NOT EXISTS `" + table + "` (" +
			"id VARCHAR(64) NOT NULL PRIMARY KEY," +
			"seq BIGINT UNSIGNED NOT NULL AUTO_INCREMENT," +
			"doc JSON NOT NULL," +
			"UNIQUE KEY (seq)" +
			") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
	}
	return nil
}
