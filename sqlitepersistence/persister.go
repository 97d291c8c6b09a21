package sqlitepersistence

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-json-experiment/json"
	_ "modernc.org/sqlite"
)

var (
	ErrNoTable  = errors.New("table name is not set")
	ErrBadTable = errors.New("table name must be a plain identifier")
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SqlitePersister keeps a whole collection in one SQLite table, one JSON
// payload per row, ordered by position.
type SqlitePersister[T any] struct {
	db    *sql.DB
	table string
}

// Open opens (or creates) the database at dsn and makes sure table exists.
func Open[T any](dsn, table string) (*SqlitePersister[T], error) {
	if table == "" {
		return nil, ErrNoTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: '%s'", ErrBadTable, table)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One writer at a time, SQLite serializes them anyway
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + table + ` (
		position INTEGER PRIMARY KEY,
		payload  TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create table '%s': %w", table, err)
	}

	return &SqlitePersister[T]{
		db:    db,
		table: table,
	}, nil
}

func (p *SqlitePersister[T]) Load(correlationID string) ([]T, error) {

	rows, err := p.db.Query(`SELECT payload FROM ` + p.table + ` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var payload string
		err := rows.Scan(&payload)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		var item T
		err = json.Unmarshal([]byte(payload), &item)
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", len(items), err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Save replaces the table contents with items in a single transaction.
func (p *SqlitePersister[T]) Save(correlationID string, items []T) (err error) {

	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(`DELETE FROM ` + p.table)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO ` + p.table + ` (position, payload) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode item %d: %w", i, err)
		}
		_, err = stmt.Exec(i, string(payload))
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (p *SqlitePersister[T]) Close() error {
	return p.db.Close()
}
