package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/Jacobbishopxy/herding-go/option"
)

// SQLiteStore is a durable Store backed by a SQLite database. Values
// are encoded as JSON, so V must round-trip through encoding/json.
type SQLiteStore[V any] struct {
	pool *sqlitex.Pool
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the kv table exists.
func NewSQLiteStore[V any](ctx context.Context, path string) (*SQLiteStore[V], error) {
	uri := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	pool, err := sqlitex.NewPool(uri, sqlitex.PoolOptions{
		PoolSize: 10,
	})
	if err != nil {
		return nil, err
	}
	s := &SQLiteStore[V]{pool: pool}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewTestStore returns an in-memory SQLiteStore torn down with the
// test.
func NewTestStore[V any](t testing.TB) *SQLiteStore[V] {
	pool, err := sqlitex.NewPool("file::memory:?mode=memory&cache=shared", sqlitex.PoolOptions{
		PoolSize: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	s := &SQLiteStore[V]{pool: pool}
	require.NoError(t, s.init(context.Background()))
	return s
}

// Close releases the connection pool.
func (s *SQLiteStore[V]) Close() error {
	return s.pool.Close()
}

func (s *SQLiteStore[V]) init(ctx context.Context) error {
	return s.borrow(ctx, func(conn *sqlite.Conn) error {
		return exec(conn, `CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`, nil)
	})
}

// borrow takes a connection from the pool for the duration of fn.
func (s *SQLiteStore[V]) borrow(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)
	return fn(conn)
}

// exec prepares, binds and steps a statement, handing any returned
// rows to onRow.
func exec(conn *sqlite.Conn, query string, bind func(*sqlite.Stmt), onRow ...func(*sqlite.Stmt) error) error {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Finalize()

	if bind != nil {
		bind(stmt)
	}
	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return err
		}
		if !hasRow {
			return nil
		}
		if len(onRow) == 0 {
			return fmt.Errorf("not expecting rows")
		}
		if err := onRow[0](stmt); err != nil {
			return err
		}
	}
}

// Put implements Store.
func (s *SQLiteStore[V]) Put(ctx context.Context, key string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	return s.borrow(ctx, func(conn *sqlite.Conn) error {
		return exec(conn,
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			func(stmt *sqlite.Stmt) {
				stmt.BindText(1, key)
				stmt.BindText(2, string(data))
			})
	})
}

// Get implements Store.
func (s *SQLiteStore[V]) Get(ctx context.Context, key string) (option.Option[V], error) {
	result := option.None[V]()
	err := s.borrow(ctx, func(conn *sqlite.Conn) error {
		return exec(conn,
			`SELECT value FROM kv WHERE key = ?`,
			func(stmt *sqlite.Stmt) {
				stmt.BindText(1, key)
			},
			func(stmt *sqlite.Stmt) error {
				var v V
				if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &v); err != nil {
					return fmt.Errorf("decode value: %w", err)
				}
				result = option.Some(v)
				return nil
			})
	})
	return result, err
}

// Delete implements Store.
func (s *SQLiteStore[V]) Delete(ctx context.Context, key string) error {
	return s.borrow(ctx, func(conn *sqlite.Conn) error {
		return exec(conn,
			`DELETE FROM kv WHERE key = ?`,
			func(stmt *sqlite.Stmt) {
				stmt.BindText(1, key)
			})
	})
}
