package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// table maps one entity onto one table. dest lists scan targets in column
// order starting with id; values lists the non-id column values.
type table[T any] struct {
	name     string
	columns  []string
	dest     func(*T) []any
	values   func(T) []any
	id       func(T) int64
	notFound error
}

func (t table[T]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t table[T]) scan(row pgx.CollectableRow) (T, error) {
	var out T
	err := row.Scan(t.dest(&out)...)
	return out, err
}

func (t table[T]) get(ctx context.Context, db *database.DB, id int64, forUpdate bool) (T, error) {
	query := t.selectSQL() + " WHERE id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	rows, err := GetQuerier(ctx, db).Query(ctx, query, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("query %s: %w", t.name, err)
	}
	out, err := pgx.CollectOneRow(rows, t.scan)
	if err != nil {
		var zero T
		return zero, notFound(err, t.notFound)
	}
	return out, nil
}

func (t table[T]) list(ctx context.Context, db *database.DB, where string, args ...any) ([]T, error) {
	query := t.selectSQL()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id"

	rows, err := GetQuerier(ctx, db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.name, err)
	}
	out, err := pgx.CollectRows(rows, t.scan)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (t table[T]) create(ctx context.Context, db *database.DB, row T) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(t.columns, ", "), placeholders(1, len(t.columns)))

	var id int64
	if err := GetQuerier(ctx, db).QueryRow(ctx, query, t.values(row)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return id, nil
}

func (t table[T]) update(ctx context.Context, db *database.DB, row T) error {
	sets := make([]string, len(t.columns))
	for i, c := range t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", t.name, strings.Join(sets, ", "))

	args := append([]any{t.id(row)}, t.values(row)...)
	tag, err := GetQuerier(ctx, db).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.name, err)
	}
	if tag.RowsAffected() != 1 {
		return t.notFound
	}
	return nil
}

// insertAll writes rows with their ids in one batch and moves the identity
// sequence past the highest id.
func (t table[T]) insertAll(ctx context.Context, db *database.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	query := fmt.Sprintf("INSERT INTO %s (id, %s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), placeholders(1, len(t.columns)+1))

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, append([]any{t.id(row)}, t.values(row)...)...)
	}
	batch.Queue(fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", t.name, t.name))

	conn := GetQuerier(ctx, db)
	sender, ok := conn.(interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	})
	if !ok {
		return fmt.Errorf("seed %s: querier cannot send batches", t.name)
	}
	if err := sender.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed %s: %w", t.name, err)
	}
	return nil
}

func placeholders(from, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(p, ", ")
}
