package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kristofferme/leader/internal/model"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownField       = errors.New("unknown field")
	ErrConflict           = errors.New("record already exists")
	ErrNoFields           = errors.New("no fields to update")
	ErrEmptyPredicate     = errors.New("delete requires at least one filter")
)

// Filter matches records whose Field equals Value.
type Filter struct {
	Field string
	Value any
}

type ListOptions struct {
	OrderBy string
	Desc    bool
	Limit   int
	Where   []Filter
}

// Fields is a partial update keyed by column name.
type Fields map[string]any

// Repository is the persistence contract shared by every record collection.
// Ordering always falls back to the id, which follows creation order.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) (string, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]*T, error)
	First(ctx context.Context, opts ListOptions) (*T, error)
	Update(ctx context.Context, id string, fields Fields) error
	Toggle(ctx context.Context, id string, field string) (*T, error)
	Alternate(ctx context.Context, id string, field string, from, to string) (*T, error)
	Delete(ctx context.Context, id string) error
	DeleteWhere(ctx context.Context, filters ...Filter) (int64, error)
}

type entity[T any] interface {
	*T
	Meta() *model.Record
}

type collection[T any, P entity[T]] struct {
	db      *sqlx.DB
	table   string
	columns []string
	mutable []string
	now     func() time.Time
}

func newCollection[T any, P entity[T]](db *sqlx.DB, table string, columns []string, mutable ...string) *collection[T, P] {
	return &collection[T, P]{
		db:      db,
		table:   table,
		columns: append([]string{"id", "created_at"}, columns...),
		mutable: mutable,
		now:     time.Now,
	}
}

func (c *collection[T, P]) Create(ctx context.Context, record *T) (string, error) {
	if c.db == nil {
		return "", c.fail("create", nil)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}

	meta := P(record).Meta()
	meta.ID = id.String()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = c.now().UTC()
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		c.table,
		strings.Join(c.columns, ", "),
		strings.Join(c.columns, ", :"),
	)

	_, err = c.db.NamedExecContext(ctx, query, record)
	if err != nil {
		meta.ID = ""
		if isUniqueViolation(err) {
			return "", fmt.Errorf("create %s: %w", c.table, ErrConflict)
		}
		return "", c.fail("create", err)
	}

	return meta.ID, nil
}

func (c *collection[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return c.First(ctx, ListOptions{Where: []Filter{{Field: "id", Value: id}}})
}

func (c *collection[T, P]) First(ctx context.Context, opts ListOptions) (*T, error) {
	opts.Limit = 1
	records, err := c.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// List returns matching records. A row that cannot be decoded makes the whole
// collection fall back to empty rather than failing the caller.
func (c *collection[T, P]) List(ctx context.Context, opts ListOptions) ([]*T, error) {
	if c.db == nil {
		return nil, c.fail("list", nil)
	}

	query, args, err := c.selectQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, c.fail("list", err)
	}
	defer rows.Close()

	records := []*T{}
	for rows.Next() {
		record := new(T)
		err = rows.StructScan(P(record))
		if err != nil {
			slog.Warn("stored record could not be decoded, using empty collection",
				"table", c.table,
				"error", err,
			)
			return []*T{}, nil
		}
		records = append(records, record)
	}

	err = rows.Err()
	if err != nil {
		return nil, c.fail("list", err)
	}

	return records, nil
}

func (c *collection[T, P]) Update(ctx context.Context, id string, fields Fields) error {
	if c.db == nil {
		return c.fail("update", nil)
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if !slices.Contains(c.mutable, key) {
			return fmt.Errorf("%w: %s.%s is not mutable", ErrUnknownField, c.table, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for _, key := range keys {
		sets = append(sets, key+" = ?")
		args = append(args, fields[key])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", c.table, strings.Join(sets, ", "))

	result, err := c.db.ExecContext(ctx, c.db.Rebind(query), args...)
	if err != nil {
		return c.fail("update", err)
	}

	return c.affected(result.RowsAffected())
}

// Toggle negates a boolean field in one statement and returns the stored
// record, so concurrent toggles never overwrite each other.
func (c *collection[T, P]) Toggle(ctx context.Context, id string, field string) (*T, error) {
	return c.updateReturning(ctx, "toggle", id, field, fmt.Sprintf("NOT %s", field))
}

// Alternate sets a text field to `to` when it currently holds `from`, and to
// `from` otherwise, in one statement.
func (c *collection[T, P]) Alternate(ctx context.Context, id string, field string, from, to string) (*T, error) {
	expr := fmt.Sprintf("CASE WHEN %s = ? THEN ? ELSE ? END", field)
	return c.updateReturning(ctx, "alternate", id, field, expr, from, to, from)
}

func (c *collection[T, P]) updateReturning(ctx context.Context, op, id, field, expr string, args ...any) (*T, error) {
	if c.db == nil {
		return nil, c.fail(op, nil)
	}
	if !slices.Contains(c.mutable, field) {
		return nil, fmt.Errorf("%w: %s.%s is not mutable", ErrUnknownField, c.table, field)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s WHERE id = ? RETURNING %s",
		c.table, field, expr, strings.Join(c.columns, ", "))
	args = append(args, id)

	record := new(T)
	err := c.db.QueryRowxContext(ctx, c.db.Rebind(query), args...).StructScan(P(record))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, c.fail(op, err)
	}

	return record, nil
}

func (c *collection[T, P]) Delete(ctx context.Context, id string) error {
	if c.db == nil {
		return c.fail("delete", nil)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", c.table)
	result, err := c.db.ExecContext(ctx, c.db.Rebind(query), id)
	if err != nil {
		return c.fail("delete", err)
	}

	return c.affected(result.RowsAffected())
}

func (c *collection[T, P]) DeleteWhere(ctx context.Context, filters ...Filter) (int64, error) {
	if c.db == nil {
		return 0, c.fail("delete", nil)
	}
	if len(filters) == 0 {
		return 0, ErrEmptyPredicate
	}

	where, args, err := c.where(filters)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("DELETE FROM %s%s", c.table, where)
	result, err := c.db.ExecContext(ctx, c.db.Rebind(query), args...)
	if err != nil {
		return 0, c.fail("delete", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, c.fail("delete", err)
	}

	return rows, nil
}

func (c *collection[T, P]) selectQuery(opts ListOptions) (string, []any, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(c.columns, ", "), c.table)

	where, args, err := c.where(opts.Where)
	if err != nil {
		return "", nil, err
	}
	b.WriteString(where)

	switch {
	case opts.OrderBy == "":
		b.WriteString(" ORDER BY id ASC")
	case !slices.Contains(c.columns, opts.OrderBy):
		return "", nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, c.table, opts.OrderBy)
	default:
		dir := "ASC"
		if opts.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s, id %s", opts.OrderBy, dir, dir)
	}

	if opts.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", opts.Limit)
	}

	return c.db.Rebind(b.String()), args, nil
}

func (c *collection[T, P]) where(filters []Filter) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		if !slices.Contains(c.columns, f.Field) {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, c.table, f.Field)
		}
		clauses = append(clauses, f.Field+" = ?")
		args = append(args, f.Value)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func (c *collection[T, P]) affected(rows int64, err error) error {
	if err != nil {
		return c.fail("rows affected", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *collection[T, P]) fail(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s %s: %w", op, c.table, ErrStorageUnavailable)
	}
	return fmt.Errorf("%s %s: %w: %w", op, c.table, ErrStorageUnavailable, err)
}
