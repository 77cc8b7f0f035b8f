package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors shared by every entity repository. Domain services map
// these onto their own error vocabulary.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value violates a unique constraint")
	ErrInvalid   = errors.New("invalid data for persistence")
)

// DefaultPerPage is used when a caller passes a non-positive page size.
const DefaultPerPage = 15

// Criterion is one conjunct of a FindWhere query: field <op> value.
type Criterion struct {
	Field string
	Op    string
	Value interface{}
}

// Eq builds an equality criterion.
func Eq(field string, value interface{}) Criterion {
	return Criterion{Field: field, Op: "=", Value: value}
}

// Where builds a criterion with an explicit operator.
func Where(field, op string, value interface{}) Criterion {
	return Criterion{Field: field, Op: op, Value: value}
}

var allowedOps = map[string]struct{}{
	"=": {}, "!=": {}, "<>": {}, "<": {}, "<=": {}, ">": {}, ">=": {},
	"LIKE": {}, "ILIKE": {},
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
}

// CRUD is the uniform repository contract, polymorphic over the entity
// type. Entity repository interfaces embed it alongside their own queries.
type CRUD[T any] interface {
	All(ctx context.Context, columns ...string) ([]T, error)
	Paginate(ctx context.Context, page, perPage int, columns ...string) (*Page[T], error)
	Create(ctx context.Context, fields map[string]interface{}) (*T, error)
	Update(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Find(ctx context.Context, id uuid.UUID, columns ...string) (*T, error)
	FindBy(ctx context.Context, field string, value interface{}, columns ...string) (*T, error)
	FindAllBy(ctx context.Context, field string, value interface{}, columns ...string) ([]T, error)
	FindWhere(ctx context.Context, criteria []Criterion, columns ...string) ([]T, error)
}

// Base implements the uniform CRUD contract over one table. Entity
// repositories embed it and add their own queries on top.
type Base[T any] struct {
	pool    *pgxpool.Pool
	table   string
	columns []string
	colSet  map[string]struct{}
}

// NewBase creates a base repository for table with the given selectable
// columns. The column list doubles as the allow-list for every field name
// accepted from callers, so arbitrary input never reaches the SQL text.
func NewBase[T any](pool *pgxpool.Pool, table string, columns []string) *Base[T] {
	colSet := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		colSet[c] = struct{}{}
	}
	return &Base[T]{
		pool:    pool,
		table:   table,
		columns: columns,
		colSet:  colSet,
	}
}

// Pool exposes the underlying pool for entity-specific queries.
func (b *Base[T]) Pool() *pgxpool.Pool {
	return b.pool
}

// Table returns the table name.
func (b *Base[T]) Table() string {
	return b.table
}

// All returns every row, optionally column-projected.
func (b *Base[T]) All(ctx context.Context, columns ...string) ([]T, error) {
	sel, err := b.selectClause(columns)
	if err != nil {
		return nil, err
	}

	rows, err := b.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM %s", sel, b.table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", b.table, err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Paginate returns the 1-indexed page of rows plus total and page counts.
func (b *Base[T]) Paginate(ctx context.Context, page, perPage int, columns ...string) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	sel, err := b.selectClause(columns)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := b.pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", b.table)).Scan(&total); err != nil {
		return nil, fmt.Errorf("count %s: %w", b.table, err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		sel, b.table,
	)
	rows, err := b.pool.Query(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", b.table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &Page[T]{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Create inserts a row from a column->value mapping and returns the stored
// entity with its generated id and timestamps.
func (b *Base[T]) Create(ctx context.Context, fields map[string]interface{}) (*T, error) {
	query, args, err := b.insertQuery(fields)
	if err != nil {
		return nil, err
	}

	rows, err := b.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, b.mapPgError(err)
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, b.mapPgError(err)
	}

	return &entity, nil
}

// Update applies a partial field merge to the row with the given id.
// Returns ErrNotFound when no such row exists.
func (b *Base[T]) Update(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*T, error) {
	query, args, err := b.updateQuery(fields, id)
	if err != nil {
		return nil, err
	}

	rows, err := b.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, b.mapPgError(err)
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, b.mapPgError(err)
	}

	return &entity, nil
}

// Delete removes the row by id and reports rows removed (0 or 1).
// A missing row is not an error.
func (b *Base[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := b.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", b.table), id)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", b.table, err)
	}
	return tag.RowsAffected(), nil
}

// Find returns the entity by id, or nil when absent.
func (b *Base[T]) Find(ctx context.Context, id uuid.UUID, columns ...string) (*T, error) {
	return b.FindBy(ctx, "id", id, columns...)
}

// FindBy returns the first row matching field = value, or nil when absent.
func (b *Base[T]) FindBy(ctx context.Context, field string, value interface{}, columns ...string) (*T, error) {
	if err := b.checkColumn(field); err != nil {
		return nil, err
	}

	sel, err := b.selectClause(columns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1", sel, b.table, field)
	rows, err := b.pool.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", b.table, err)
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &entity, nil
}

// FindAllBy returns every row matching field = value, in storage order.
func (b *Base[T]) FindAllBy(ctx context.Context, field string, value interface{}, columns ...string) ([]T, error) {
	return b.FindWhere(ctx, []Criterion{Eq(field, value)}, columns...)
}

// FindWhere returns every row matching the conjunction of the criteria.
func (b *Base[T]) FindWhere(ctx context.Context, criteria []Criterion, columns ...string) ([]T, error) {
	sel, err := b.selectClause(columns)
	if err != nil {
		return nil, err
	}

	where, args, err := b.whereClause(criteria, 1)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", sel, b.table)
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := b.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", b.table, err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

func (b *Base[T]) checkColumn(field string) error {
	if _, ok := b.colSet[field]; !ok {
		return fmt.Errorf("%w: unknown column %q on %s", ErrInvalid, field, b.table)
	}
	return nil
}

func (b *Base[T]) selectClause(columns []string) (string, error) {
	if len(columns) == 0 {
		return strings.Join(b.columns, ", "), nil
	}
	for _, c := range columns {
		if err := b.checkColumn(c); err != nil {
			return "", err
		}
	}
	return strings.Join(columns, ", "), nil
}

func (b *Base[T]) insertQuery(fields map[string]interface{}) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to insert", ErrInvalid)
	}

	cols := sortedKeys(fields)
	placeholders := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, c := range cols {
		if err := b.checkColumn(c); err != nil {
			return "", nil, err
		}
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, fields[c])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		b.table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(b.columns, ", "),
	)
	return query, args, nil
}

func (b *Base[T]) updateQuery(fields map[string]interface{}, id uuid.UUID) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrInvalid)
	}

	cols := sortedKeys(fields)
	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for i, c := range cols {
		if err := b.checkColumn(c); err != nil {
			return "", nil, err
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
		args = append(args, fields[c])
	}

	if _, tracked := b.colSet["updated_at"]; tracked {
		if _, explicit := fields["updated_at"]; !explicit {
			sets = append(sets, "updated_at = now()")
		}
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		b.table,
		strings.Join(sets, ", "),
		len(args),
		strings.Join(b.columns, ", "),
	)
	return query, args, nil
}

func (b *Base[T]) whereClause(criteria []Criterion, startIdx int) (string, []interface{}, error) {
	if len(criteria) == 0 {
		return "", nil, nil
	}

	conds := make([]string, 0, len(criteria))
	args := make([]interface{}, 0, len(criteria))
	for i, c := range criteria {
		if err := b.checkColumn(c.Field); err != nil {
			return "", nil, err
		}
		op := strings.ToUpper(strings.TrimSpace(c.Op))
		if op == "" {
			op = "="
		}
		if _, ok := allowedOps[op]; !ok {
			return "", nil, fmt.Errorf("%w: unsupported operator %q", ErrInvalid, c.Op)
		}
		conds = append(conds, fmt.Sprintf("%s %s $%d", c.Field, op, startIdx+i))
		args = append(args, c.Value)
	}

	return strings.Join(conds, " AND "), args, nil
}

// mapPgError translates postgres constraint violations into the shared
// sentinel errors so services can treat them as validation conflicts.
func (b *Base[T]) mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%w: %s", ErrInvalid, pgErr.Message)
		}
	}
	return err
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
