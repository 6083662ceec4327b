package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Predicate is one independent WHERE condition. Conditions use "?" as the
// placeholder; numbering happens when predicates are folded together.
type Predicate struct {
	cond string
	args []any
}

// Where builds a predicate from a condition and its arguments.
func Where(cond string, args ...any) Predicate {
	return Predicate{cond: cond, args: args}
}

func (p Predicate) String() string { return p.cond }

// Args returns the values bound to the predicate placeholders.
func (p Predicate) Args() []any { return p.args }

// Search matches term as a case-insensitive substring of any of columns.
// LIKE wildcards in term are matched literally.
func Search(term string, columns ...string) Predicate {
	pattern := "%" + escapeLike(term) + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = col + ` ILIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	cond := strings.Join(parts, " OR ")
	if len(parts) > 1 {
		cond = "(" + cond + ")"
	}
	return Predicate{cond: cond, args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// whereClause folds preds into a single AND-ed WHERE clause whose
// placeholders start at $start. It returns the next free placeholder index.
func whereClause(preds []Predicate, start int) (string, []any, int) {
	if len(preds) == 0 {
		return "", nil, start
	}

	var (
		clauses = make([]string, 0, len(preds))
		args    []any
		idx     = start
	)
	for _, p := range preds {
		var b strings.Builder
		for _, r := range p.cond {
			if r == '?' {
				fmt.Fprintf(&b, "$%d", idx)
				idx++
				continue
			}
			b.WriteRune(r)
		}
		clauses = append(clauses, b.String())
		args = append(args, p.args...)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, idx
}

// listing runs the count and page queries of one collection off the same
// predicate composition.
type listing[T any] struct {
	pool    pgxPool
	name    string
	from    string
	columns string
	order   string
	scan    func(row pgx.Row) (T, error)
}

func (l listing[T]) count(ctx context.Context, preds []Predicate) (int64, error) {
	where, args, _ := whereClause(preds, 1)
	query := "SELECT COUNT(*) FROM " + l.from + where

	var total int64
	if err := l.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", l.name, err)
	}
	return total, nil
}

func (l listing[T]) page(ctx context.Context, preds []Predicate, limit, offset int) ([]T, error) {
	where, args, idx := whereClause(preds, 1)

	var query strings.Builder
	query.WriteString("SELECT ")
	query.WriteString(l.columns)
	query.WriteString(" FROM ")
	query.WriteString(l.from)
	query.WriteString(where)
	query.WriteString(" ORDER BY ")
	query.WriteString(l.order)
	fmt.Fprintf(&query, " LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := l.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.name, err)
	}
	defer rows.Close()

	items := make([]T, 0, limit)
	for rows.Next() {
		item, err := l.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", l.name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", l.name, err)
	}
	return items, nil
}

// groupBy runs a batch query whose first selected column is the owner id and
// groups the scanned rows by it.
func groupBy[T any](ctx context.Context, pool pgxPool, name, query string, scan func(row pgx.Row) (int64, T, error), args ...any) (map[int64][]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer rows.Close()

	out := make(map[int64][]T)
	for rows.Next() {
		owner, item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		out[owner] = append(out[owner], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return out, nil
}
