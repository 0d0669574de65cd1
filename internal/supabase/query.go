package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Query accumulates PostgREST filters for one table operation. Filters apply
// to reads and to writes alike: an Update with an Eq/IsNull filter only
// touches matching rows, which is what gives conditional-write semantics.
type Query struct {
	c      *Client
	table  string
	params url.Values
}

func (q *Query) Select(cols string) *Query {
	q.params.Set("select", cols)
	return q
}

func (q *Query) Eq(col, val string) *Query {
	q.params.Add(col, "eq."+val)
	return q
}

func (q *Query) IsNull(col string) *Query {
	q.params.Add(col, "is.null")
	return q
}

func (q *Query) NotNull(col string) *Query {
	q.params.Add(col, "not.is.null")
	return q
}

func (q *Query) Order(col string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", col+"."+dir)
	return q
}

func (q *Query) path() string {
	return "/rest/v1/" + q.table
}

// Get fetches all matching rows into dest (a pointer to a slice).
func (q *Query) Get(ctx context.Context, dest any) error {
	b, err := q.c.do(ctx, http.MethodGet, q.path(), q.params, nil, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decode %s rows: %w", q.table, err)
	}
	return nil
}

// Single fetches the first matching row into dest, or ErrNotFound.
func (q *Query) Single(ctx context.Context, dest any) error {
	b, err := q.c.do(ctx, http.MethodGet, q.path(), q.params, nil, nil)
	if err != nil {
		return err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("decode %s rows: %w", q.table, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return fmt.Errorf("decode %s row: %w", q.table, err)
	}
	return nil
}

// Insert creates a row and, when dest is non-nil, decodes the created row back.
func (q *Query) Insert(ctx context.Context, payload, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	b, err := q.c.do(ctx, http.MethodPost, q.path(), q.params, headers, payload)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("decode inserted %s row: %w", q.table, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("insert into %s returned no rows", q.table)
	}
	return json.Unmarshal(rows[0], dest)
}

// Update patches all rows matching the accumulated filters and reports how
// many were touched. A zero count with an extra conditional filter means the
// guard lost the race, not that the row is missing.
func (q *Query) Update(ctx context.Context, payload any) (int, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	b, err := q.c.do(ctx, http.MethodPatch, q.path(), q.params, headers, payload)
	if err != nil {
		return 0, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return 0, fmt.Errorf("decode updated %s rows: %w", q.table, err)
	}
	return len(rows), nil
}

// Delete removes all rows matching the accumulated filters and reports how
// many were removed.
func (q *Query) Delete(ctx context.Context) (int, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	b, err := q.c.do(ctx, http.MethodDelete, q.path(), q.params, headers, nil)
	if err != nil {
		return 0, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return 0, fmt.Errorf("decode deleted %s rows: %w", q.table, err)
	}
	return len(rows), nil
}
