// Package repo provides postgres access for reminders
package repo

import (
	"context"
	"time"

	perr "almanac/internal/platform/errors"

	"almanac/internal/modkit/repokit"
)

// Repo defines the repository contract for reminders
type Repo interface {
	Insert(ctx context.Context, row RowReminder) (time.Time, error)
	Upcoming(ctx context.Context, after time.Time, limit int) ([]RowReminder, error)
	Delete(ctx context.Context, id string) (bool, error)
	Due(ctx context.Context, at time.Time, limit int) ([]RowReminder, error)
	MarkDispatched(ctx context.Context, ids []string, at time.Time) (int64, error)
}

// RowReminder represents a reminder row from the database
type RowReminder struct {
	ID           string
	Label        string
	Date         string
	HourOrdinal  int
	Planet       string
	StartsAt     time.Time
	EndsAt       time.Time
	DispatchedAt *time.Time
	CreatedAt    time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowReminder) (time.Time, error) {
	const sql = `
insert into reminders (id, label, for_date, hour_ordinal, planet, starts_at, ends_at)
values ($1, $2, $3, $4, $5, $6, $7)
returning created_at
`
	var createdAt time.Time
	err := r.q.QueryRow(ctx, sql,
		row.ID, row.Label, row.Date, row.HourOrdinal, row.Planet, row.StartsAt, row.EndsAt,
	).Scan(&createdAt)
	if err != nil {
		return time.Time{}, perr.FromPostgres(err, "insert reminder")
	}
	return createdAt, nil
}

func (r *queries) Upcoming(ctx context.Context, after time.Time, limit int) ([]RowReminder, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, label, for_date::text, hour_ordinal, planet, starts_at, ends_at, dispatched_at, created_at
from reminders
where dispatched_at is null
and ends_at >= $1
order by starts_at asc
limit $2
`
	return r.scanMany(ctx, sql, after, limit)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	const sql = `delete from reminders where id = $1`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return false, perr.FromPostgres(err, "delete reminder")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *queries) Due(ctx context.Context, at time.Time, limit int) ([]RowReminder, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	const sql = `
select id::text, label, for_date::text, hour_ordinal, planet, starts_at, ends_at, dispatched_at, created_at
from reminders
where dispatched_at is null
and starts_at <= $1
order by starts_at asc
limit $2
`
	return r.scanMany(ctx, sql, at, limit)
}

func (r *queries) MarkDispatched(ctx context.Context, ids []string, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const sql = `
update reminders
set dispatched_at = $2
where id = any($1::uuid[])
and dispatched_at is null
`
	tag, err := r.q.Exec(ctx, sql, ids, at)
	if err != nil {
		return 0, perr.FromPostgres(err, "mark reminders dispatched")
	}
	return tag.RowsAffected(), nil
}

func (r *queries) scanMany(ctx context.Context, sql string, args ...any) ([]RowReminder, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "query reminders")
	}
	defer rows.Close()
	var out []RowReminder
	for rows.Next() {
		var rr RowReminder
		if err := rows.Scan(
			&rr.ID,
			&rr.Label,
			&rr.Date,
			&rr.HourOrdinal,
			&rr.Planet,
			&rr.StartsAt,
			&rr.EndsAt,
			&rr.DispatchedAt,
			&rr.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan reminder")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
