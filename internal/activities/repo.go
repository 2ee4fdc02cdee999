package activities

import (
	"context"
	"errors"
	"time"

	"github.com/strideworks/recap/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrActivityNotFound = errors.New("activity not found")

type ListParams struct {
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, activity *Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if activity.Type == "" || activity.StartedAt.IsZero() {
		return nil, errors.New("activity type or start timestamp empty")
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO activity (type, name, started_at, duration_seconds, distance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		activity.Type,
		activity.Name,
		activity.StartedAt,
		activity.DurationSeconds,
		activity.Distance,
	).Scan(&activity.ID)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("activity.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, type, name, started_at, duration_seconds, distance
		FROM activity
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrActivityNotFound
	}

	var activity Activity
	if err := rows.Scan(
		&activity.ID,
		&activity.Type,
		&activity.Name,
		&activity.StartedAt,
		&activity.DurationSeconds,
		&activity.Distance,
	); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM activity WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Activity, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activity`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(ctx, `
		SELECT id, type, name, started_at, duration_seconds, distance
		FROM activity
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := scanActivities(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListRange returns all activities started within [from, to], ascending.
func (r *Repo) ListRange(ctx context.Context, from, to time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("range.from", from.Format(time.RFC3339)),
		attribute.String("range.to", to.Format(time.RFC3339)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, type, name, started_at, duration_seconds, distance
		FROM activity
		WHERE started_at >= $1 AND started_at <= $2
		ORDER BY started_at ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]Activity, error) {
	var list []Activity
	for rows.Next() {
		var activity Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.Name,
			&activity.StartedAt,
			&activity.DurationSeconds,
			&activity.Distance,
		); err != nil {
			return nil, err
		}
		list = append(list, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
