package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var hoursColumns = []any{"hours_id", "business_id", "day", "open", "closed"}

type HoursRepository struct {
	pool *pgxpool.Pool
}

func NewHoursRepository(pool *pgxpool.Pool) *HoursRepository {
	return &HoursRepository{pool: pool}
}

func scanHours(row pgx.CollectableRow) (model.Hours, error) {
	var (
		h          model.Hours
		businessID int64
	)
	err := row.Scan(&h.HoursID, &businessID, &h.Day, &h.Open, &h.Closed)
	h.Business = &model.BusinessRef{ID: businessID}
	return h, err
}

func selectHours(where goqu.Ex) sqlBuilder {
	ds := psql.From("hours").Select(hoursColumns...).Order(goqu.C("day").Asc(), goqu.C("hours_id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return ds.Prepared(true)
}

func (r *HoursRepository) FindByID(ctx context.Context, id int64) (*model.Hours, error) {
	hours, err := r.find(ctx, goqu.Ex{"hours_id": id})
	if err != nil || len(hours) == 0 {
		return nil, err
	}
	return &hours[0], nil
}

func (r *HoursRepository) FindAll(ctx context.Context) ([]model.Hours, error) {
	return r.find(ctx, nil)
}

func (r *HoursRepository) FindByBusiness(ctx context.Context, businessID int64) ([]model.Hours, error) {
	return r.find(ctx, goqu.Ex{"business_id": businessID})
}

func (r *HoursRepository) find(ctx context.Context, where goqu.Ex) ([]model.Hours, error) {
	query, args, err := build("select hours", selectHours(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hours: %w", err)
	}
	hours, err := pgx.CollectRows(rows, scanHours)
	if err != nil {
		return nil, fmt.Errorf("failed to collect hours: %w", err)
	}
	return hours, nil
}

// Save inserts h when HoursID is zero and updates it otherwise.
func (r *HoursRepository) Save(ctx context.Context, h *model.Hours) error {
	record := goqu.Record{
		"business_id": h.Business.ID,
		"day":         h.Day,
		"open":        h.Open,
		"closed":      h.Closed,
	}

	if h.HoursID == 0 {
		query, args, err := build("insert hours", psql.Insert("hours").
			Rows(record).
			Returning("hours_id").
			Prepared(true))
		if err != nil {
			return err
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&h.HoursID); err != nil {
			return fmt.Errorf("failed to insert hours: %w", err)
		}
		return nil
	}

	query, args, err := build("update hours", psql.Update("hours").
		Set(record).
		Where(goqu.C("hours_id").Eq(h.HoursID)).
		Prepared(true))
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("hours")
	}
	return nil
}

func (r *HoursRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := build("delete hours", psql.Delete("hours").
		Where(goqu.C("hours_id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("hours")
	}
	return nil
}

