package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BusinessRepository persists businesses. Reviews, hours and posts are
// loaded through their own repositories.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func scanBusiness(row pgx.CollectableRow) (model.Business, error) {
	var (
		b             model.Business
		ownerID       *int64
		ownerUsername *string
	)
	err := row.Scan(
		&b.ID,
		&b.BusinessName,
		&b.BusinessType,
		&b.Email,
		&b.Location,
		&b.Active,
		&ownerID,
		&ownerUsername,
		&b.RegisterDatetime,
	)
	if ownerID != nil {
		b.Owner = &model.UserRef{UserID: *ownerID}
		if ownerUsername != nil {
			b.Owner.Username = *ownerUsername
		}
	}
	b.Reviews = []model.Review{}
	b.Hours = []model.Hours{}
	b.Posts = []model.Post{}
	return b, err
}

// selectBusinesses joins the owner so the owner ref carries a username.
func selectBusinesses(where goqu.Ex) sqlBuilder {
	ds := psql.From(goqu.T("businesses").As("b")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("b.owner_id").Eq(goqu.I("u.user_id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.business_name"),
			goqu.I("b.business_type"),
			goqu.I("b.email"),
			goqu.I("b.location"),
			goqu.I("b.active"),
			goqu.I("b.owner_id"),
			goqu.I("u.username"),
			goqu.I("b.register_datetime"),
		).
		Order(goqu.I("b.id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return ds.Prepared(true)
}

func (r *BusinessRepository) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	return r.findOne(ctx, goqu.Ex{"b.id": id})
}

func (r *BusinessRepository) FindByEmail(ctx context.Context, email string) (*model.Business, error) {
	return r.findOne(ctx, goqu.Ex{"b.email": email})
}

func (r *BusinessRepository) FindByName(ctx context.Context, name string) (*model.Business, error) {
	return r.findOne(ctx, goqu.Ex{"b.business_name": name})
}

func (r *BusinessRepository) FindAll(ctx context.Context) ([]model.Business, error) {
	return r.findMany(ctx, nil)
}

func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	return r.findMany(ctx, goqu.Ex{"b.owner_id": ownerID})
}

func (r *BusinessRepository) findOne(ctx context.Context, where goqu.Ex) (*model.Business, error) {
	query, args, err := build("select business", selectBusinesses(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query business: %w", err)
	}
	business, err := pgx.CollectOneRow(rows, scanBusiness)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect business: %w", err)
	}
	return &business, nil
}

func (r *BusinessRepository) findMany(ctx context.Context, where goqu.Ex) ([]model.Business, error) {
	query, args, err := build("select businesses", selectBusinesses(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	businesses, err := pgx.CollectRows(rows, scanBusiness)
	if err != nil {
		return nil, fmt.Errorf("failed to collect businesses: %w", err)
	}
	return businesses, nil
}

// Save inserts b when ID is zero and updates it otherwise.
func (r *BusinessRepository) Save(ctx context.Context, b *model.Business) error {
	var ownerID *int64
	if b.Owner.Present() {
		ownerID = &b.Owner.UserID
	}

	record := goqu.Record{
		"business_name": b.BusinessName,
		"business_type": b.BusinessType,
		"email":         b.Email,
		"location":      b.Location,
		"active":        b.Active,
		"owner_id":      ownerID,
	}

	if b.ID == 0 {
		query, args, err := build("insert business", psql.Insert("businesses").
			Rows(record).
			Returning("id", "register_datetime").
			Prepared(true))
		if err != nil {
			return err
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.RegisterDatetime); err != nil {
			return fmt.Errorf("failed to insert business: %w", err)
		}
		return nil
	}

	query, args, err := build("update business", psql.Update("businesses").
		Set(record).
		Where(goqu.C("id").Eq(b.ID)).
		Returning("register_datetime").
		Prepared(true))
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, query, args...).Scan(&b.RegisterDatetime)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("businesses")
	}
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}
	return nil
}

// businessChildren are removed before the business row, in this order.
var businessChildren = []string{"user_favorites", "hours", "reviews", "posts"}

// deleteBusinessQueries returns the child deletes followed by the delete
// of the business row itself.
func deleteBusinessQueries(id int64) []*goqu.DeleteDataset {
	queries := make([]*goqu.DeleteDataset, 0, len(businessChildren)+1)
	for _, table := range businessChildren {
		queries = append(queries, psql.Delete(table).Where(goqu.C("business_id").Eq(id)).Prepared(true))
	}
	return append(queries, psql.Delete("businesses").Where(goqu.C("id").Eq(id)).Prepared(true))
}

// execer is the part of pgx.Tx used by deleteBusiness.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Delete removes a business together with everything that points at it,
// in one transaction.
func (r *BusinessRepository) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return deleteBusiness(ctx, tx, id)
	})
}

func deleteBusiness(ctx context.Context, tx execer, id int64) error {
	var tag pgconn.CommandTag
	for _, q := range deleteBusinessQueries(id) {
		query, args, err := build("delete business", q)
		if err != nil {
			return err
		}
		if tag, err = tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete business: %w", err)
		}
	}
	// tag belongs to the last statement, the business row.
	if tag.RowsAffected() == 0 {
		return notFound("businesses")
	}
	return nil
}
