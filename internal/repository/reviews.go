package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func scanReview(row pgx.CollectableRow) (model.Review, error) {
	var (
		rv         model.Review
		businessID int64
		userID     int64
		username   *string
	)
	err := row.Scan(&rv.ID, &businessID, &userID, &username, &rv.Rating, &rv.Review)
	rv.Business = &model.BusinessRef{ID: businessID}
	rv.User = &model.UserRef{UserID: userID}
	if username != nil {
		rv.User.Username = *username
	}
	return rv, err
}

func selectReviews(where goqu.Ex) sqlBuilder {
	ds := psql.From(goqu.T("reviews").As("r")).
		LeftJoin(goqu.T("users").As("u"), goqu.On(goqu.I("r.user_id").Eq(goqu.I("u.user_id")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.business_id"),
			goqu.I("r.user_id"),
			goqu.I("u.username"),
			goqu.I("r.rating"),
			goqu.I("r.review"),
		).
		Order(goqu.I("r.id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return ds.Prepared(true)
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	reviews, err := r.find(ctx, goqu.Ex{"r.id": id})
	if err != nil || len(reviews) == 0 {
		return nil, err
	}
	return &reviews[0], nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	return r.find(ctx, nil)
}

func (r *ReviewRepository) FindByBusiness(ctx context.Context, businessID int64) ([]model.Review, error) {
	return r.find(ctx, goqu.Ex{"r.business_id": businessID})
}

func (r *ReviewRepository) FindByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	return r.find(ctx, goqu.Ex{"r.user_id": userID})
}

func (r *ReviewRepository) find(ctx context.Context, where goqu.Ex) ([]model.Review, error) {
	query, args, err := build("select reviews", selectReviews(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	reviews, err := pgx.CollectRows(rows, scanReview)
	if err != nil {
		return nil, fmt.Errorf("failed to collect reviews: %w", err)
	}
	return reviews, nil
}

// Save inserts rv when ID is zero. Updates only touch rating and text.
func (r *ReviewRepository) Save(ctx context.Context, rv *model.Review) error {
	if rv.ID == 0 {
		query, args, err := build("insert review", psql.Insert("reviews").
			Rows(goqu.Record{
				"business_id": rv.Business.ID,
				"user_id":     rv.User.UserID,
				"rating":      rv.Rating,
				"review":      rv.Review,
			}).
			Returning("id").
			Prepared(true))
		if err != nil {
			return err
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&rv.ID); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
		return nil
	}

	query, args, err := build("update review", psql.Update("reviews").
		Set(goqu.Record{"rating": rv.Rating, "review": rv.Review}).
		Where(goqu.C("id").Eq(rv.ID)).
		Prepared(true))
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("reviews")
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := build("delete review", psql.Delete("reviews").
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("reviews")
	}
	return nil
}
