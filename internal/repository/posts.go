package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var postColumns = []any{"post_id", "business_id", "created_time", "post_type", "body"}

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.CollectableRow) (model.Post, error) {
	var (
		p          model.Post
		businessID int64
	)
	err := row.Scan(&p.PostID, &businessID, &p.CreatedTime, &p.PostType, &p.Body)
	p.Business = &model.BusinessRef{ID: businessID}
	return p, err
}

// selectPosts orders newest first.
func selectPosts(where goqu.Ex) sqlBuilder {
	ds := psql.From("posts").Select(postColumns...).Order(goqu.C("created_time").Desc(), goqu.C("post_id").Desc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return ds.Prepared(true)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	posts, err := r.find(ctx, goqu.Ex{"post_id": id})
	if err != nil || len(posts) == 0 {
		return nil, err
	}
	return &posts[0], nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	return r.find(ctx, nil)
}

func (r *PostRepository) FindByBusiness(ctx context.Context, businessID int64) ([]model.Post, error) {
	return r.find(ctx, goqu.Ex{"business_id": businessID})
}

func (r *PostRepository) find(ctx context.Context, where goqu.Ex) ([]model.Post, error) {
	query, args, err := build("select posts", selectPosts(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}
	return posts, nil
}

// Save inserts p when PostID is zero and updates it otherwise. The creation
// time is assigned by the database and never changes.
func (r *PostRepository) Save(ctx context.Context, p *model.Post) error {
	record := goqu.Record{
		"business_id": p.Business.ID,
		"post_type":   p.PostType,
		"body":        p.Body,
	}

	if p.PostID == 0 {
		query, args, err := build("insert post", psql.Insert("posts").
			Rows(record).
			Returning("post_id", "created_time").
			Prepared(true))
		if err != nil {
			return err
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.PostID, &p.CreatedTime); err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		return nil
	}

	query, args, err := build("update post", psql.Update("posts").
		Set(record).
		Where(goqu.C("post_id").Eq(p.PostID)).
		Prepared(true))
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("posts")
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := build("delete post", psql.Delete("posts").
		Where(goqu.C("post_id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("posts")
	}
	return nil
}
