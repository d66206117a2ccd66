package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var userColumns = []any{
	"user_id", "username", "password", "email", "phone_number",
	"first_name", "last_name", "register_datetime", "active", "role",
}

// UserRepository persists users and their favorite businesses.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.CollectableRow) (model.User, error) {
	var (
		u    model.User
		role string
	)
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Password,
		&u.Email,
		&u.PhoneNumber,
		&u.FirstName,
		&u.LastName,
		&u.RegisterDatetime,
		&u.Active,
		&role,
	)
	u.Role = model.Role(role)
	u.Favorites = []model.BusinessRef{}
	return u, err
}

func selectUsers(where goqu.Ex) sqlBuilder {
	ds := psql.From("users").Select(userColumns...).Order(goqu.C("user_id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return ds.Prepared(true)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, goqu.Ex{"user_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, goqu.Ex{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, goqu.Ex{"username": username})
}

// FindAll returns every user with favorites attached.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	query, args, err := build("select users", selectUsers(nil))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}

	favorites, err := r.favorites(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if refs, ok := favorites[users[i].UserID]; ok {
			users[i].Favorites = refs
		}
	}

	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, where goqu.Ex) (*model.User, error) {
	query, args, err := build("select user", selectUsers(where))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user, err := pgx.CollectOneRow(rows, scanUser)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect user: %w", err)
	}

	if user.Favorites, err = r.Favorites(ctx, user.UserID); err != nil {
		return nil, err
	}

	return &user, nil
}

// Save inserts u when UserID is zero and updates it otherwise.
// On insert the generated id and registration time are written back to u.
func (r *UserRepository) Save(ctx context.Context, u *model.User) error {
	record := goqu.Record{
		"username":     u.Username,
		"password":     u.Password,
		"email":        u.Email,
		"phone_number": u.PhoneNumber,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"active":       u.Active,
		"role":         string(u.Role.OrDefault()),
	}

	if u.UserID == 0 {
		query, args, err := build("insert user", psql.Insert("users").
			Rows(record).
			Returning("user_id", "register_datetime").
			Prepared(true))
		if err != nil {
			return err
		}
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.UserID, &u.RegisterDatetime); err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	}

	query, args, err := build("update user", psql.Update("users").
		Set(record).
		Where(goqu.C("user_id").Eq(u.UserID)).
		Returning("register_datetime").
		Prepared(true))
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, query, args...).Scan(&u.RegisterDatetime)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("users")
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete removes the user. Favorites and reviews go with it (ON DELETE CASCADE),
// owned businesses lose their owner.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := build("delete user", psql.Delete("users").
		Where(goqu.C("user_id").Eq(id)).
		Prepared(true))
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("users")
	}
	return nil
}

// Favorites lists the businesses a user marked as favorite.
func (r *UserRepository) Favorites(ctx context.Context, userID int64) ([]model.BusinessRef, error) {
	byUser, err := r.favorites(ctx, &userID)
	if err != nil {
		return nil, err
	}
	if refs, ok := byUser[userID]; ok {
		return refs, nil
	}
	return []model.BusinessRef{}, nil
}

func selectFavorites(userID *int64) sqlBuilder {
	ds := psql.From(goqu.T("user_favorites").As("f")).
		Join(goqu.T("businesses").As("b"), goqu.On(goqu.I("f.business_id").Eq(goqu.I("b.id")))).
		Select(
			goqu.I("f.user_id"),
			goqu.I("b.id"),
			goqu.I("b.business_name"),
			goqu.I("b.business_type"),
			goqu.I("b.email"),
		).
		Order(goqu.I("f.user_id").Asc(), goqu.I("b.id").Asc())
	if userID != nil {
		ds = ds.Where(goqu.I("f.user_id").Eq(*userID))
	}
	return ds.Prepared(true)
}

// favorites groups favorite refs by user id; a nil userID loads all of them.
func (r *UserRepository) favorites(ctx context.Context, userID *int64) (map[int64][]model.BusinessRef, error) {
	query, args, err := build("select favorites", selectFavorites(userID))
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]model.BusinessRef)
	for rows.Next() {
		var (
			owner int64
			ref   model.BusinessRef
		)
		if err := rows.Scan(&owner, &ref.ID, &ref.BusinessName, &ref.BusinessType, &ref.Email); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		byUser[owner] = append(byUser[owner], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	return byUser, nil
}

// AddFavorite links a business to a user. Adding the same pair twice is a no-op.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, businessID int64) error {
	query, args, err := build("insert favorite", psql.Insert("user_favorites").
		Rows(goqu.Record{"user_id": userID, "business_id": businessID}).
		OnConflict(goqu.DoNothing()).
		Prepared(true))
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unlinks a business from a user. Removing a missing pair is a no-op.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, businessID int64) error {
	query, args, err := build("delete favorite", psql.Delete("user_favorites").
		Where(goqu.Ex{"user_id": userID, "business_id": businessID}).
		Prepared(true))
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
