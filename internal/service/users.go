package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/lib/job"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const userInvalidMessage = "Username and email are required"

// enqueueTimeout bounds the welcome email enqueue so an unreachable Redis
// does not stall registration.
const enqueueTimeout = 2 * time.Second

type UserService struct {
	users      UserRepository
	businesses BusinessRepository
	jobs       TaskEnqueuer
	logger     *zerolog.Logger
}

// NewUserService wires the user service. jobs may be nil, in which case no
// welcome email is queued.
func NewUserService(users UserRepository, businesses BusinessRepository, jobs TaskEnqueuer, logger *zerolog.Logger) *UserService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &UserService{
		users:      users,
		businesses: businesses,
		jobs:       jobs,
		logger:     logger,
	}
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) FindAll(ctx context.Context) ([]model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Create registers u. The plain password in u is replaced by its hash.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if !isUserValid(u) {
		return errs.NewInvalidRequestError("user", userInvalidMessage)
	}

	u.UserID = 0
	if err := s.checkConflicts(ctx, u); err != nil {
		return err
	}

	return s.register(ctx, u)
}

// Update saves u. A zero or unknown UserID registers a new user instead,
// reported by the returned bool. An empty password keeps the stored hash
// and a nil active keeps the stored flag.
func (s *UserService) Update(ctx context.Context, u *model.User, active *bool) (bool, error) {
	if !isUserValid(u) {
		return false, errs.NewInvalidRequestError("user", userInvalidMessage)
	}

	var existing *model.User
	if u.UserID > 0 {
		found, err := s.users.FindByID(ctx, u.UserID)
		if err != nil {
			return false, fmt.Errorf("failed to look up user %d: %w", u.UserID, err)
		}
		existing = found
	}
	if existing == nil {
		u.UserID = 0
	}

	if err := s.checkConflicts(ctx, u); err != nil {
		return false, err
	}

	if existing == nil {
		return true, s.register(ctx, u)
	}

	if active == nil {
		u.Active = existing.Active
	}
	if u.Password == "" {
		u.Password = existing.Password
	} else if err := hashPassword(u); err != nil {
		return false, err
	}
	u.Role = u.Role.OrDefault()

	if err := s.users.Save(ctx, u); err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	u.Favorites = existing.Favorites
	return false, nil
}

func (s *UserService) Delete(ctx context.Context, u *model.User) error {
	if !isUserValid(u) {
		return errs.NewInvalidRequestError("user", userInvalidMessage)
	}
	if err := s.users.Delete(ctx, u.UserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Deactivate marks the user inactive without deleting anything.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	u, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}
	if !u.Active {
		return nil
	}

	u.Active = false
	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

func (s *UserService) Favorites(ctx context.Context, userID int64) ([]model.BusinessRef, error) {
	if _, err := s.mustFind(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.Favorites(ctx, userID)
}

func (s *UserService) AddFavorite(ctx context.Context, userID, businessID int64) error {
	if err := s.favoriteEnds(ctx, userID, businessID); err != nil {
		return err
	}
	if err := s.users.AddFavorite(ctx, userID, businessID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, businessID int64) error {
	if err := s.favoriteEnds(ctx, userID, businessID); err != nil {
		return err
	}
	if err := s.users.RemoveFavorite(ctx, userID, businessID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// favoriteEnds checks that both sides of a favorite link exist.
func (s *UserService) favoriteEnds(ctx context.Context, userID, businessID int64) error {
	if _, err := s.mustFind(ctx, userID); err != nil {
		return err
	}
	b, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to look up business %d: %w", businessID, err)
	}
	if b == nil {
		return errs.NewNotFoundError("Business not found", true, nil)
	}
	return nil
}

func (s *UserService) mustFind(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", id, err)
	}
	if u == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return u, nil
}

// checkConflicts rejects u when its username or email belongs to another user.
func (s *UserService) checkConflicts(ctx context.Context, u *model.User) error {
	other, err := s.users.FindByUsername(ctx, u.Username)
	if err != nil {
		return fmt.Errorf("failed to look up username: %w", err)
	}
	if other != nil && other.UserID != u.UserID {
		code := "USERNAME_TAKEN"
		return errs.NewConflictError("Username is already taken", true, &code)
	}

	other, err = s.users.FindByEmail(ctx, u.Email)
	if err != nil {
		return fmt.Errorf("failed to look up email: %w", err)
	}
	if other != nil && other.UserID != u.UserID {
		code := "EMAIL_TAKEN"
		return errs.NewConflictError("Email is already registered", true, &code)
	}

	return nil
}

// register persists a new user and queues the welcome email.
func (s *UserService) register(ctx context.Context, u *model.User) error {
	if err := hashPassword(u); err != nil {
		return err
	}
	u.Role = u.Role.OrDefault()
	if u.Favorites == nil {
		u.Favorites = []model.BusinessRef{}
	}

	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.enqueueWelcome(ctx, u)
	return nil
}

// enqueueWelcome is best effort: registration succeeds even when the
// queue is unreachable.
func (s *UserService) enqueueWelcome(ctx context.Context, u *model.User) {
	if s.jobs == nil {
		return
	}

	logger := s.loggerFor(ctx)

	task, err := job.NewWelcomeEmailTask(u.Email, u.FirstName, u.Username)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", u.UserID).Msg("failed to build welcome email task")
		return
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if _, err := s.jobs.EnqueueContext(enqueueCtx, task); err != nil {
		logger.Error().Err(err).Int64("user_id", u.UserID).Msg("failed to enqueue welcome email")
		return
	}

	logger.Info().Int64("user_id", u.UserID).Msg("welcome email queued")
}

// loggerFor prefers the request logger stored in ctx by the HTTP layer.
func (s *UserService) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

func hashPassword(u *model.User) error {
	if u.Password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return errs.NewInvalidRequestError("user", "Password must be at most 72 bytes")
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = string(hash)
	return nil
}
