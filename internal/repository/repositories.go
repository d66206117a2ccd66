package repository

import (
	"github.com/deppfellow/bizdir/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the pgx pool owned by the server.
type Repositories struct {
	Users      *UserRepository
	Businesses *BusinessRepository
	Hours      *HoursRepository
	Reviews    *ReviewRepository
	Posts      *PostRepository
}

// NewRepositories constructs the repository container from s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return &Repositories{
		Users:      NewUserRepository(pool),
		Businesses: NewBusinessRepository(pool),
		Hours:      NewHoursRepository(pool),
		Reviews:    NewReviewRepository(pool),
		Posts:      NewPostRepository(pool),
	}
}
