// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated payloads from the handlers, applies the shape predicates,
// reference checks and natural key checks, and calls the repositories
// to persist the data.
//
// Every service speaks the errs taxonomy: invalid requests are 400,
// missing path resources 404 and natural key clashes 409.
package service

import (
	"github.com/deppfellow/bizdir/internal/lib/job"
	"github.com/deppfellow/bizdir/internal/repository"
	"github.com/deppfellow/bizdir/internal/server"
)

type Services struct {
	Users      *UserService
	Businesses *BusinessService
	Hours      *HoursService
	Reviews    *ReviewService
	Posts      *PostService
	Job        *job.JobService
}

// NewServices builds every service on top of the pgx repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Users:      NewUserService(repos.Users, repos.Businesses, jobs, s.Logger),
		Businesses: NewBusinessService(repos.Businesses, repos.Users, repos.Hours, repos.Reviews, repos.Posts),
		Hours:      NewHoursService(repos.Hours, repos.Businesses),
		Reviews:    NewReviewService(repos.Reviews, repos.Businesses, repos.Users),
		Posts:      NewPostService(repos.Posts, repos.Businesses),
		Job:        s.Job,
	}, nil
}
