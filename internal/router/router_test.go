package router_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/bizdir/internal/config"
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/handler"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/router"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/deppfellow/bizdir/internal/testutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type app struct {
	users      *testutil.MockUserRepository
	businesses *testutil.MockBusinessRepository
	hours      *testutil.MockHoursRepository
	reviews    *testutil.MockReviewRepository
	posts      *testutil.MockPostRepository
	e          *echo.Echo
}

func newApp(t *testing.T) *app {
	t.Helper()

	a := &app{
		users:      new(testutil.MockUserRepository),
		businesses: new(testutil.MockBusinessRepository),
		hours:      new(testutil.MockHoursRepository),
		reviews:    new(testutil.MockReviewRepository),
		posts:      new(testutil.MockPostRepository),
	}

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
	}
	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	services := &service.Services{
		Users:      service.NewUserService(a.users, a.businesses, nil, &logger),
		Businesses: service.NewBusinessService(a.businesses, a.users, a.hours, a.reviews, a.posts),
		Hours:      service.NewHoursService(a.hours, a.businesses),
		Reviews:    service.NewReviewService(a.reviews, a.businesses, a.users),
		Posts:      service.NewPostService(a.posts, a.businesses),
	}

	a.e = router.NewRouter(s, handler.NewHandlers(s, services))
	return a
}

func (a *app) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetUserByID(t *testing.T) {
	t.Run("negative id is rejected before the service", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodGet, "/users/id/-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id", decodeError(t, rec).Errors[0].Field)
		a.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("non numeric id", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodGet, "/users/id/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("found user hides the password", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)

		rec := a.do(http.MethodGet, "/users/id/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"jdoe"`)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing user", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

		rec := a.do(http.MethodGet, "/users/id/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeError(t, rec).Message)
	})
}

func TestGetUserByEmailMiss(t *testing.T) {
	a := newApp(t)
	a.users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	rec := a.do(http.MethodGet, "/users/email/nobody@example.com", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	a.users.AssertExpectations(t)
}

func TestCreateUser(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/users", `{"email":"jdoe@example.com","password":"secret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "USER_INVALID", decodeError(t, rec).Code)
		a.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/users", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(nil, nil)
		a.users.On("FindByEmail", mock.Anything, "jdoe@example.com").Return(nil, nil)
		a.users.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.User).UserID = 7
			}).
			Return(nil)

		rec := a.do(http.MethodPost, "/users", `{"username":"jdoe","email":"jdoe@example.com","password":"secret"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var u model.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
		assert.Equal(t, int64(7), u.UserID)
		assert.Equal(t, model.RoleUser, u.Role)
		assert.True(t, u.Active)
	})

	t.Run("unique violation from the database", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(nil, nil)
		a.users.On("FindByEmail", mock.Anything, "jdoe@example.com").Return(nil, nil)
		a.users.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("insert user: %w", &pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		}))

		rec := a.do(http.MethodPost, "/users", `{"username":"jdoe","email":"jdoe@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_TAKEN", decodeError(t, rec).Code)
	})

	t.Run("unexpected repository failure", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(nil, errors.New("connection reset"))

		rec := a.do(http.MethodPost, "/users", `{"username":"jdoe","email":"jdoe@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(testutil.NewUser(), nil)
		a.users.On("FindByEmail", mock.Anything, "jdoe@example.com").Return(testutil.NewUser(), nil)
		a.users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == 1 && u.FirstName == "Johnny"
		})).Return(nil)

		rec := a.do(http.MethodPut, "/users", `{"userId":1,"username":"jdoe","email":"jdoe@example.com","firstName":"Johnny"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		a.users.AssertExpectations(t)
	})

	t.Run("omitted active keeps a deactivated user off", func(t *testing.T) {
		a := newApp(t)
		stored := testutil.NewUser()
		stored.Active = false
		a.users.On("FindByID", mock.Anything, int64(1)).Return(stored, nil)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(stored, nil)
		a.users.On("FindByEmail", mock.Anything, "jdoe@example.com").Return(stored, nil)
		a.users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == 1 && !u.Active
		})).Return(nil)

		rec := a.do(http.MethodPut, "/users", `{"userId":1,"username":"jdoe","email":"jdoe@example.com"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		a.users.AssertExpectations(t)
	})

	t.Run("unknown id is created", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)
		a.users.On("FindByUsername", mock.Anything, "newbie").Return(nil, nil)
		a.users.On("FindByEmail", mock.Anything, "newbie@example.com").Return(nil, nil)
		a.users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == 0
		})).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.User).UserID = 8
			}).
			Return(nil)

		rec := a.do(http.MethodPut, "/users", `{"userId":99,"username":"newbie","email":"newbie@example.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"userId":8`)
	})

	t.Run("username owned by someone else", func(t *testing.T) {
		a := newApp(t)
		other := testutil.NewUser()
		other.UserID = 5

		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.users.On("FindByUsername", mock.Anything, "jdoe").Return(other, nil)

		rec := a.do(http.MethodPut, "/users", `{"userId":1,"username":"jdoe","email":"jdoe@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USERNAME_TAKEN", decodeError(t, rec).Code)
		a.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.users.On("Delete", mock.Anything, int64(1)).Return(nil)

		rec := a.do(http.MethodDelete, "/users/id/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		a.users.AssertExpectations(t)
	})

	t.Run("unknown", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(3)).Return(nil, nil)

		rec := a.do(http.MethodDelete, "/users/id/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		a.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserExtras(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return !u.Active
		})).Return(nil)

		rec := a.do(http.MethodPatch, "/users/id/1/deactivate", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		a.users.AssertExpectations(t)
	})

	t.Run("add favorite", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		a.users.On("AddFavorite", mock.Anything, int64(1), int64(2)).Return(nil)

		rec := a.do(http.MethodPost, "/users/id/1/favorites/2", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		a.users.AssertExpectations(t)
	})

	t.Run("favorite of a missing business", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		a.businesses.On("FindByID", mock.Anything, int64(9)).Return(nil, nil)

		rec := a.do(http.MethodDelete, "/users/id/1/favorites/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		a.users.AssertNotCalled(t, "RemoveFavorite", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBusinessRoutes(t *testing.T) {
	t.Run("get by id hydrates children", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		a.hours.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Hours{*testutil.NewHours(2)}, nil)
		a.reviews.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Review{}, nil)
		a.posts.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Post{}, nil)

		rec := a.do(http.MethodGet, "/businesses/id/2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var b model.Business
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		assert.Equal(t, "Fake name", b.BusinessName)
		assert.Len(t, b.Hours, 1)
	})

	t.Run("email miss", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByEmail", mock.Anything, "fakeEmail@gmail.com").Return(nil, nil)

		rec := a.do(http.MethodGet, "/businesses/email/fakeEmail@gmail.com", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Business not found", decodeError(t, rec).Message)
	})

	t.Run("create without a type", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/businesses", `{"businessName":"Corner Deli","email":"deli@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BUSINESS_INVALID", decodeError(t, rec).Code)
	})

	t.Run("delete cascades in the repository", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		a.hours.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Hours{}, nil)
		a.reviews.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Review{}, nil)
		a.posts.On("FindByBusiness", mock.Anything, int64(2)).Return([]model.Post{}, nil)
		a.businesses.On("Delete", mock.Anything, int64(2)).Return(nil)

		rec := a.do(http.MethodDelete, "/businesses/id/2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		a.businesses.AssertExpectations(t)
	})

	t.Run("reviews of a missing business", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByID", mock.Anything, int64(5)).Return(nil, nil)

		rec := a.do(http.MethodGet, "/businesses/id/5/reviews", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHoursRoutes(t *testing.T) {
	t.Run("day zero", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/hours", `{"business":{"id":2},"day":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "HOURS_INVALID", decodeError(t, rec).Code)
		a.hours.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("update of existing hours", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		a.hours.On("FindByID", mock.Anything, int64(10)).Return(testutil.NewHours(2), nil)
		a.hours.On("Save", mock.Anything, mock.MatchedBy(func(h *model.Hours) bool {
			return h.HoursID == 10 && h.Day == 5
		})).Return(nil)

		rec := a.do(http.MethodPut, "/hours", `{"hoursId":10,"business":{"id":2},"day":5}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		a.hours.AssertExpectations(t)
	})

	t.Run("missing hours", func(t *testing.T) {
		a := newApp(t)
		a.hours.On("FindByID", mock.Anything, int64(10)).Return(nil, nil)

		rec := a.do(http.MethodGet, "/hours/id/10", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReviewAndPostRoutes(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/reviews", `{"business":{"id":2},"user":{"userId":1},"rating":7}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "REVIEW_INVALID", decodeError(t, rec).Code)
	})

	t.Run("post for a dangling business", func(t *testing.T) {
		a := newApp(t)
		a.businesses.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

		rec := a.do(http.MethodPost, "/posts", `{"business":{"id":404},"body":"hello"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		a.posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reviews by user", func(t *testing.T) {
		a := newApp(t)
		a.reviews.On("FindByUser", mock.Anything, int64(1)).Return([]model.Review{*testutil.NewReview(2, 1)}, nil)

		rec := a.do(http.MethodGet, "/reviews/user/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Friendly staff")
	})
}

func TestUnknownRoute(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestListRoutes(t *testing.T) {
	t.Run("every collection lists its records", func(t *testing.T) {
		a := newApp(t)
		a.users.On("FindAll", mock.Anything).Return([]model.User{*testutil.NewUser()}, nil)
		a.businesses.On("FindAll", mock.Anything).Return([]model.Business{*testutil.NewBusiness()}, nil)
		a.hours.On("FindAll", mock.Anything).Return([]model.Hours{*testutil.NewHours(2)}, nil)
		a.reviews.On("FindAll", mock.Anything).Return([]model.Review{*testutil.NewReview(2, 1)}, nil)
		a.posts.On("FindAll", mock.Anything).Return([]model.Post{*testutil.NewPost(2)}, nil)

		for _, path := range []string{"/users", "/businesses", "/hours", "/reviews", "/posts"} {
			rec := a.do(http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rec.Code, path)
			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items), path)
			assert.Len(t, items, 1, path)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		a := newApp(t)
		a.hours.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

		rec := a.do(http.MethodGet, "/hours", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestPanicIsRecovered(t *testing.T) {
	a := newApp(t)
	a.posts.On("FindAll", mock.Anything).Run(func(mock.Arguments) {
		panic("nil map write")
	})

	rec := a.do(http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, rec).Code)
}
