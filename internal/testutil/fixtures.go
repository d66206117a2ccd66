package testutil

import (
	"time"

	"github.com/deppfellow/bizdir/internal/model"
)

// Fixture builders return a fresh value on every call so no test can
// observe another test's mutations.

func NewUser() *model.User {
	return &model.User{
		UserID:           1,
		Username:         "jdoe",
		Password:         "$2a$10$abcdefghijklmnopqrstuv",
		Email:            "jdoe@example.com",
		PhoneNumber:      "555-0100",
		FirstName:        "John",
		LastName:         "Doe",
		RegisterDatetime: time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC),
		Active:           true,
		Role:             model.RoleUser,
		Favorites:        []model.BusinessRef{},
	}
}

// NewBusiness returns business 2, "Fake name".
func NewBusiness() *model.Business {
	return &model.Business{
		ID:               2,
		BusinessName:     "Fake name",
		BusinessType:     "petshop",
		Email:            "fake email",
		Location:         "Reston, VA",
		Active:           true,
		RegisterDatetime: time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC),
		Reviews:          []model.Review{},
		Hours:            []model.Hours{},
		Posts:            []model.Post{},
	}
}

func NewHours(businessID int64) *model.Hours {
	return &model.Hours{
		HoursID:  10,
		Business: &model.BusinessRef{ID: businessID},
		Day:      3,
		Open:     time.Date(2020, 6, 3, 9, 0, 0, 0, time.UTC),
		Closed:   time.Date(2020, 6, 3, 17, 0, 0, 0, time.UTC),
	}
}

func NewReview(businessID, userID int64) *model.Review {
	return &model.Review{
		ID:       20,
		Business: &model.BusinessRef{ID: businessID},
		User:     &model.UserRef{UserID: userID},
		Rating:   4.5,
		Review:   "Friendly staff",
	}
}

func NewPost(businessID int64) *model.Post {
	return &model.Post{
		PostID:      30,
		Business:    &model.BusinessRef{ID: businessID},
		CreatedTime: time.Date(2020, 6, 2, 12, 0, 0, 0, time.UTC),
		PostType:    "announcement",
		Body:        "Grand opening this weekend",
	}
}
