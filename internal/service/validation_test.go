package service

import (
	"math"
	"testing"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsHoursValid(t *testing.T) {
	business := &model.BusinessRef{ID: 2}

	tests := []struct {
		name  string
		hours *model.Hours
		want  bool
	}{
		{"nil hours", nil, false},
		{"valid", &model.Hours{Business: business, Day: 3}, true},
		{"day one is the first valid day", &model.Hours{Business: business, Day: 1}, true},
		{"day zero", &model.Hours{Business: business, Day: 0}, false},
		{"negative day", &model.Hours{Business: business, Day: -1}, false},
		{"nil business", &model.Hours{Business: nil, Day: 3}, false},
		{"business without id", &model.Hours{Business: &model.BusinessRef{}, Day: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHoursValid(tt.hours))
		})
	}
}

func TestIsUserValid(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{"nil user", nil, false},
		{"valid", &model.User{Username: "jdoe", Email: "jdoe@example.com"}, true},
		{"missing username", &model.User{Email: "jdoe@example.com"}, false},
		{"blank username", &model.User{Username: "   ", Email: "jdoe@example.com"}, false},
		{"missing email", &model.User{Username: "jdoe"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUserValid(tt.user))
		})
	}
}

func TestIsBusinessValid(t *testing.T) {
	tests := []struct {
		name     string
		business *model.Business
		want     bool
	}{
		{"nil business", nil, false},
		{"complete", &model.Business{BusinessName: "Fake name", Email: "fake email", BusinessType: "petshop"}, true},
		{"missing name", &model.Business{Email: "fake email", BusinessType: "petshop"}, false},
		{"missing email", &model.Business{BusinessName: "Fake name", BusinessType: "petshop"}, false},
		{"missing type", &model.Business{BusinessName: "Fake name", Email: "fake email"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBusinessValid(tt.business))
		})
	}
}

func TestIsReviewValid(t *testing.T) {
	business := &model.BusinessRef{ID: 2}
	user := &model.UserRef{UserID: 1}

	tests := []struct {
		name   string
		review *model.Review
		want   bool
	}{
		{"nil review", nil, false},
		{"valid", &model.Review{Business: business, User: user, Rating: 4}, true},
		{"lowest rating", &model.Review{Business: business, User: user, Rating: 0}, true},
		{"highest rating", &model.Review{Business: business, User: user, Rating: 5}, true},
		{"rating above range", &model.Review{Business: business, User: user, Rating: 5.5}, false},
		{"negative rating", &model.Review{Business: business, User: user, Rating: -1}, false},
		{"NaN rating", &model.Review{Business: business, User: user, Rating: math.NaN()}, false},
		{"missing business", &model.Review{User: user, Rating: 3}, false},
		{"missing user", &model.Review{Business: business, Rating: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isReviewValid(tt.review))
		})
	}
}

func TestIsPostValid(t *testing.T) {
	business := &model.BusinessRef{ID: 2}

	tests := []struct {
		name string
		post *model.Post
		want bool
	}{
		{"nil post", nil, false},
		{"valid", &model.Post{Business: business, Body: "Open late today"}, true},
		{"empty body", &model.Post{Business: business}, false},
		{"missing business", &model.Post{Body: "Open late today"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPostValid(tt.post))
		})
	}
}
