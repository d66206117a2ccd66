package model

import "time"

// User is a registered directory member.
//
// Password holds the bcrypt hash and never leaves the process as JSON.
type User struct {
	UserID           int64         `json:"userId"`
	Username         string        `json:"username"`
	Password         string        `json:"-"`
	Email            string        `json:"email"`
	PhoneNumber      string        `json:"phoneNumber"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	RegisterDatetime time.Time     `json:"registerDatetime"`
	Active           bool          `json:"active"`
	Role             Role          `json:"role"`
	Favorites        []BusinessRef `json:"favorites"`
}
