package model

import "time"

// Business is a directory listing. It owns its Reviews, Hours and Posts:
// deleting the business deletes them too.
type Business struct {
	ID               int64     `json:"id"`
	BusinessName     string    `json:"businessName"`
	BusinessType     string    `json:"businessType"`
	Email            string    `json:"email"`
	Location         string    `json:"location"`
	Active           bool      `json:"active"`
	Owner            *UserRef  `json:"owner"`
	RegisterDatetime time.Time `json:"registerDatetime"`
	Reviews          []Review  `json:"reviews"`
	Hours            []Hours   `json:"hours"`
	Posts            []Post    `json:"posts"`
}
