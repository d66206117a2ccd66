package model

import "time"

// Post is an announcement published by a business.
type Post struct {
	PostID      int64        `json:"postId"`
	Business    *BusinessRef `json:"business"`
	CreatedTime time.Time    `json:"createdTime"`
	PostType    string       `json:"postType"`
	Body        string       `json:"body"`
}
