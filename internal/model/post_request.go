package model

// PostRequest is the POST and PUT /posts payload. PostID is ignored on create.
type PostRequest struct {
	PostID   int64        `json:"postId" validate:"gte=0"`
	Business *BusinessRef `json:"business"`
	PostType string       `json:"postType" validate:"max=50"`
	Body     string       `json:"body" validate:"max=5000"`
}

func (r *PostRequest) Validate() error { return validate.Struct(r) }

func (r *PostRequest) ToPost() *Post {
	return &Post{
		PostID:   r.PostID,
		Business: r.Business,
		PostType: r.PostType,
		Body:     r.Body,
	}
}
