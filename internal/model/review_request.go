package model

// ReviewRequest is the POST and PUT /reviews payload.
type ReviewRequest struct {
	ID       int64        `json:"id" validate:"gte=0"`
	Business *BusinessRef `json:"business"`
	User     *UserRef     `json:"user"`
	Rating   float64      `json:"rating"`
	Review   string       `json:"review" validate:"max=2000"`
}

func (r *ReviewRequest) Validate() error { return validate.Struct(r) }

func (r *ReviewRequest) ToReview() *Review {
	return &Review{
		ID:       r.ID,
		Business: r.Business,
		User:     r.User,
		Rating:   r.Rating,
		Review:   r.Review,
	}
}
