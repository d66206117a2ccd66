package model

// Rating bounds, inclusive.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Review is a user's rating of a business. Business and User are fixed
// once the review exists; only Rating and Review can change.
type Review struct {
	ID       int64        `json:"id"`
	Business *BusinessRef `json:"business"`
	User     *UserRef     `json:"user"`
	Rating   float64      `json:"rating"`
	Review   string       `json:"review"`
}
