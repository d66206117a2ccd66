package model

// BusinessRef is a by-reference view of a Business, used inside Hours,
// Reviews, Posts and a User's favorites.
type BusinessRef struct {
	ID           int64  `json:"id"`
	BusinessName string `json:"businessName,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Present reports whether the reference points at a business at all.
// A nil ref or a ref without a positive id is the "null" reference.
func (r *BusinessRef) Present() bool {
	return r != nil && r.ID > 0
}

// UserRef is a by-reference view of a User.
type UserRef struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username,omitempty"`
}

// Present reports whether the reference points at a user.
func (r *UserRef) Present() bool {
	return r != nil && r.UserID > 0
}
