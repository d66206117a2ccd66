package model

// BusinessRequest is the POST and PUT /businesses payload. ID is ignored on create.
type BusinessRequest struct {
	ID           int64    `json:"id" validate:"gte=0"`
	BusinessName string   `json:"businessName" validate:"max=255"`
	BusinessType string   `json:"businessType" validate:"max=100"`
	Email        string   `json:"email" validate:"max=255"`
	Location     string   `json:"location" validate:"max=255"`
	Active       *bool    `json:"active"`
	Owner        *UserRef `json:"owner"`
}

func (r *BusinessRequest) Validate() error { return validate.Struct(r) }

// ToBusiness maps the payload onto a Business. Businesses are active
// unless the payload says otherwise.
func (r *BusinessRequest) ToBusiness() *Business {
	b := &Business{
		ID:           r.ID,
		BusinessName: r.BusinessName,
		BusinessType: r.BusinessType,
		Email:        r.Email,
		Location:     r.Location,
		Active:       true,
		Owner:        r.Owner,
	}
	if r.Active != nil {
		b.Active = *r.Active
	}
	return b
}
