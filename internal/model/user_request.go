package model

// CreateUserRequest is the registration payload.
//
// Username and email presence is checked by the user service, not here:
// the service owns the shape rule for users.
type CreateUserRequest struct {
	Username    string `json:"username" validate:"max=64"`
	Password    string `json:"password" validate:"max=72"`
	Email       string `json:"email" validate:"max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"max=32"`
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	Role        Role   `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// ToUser maps the payload onto a new, active User.
func (r *CreateUserRequest) ToUser() *User {
	return &User{
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        r.Role.OrDefault(),
		Active:      true,
	}
}

// UpdateUserRequest is the PUT /users payload. A missing or unknown
// userId turns the update into a registration.
type UpdateUserRequest struct {
	UserID int64 `json:"userId" validate:"gte=0"`
	CreateUserRequest
	Active *bool `json:"active"`
}

func (r *UpdateUserRequest) Validate() error { return validate.Struct(r) }

// ToUser maps the payload onto a User. An empty password means
// "keep the current one".
func (r *UpdateUserRequest) ToUser() *User {
	u := r.CreateUserRequest.ToUser()
	u.UserID = r.UserID
	if r.Active != nil {
		u.Active = *r.Active
	}
	return u
}
