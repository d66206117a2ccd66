package model

// The types below bind path parameters. Echo fills fields tagged with
// `param`, then Validate rejects ids that can never exist, so
// GET /users/id/-1 is a 400 rather than a 404.

// EmptyRequest is bound for routes without input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// IDParam binds /:id.
type IDParam struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *IDParam) Validate() error { return validate.Struct(p) }

// EmailParam binds /email/:email.
type EmailParam struct {
	Email string `param:"email" validate:"required,max=255"`
}

func (p *EmailParam) Validate() error { return validate.Struct(p) }

// UsernameParam binds /username/:username.
type UsernameParam struct {
	Username string `param:"username" validate:"required,max=64"`
}

func (p *UsernameParam) Validate() error { return validate.Struct(p) }

// NameParam binds /name/:name.
type NameParam struct {
	Name string `param:"name" validate:"required,max=255"`
}

func (p *NameParam) Validate() error { return validate.Struct(p) }

// OwnerParam binds /owner/:ownerId.
type OwnerParam struct {
	OwnerID int64 `param:"ownerId" validate:"required,min=1"`
}

func (p *OwnerParam) Validate() error { return validate.Struct(p) }

// UserParam binds /user/:userId.
type UserParam struct {
	UserID int64 `param:"userId" validate:"required,min=1"`
}

func (p *UserParam) Validate() error { return validate.Struct(p) }

// FavoriteParams binds /users/id/:id/favorites/:businessId.
type FavoriteParams struct {
	ID         int64 `param:"id" validate:"required,min=1"`
	BusinessID int64 `param:"businessId" validate:"required,min=1"`
}

func (p *FavoriteParams) Validate() error { return validate.Struct(p) }
