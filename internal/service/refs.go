package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
)

// requireBusiness fails with an invalid-request error for entity when ref
// does not point at a stored business.
func requireBusiness(ctx context.Context, repo BusinessRepository, entity string, ref *model.BusinessRef) error {
	if !ref.Present() {
		return errs.NewInvalidRequestError(entity, "A business reference is required")
	}
	b, err := repo.FindByID(ctx, ref.ID)
	if err != nil {
		return fmt.Errorf("failed to look up business %d: %w", ref.ID, err)
	}
	if b == nil {
		return errs.NewInvalidRequestError(entity, fmt.Sprintf("Business %d does not exist", ref.ID))
	}
	return nil
}

// requireUser is requireBusiness for user references.
func requireUser(ctx context.Context, repo UserRepository, entity string, ref *model.UserRef) error {
	if !ref.Present() {
		return errs.NewInvalidRequestError(entity, "A user reference is required")
	}
	u, err := repo.FindByID(ctx, ref.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user %d: %w", ref.UserID, err)
	}
	if u == nil {
		return errs.NewInvalidRequestError(entity, fmt.Sprintf("User %d does not exist", ref.UserID))
	}
	return nil
}
