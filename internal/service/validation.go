package service

import (
	"strings"

	"github.com/deppfellow/bizdir/internal/model"
)

// Shape predicates. Each one is applied unchanged by Create, Update and
// Delete of its entity.

func isHoursValid(h *model.Hours) bool {
	return h != nil && h.Business.Present() && h.Day > 0
}

func isUserValid(u *model.User) bool {
	return u != nil && !blank(u.Username) && !blank(u.Email)
}

// isBusinessValid guards writes only. Stored businesses are returned as
// they are, complete or not.
func isBusinessValid(b *model.Business) bool {
	return b != nil && !blank(b.BusinessName) && !blank(b.Email) && !blank(b.BusinessType)
}

func isReviewValid(r *model.Review) bool {
	return r != nil &&
		r.Business.Present() &&
		r.User.Present() &&
		r.Rating >= model.MinRating &&
		r.Rating <= model.MaxRating
}

func isPostValid(p *model.Post) bool {
	return p != nil && p.Business.Present() && !blank(p.Body)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
