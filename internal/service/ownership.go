package service

import "github.com/msomdec/storefront/internal/domain"

// IsOwner reports whether actor owns the resource owned by ownerID.
func IsOwner(actor *domain.User, ownerID int64) bool {
	return actor != nil && actor.ID == ownerID
}

// Authorize returns domain.ErrForbidden unless actor owns the resource.
func Authorize(actor *domain.User, ownerID int64) error {
	if !IsOwner(actor, ownerID) {
		return domain.ErrForbidden
	}
	return nil
}
