package service_test

import (
	"errors"
	"testing"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/service"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		ownerID int64
		wantErr error
	}{
		{"owner", &domain.User{ID: 1}, 1, nil},
		{"other user", &domain.User{ID: 2}, 1, domain.ErrForbidden},
		{"no actor", nil, 1, domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Authorize(tt.actor, tt.ownerID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authorize = %v, want %v", err, tt.wantErr)
			}
			if service.IsOwner(tt.actor, tt.ownerID) != (tt.wantErr == nil) {
				t.Fatalf("IsOwner disagrees with Authorize")
			}
		})
	}
}
