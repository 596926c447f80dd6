package handler

import (
	"time"

	"github.com/msomdec/storefront/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never
// serialized.
type UserDTO struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
	Stores    []StoreDTO `json:"stores,omitzero"`
}

func toUserDTO(u *domain.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.Stores != nil {
		dto.Stores = toStoreDTOs(u.Stores)
	}
	return dto
}

// toUserWithStoresDTO always includes the stores list, even when empty.
func toUserWithStoresDTO(u *domain.User) UserDTO {
	dto := toUserDTO(u)
	if dto.Stores == nil {
		dto.Stores = []StoreDTO{}
	}
	return dto
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserWithStoresDTO(&users[i])
	}
	return dtos
}

// StoreDTO is the JSON representation of a store.
type StoreDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	UserID    int64    `json:"userId"`
	User      *UserDTO `json:"user,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func toStoreDTO(s *domain.Store) StoreDTO {
	dto := StoreDTO{
		ID:        s.ID,
		Name:      s.Name,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
	if s.Owner != nil {
		owner := toUserDTO(s.Owner)
		owner.Stores = nil
		dto.User = &owner
	}
	return dto
}

func toStoreDTOs(stores []domain.Store) []StoreDTO {
	dtos := make([]StoreDTO, len(stores))
	for i := range stores {
		dtos[i] = toStoreDTO(&stores[i])
	}
	return dtos
}
