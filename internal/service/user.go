package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/validation"
)

// UpdateUserInput carries the optional fields of a profile update. Empty
// fields keep their current value.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserService reads users and applies self-service changes.
type UserService struct {
	users  domain.UserRepository
	stores domain.StoreRepository
	hasher PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, stores domain.StoreRepository, hasher PasswordHasher) *UserService {
	return &UserService{users: users, stores: stores, hasher: hasher}
}

// List returns every user with their stores attached.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	byUser := make(map[int64][]domain.Store, len(users))
	for _, st := range stores {
		st.Owner = nil
		byUser[st.UserID] = append(byUser[st.UserID], st)
	}
	for i := range users {
		users[i].Stores = byUser[users[i].ID]
	}
	return users, nil
}

// Get returns one user with their stores attached.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	user.Stores = stores
	return user, nil
}

// Update changes the actor's own profile. The password is rehashed only
// when a new one was supplied.
func (s *UserService) Update(ctx context.Context, actor *domain.User, in UpdateUserInput) (*domain.User, error) {
	if actor == nil {
		return nil, domain.ErrMissingToken
	}

	user, err := s.load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}

	if err := validation.ValidateUser(validation.UserInput{
		Username:    user.Username,
		Email:       user.Email,
		Password:    in.Password,
		PasswordSet: in.Password != "",
	}).Err(); err != nil {
		return nil, err
	}

	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user identified by id. Only the user themself may do
// this; their stores go with them.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	target, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(actor, target.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, target.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) load(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("could not find user with id %d: %w", id, err)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
