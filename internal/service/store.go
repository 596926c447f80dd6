package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/validation"
)

// StoreService manages stores on behalf of their owners.
type StoreService struct {
	stores domain.StoreRepository
	users  domain.UserRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(stores domain.StoreRepository, users domain.UserRepository) *StoreService {
	return &StoreService{stores: stores, users: users}
}

// Create opens a new store owned by actor.
func (s *StoreService) Create(ctx context.Context, actor *domain.User, name string) (*domain.Store, error) {
	if actor == nil {
		return nil, domain.ErrMissingToken
	}

	owner, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("could not find user with id %d: %w", actor.ID, err)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := validation.ValidateStore(validation.StoreInput{Name: name}).Err(); err != nil {
		return nil, err
	}

	store := &domain.Store{Name: name, UserID: owner.ID}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	store.Owner = owner
	return store, nil
}

// List returns every store with its owner attached.
func (s *StoreService) List(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// Get returns one store with its owner attached.
func (s *StoreService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	return s.load(ctx, id)
}

// Update renames a store. An empty name keeps the current one.
func (s *StoreService) Update(ctx context.Context, actor *domain.User, id int64, name string) (*domain.Store, error) {
	store, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, store.UserID); err != nil {
		return nil, err
	}

	if name != "" {
		store.Name = name
	}
	if err := validation.ValidateStore(validation.StoreInput{Name: store.Name}).Err(); err != nil {
		return nil, err
	}

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return store, nil
}

// Delete removes a store owned by actor.
func (s *StoreService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	store, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(actor, store.UserID); err != nil {
		return err
	}
	if err := s.stores.Delete(ctx, store.ID); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

func (s *StoreService) load(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("could not find store with id %d: %w", id, err)
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}
