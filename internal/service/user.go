package service

import (
	"context"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/util"
)

// UserService handles staff-account business logic
type UserService struct {
	repo repository.IUserRepository
	cfg  *config.Config
}

// NewUserService creates a new user service
func NewUserService(cfg *config.Config, repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

// Create inserts a new staff account. New accounts start active and not
// archived; the repository hashes the password.
func (s *UserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.Active = true
	user.Archived = false
	return s.repo.Create(ctx, user)
}

// Update merge-updates the addressed user.
func (s *UserService) Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateOne(ctx, model.UserFilter{ID: &oid}, update)
}

// Archive soft-deletes the addressed user. The record stays in storage
// and disappears from every listing.
func (s *UserService) Archive(ctx context.Context, id string) (*model.User, error) {
	archived := true
	return s.Update(ctx, id, model.UserUpdate{Archived: &archived})
}

// FindByEmail returns the user with the given email, or nil.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindOne(ctx, model.UserFilter{Email: email})
}

// ListPaged returns one page of the user listing plus the total count.
func (s *UserService) ListPaged(ctx context.Context, query model.UserListQuery) (*model.PagedResult[model.UserListItem], error) {
	return s.repo.ListPaged(ctx, query)
}

// GetLoggedUser returns the denormalized view of the authenticated user.
func (s *UserService) GetLoggedUser(ctx context.Context, id string) (*model.LoggedUserView, error) {
	return s.repo.LoggedUserView(ctx, id)
}
