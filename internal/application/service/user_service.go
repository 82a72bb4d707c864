package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// UserService handles user administration
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// GetUser retrieves a user with roles by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns all accounts, admin only
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, *pagination.Pagination, error) {
	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	params.Validate()
	return users, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// PromoteToAdmin grants the admin role to a user
func (s *UserService) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	adminRole, err := s.roleRepo.GetByName(ctx, "admin")
	if err != nil {
		return err
	}
	if adminRole == nil {
		return apperror.NewNotFoundError("Admin role")
	}

	return s.userRepo.AssignRole(ctx, user.ID, adminRole.ID)
}

// DeleteUser soft-deletes an account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, user.ID)
}
