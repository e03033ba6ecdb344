package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/centsible/centsible/internal/validation"
	"github.com/google/uuid"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	FindOrCreateByEmail(ctx context.Context, email, displayName string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (u *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.GetUser(ctx, userId)
}

func (u *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.repo.GetUserByUid(ctx, uid)
}

// FindOrCreateByEmail returns the user registered under email, creating one
// on first sign-in. New users always start with the "user" role; admin is
// granted by updating the role row, never by matching a compiled-in address.
func (u *ServiceImpl) FindOrCreateByEmail(ctx context.Context, email, displayName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, validation.Failed("email", "must not be empty")
	}

	existing, err := u.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if err != ErrUserNotFound {
		return User{}, err
	}

	newUser := User{
		Uid:         uuid.New().String(),
		Email:       email,
		DisplayName: displayName,
		Role:        RoleUser,
		Currency:    "USD",
	}
	id, err := u.repo.CreateUser(ctx, newUser)
	if err != nil {
		return User{}, err
	}
	newUser.Id = id
	return newUser, nil
}

func (u *ServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.UpdateUser(ctx, userId, user)
}

func (u *ServiceImpl) DeleteUser(ctx context.Context, id int) error {
	return u.repo.DeleteUser(ctx, id)
}

func (u *ServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return u.repo.GetAllUsers(ctx)
}
