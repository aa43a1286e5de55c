package service

import (
	"context"
	"errors"
	"time"

	"backend/internal/auth"
	"backend/internal/model"
	"backend/internal/repository"

	"gorm.io/gorm"
)

// DTOs for request validation
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UserUpdateRequest is a sparse update: only role and permissions are ever
// mutable, and only when present
type UserUpdateRequest struct {
	Role        *string            `json:"role"`
	Permissions *model.Permissions `json:"permissions"`
}

// UserResponse is the outward user profile; the password hash never leaves
// the service layer
type UserResponse struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	Role        string            `json:"role"`
	Permissions model.Permissions `json:"permissions"`
	CreatedAt   string            `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrInvalidRole        = errors.New("invalid role: must be admin or employee")
)

// UserService defines the business logic around accounts and sessions
type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id string, req UserUpdateRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id, currentUserID string) error
	EnsureDefaultUsers(ctx context.Context) error
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenIssuer
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, tokens *auth.TokenIssuer) UserService {
	return &userService{repo: repo, tokens: tokens}
}

// Helper: parse model to standard json API response
func mapToResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Role:        user.Role,
		Permissions: user.Permissions,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *mapToResponse(user),
	}, nil
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	// Check-then-insert; the unique index on username backstops a
	// concurrent duplicate registration.
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		Role:           role,
		Permissions:    model.DefaultPermissions(),
		HashedPassword: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return mapToResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return mapToResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapToResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req UserUpdateRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return mapToResponse(user), nil
}

// DeleteUser removes an account. Deleting one's own account is refused
// regardless of role or permissions.
func (s *userService) DeleteUser(ctx context.Context, id, currentUserID string) error {
	if id == currentUserID {
		return ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// seedAccount describes one baseline account created at startup
type seedAccount struct {
	username    string
	password    string
	role        string
	permissions model.Permissions
}

var defaultAccounts = []seedAccount{
	{username: "admin", password: "admin123", role: model.RoleAdmin, permissions: model.AdminPermissions()},
	{username: "employe1", password: "employe123", role: model.RoleEmployee, permissions: model.DefaultPermissions()},
}

// EnsureDefaultUsers idempotently creates the baseline accounts. An existing
// account with the same username is never overwritten, so an operator's
// password change survives restarts. The existence check and the insert are
// not atomic; the unique index on username backstops concurrent starts.
func (s *userService) EnsureDefaultUsers(ctx context.Context) error {
	for _, account := range defaultAccounts {
		if _, err := s.repo.GetByUsername(ctx, account.username); err == nil {
			continue
		}

		hashed, err := auth.HashPassword(account.password)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:       account.username,
			Role:           account.role,
			Permissions:    account.permissions,
			HashedPassword: hashed,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
