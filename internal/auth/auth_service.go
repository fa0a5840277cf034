package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/sohan418/leave-management-backend/internal/auth/errors"
	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/config"
	"github.com/sohan418/leave-management-backend/internal/employee"
	"github.com/sohan418/leave-management-backend/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	RegisterAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, actor authz.Actor, req ChangePasswordRequest) error
	GetMe(ctx context.Context, actor authz.Actor) (UserResponse, error)

	// ResolveActor rebuilds the request actor from the token subject.
	ResolveActor(ctx context.Context, email string) (authz.Actor, error)
}

type service struct {
	users     user.Repository
	employees employee.Repository
	cfg       config.Auth
	logger    *zap.Logger
}

func NewService(users user.Repository, employees employee.Repository, cfg config.Auth, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, employees: employees, cfg: cfg, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// The same answer for unknown email and wrong password.
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveUser
	}

	token, err := s.generateToken(u.Email)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return TokenResponse{}, err
	}

	now := time.Now()
	u.LastLogin = &now
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Warn("record last login failed", zap.Uint("user_id", u.ID), zap.Error(err))
	}

	s.logger.Info("login success", zap.Uint("user_id", u.ID))
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapUserToResponse(u),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	return s.register(ctx, req, authz.RoleUser)
}

// RegisterAdmin exists for initial setup; the route keeps it admin-gated.
func (s *service) RegisterAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	return s.register(ctx, req, authz.RoleAdmin)
}

func (s *service) register(ctx context.Context, req RegisterRequest, role string) (UserResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("register email lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	username, err := s.users.NextUsername(ctx, req.Email)
	if err != nil {
		s.logger.Error("derive username failed", zap.Error(err))
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &user.User{
		Email:          req.Email,
		Username:       username,
		HashedPassword: string(hashed),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IsActive:       true,
		Role:           role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register success",
		zap.Uint("user_id", u.ID),
		zap.String("username", username),
		zap.String("role", role),
	)
	return mapUserToResponse(u), nil
}

func (s *service) ChangePassword(ctx context.Context, actor authz.Actor, req ChangePasswordRequest) error {
	u, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.HashedPassword = string(hashed)
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("change password persist failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return err
	}

	s.logger.Info("change password success", zap.Uint("user_id", u.ID))
	return nil
}

func (s *service) GetMe(ctx context.Context, actor authz.Actor) (UserResponse, error) {
	u, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, autherrors.ErrUserNotFound
	}
	return mapUserToResponse(u), nil
}

func (s *service) ResolveActor(ctx context.Context, email string) (authz.Actor, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return authz.Actor{}, autherrors.ErrInvalidToken
	}

	actor := authz.Actor{
		UserID:      u.ID,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
	}

	if e, err := s.employees.FindByUserID(ctx, u.ID); err == nil {
		actor.EmployeeID = &e.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("resolve employee profile failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return authz.Actor{}, err
	}

	return actor, nil
}

func (s *service) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(s.cfg.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func mapUserToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
