package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/Thato402/employee-attendance-tracker/internal/auth/errors"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
	"github.com/Thato402/employee-attendance-tracker/internal/token"
)

// dummyHash is a bcrypt hash of an unguessable throwaway value. Login burns
// a compare against it when the employee ID is unknown, so the unknown-ID
// and wrong-password paths cost roughly the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Register creates an account and signs it in, returning the public
	// user fields plus a fresh session token.
	Register(ctx context.Context, req RegisterRequest) (UserResponse, string, error)

	// Login verifies credentials and issues a new session token. Each call
	// is independent; earlier tokens stay valid until they expire.
	Login(ctx context.Context, employeeID, password string) (UserResponse, string, error)
}

type service struct {
	repo   Repository
	tokens *token.Manager
}

func NewService(repo Repository, tokens *token.Manager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, string, error) {
	// Pre-check gives the friendly conflict answer; the unique indexes are
	// still the real guard when two registrations race.
	exists, err := s.repo.ExistsByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		return UserResponse{}, "", apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}
	if exists {
		return UserResponse{}, "", autherrors.ErrAccountAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, "", apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}

	user := &User{
		EmployeeName: req.EmployeeName,
		EmployeeID:   req.EmployeeID,
		Email:        req.Email,
		Password:     string(hashed),
		Department:   req.Department,
		Position:     req.Position,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, "", mapRepositoryError(err)
	}

	token, err := s.tokens.Issue(user.ID.String(), user.EmployeeID, user.Email)
	if err != nil {
		return UserResponse{}, "", autherrors.ErrTokenGenerationFailed
	}

	return toUserResponse(user), token, nil
}

func (s *service) Login(ctx context.Context, employeeID, password string) (UserResponse, string, error) {
	user, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return UserResponse{}, "", autherrors.ErrInvalidCredentials
		}
		return UserResponse{}, "", apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return UserResponse{}, "", autherrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String(), user.EmployeeID, user.Email)
	if err != nil {
		return UserResponse{}, "", autherrors.ErrTokenGenerationFailed
	}

	return toUserResponse(user), token, nil
}
