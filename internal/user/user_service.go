package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
	usererrors "github.com/Thato402/employee-attendance-tracker/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, userID string) (ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ProfileResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, usererrors.ErrUserNotFound
		}
		return ProfileResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}

	return toProfileResponse(u), nil
}
