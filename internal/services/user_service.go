package services

import (
	"context"
	"mime/multipart"

	"worknest_backend/internal/logger"
	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest, photo, resume *multipart.FileHeader) error
	DeleteUser(ctx context.Context, userID string) error
	BuildUserResponse(ctx context.Context, user *models.User) *dto.UserResponse
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	uploads  *UploadService
}

func NewUserService(userRepo repositories.UserRepository, uploads *UploadService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		uploads:  uploads,
	}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.BuildUserResponse(ctx, user), nil
}

// UpdateUser applies the textual profile fields and, when photo or
// resume files are attached, replaces the stored artifacts. The old
// artifact is removed best-effort after the new one is in place.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest, photo, resume *multipart.FileHeader) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "User not found")
		}
		return apperrors.InternalError(err)
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Gender != "" {
		user.Gender = models.Gender(req.Gender)
	}
	if req.Skills != "" {
		user.Skills = req.Skills
	}
	if req.CompanyDescription != "" {
		user.CompanyDescription = req.CompanyDescription
	}

	if photo != nil {
		ref, err := s.uploads.Upload(ctx, photo, "profiles/photos")
		if err != nil {
			return err
		}
		s.uploads.Delete(ctx, user.PhotoPath)
		user.PhotoPath = ref.PublicID
	}

	if resume != nil {
		ref, err := s.uploads.Upload(ctx, resume, "profiles/resumes")
		if err != nil {
			return err
		}
		s.uploads.Delete(ctx, user.ResumePath)
		user.ResumePath = ref.PublicID
	}

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrConflict(err, "account", "Email already registered")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteUser removes the account and its stored artifacts. Artifact
// cleanup is best-effort and never fails the deletion.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "User not found")
		}
		return apperrors.InternalError(err)
	}

	s.uploads.Delete(ctx, user.PhotoPath)
	s.uploads.Delete(ctx, user.ResumePath)

	if err := s.userRepo.Delete(userID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "account deleted", "user_id", userID)
	return nil
}

func (s *UserServiceImpl) BuildUserResponse(ctx context.Context, user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Role:               string(user.Role),
		Address:            user.Address,
		Gender:             string(user.Gender),
		Skills:             user.Skills,
		CompanyDescription: user.CompanyDescription,
		PhotoURL:           s.uploads.URL(ctx, user.PhotoPath),
		ResumeURL:          s.uploads.URL(ctx, user.ResumePath),
		CreatedAt:          user.CreatedAt,
	}
}
