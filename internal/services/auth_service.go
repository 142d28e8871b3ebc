package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"worknest_backend/internal/auth"
	"worknest_backend/internal/email"
	"worknest_backend/internal/logger"
	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"
)

const resetTokenTTL = 15 * time.Minute

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) (*dto.PasswordResetResponse, error)
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	tokens        *auth.TokenIssuer
	userService   UserService
	frontendURL   string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	tokens *auth.TokenIssuer,
	userService UserService,
	frontendURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		tokens:        tokens,
		userService:   userService,
		frontendURL:   frontendURL,
	}
}

// Register creates an account and immediately issues a token, matching
// the register-then-signed-in flow of the product.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	role := models.AccountRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidAccountRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		PasswordHash:       hashedPassword,
		Role:               role,
		Address:            req.Address,
		Skills:             req.Skills,
		CompanyDescription: req.CompanyDescription,
	}
	if req.Gender != "" {
		user.Gender = models.Gender(req.Gender)
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// A login is bound to the role the caller asked for
	if user.Role != models.AccountRole(req.Role) {
		return nil, apperrors.ErrNotFound(nil,
			fmt.Sprintf("User with provided email and role %s not found", req.Role))
	}

	return s.buildLoginResponse(user)
}

// RequestPasswordReset issues a short-lived token and mails the reset
// link. Mail dispatch is best-effort: a failed send keeps the token and
// is reported as a warning, not an error.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) (*dto.PasswordResetResponse, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found with this email")
		}
		return nil, apperrors.InternalError(err)
	}

	rawToken, hashedToken, err := generateResetToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = hashedToken
	user.ResetPasswordExpire = &expiry

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, rawToken)
	resp := &dto.PasswordResetResponse{
		Message: fmt.Sprintf("Reset link sent to %s", user.Email),
	}

	sendErr := s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: "Password Reset Request",
		Body:    email.PasswordResetBody(resetURL),
	})
	if sendErr != nil {
		logger.CtxWarn(ctx, "password reset mail dispatch failed",
			"email", user.Email, "error", sendErr.Error())
		resp.Message = "Reset token issued"
		resp.Warning = "The notification email could not be sent; the reset token is still valid"
	}

	return resp, nil
}

// ResetPassword consumes a reset token and stores the new credential.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	hashed := hashResetToken(token)

	user, err := s.userRepo.FindByResetToken(hashed, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewBadRequestError("Invalid or expired reset token")
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetPasswordToken = ""
	user.ResetPasswordExpire = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        s.userService.BuildUserResponse(context.Background(), user),
	}, nil
}

// generateResetToken returns the raw token for the mail link and its
// sha256 hash for storage. Only the hash ever touches the database.
func generateResetToken() (raw string, hashed string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
