package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"worknest_backend/internal/auth"
	"worknest_backend/internal/email"
	"worknest_backend/internal/models"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Email
	fail bool
}

func (p *fakeEmailProvider) Send(e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("smtp unavailable")
	}
	p.sent = append(p.sent, e)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }

func newAuthTestEnv() (AuthService, *fakeUserRepo, *fakeEmailProvider) {
	userRepo := newFakeUserRepo()
	mail := &fakeEmailProvider{}
	tokens := auth.NewTokenIssuer("test-secret", 60)
	uploads := NewUploadService(newFakeStorage(), UploadConfig{MaxSize: 1 << 20, AllowedTypes: []string{"application/pdf"}})
	userService := NewUserService(userRepo, uploads)
	svc := NewAuthService(userRepo, mail, tokens, userService, "http://localhost:3000")
	return svc, userRepo, mail
}

func registerReq(emailAddr string, role models.AccountRole) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Test Person",
		Email:    emailAddr,
		Phone:    "123456789",
		Password: "password123",
		Role:     string(role),
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _, _ := newAuthTestEnv()

	resp, err := svc.Register(registerReq("seeker@example.com", models.RoleJobSeeker))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "seeker@example.com", resp.User.Email)
	assert.Equal(t, string(models.RoleJobSeeker), resp.User.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthTestEnv()

	_, err := svc.Register(registerReq("dup@example.com", models.RoleEmployer))
	require.NoError(t, err)

	_, err = svc.Register(registerReq("dup@example.com", models.RoleEmployer))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newAuthTestEnv()

	req := registerReq("who@example.com", "admin")
	_, err := svc.Register(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccountRole)
}

func TestLoginChecksPasswordAndRole(t *testing.T) {
	svc, _, _ := newAuthTestEnv()

	_, err := svc.Register(registerReq("seeker@example.com", models.RoleJobSeeker))
	require.NoError(t, err)

	// Correct credentials and role
	resp, err := svc.Login(&dto.LoginRequest{
		Email: "seeker@example.com", Password: "password123", Role: string(models.RoleJobSeeker),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// Wrong password
	_, err = svc.Login(&dto.LoginRequest{
		Email: "seeker@example.com", Password: "wrong-password", Role: string(models.RoleJobSeeker),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Right credentials, wrong side of the platform
	_, err = svc.Login(&dto.LoginRequest{
		Email: "seeker@example.com", Password: "password123", Role: string(models.RoleEmployer),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	svc, userRepo, mail := newAuthTestEnv()

	_, err := svc.Register(registerReq("reset@example.com", models.RoleJobSeeker))
	require.NoError(t, err)

	resp, err := svc.RequestPasswordReset(context.Background(), "reset@example.com")
	require.NoError(t, err)
	assert.Empty(t, resp.Warning)
	require.Len(t, mail.sent, 1)

	// The raw token only exists in the mail body; the stored value is its
	// hash.
	user, err := userRepo.FindByEmail("reset@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ResetPasswordToken)
	assert.NotContains(t, mail.sent[0].Body, user.ResetPasswordToken)

	rawToken := extractResetToken(t, mail.sent[0].Body)
	require.NoError(t, svc.ResetPassword(rawToken, "new-password-123"))

	// Token is single-use
	err = svc.ResetPassword(rawToken, "another-password")
	assert.Error(t, err)

	// And the new credential works
	_, err = svc.Login(&dto.LoginRequest{
		Email: "reset@example.com", Password: "new-password-123", Role: string(models.RoleJobSeeker),
	})
	assert.NoError(t, err)
}

func TestPasswordResetSurvivesMailFailure(t *testing.T) {
	svc, userRepo, mail := newAuthTestEnv()
	mail.fail = true

	_, err := svc.Register(registerReq("reset@example.com", models.RoleJobSeeker))
	require.NoError(t, err)

	resp, err := svc.RequestPasswordReset(context.Background(), "reset@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Warning)

	user, err := userRepo.FindByEmail("reset@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ResetPasswordToken, "token should be issued even when mail fails")
}

func TestResetPasswordRejectsBogusToken(t *testing.T) {
	svc, _, _ := newAuthTestEnv()

	err := svc.ResetPassword("deadbeef", "new-password-123")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// extractResetToken pulls the token out of the reset-link line of the
// mail body.
func extractResetToken(t *testing.T, body string) string {
	t.Helper()
	const marker = "/reset-password/"
	idx := len(body)
	for i := 0; i+len(marker) <= len(body); i++ {
		if body[i:i+len(marker)] == marker {
			idx = i + len(marker)
			break
		}
	}
	require.Less(t, idx, len(body), "reset link not found in mail body")

	end := idx
	for end < len(body) && isHexChar(body[end]) {
		end++
	}
	return body[idx:end]
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
