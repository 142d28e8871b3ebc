package services

import (
	"context"
	"mime/multipart"
	"testing"

	"worknest_backend/internal/models"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationTestEnv() (ApplicationService, *fakeApplicationRepo, *fakeJobRepo) {
	applicationRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	uploads := NewUploadService(newFakeStorage(), UploadConfig{
		MaxSize:      1 << 20,
		AllowedTypes: []string{"application/pdf"},
	})
	return NewApplicationService(applicationRepo, jobRepo, uploads), applicationRepo, jobRepo
}

func TestSubmitRequiresBothArtifacts(t *testing.T) {
	svc, _, _ := newApplicationTestEnv()

	req := &dto.SubmitApplicationRequest{JobID: "job-1"}
	file := &multipart.FileHeader{Filename: "resume.pdf"}

	for _, tc := range []struct {
		name        string
		resume      *multipart.FileHeader
		coverLetter *multipart.FileHeader
	}{
		{"no files", nil, nil},
		{"missing cover letter", file, nil},
		{"missing resume", nil, file},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), "seeker-1", req, tc.resume, tc.coverLetter)
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.HTTPCode)
		})
	}
}

func TestSubmitRejectsExpiredPosting(t *testing.T) {
	svc, _, jobRepo := newApplicationTestEnv()

	job := &models.Job{Title: "Closed Role", PostedByID: "employer-1", Expired: true}
	require.NoError(t, jobRepo.Create(job))

	file := &multipart.FileHeader{Filename: "resume.pdf"}
	_, err := svc.Submit(context.Background(), "seeker-1", &dto.SubmitApplicationRequest{JobID: job.ID}, file, file)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSubmitUnknownJob(t *testing.T) {
	svc, _, _ := newApplicationTestEnv()

	file := &multipart.FileHeader{Filename: "resume.pdf"}
	_, err := svc.Submit(context.Background(), "seeker-1", &dto.SubmitApplicationRequest{JobID: "missing"}, file, file)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApplicationDecisionLifecycle(t *testing.T) {
	svc, applicationRepo, _ := newApplicationTestEnv()

	application := &models.Application{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "123", Address: "Somewhere",
		JobID: "job-1", ApplicantID: "seeker-1", EmployerID: "employer-1",
		Status: models.ApplicationStatusPending,
	}
	require.NoError(t, applicationRepo.Create(application))

	// Only the receiving employer may decide
	err := svc.UpdateStatus("employer-2", application.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusAccepted),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, svc.UpdateStatus("employer-1", application.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusAccepted),
	}))

	// Accepted is terminal
	err = svc.UpdateStatus("employer-1", application.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusRejected),
	})
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	stored, err := applicationRepo.FindByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
}

func TestWithdrawEnforcesOwnership(t *testing.T) {
	svc, applicationRepo, _ := newApplicationTestEnv()

	application := &models.Application{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "123", Address: "Somewhere",
		JobID: "job-1", ApplicantID: "seeker-1", EmployerID: "employer-1",
		Status: models.ApplicationStatusPending,
	}
	require.NoError(t, applicationRepo.Create(application))

	err := svc.Delete(context.Background(), "seeker-2", application.ID)
	require.Error(t, err)

	require.NoError(t, svc.Delete(context.Background(), "seeker-1", application.ID))
	_, err = applicationRepo.FindByID(application.ID)
	assert.Error(t, err)
}
