package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"worknest_backend/internal/logger"
	"worknest_backend/internal/models"
	"worknest_backend/internal/repositories"
	"worknest_backend/internal/services/dto"
	"worknest_backend/pkg/apperrors"
)

type ApplicationService interface {
	Submit(ctx context.Context, applicantID string, req *dto.SubmitApplicationRequest, resume, coverLetter *multipart.FileHeader) (*dto.ApplicationResponse, error)
	ListForApplicant(applicantID string) ([]dto.ApplicationResponse, error)
	ListForEmployer(employerID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) error
	Delete(ctx context.Context, applicantID, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	uploads         *UploadService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	uploads *UploadService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		uploads:         uploads,
	}
}

// Submit stores a new application against an active posting. Both
// artifacts are required; the first upload is rolled back if the second
// one fails, so a stored application always carries both files.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, applicantID string, req *dto.SubmitApplicationRequest, resume, coverLetter *multipart.FileHeader) (*dto.ApplicationResponse, error) {
	if resume == nil || coverLetter == nil {
		return nil, apperrors.NewBadRequestError("Both resume and cover letter files are required")
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Expired {
		return nil, apperrors.NewBadRequestError("This job posting is no longer accepting applications")
	}

	resumeRef, err := s.uploads.Upload(ctx, resume, "applications/resumes")
	if err != nil {
		return nil, err
	}

	coverRef, err := s.uploads.Upload(ctx, coverLetter, "applications/cover_letters")
	if err != nil {
		s.uploads.Delete(ctx, resumeRef.PublicID)
		return nil, err
	}

	application := &models.Application{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Skills:      req.Skills,
		Resume:      resumeRef,
		CoverLetter: coverRef,
		JobID:       job.ID,
		ApplicantID: applicantID,
		EmployerID:  job.PostedByID,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		s.uploads.Delete(ctx, resumeRef.PublicID)
		s.uploads.Delete(ctx, coverRef.PublicID)
		return nil, apperrors.InternalError(err)
	}

	application.Job = job
	resp := buildApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListForApplicant(applicantID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

func (s *ApplicationServiceImpl) ListForEmployer(employerID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationResponses(applications), nil
}

// UpdateStatus moves an application along its lifecycle. Only the
// employer the application was submitted to may decide it, and a decided
// application is final.
func (s *ApplicationServiceImpl) UpdateStatus(employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "Application not found")
		}
		return apperrors.InternalError(err)
	}

	if application.EmployerID != employerID {
		return apperrors.NewForbiddenError("You can only decide applications submitted to your jobs")
	}

	next := models.ApplicationStatus(req.Status)
	if !application.Status.CanTransitionTo(next) {
		return apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Cannot change status from %s to %s", application.Status, next))
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, next); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete withdraws an application. The stored artifacts go with it,
// best-effort.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, applicantID, applicationID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err, "Application not found")
		}
		return apperrors.InternalError(err)
	}

	if application.ApplicantID != applicantID {
		return apperrors.NewForbiddenError("You can only withdraw your own applications")
	}

	s.uploads.Delete(ctx, application.Resume.PublicID)
	s.uploads.Delete(ctx, application.CoverLetter.PublicID)

	if err := s.applicationRepo.Delete(applicationID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application withdrawn", "application_id", applicationID)
	return nil
}

func buildApplicationResponses(applications []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}
	return responses
}

func buildApplicationResponse(application *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:          application.ID,
		FirstName:   application.FirstName,
		LastName:    application.LastName,
		Email:       application.Email,
		Phone:       application.Phone,
		Address:     application.Address,
		Skills:      application.Skills,
		Resume:      dto.FileRefResponse{PublicID: application.Resume.PublicID, URL: application.Resume.URL},
		CoverLetter: dto.FileRefResponse{PublicID: application.CoverLetter.PublicID, URL: application.CoverLetter.URL},
		JobID:       application.JobID,
		Status:      string(application.Status),
		SubmittedAt: application.CreatedAt,
	}

	if application.Job != nil {
		resp.JobTitle = application.Job.Title
	}
	if application.Applicant != nil {
		resp.ApplicantName = application.Applicant.Name
	}
	if application.Employer != nil {
		resp.EmployerName = application.Employer.Name
	}
	return resp
}
